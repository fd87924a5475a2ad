// Package client talks to the portal API and keeps a local view of the
// rendered content in sync with the server. The server response is the
// only source of truth: after every mutation the affected collection is
// re-fetched in full, never patched locally.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/pssg2024/portal-nahora/internal/models"
)

// APIError is a non-2xx response decoded from the {"error": ...} body.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api: %d %s", e.Status, e.Message)
	}
	return fmt.Sprintf("api: status %d", e.Status)
}

type Client struct {
	baseURL string
	http    *http.Client
}

// New returns a client for the API at baseURL (e.g. "http://host:3000").
// No request timeout is set; a hung request hangs its caller.
func New(baseURL string) *Client {
	return &Client{baseURL: baseURL, http: &http.Client{}}
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var rd io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return err
		}
		rd = bytes.NewReader(buf)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rd)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{Status: resp.StatusCode}
		var e struct {
			Error string `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&e); err == nil {
			apiErr.Message = e.Error
		}
		return apiErr
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *Client) Configuracoes(ctx context.Context) (map[string]string, error) {
	var out map[string]string
	if err := c.do(ctx, http.MethodGet, "/api/configuracoes", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Publicacoes(ctx context.Context) ([]models.PublicacaoComAutor, error) {
	var out []models.PublicacaoComAutor
	if err := c.do(ctx, http.MethodGet, "/api/publicacoes", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Comentarios(ctx context.Context, publicacaoID uint) ([]models.Comentario, error) {
	var out []models.Comentario
	path := fmt.Sprintf("/api/comentarios/%d", publicacaoID)
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

type NovoComentario struct {
	PublicacaoID uint   `json:"publicacao_id"`
	AutorNome    string `json:"autor_nome,omitempty"`
	Texto        string `json:"texto"`
	Email        string `json:"email,omitempty"`
}

func (c *Client) CriarComentario(ctx context.Context, in NovoComentario) (models.Comentario, error) {
	var out models.Comentario
	err := c.do(ctx, http.MethodPost, "/api/comentarios", in, &out)
	return out, err
}

func (c *Client) Login(ctx context.Context, username, password string) error {
	body := map[string]string{"username": username, "password": password}
	var out struct {
		Success bool `json:"success"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/admin/login", body, &out); err != nil {
		return err
	}
	if !out.Success {
		return &APIError{Status: http.StatusUnauthorized, Message: "Credenciais inválidas"}
	}
	return nil
}

type NovaPublicacao struct {
	Titulo    string `json:"titulo"`
	Conteudo  string `json:"conteudo"`
	ImagemURL string `json:"imagem_url,omitempty"`
	Tipo      string `json:"tipo,omitempty"`
}

func (c *Client) CriarPublicacao(ctx context.Context, in NovaPublicacao) (models.Publicacao, error) {
	var out models.Publicacao
	err := c.do(ctx, http.MethodPost, "/api/admin/publicacoes", in, &out)
	return out, err
}

func (c *Client) DeletarComentario(ctx context.Context, id uint) error {
	path := fmt.Sprintf("/api/admin/comentarios/%d", id)
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}
