package client

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/pssg2024/portal-nahora/internal/models"
)

var (
	ErrNaoAutorizado   = errors.New("ação restrita ao administrador")
	ErrComentarioVazio = errors.New("comentário vazio")
)

// PainelComentarios is the per-publication comment panel. It starts in
// the loading state and is replaced by whichever fetch for that
// publication resolves last.
type PainelComentarios struct {
	Carregando  bool
	Erro        string
	Comentarios []models.Comentario
}

// View is the render snapshot: the last-fetched collections plus the
// inline error markers used in place of sections that failed to load.
type View struct {
	Configuracoes    map[string]string
	ConfiguracoesErr string
	Publicacoes      []models.PublicacaoComAutor
	PublicacoesErr   string
	Comentarios      map[uint]PainelComentarios
}

// Controller mirrors the browser controller: it holds an isAdmin flag
// and the last-fetched publication list as a render cache, and rebuilds
// the view from the server after every mutating action.
type Controller struct {
	api *Client

	mu      sync.Mutex
	isAdmin bool
	view    View
	panels  sync.WaitGroup
}

func NewController(api *Client) *Controller {
	return &Controller{
		api: api,
		view: View{
			Comentarios: map[uint]PainelComentarios{},
		},
	}
}

func (ct *Controller) IsAdmin() bool {
	ct.mu.Lock()
	defer ct.mu.Unlock()
	return ct.isAdmin
}

// View returns a copy of the current render snapshot.
func (ct *Controller) View() View {
	ct.mu.Lock()
	defer ct.mu.Unlock()
	v := ct.view
	v.Configuracoes = copyMap(ct.view.Configuracoes)
	v.Publicacoes = append([]models.PublicacaoComAutor(nil), ct.view.Publicacoes...)
	v.Comentarios = make(map[uint]PainelComentarios, len(ct.view.Comentarios))
	for id, p := range ct.view.Comentarios {
		p.Comentarios = append([]models.Comentario(nil), p.Comentarios...)
		v.Comentarios[id] = p
	}
	return v
}

// Load performs the initial page load: configuration, then the
// publication list, then one independent comment fetch per publication.
// Comment panels fill in asynchronously; Wait blocks until they settle.
func (ct *Controller) Load(ctx context.Context) {
	ct.loadConfiguracoes(ctx)
	ct.RecarregarPublicacoes(ctx)
}

// Wait blocks until all in-flight comment panel fetches have resolved.
func (ct *Controller) Wait() {
	ct.panels.Wait()
}

func (ct *Controller) loadConfiguracoes(ctx context.Context) {
	cfg, err := ct.api.Configuracoes(ctx)
	ct.mu.Lock()
	defer ct.mu.Unlock()
	if err != nil {
		ct.view.ConfiguracoesErr = "Erro ao carregar configurações."
		return
	}
	ct.view.Configuracoes = cfg
	ct.view.ConfiguracoesErr = ""
}

// RecarregarPublicacoes discards and rebuilds the publication list from
// the server, resetting every comment panel to the loading state.
func (ct *Controller) RecarregarPublicacoes(ctx context.Context) {
	pubs, err := ct.api.Publicacoes(ctx)
	ct.mu.Lock()
	if err != nil {
		ct.view.PublicacoesErr = "Erro ao carregar publicações. Tente recarregar a página."
		ct.mu.Unlock()
		return
	}
	ct.view.PublicacoesErr = ""
	ct.view.Publicacoes = pubs
	ct.view.Comentarios = make(map[uint]PainelComentarios, len(pubs))
	for _, p := range pubs {
		ct.view.Comentarios[p.ID] = PainelComentarios{Carregando: true}
	}
	ct.mu.Unlock()

	for _, p := range pubs {
		id := p.ID
		ct.panels.Add(1)
		go func() {
			defer ct.panels.Done()
			ct.RecarregarComentarios(ctx, id)
		}()
	}
}

// RecarregarComentarios re-fetches one publication's comments and
// overwrites its panel. There is no cancellation of superseded
// fetches: the last response to resolve wins, not the last issued.
func (ct *Controller) RecarregarComentarios(ctx context.Context, publicacaoID uint) {
	coms, err := ct.api.Comentarios(ctx, publicacaoID)
	ct.mu.Lock()
	defer ct.mu.Unlock()
	if err != nil {
		ct.view.Comentarios[publicacaoID] = PainelComentarios{Erro: "Erro ao carregar comentários."}
		return
	}
	ct.view.Comentarios[publicacaoID] = PainelComentarios{Comentarios: coms}
}

// AdicionarComentario submits a visitor comment and re-fetches that
// publication's comment list.
func (ct *Controller) AdicionarComentario(ctx context.Context, publicacaoID uint, autorNome, texto string) error {
	texto = strings.TrimSpace(texto)
	if texto == "" {
		return ErrComentarioVazio
	}
	in := NovoComentario{PublicacaoID: publicacaoID, AutorNome: autorNome, Texto: texto}
	if _, err := ct.api.CriarComentario(ctx, in); err != nil {
		return err
	}
	ct.RecarregarComentarios(ctx, publicacaoID)
	return nil
}

// Login flips the admin flag on success and reloads the publication
// list so admin-only affordances can render.
func (ct *Controller) Login(ctx context.Context, username, password string) error {
	if err := ct.api.Login(ctx, username, password); err != nil {
		return err
	}
	ct.mu.Lock()
	ct.isAdmin = true
	ct.mu.Unlock()
	ct.RecarregarPublicacoes(ctx)
	return nil
}

// Logout is purely local: the server is never notified.
func (ct *Controller) Logout(ctx context.Context) {
	ct.mu.Lock()
	ct.isAdmin = false
	ct.mu.Unlock()
	ct.RecarregarPublicacoes(ctx)
}

// CriarPublicacao publishes new content. The isAdmin guard here is the
// client-side gate only; the server accepts the request regardless.
func (ct *Controller) CriarPublicacao(ctx context.Context, in NovaPublicacao) error {
	if !ct.IsAdmin() {
		return ErrNaoAutorizado
	}
	if _, err := ct.api.CriarPublicacao(ctx, in); err != nil {
		return err
	}
	ct.RecarregarPublicacoes(ctx)
	return nil
}

// DeletarComentario removes a comment and reloads every publication,
// matching the full-page refresh the browser controller performs.
func (ct *Controller) DeletarComentario(ctx context.Context, id uint) error {
	if !ct.IsAdmin() {
		return ErrNaoAutorizado
	}
	if err := ct.api.DeletarComentario(ctx, id); err != nil {
		return err
	}
	ct.RecarregarPublicacoes(ctx)
	return nil
}

func copyMap(m map[string]string) map[string]string {
	if m == nil {
		return nil
	}
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
