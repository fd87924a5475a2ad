package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pssg2024/portal-nahora/internal/database"
	"github.com/pssg2024/portal-nahora/internal/models"
)

func TestConfiguracoesFlattenedToMap(t *testing.T) {
	app := newTestApp(t)

	// Replace seeded values with a known set.
	require.NoError(t, database.DB.Where("1 = 1").Delete(&models.Configuracao{}).Error)
	require.NoError(t, database.DB.Create(&models.Configuracao{Chave: "telefone_contato", Valor: "555-1234"}).Error)
	require.NoError(t, database.DB.Create(&models.Configuracao{Chave: "titulo_site", Valor: "Portal"}).Error)

	resp := doJSON(t, app, http.MethodGet, "/api/configuracoes", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decode[map[string]string](t, resp)
	require.Equal(t, map[string]string{
		"telefone_contato": "555-1234",
		"titulo_site":      "Portal",
	}, body)
}

func TestConfiguracoesSeededKeys(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/api/configuracoes", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decode[map[string]string](t, resp)
	for _, chave := range []string{"telefone_contato", "email_contato", "titulo_site"} {
		require.Contains(t, body, chave)
	}
}
