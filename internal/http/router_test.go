package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/jusgestao/api/internal/auth"
	"github.com/jusgestao/api/internal/config"
)

func novoRouterDeTeste(t *testing.T) http.Handler {
	t.Helper()

	cfg := &config.Config{
		AllowOrigins:    []string{"https://app.jusgestao.com.br"},
		JWTAccessTTL:    time.Minute,
		JWTRefreshTTL:   time.Hour,
		RateLimitPublic: config.RateLimitConfig{RequestsPerSecond: 100, Burst: 100},
		RateLimitAuth:   config.RateLimitConfig{RequestsPerSecond: 100, Burst: 100},
		Monitoramento: config.MonitoramentoConfig{
			MaxExecucoes:    5,
			Janela:          5 * time.Minute,
			TimeoutExecucao: time.Minute,
		},
		Diario: config.DiarioConfig{Timeout: time.Second},
	}

	manager := auth.NewJWTManager("segredo-de-teste-com-32-caracteres!", time.Minute)
	router, err := NewRouter(cfg, nil, nil, manager)
	if err != nil {
		t.Fatalf("erro ao montar roteador: %v", err)
	}
	return router
}

func TestPreflightDoMonitoramentoRespondeSemToken(t *testing.T) {
	router := novoRouterDeTeste(t)

	req := httptest.NewRequest(http.MethodOptions, "/monitoramento/executar", nil)
	req.Header.Set("Origin", "https://cliente-legado.example")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("esperava 200 no preflight, veio %d", rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("Access-Control-Allow-Origin deveria ser *, veio %q", got)
	}
	headers := rec.Header().Get("Access-Control-Allow-Headers")
	for _, nome := range []string{"authorization", "x-client-info", "apikey", "content-type"} {
		if !strings.Contains(headers, nome) {
			t.Fatalf("cabeçalho %q ausente em %q", nome, headers)
		}
	}
}

func TestPreflightDePublicacoesRespondeSemToken(t *testing.T) {
	router := novoRouterDeTeste(t)

	alvo := "/publicacoes/00000000-0000-0000-0000-000000000001/lida"
	req := httptest.NewRequest(http.MethodOptions, alvo, nil)
	req.Header.Set("Origin", "https://cliente-legado.example")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("esperava 200 no preflight, veio %d", rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("Access-Control-Allow-Origin deveria ser *, veio %q", got)
	}
	if methods := rec.Header().Get("Access-Control-Allow-Methods"); !strings.Contains(methods, "PATCH") {
		t.Fatalf("PATCH deveria constar no preflight: %q", methods)
	}
}

func TestExecucaoDoMonitoramentoExigeToken(t *testing.T) {
	router := novoRouterDeTeste(t)

	req := httptest.NewRequest(http.MethodPost, "/monitoramento/executar", strings.NewReader("{}"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("esperava 401 sem token, veio %d", rec.Code)
	}
}

func TestPreflightDeRotaRestritaNaoVazaOrigemEstranha(t *testing.T) {
	router := novoRouterDeTeste(t)

	req := httptest.NewRequest(http.MethodOptions, "/clientes", nil)
	req.Header.Set("Origin", "https://outra.example")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("esperava 204, veio %d", rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Fatalf("origem não permitida não deveria receber cabeçalho: %q", got)
	}
}
