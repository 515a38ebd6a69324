package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestCORSRefleteOrigemPermitida(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := CORS([]string{"https://app.jusgestao.com.br"})(next)

	req := httptest.NewRequest(http.MethodGet, "/clientes", nil)
	req.Header.Set("Origin", "https://app.jusgestao.com.br")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://app.jusgestao.com.br" {
		t.Fatalf("origem permitida deveria ser refletida: %q", got)
	}
	if methods := rec.Header().Get("Access-Control-Allow-Methods"); !strings.Contains(methods, "PATCH") {
		t.Fatalf("PATCH deveria constar nos métodos permitidos: %q", methods)
	}
}

func TestCORSEncerraPreflightForaDoPassthrough(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("preflight fora do passthrough não deveria chegar ao roteador")
	})
	handler := CORS([]string{"https://app.jusgestao.com.br"}, "/monitoramento")(next)

	req := httptest.NewRequest(http.MethodOptions, "/clientes", nil)
	req.Header.Set("Origin", "https://outra.example")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("esperava 204, veio %d", rec.Code)
	}
}

func TestCORSPassthroughDeixaRotaLegadaResponder(t *testing.T) {
	chamado := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		chamado = true
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.WriteHeader(http.StatusOK)
	})
	handler := CORS([]string{"https://app.jusgestao.com.br"}, "/monitoramento", "/publicacoes")(next)

	req := httptest.NewRequest(http.MethodOptions, "/monitoramento/executar", nil)
	req.Header.Set("Origin", "https://outra.example")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if !chamado {
		t.Fatal("rota legada deveria responder o próprio preflight")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("esperava 200 do handler da rota, veio %d", rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("cabeçalho da rota legada deveria ser preservado: %q", got)
	}
}
