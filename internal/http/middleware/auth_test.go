package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jusgestao/api/internal/auth"
)

func TestAuthInjetaSubjectNoContexto(t *testing.T) {
	manager := auth.NewJWTManager("segredo-de-teste-com-32-caracteres!", time.Minute)
	token, _, err := manager.GenerateAccessToken("11111111-1111-1111-1111-111111111111", "João")
	if err != nil {
		t.Fatalf("erro ao gerar token: %v", err)
	}

	var subject string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		subject = GetSubject(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	Auth(manager)(next).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("esperava 200, veio %d", rec.Code)
	}
	if subject != "11111111-1111-1111-1111-111111111111" {
		t.Fatalf("subject incorreto no contexto: %q", subject)
	}
}

func TestAuthRejeitaSemToken(t *testing.T) {
	manager := auth.NewJWTManager("segredo-de-teste-com-32-caracteres!", time.Minute)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler não deveria ser chamado sem token")
	})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	rec := httptest.NewRecorder()

	Auth(manager)(next).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("esperava 401, veio %d", rec.Code)
	}
}

func TestAuthRejeitaTokenInvalido(t *testing.T) {
	manager := auth.NewJWTManager("segredo-de-teste-com-32-caracteres!", time.Minute)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler não deveria ser chamado com token inválido")
	})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer abc.def.ghi")
	rec := httptest.NewRecorder()

	Auth(manager)(next).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("esperava 401, veio %d", rec.Code)
	}
}
