package diario

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestBuscadorDemoGeraUmaPublicacaoPorNome(t *testing.T) {
	fixo := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	b := BuscadorDemo{Agora: func() time.Time { return fixo }}

	res, err := b.Buscar(context.Background(), "Diário Oficial SP", []string{"João", "Maria"}, nil)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if !res.Demo {
		t.Fatal("resultado demo deveria marcar Demo")
	}
	if len(res.Publicacoes) != 2 {
		t.Fatalf("esperava 2 publicações, veio %d", len(res.Publicacoes))
	}
	if res.Publicacoes[0].Data != fixo {
		t.Fatalf("data deveria vir do relógio injetado: %v", res.Publicacoes[0].Data)
	}
}

func TestBuscadorDemoOutrasFontesVazias(t *testing.T) {
	b := BuscadorDemo{}

	res, err := b.Buscar(context.Background(), "Diário da Justiça RJ", []string{"João"}, nil)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if len(res.Publicacoes) != 0 {
		t.Fatalf("fonte fora do padrão demo não deveria produzir resultados: %v", res.Publicacoes)
	}
}

func TestClienteHTTPBuscar(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("fonte") != "Diário Oficial SP" {
			t.Errorf("fonte ausente na query: %s", r.URL.RawQuery)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"publicacoes": []Publicacao{{NomeAdvogado: "João", Titulo: "Intimação"}},
		})
	}))
	defer srv.Close()

	c := NewClienteHTTP(srv.URL, time.Second)
	res, err := c.Buscar(context.Background(), "Diário Oficial SP", []string{"João"}, []string{"intimação"})
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if len(res.Publicacoes) != 1 || res.Publicacoes[0].NomeAdvogado != "João" {
		t.Fatalf("resposta decodificada incorreta: %+v", res.Publicacoes)
	}
}

func TestClienteHTTPErroDaFonte(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "fora do ar", http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewClienteHTTP(srv.URL, time.Second)
	if _, err := c.Buscar(context.Background(), "Diário Oficial SP", []string{"João"}, nil); err == nil {
		t.Fatal("status não-200 deveria virar erro")
	}
}
