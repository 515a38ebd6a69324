package monitoramento

import (
	"reflect"
	"testing"
)

func TestSanitizarTextoRemoveCaracteresInseguros(t *testing.T) {
	casos := []struct {
		entrada string
		want    string
	}{
		{`João <script>alert("x")</script>`, "João scriptalert(x)/script"},
		{"  Maria & Cia  ", "Maria  Cia"},
		{"sem alteração", "sem alteração"},
		{`'"<>&`, ""},
	}

	for _, caso := range casos {
		if got := SanitizarTexto(caso.entrada); got != caso.want {
			t.Errorf("SanitizarTexto(%q) = %q, esperava %q", caso.entrada, got, caso.want)
		}
	}
}

func TestSanitizarTextoIdempotente(t *testing.T) {
	entradas := []string{
		`João <b>Silva</b>`,
		"  espaços  ",
		`aspas "duplas" e 'simples'`,
	}

	for _, entrada := range entradas {
		uma := SanitizarTexto(entrada)
		duas := SanitizarTexto(uma)
		if uma != duas {
			t.Errorf("sanitização não idempotente para %q: %q != %q", entrada, uma, duas)
		}
	}
}

func TestSanitizarListaDescartaVazios(t *testing.T) {
	got := SanitizarLista([]string{`<>`, "  ", "João"})
	if !reflect.DeepEqual(got, []string{"João"}) {
		t.Fatalf("lista sanitizada incorreta: %v", got)
	}

	if SanitizarLista([]string{`<>`, `""`}) != nil {
		t.Fatal("lista sem itens válidos deveria virar nil")
	}
}
