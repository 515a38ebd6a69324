package monitoramento

import (
	"errors"
	"testing"
)

func TestParseRequisicaoRejeicoes(t *testing.T) {
	casos := []struct {
		nome string
		body []byte
		want error
	}{
		{"corpo ausente", nil, ErrCorpoAusente},
		{"corpo vazio", []byte("   "), ErrCorpoAusente},
		{"json inválido", []byte("{nomes"), ErrJSONInvalido},
		{"sem nomes", []byte(`{"estados":["SP"]}`), ErrNomesAusentes},
		{"nomes com tipo errado", []byte(`{"nomes":"João"}`), ErrNomesAusentes},
		{"nomes vazios", []byte(`{"nomes":["", "   "]}`), ErrNenhumNomeValido},
	}

	for _, caso := range casos {
		t.Run(caso.nome, func(t *testing.T) {
			_, err := ParseRequisicao(caso.body)
			if !errors.Is(err, caso.want) {
				t.Fatalf("esperava %v, veio %v", caso.want, err)
			}
		})
	}
}

func TestParseRequisicaoNormaliza(t *testing.T) {
	body := []byte(`{"nomes":["  João Silva  ", "", "Maria Souza"],"estados":["sp","rj"],"palavras_chave":["intimação"]}`)

	req, err := ParseRequisicao(body)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	if len(req.Nomes) != 2 || req.Nomes[0] != "João Silva" || req.Nomes[1] != "Maria Souza" {
		t.Fatalf("nomes normalizados incorretos: %v", req.Nomes)
	}
	if len(req.Estados) != 2 || req.Estados[0] != "SP" || req.Estados[1] != "RJ" {
		t.Fatalf("estados deveriam vir em maiúsculas: %v", req.Estados)
	}
	if len(req.PalavrasChave) != 1 {
		t.Fatalf("palavras-chave perdidas: %v", req.PalavrasChave)
	}
}

func TestParseRequisicaoEstadosComTipoErradoDegradam(t *testing.T) {
	body := []byte(`{"nomes":["João"],"estados":"SP","palavras_chave":123}`)

	req, err := ParseRequisicao(body)
	if err != nil {
		t.Fatalf("estados mal tipados não deveriam rejeitar a requisição: %v", err)
	}
	if len(req.Estados) != 0 {
		t.Fatalf("estados deveriam degradar para vazio, veio %v", req.Estados)
	}
	if len(req.PalavrasChave) != 0 {
		t.Fatalf("palavras-chave deveriam degradar para vazio, veio %v", req.PalavrasChave)
	}
}
