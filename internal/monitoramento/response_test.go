package monitoramento

import (
	"reflect"
	"strings"
	"testing"
)

func TestComporSucessoMensagens(t *testing.T) {
	demo := ComporSucesso(3, 2, 1.5, nil, true, []string{"João"}, []string{"SP"}, nil)
	if demo.StatusIntegracao != IntegracaoDemonstracao {
		t.Fatalf("status em demo deveria ser %s, veio %s", IntegracaoDemonstracao, demo.StatusIntegracao)
	}
	if !strings.Contains(demo.Message, "demonstração") {
		t.Fatalf("mensagem de demo incorreta: %q", demo.Message)
	}

	comResultados := ComporSucesso(7, 54, 2.0, nil, false, []string{"João"}, nil, nil)
	if comResultados.StatusIntegracao != IntegracaoOK {
		t.Fatalf("status com resultados deveria ser %s, veio %s", IntegracaoOK, comResultados.StatusIntegracao)
	}
	if comResultados.Message != "7 publicações encontradas nos diários oficiais." {
		t.Fatalf("mensagem com resultados incorreta: %q", comResultados.Message)
	}

	vazio := ComporSucesso(0, 54, 0.4, nil, false, []string{"João"}, nil, nil)
	if vazio.StatusIntegracao != IntegracaoSemResultado {
		t.Fatalf("status sem resultados deveria ser %s, veio %s", IntegracaoSemResultado, vazio.StatusIntegracao)
	}
}

func TestComporSucessoEstadosPadrao(t *testing.T) {
	resposta := ComporSucesso(0, 54, 0.1, nil, false, []string{"João"}, nil, nil)

	want := []string{"SP", "RJ", "MG", "CE", "PR"}
	if !reflect.DeepEqual(resposta.DetalhesBusca.EstadosConsultados, want) {
		t.Fatalf("estados_consultados padrão incorreto: %v", resposta.DetalhesBusca.EstadosConsultados)
	}

	comEstados := ComporSucesso(0, 2, 0.1, nil, false, []string{"João"}, []string{"BA"}, nil)
	if !reflect.DeepEqual(comEstados.DetalhesBusca.EstadosConsultados, []string{"BA"}) {
		t.Fatalf("estados informados deveriam ser ecoados: %v", comEstados.DetalhesBusca.EstadosConsultados)
	}
}

func TestComporErro(t *testing.T) {
	resposta := ComporErro("não foi possível registrar a execução")

	if resposta.Success {
		t.Fatal("resposta de erro não pode ter success true")
	}
	if resposta.Error != "Internal server error" {
		t.Fatalf("campo error fixo incorreto: %q", resposta.Error)
	}
	if resposta.StatusIntegracao != IntegracaoErro {
		t.Fatalf("status deveria ser %s, veio %s", IntegracaoErro, resposta.StatusIntegracao)
	}
}

func TestJuntarErros(t *testing.T) {
	if JuntarErros(nil) != nil {
		t.Fatal("sem erros deveria devolver nil")
	}

	joined := JuntarErros([]string{"a", "b"})
	if joined == nil || *joined != "a; b" {
		t.Fatalf("junção incorreta: %v", joined)
	}
}
