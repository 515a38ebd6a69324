package monitoramento

import (
	"fmt"
	"strings"
)

// estadosPadraoResposta é o fallback histórico de estados_consultados
// quando o chamador não informa estados. Diverge da lista completa usada
// na expansão de fontes; clientes existentes dependem deste valor.
var estadosPadraoResposta = []string{"SP", "RJ", "MG", "CE", "PR"}

const (
	IntegracaoOK           = "OK"
	IntegracaoDemonstracao = "DEMONSTRACAO"
	IntegracaoSemResultado = "SEM_RESULTADOS"
	IntegracaoErro         = "ERRO"
)

// DetalhesBusca ecoa os parâmetros efetivos da execução.
type DetalhesBusca struct {
	NomesBuscados      []string `json:"nomes_buscados"`
	EstadosConsultados []string `json:"estados_consultados"`
	PalavrasChave      []string `json:"palavras_chave"`
}

// RespostaSucesso é o envelope plano devolvido pelo endpoint de execução.
type RespostaSucesso struct {
	Success                bool          `json:"success"`
	PublicacoesEncontradas int           `json:"publicacoes_encontradas"`
	FontesConsultadas      int           `json:"fontes_consultadas"`
	TempoExecucao          float64       `json:"tempo_execucao"`
	Erros                  *string       `json:"erros"`
	Message                string        `json:"message"`
	StatusIntegracao       string        `json:"status_integracao"`
	DetalhesBusca          DetalhesBusca `json:"detalhes_busca"`
}

// RespostaErro é o envelope de falha do endpoint de execução.
type RespostaErro struct {
	Success          bool   `json:"success"`
	Error            string `json:"error"`
	Message          string `json:"message"`
	StatusIntegracao string `json:"status_integracao"`
}

// ComporSucesso monta o envelope de sucesso com mensagem derivada.
// As três mensagens são mutuamente exclusivas: demo, resultados, vazio.
func ComporSucesso(encontradas, fontes int, segundos float64, erros []string, demo bool, nomes, estados, palavras []string) RespostaSucesso {
	var message, status string
	switch {
	case demo:
		message = "Busca concluída com dados de demonstração. Configure a integração para resultados reais."
		status = IntegracaoDemonstracao
	case encontradas > 0:
		message = fmt.Sprintf("%d publicações encontradas nos diários oficiais.", encontradas)
		status = IntegracaoOK
	default:
		message = "Nenhuma publicação encontrada para os nomes monitorados."
		status = IntegracaoSemResultado
	}

	estadosConsultados := estados
	if len(estadosConsultados) == 0 {
		estadosConsultados = estadosPadraoResposta
	}
	if palavras == nil {
		palavras = []string{}
	}

	return RespostaSucesso{
		Success:                true,
		PublicacoesEncontradas: encontradas,
		FontesConsultadas:      fontes,
		TempoExecucao:          segundos,
		Erros:                  JuntarErros(erros),
		Message:                message,
		StatusIntegracao:       status,
		DetalhesBusca: DetalhesBusca{
			NomesBuscados:      nomes,
			EstadosConsultados: estadosConsultados,
			PalavrasChave:      palavras,
		},
	}
}

// ComporErro monta o envelope genérico de falha (HTTP 500 por padrão).
func ComporErro(message string) RespostaErro {
	return RespostaErro{
		Success:          false,
		Error:            "Internal server error",
		Message:          message,
		StatusIntegracao: IntegracaoErro,
	}
}

// JuntarErros junta mensagens com ponto e vírgula; nil quando não há.
func JuntarErros(erros []string) *string {
	if len(erros) == 0 {
		return nil
	}
	joined := strings.Join(erros, "; ")
	return &joined
}
