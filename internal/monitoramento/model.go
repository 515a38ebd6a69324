package monitoramento

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	// StatusIniciado marca um log aberto no começo da execução.
	StatusIniciado = "iniciado"
	// StatusConcluido marca o fechamento normal da execução.
	StatusConcluido = "concluido"
	// StatusErro marca o fechamento compensatório após falha.
	StatusErro = "erro"
	// StatusLimitado marca execuções recusadas pelo limite por janela.
	// Aparece apenas em métricas; nenhum log é aberto nesse caso.
	StatusLimitado = "limitado"
)

// Configuracao guarda os parâmetros de monitoramento de um usuário.
type Configuracao struct {
	UsuarioID            uuid.UUID `json:"usuario_id"`
	MonitoramentoAtivo   bool      `json:"monitoramento_ativo"`
	NomesMonitoramento   []string  `json:"nomes_monitoramento"`
	EstadosMonitoramento []string  `json:"estados_monitoramento"`
	PalavrasChave        []string  `json:"palavras_chave"`
	AtualizadoEm         time.Time `json:"atualizado_em"`
}

// Ativa indica se a configuração produz filtragem efetiva.
// Uma lista de nomes vazia ou só com brancos desativa o monitoramento
// independentemente do valor literal de MonitoramentoAtivo.
func (c Configuracao) Ativa() bool {
	for _, nome := range c.NomesMonitoramento {
		if strings.TrimSpace(nome) != "" {
			return c.MonitoramentoAtivo
		}
	}
	return false
}

// LogExecucao é o registro de auditoria de uma execução de monitoramento.
type LogExecucao struct {
	ID                     uuid.UUID `json:"id"`
	UsuarioID              uuid.UUID `json:"usuario_id"`
	Status                 string    `json:"status"`
	DataExecucao           time.Time `json:"data_execucao"`
	PublicacoesEncontradas int       `json:"publicacoes_encontradas"`
	TempoExecucaoSegundos  float64   `json:"tempo_execucao_segundos"`
	FontesConsultadas      []string  `json:"fontes_consultadas"`
	Erros                  *string   `json:"erros"`
}

// Publicacao é um registro de diário oficial pertencente a um usuário.
type Publicacao struct {
	ID                 uuid.UUID `json:"id"`
	UsuarioID          uuid.UUID `json:"usuario_id"`
	NomeAdvogado       string    `json:"nome_advogado"`
	TituloPublicacao   string    `json:"titulo_publicacao"`
	ConteudoPublicacao string    `json:"conteudo_publicacao"`
	Fonte              *string   `json:"fonte,omitempty"`
	DataPublicacao     time.Time `json:"data_publicacao"`
	Lida               bool      `json:"lida"`
	Importante         bool      `json:"importante"`
	SegredoJustica     bool      `json:"segredo_justica"`
	CriadoEm           time.Time `json:"criado_em"`
}

// Requisicao é o pedido de execução já validado e sanitizado.
type Requisicao struct {
	Nomes         []string
	Estados       []string
	PalavrasChave []string
}
