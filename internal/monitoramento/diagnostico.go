package monitoramento

// Diagnostico descreve limitações conhecidas da integração.
// Conteúdo estático, faz parte do contrato da API; não é análise dinâmica.
type Diagnostico struct {
	Problemas     []string `json:"problemas"`
	Solucoes      []string `json:"solucoes"`
	Recomendacoes []string `json:"recomendacoes"`
}

// DiagnosticoAtual devolve o relatório fixo de problemas e recomendações.
func DiagnosticoAtual() Diagnostico {
	return Diagnostico{
		Problemas: []string{
			"A maioria dos tribunais não oferece API pública de consulta aos diários.",
			"Fontes consultadas via raspagem mudam de layout sem aviso.",
			"Sem integração configurada, a busca opera em modo demonstração.",
		},
		Solucoes: []string{
			"Configurar DIARIO_API_BASE apontando para um agregador credenciado.",
			"Cadastrar os nomes exatamente como publicados nos diários (sem abreviações).",
			"Restringir os estados monitorados aos tribunais onde há processos ativos.",
		},
		Recomendacoes: []string{
			"Manter o monitoramento automático ativo e revisar as publicações diariamente.",
			"Marcar publicações importantes para acompanhamento de prazos.",
			"Conferir o histórico de execuções quando uma publicação esperada não aparecer.",
		},
	}
}
