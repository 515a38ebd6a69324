package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	MonitoramentoExecucoes = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "monitoramento_execucoes_total",
		Help: "Execuções de monitoramento por desfecho",
	}, []string{"status"})

	MonitoramentoPublicacoes = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "monitoramento_publicacoes_encontradas_total",
		Help: "Publicações encontradas em execuções de monitoramento",
	})

	MonitoramentoDuracao = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "monitoramento_duracao_segundos",
		Help:    "Duração das execuções de monitoramento",
		Buckets: prometheus.DefBuckets,
	})
)

var registerOnce sync.Once

// MustRegister registra as métricas no registrador padrão.
// Chamadas repetidas não registram de novo.
func MustRegister() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			MonitoramentoExecucoes,
			MonitoramentoPublicacoes,
			MonitoramentoDuracao,
		)
	})
}

// Handler expõe o endpoint /metrics.
func Handler() http.Handler {
	return promhttp.Handler()
}
