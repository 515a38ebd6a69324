package monitoramento

import (
	"context"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jusgestao/api/internal/diario"
	"github.com/jusgestao/api/internal/metrics"
)

// Repo abstrai a persistência usada pelo pipeline.
type Repo interface {
	GetConfiguracao(ctx context.Context, usuarioID uuid.UUID) (Configuracao, error)
	UpsertConfiguracao(ctx context.Context, cfg Configuracao) (Configuracao, error)
	AbrirLog(ctx context.Context, usuarioID uuid.UUID) (uuid.UUID, error)
	FecharLog(ctx context.Context, id uuid.UUID, status string, encontradas int, segundos float64, fontes []string, erros *string) error
	ListarLogs(ctx context.Context, usuarioID uuid.UUID, limit int) ([]LogExecucao, error)
	InserirPublicacoes(ctx context.Context, usuarioID uuid.UUID, pubs []NovaPublicacao) error
	ListarPublicacoes(ctx context.Context, usuarioID uuid.UUID, filtro FiltroPublicacoes) ([]Publicacao, error)
	MarcarLida(ctx context.Context, usuarioID, id uuid.UUID, lida bool) error
	MarcarImportante(ctx context.Context, usuarioID, id uuid.UUID, importante bool) error
}

// RespostaValidacao é o corpo dos erros corrigíveis pelo cliente.
type RespostaValidacao struct {
	Error string `json:"error"`
}

// Service orquestra o pipeline de execução do monitoramento:
// validação, sanitização, limite, auditoria, busca, persistência
// e composição da resposta.
type Service struct {
	repo     Repo
	limiter  Limiter
	buscador diario.Buscador
	logger   zerolog.Logger
}

// NewService cria o serviço de monitoramento.
func NewService(repo Repo, limiter Limiter, buscador diario.Buscador, logger zerolog.Logger) *Service {
	return &Service{repo: repo, limiter: limiter, buscador: buscador, logger: logger}
}

// Executar processa uma execução manual e devolve status HTTP e corpo.
// A identidade vem do token já validado; o corpo nunca define o dono.
func (s *Service) Executar(ctx context.Context, usuarioID uuid.UUID, body []byte) (int, any) {
	if usuarioID == uuid.Nil {
		return http.StatusBadRequest, RespostaValidacao{Error: ErrUsuarioAusente.Error()}
	}

	req, err := ParseRequisicao(body)
	if err != nil {
		return http.StatusBadRequest, RespostaValidacao{Error: err.Error()}
	}

	req = Sanitizar(req)
	if len(req.Nomes) == 0 {
		return http.StatusBadRequest, RespostaValidacao{Error: ErrNenhumNomeValido.Error()}
	}

	permitido, err := s.limiter.Allow(ctx, usuarioID)
	if err != nil {
		// limite é consultivo: indisponibilidade do contador libera a execução
		s.logger.Warn().Err(err).Str("usuario", usuarioID.String()).Msg("monitoramento: limitador indisponível")
		permitido = true
	}
	if !permitido {
		metrics.MonitoramentoExecucoes.WithLabelValues(StatusLimitado).Inc()
		return http.StatusTooManyRequests, RespostaValidacao{
			Error: "Limite de execuções atingido. Aguarde alguns minutos antes de tentar novamente.",
		}
	}

	logID, err := s.repo.AbrirLog(ctx, usuarioID)
	if err != nil {
		s.logger.Error().Err(err).Msg("monitoramento: falha ao abrir log de execução")
		metrics.MonitoramentoExecucoes.WithLabelValues(StatusErro).Inc()
		return http.StatusInternalServerError, ComporErro("não foi possível registrar a execução")
	}

	inicio := time.Now()
	fontes := Fontes(req.Estados)

	var (
		erros  []string
		drafts []NovaPublicacao
		demo   bool
	)

	for _, fonte := range fontes {
		res, err := s.buscador.Buscar(ctx, fonte, req.Nomes, req.PalavrasChave)
		if err != nil {
			if ctx.Err() != nil {
				erros = append(erros, "Timeout na execução")
				break
			}
			erros = append(erros, err.Error())
			continue
		}
		demo = demo || res.Demo
		for _, pub := range res.Publicacoes {
			drafts = append(drafts, NovaPublicacao{
				NomeAdvogado:       pub.NomeAdvogado,
				TituloPublicacao:   pub.Titulo,
				ConteudoPublicacao: pub.Conteudo,
				Fonte:              pub.Fonte,
				DataPublicacao:     pub.Data,
			})
		}
	}

	if err := s.repo.InserirPublicacoes(ctx, usuarioID, drafts); err != nil {
		s.logger.Error().Err(err).Msg("monitoramento: falha ao gravar publicações")
		erros = append(erros, "falha ao gravar publicações")
		s.fecharComErro(ctx, logID, inicio, fontes, erros)
		metrics.MonitoramentoExecucoes.WithLabelValues(StatusErro).Inc()
		return http.StatusInternalServerError, ComporErro("não foi possível gravar as publicações encontradas")
	}

	segundos := round2(time.Since(inicio).Seconds())
	if err := s.repo.FecharLog(ctx, logID, StatusConcluido, len(drafts), segundos, fontes, JuntarErros(erros)); err != nil {
		// desfecho já aconteceu; a resposta segue mesmo sem o fechamento
		s.logger.Error().Err(err).Str("log", logID.String()).Msg("monitoramento: falha ao fechar log")
	}

	metrics.MonitoramentoExecucoes.WithLabelValues(StatusConcluido).Inc()
	metrics.MonitoramentoPublicacoes.Add(float64(len(drafts)))
	metrics.MonitoramentoDuracao.Observe(segundos)

	return http.StatusOK, ComporSucesso(len(drafts), len(fontes), segundos, erros, demo, req.Nomes, req.Estados, req.PalavrasChave)
}

func (s *Service) fecharComErro(ctx context.Context, logID uuid.UUID, inicio time.Time, fontes, erros []string) {
	segundos := round2(time.Since(inicio).Seconds())
	if err := s.repo.FecharLog(ctx, logID, StatusErro, 0, segundos, fontes, JuntarErros(erros)); err != nil {
		s.logger.Error().Err(err).Str("log", logID.String()).Msg("monitoramento: falha ao fechar log com erro")
	}
}

// Configuracao devolve a configuração de monitoramento do usuário.
func (s *Service) Configuracao(ctx context.Context, usuarioID uuid.UUID) (Configuracao, error) {
	return s.repo.GetConfiguracao(ctx, usuarioID)
}

// SalvarConfiguracao sanitiza e grava a configuração do usuário.
func (s *Service) SalvarConfiguracao(ctx context.Context, cfg Configuracao) (Configuracao, error) {
	cfg.NomesMonitoramento = SanitizarLista(cfg.NomesMonitoramento)

	estados := SanitizarLista(cfg.EstadosMonitoramento)
	for i, uf := range estados {
		estados[i] = strings.ToUpper(uf)
	}
	cfg.EstadosMonitoramento = estados
	cfg.PalavrasChave = SanitizarLista(cfg.PalavrasChave)

	return s.repo.UpsertConfiguracao(ctx, cfg)
}

// Logs devolve o histórico de execuções do usuário.
func (s *Service) Logs(ctx context.Context, usuarioID uuid.UUID, limit int) ([]LogExecucao, error) {
	return s.repo.ListarLogs(ctx, usuarioID, limit)
}

// Publicacoes lista publicações visíveis segundo a configuração atual.
// O filtro por nome acontece na exibição: a configuração ativa restringe
// aos nomes monitorados, a inativa lista tudo que pertence ao usuário.
func (s *Service) Publicacoes(ctx context.Context, usuarioID uuid.UUID, filtro FiltroPublicacoes) ([]Publicacao, error) {
	cfg, err := s.repo.GetConfiguracao(ctx, usuarioID)
	if err != nil {
		return nil, err
	}

	if cfg.Ativa() {
		filtro.Nomes = cfg.NomesMonitoramento
	}

	return s.repo.ListarPublicacoes(ctx, usuarioID, filtro)
}

// AlternarLida marca ou desmarca a leitura de uma publicação.
func (s *Service) AlternarLida(ctx context.Context, usuarioID, id uuid.UUID, lida bool) error {
	return s.repo.MarcarLida(ctx, usuarioID, id, lida)
}

// AlternarImportante marca ou desmarca a importância de uma publicação.
func (s *Service) AlternarImportante(ctx context.Context, usuarioID, id uuid.UUID, importante bool) error {
	return s.repo.MarcarImportante(ctx, usuarioID, id, importante)
}

func round2(value float64) float64 {
	return math.Round(value*100) / 100
}
