package http

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/jusgestao/api/internal/agenda"
	"github.com/jusgestao/api/internal/assinatura"
	"github.com/jusgestao/api/internal/auth"
	"github.com/jusgestao/api/internal/cliente"
	"github.com/jusgestao/api/internal/config"
	"github.com/jusgestao/api/internal/diario"
	"github.com/jusgestao/api/internal/documento"
	"github.com/jusgestao/api/internal/financeiro"
	httpmiddleware "github.com/jusgestao/api/internal/http/middleware"
	"github.com/jusgestao/api/internal/metrics"
	"github.com/jusgestao/api/internal/monitoramento"
	"github.com/jusgestao/api/internal/processo"
	"github.com/jusgestao/api/internal/repo"
	"github.com/jusgestao/api/internal/service"
	"github.com/jusgestao/api/internal/storage"
	"github.com/jusgestao/api/internal/tarefa"
)

type Handler struct {
	cfg           *config.Config
	pool          *pgxpool.Pool
	redis         *redis.Client
	authService   *service.AuthService
	monitoramento *monitoramento.Service
	clientes      *cliente.Service
	processos     *processo.Service
	tarefas       *tarefa.Service
	agenda        *agenda.Service
	financeiro    *financeiro.Service
	documentos    *documento.Service
	assinaturas   *assinatura.Service
	publicLimiter *httpmiddleware.RateLimiter
	authLimiter   *httpmiddleware.RateLimiter
	devCookies    bool
}

// NewRouter devolve roteador configurado.
func NewRouter(cfg *config.Config, pool *pgxpool.Pool, redisClient *redis.Client, jwtManager *auth.JWTManager) (http.Handler, error) {
	devCookies := false
	for _, origin := range cfg.AllowOrigins {
		if strings.Contains(origin, "localhost") {
			devCookies = true
			break
		}
	}

	authService := service.NewAuthService(repo.New(pool), jwtManager, cfg.JWTRefreshTTL)

	var buscador diario.Buscador
	if cfg.Diario.APIBase != "" {
		buscador = diario.NewClienteHTTP(cfg.Diario.APIBase, cfg.Diario.Timeout)
	} else {
		buscador = diario.BuscadorDemo{Agora: time.Now}
	}

	monitorLogger := log.With().Str("component", "monitoramento").Logger()
	monitorService := monitoramento.NewService(
		monitoramento.NewRepository(pool),
		monitoramento.NewRedisLimiter(redisClient, cfg.Monitoramento.MaxExecucoes, cfg.Monitoramento.Janela),
		buscador,
		monitorLogger,
	)

	var uploader storage.Uploader = storage.NoopUploader{}
	switch cfg.Storage.Provider {
	case "", "noop":
		// mantém uploader padrão
	case "s3", "r2", "cloudflare-r2":
		s3Cfg := storage.S3Config{
			Endpoint:     cfg.Storage.S3Endpoint,
			Region:       cfg.Storage.S3Region,
			Bucket:       cfg.Storage.S3Bucket,
			AccessKey:    cfg.Storage.S3AccessKey,
			SecretKey:    cfg.Storage.S3SecretKey,
			PublicDomain: cfg.Storage.S3PublicURL,
		}
		var err error
		uploader, err = storage.NewS3Uploader(s3Cfg)
		if err != nil {
			return nil, fmt.Errorf("storage: %w", err)
		}
	default:
		return nil, fmt.Errorf("storage: provedor %s não suportado", cfg.Storage.Provider)
	}

	var gateway assinatura.Gateway
	if cfg.Pagamento.APIBase != "" {
		gateway = assinatura.NewClienteGateway(cfg.Pagamento.APIBase, cfg.Pagamento.APIKey, 10*time.Second)
	}
	assinaturaLogger := log.With().Str("component", "assinatura").Logger()
	assinaturaService := assinatura.NewService(
		assinatura.NewRepository(pool),
		gateway,
		cfg.Pagamento.PlanoID,
		cfg.Pagamento.PortalURL,
		assinaturaLogger,
	)

	documentoLogger := log.With().Str("component", "documento").Logger()

	h := &Handler{
		cfg:           cfg,
		pool:          pool,
		redis:         redisClient,
		authService:   authService,
		monitoramento: monitorService,
		clientes:      cliente.NewService(cliente.NewRepository(pool)),
		processos:     processo.NewService(processo.NewRepository(pool)),
		tarefas:       tarefa.NewService(tarefa.NewRepository(pool)),
		agenda:        agenda.NewService(agenda.NewRepository(pool)),
		financeiro:    financeiro.NewService(financeiro.NewRepository(pool)),
		documentos:    documento.NewService(documento.NewRepository(pool), uploader, documentoLogger),
		assinaturas:   assinaturaService,
		publicLimiter: httpmiddleware.NewRateLimiter(cfg.RateLimitPublic.RequestsPerSecond, cfg.RateLimitPublic.Burst),
		authLimiter:   httpmiddleware.NewRateLimiter(cfg.RateLimitAuth.RequestsPerSecond, cfg.RateLimitAuth.Burst),
		devCookies:    devCookies,
	}

	metrics.MustRegister()

	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(httpmiddleware.Logging)
	r.Use(httpmiddleware.Recover)
	r.Use(httpmiddleware.CORS(cfg.AllowOrigins, "/monitoramento", "/publicacoes"))

	// preflight não carrega credenciais, fica fora da autenticação
	r.Options("/monitoramento/executar", h.MonitoramentoPreflight)
	r.Options("/monitoramento/logs", h.MonitoramentoPreflight)
	r.Options("/monitoramento/configuracao", h.MonitoramentoPreflight)
	r.Options("/monitoramento/diagnostico", h.MonitoramentoPreflight)
	r.Options("/publicacoes", h.MonitoramentoPreflight)
	r.Options("/publicacoes/{id}/lida", h.MonitoramentoPreflight)
	r.Options("/publicacoes/{id}/importante", h.MonitoramentoPreflight)

	r.Group(func(public chi.Router) {
		public.Use(httpmiddleware.IPRateLimit(h.publicLimiter))

		public.Get("/health", h.Health)
		public.Get("/ready", h.Ready)
		public.Method(http.MethodGet, "/metrics", metrics.Handler())

		public.Route("/auth", func(authRouter chi.Router) {
			authRouter.Post("/login", h.Login)
			authRouter.Post("/refresh", h.Refresh)
			authRouter.Post("/logout", h.Logout)
		})
	})

	r.Group(func(private chi.Router) {
		private.Use(httpmiddleware.Auth(jwtManager))
		private.Use(httpmiddleware.UserRateLimit(h.authLimiter))

		private.Get("/me", h.Me)

		// rotas do contrato legado; os preflights estão na raiz
		private.Post("/monitoramento/executar", h.MonitoramentoExecutar)
		private.Get("/monitoramento/logs", h.MonitoramentoLogs)
		private.Get("/monitoramento/configuracao", h.MonitoramentoConfiguracao)
		private.Put("/monitoramento/configuracao", h.MonitoramentoSalvarConfiguracao)
		private.Get("/monitoramento/diagnostico", h.MonitoramentoDiagnostico)

		private.Get("/publicacoes", h.ListPublicacoes)
		private.Patch("/publicacoes/{id}/lida", h.MarcarPublicacaoLida)
		private.Patch("/publicacoes/{id}/importante", h.MarcarPublicacaoImportante)

		private.Route("/clientes", func(c chi.Router) {
			c.Get("/", h.ListClientes)
			c.Post("/", h.CreateCliente)
			c.Get("/{id}", h.GetCliente)
			c.Patch("/{id}", h.UpdateCliente)
			c.Delete("/{id}", h.DeleteCliente)
		})

		private.Route("/processos", func(p chi.Router) {
			p.Get("/", h.ListProcessos)
			p.Post("/", h.CreateProcesso)
			p.Get("/{id}", h.GetProcesso)
			p.Patch("/{id}", h.UpdateProcesso)
			p.Delete("/{id}", h.DeleteProcesso)
		})

		private.Route("/tarefas", func(t chi.Router) {
			t.Get("/", h.ListTarefas)
			t.Post("/", h.CreateTarefa)
			t.Patch("/{id}", h.UpdateTarefa)
			t.Post("/{id}/concluir", h.ConcluirTarefa)
			t.Delete("/{id}", h.DeleteTarefa)
		})

		private.Route("/agenda", func(a chi.Router) {
			a.Get("/", h.ListAgenda)
			a.Post("/", h.CreateEvento)
			a.Patch("/{id}", h.UpdateEvento)
			a.Delete("/{id}", h.DeleteEvento)
		})

		private.Route("/financeiro", func(f chi.Router) {
			f.Get("/lancamentos", h.ListLancamentos)
			f.Post("/lancamentos", h.CreateLancamento)
			f.Patch("/lancamentos/{id}/pago", h.MarcarLancamentoPago)
			f.Delete("/lancamentos/{id}", h.DeleteLancamento)
			f.Get("/resumo", h.ResumoFinanceiro)
		})

		private.Route("/documentos", func(d chi.Router) {
			d.Get("/", h.ListDocumentos)
			d.Post("/", h.UploadDocumento)
			d.Delete("/{id}", h.DeleteDocumento)
		})

		private.Route("/assinatura", func(a chi.Router) {
			a.Get("/", h.StatusAssinatura)
			a.Post("/checkout", h.CheckoutAssinatura)
			a.Post("/sincronizar", h.SincronizarAssinatura)
		})
	})

	return r, nil
}
