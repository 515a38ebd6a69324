package monitoramento

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jusgestao/api/internal/diario"
)

type fechamento struct {
	status      string
	encontradas int
	fontes      []string
	erros       *string
}

type stubRepo struct {
	cfg            Configuracao
	logID          uuid.UUID
	abrirErr       error
	inserirErr     error
	fecharErr      error
	aberturas      int
	fechamentos    []fechamento
	inseridas      []NovaPublicacao
	publicacoes    []Publicacao
	ultimoFiltro   FiltroPublicacoes
}

func (s *stubRepo) GetConfiguracao(ctx context.Context, usuarioID uuid.UUID) (Configuracao, error) {
	return s.cfg, nil
}

func (s *stubRepo) UpsertConfiguracao(ctx context.Context, cfg Configuracao) (Configuracao, error) {
	s.cfg = cfg
	return cfg, nil
}

func (s *stubRepo) AbrirLog(ctx context.Context, usuarioID uuid.UUID) (uuid.UUID, error) {
	if s.abrirErr != nil {
		return uuid.Nil, s.abrirErr
	}
	s.aberturas++
	if s.logID == uuid.Nil {
		s.logID = uuid.New()
	}
	return s.logID, nil
}

func (s *stubRepo) FecharLog(ctx context.Context, id uuid.UUID, status string, encontradas int, segundos float64, fontes []string, erros *string) error {
	if s.fecharErr != nil {
		return s.fecharErr
	}
	s.fechamentos = append(s.fechamentos, fechamento{status: status, encontradas: encontradas, fontes: fontes, erros: erros})
	return nil
}

func (s *stubRepo) ListarLogs(ctx context.Context, usuarioID uuid.UUID, limit int) ([]LogExecucao, error) {
	return nil, nil
}

func (s *stubRepo) InserirPublicacoes(ctx context.Context, usuarioID uuid.UUID, pubs []NovaPublicacao) error {
	if s.inserirErr != nil {
		return s.inserirErr
	}
	s.inseridas = append(s.inseridas, pubs...)
	return nil
}

func (s *stubRepo) ListarPublicacoes(ctx context.Context, usuarioID uuid.UUID, filtro FiltroPublicacoes) ([]Publicacao, error) {
	s.ultimoFiltro = filtro
	return s.publicacoes, nil
}

func (s *stubRepo) MarcarLida(ctx context.Context, usuarioID, id uuid.UUID, lida bool) error {
	return nil
}

func (s *stubRepo) MarcarImportante(ctx context.Context, usuarioID, id uuid.UUID, importante bool) error {
	return nil
}

type stubLimiter struct {
	permitido bool
	err       error
	chamadas  int
}

func (s *stubLimiter) Allow(ctx context.Context, usuarioID uuid.UUID) (bool, error) {
	s.chamadas++
	return s.permitido, s.err
}

type stubBuscador struct {
	porFonte map[string][]diario.Publicacao
	demo     bool
	err      error
}

func (s *stubBuscador) Buscar(ctx context.Context, fonte string, nomes, palavrasChave []string) (*diario.Resultado, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &diario.Resultado{Publicacoes: s.porFonte[fonte], Demo: s.demo}, nil
}

func novoServicoTeste(repo *stubRepo, limiter *stubLimiter, buscador *stubBuscador) *Service {
	return NewService(repo, limiter, buscador, zerolog.Nop())
}

func TestExecutarSucessoFechaLogComContagens(t *testing.T) {
	agora := time.Now()
	repo := &stubRepo{}
	limiter := &stubLimiter{permitido: true}
	buscador := &stubBuscador{porFonte: map[string][]diario.Publicacao{
		"Diário Oficial SP": {
			{NomeAdvogado: "João Silva", Titulo: "Intimação", Conteudo: "...", Fonte: "Diário Oficial SP", Data: agora},
			{NomeAdvogado: "João Silva", Titulo: "Despacho", Conteudo: "...", Fonte: "Diário Oficial SP", Data: agora},
			{NomeAdvogado: "João Silva", Titulo: "Sentença", Conteudo: "...", Fonte: "Diário Oficial SP", Data: agora},
		},
	}}
	svc := novoServicoTeste(repo, limiter, buscador)

	status, corpo := svc.Executar(context.Background(), uuid.New(), []byte(`{"nomes":["João Silva"],"estados":["SP"]}`))

	if status != http.StatusOK {
		t.Fatalf("esperava 200, veio %d", status)
	}

	resposta, ok := corpo.(RespostaSucesso)
	if !ok {
		t.Fatalf("corpo inesperado: %T", corpo)
	}
	if !resposta.Success || resposta.PublicacoesEncontradas != 3 {
		t.Fatalf("resposta incorreta: %+v", resposta)
	}
	if resposta.FontesConsultadas != 2 {
		t.Fatalf("SP deveria expandir para 2 fontes, veio %d", resposta.FontesConsultadas)
	}
	if resposta.StatusIntegracao != IntegracaoOK {
		t.Fatalf("status de integração incorreto: %s", resposta.StatusIntegracao)
	}

	if repo.aberturas != 1 {
		t.Fatalf("log deveria abrir exatamente uma vez, abriu %d", repo.aberturas)
	}
	if len(repo.fechamentos) != 1 {
		t.Fatalf("log deveria fechar exatamente uma vez, fechou %d", len(repo.fechamentos))
	}
	f := repo.fechamentos[0]
	if f.status != StatusConcluido || f.encontradas != 3 || len(f.fontes) != 2 {
		t.Fatalf("fechamento incorreto: %+v", f)
	}
	if len(repo.inseridas) != 3 {
		t.Fatalf("esperava 3 publicações persistidas, veio %d", len(repo.inseridas))
	}
}

func TestExecutarSemNomesValidosNaoAbreLog(t *testing.T) {
	repo := &stubRepo{}
	limiter := &stubLimiter{permitido: true}
	svc := novoServicoTeste(repo, limiter, &stubBuscador{})

	status, corpo := svc.Executar(context.Background(), uuid.New(), []byte(`{"nomes":["<>", "  "]}`))

	if status != http.StatusBadRequest {
		t.Fatalf("esperava 400, veio %d", status)
	}
	if _, ok := corpo.(RespostaValidacao); !ok {
		t.Fatalf("corpo inesperado: %T", corpo)
	}
	if repo.aberturas != 0 {
		t.Fatal("requisição rejeitada não pode abrir log")
	}
}

func TestExecutarUsuarioAusente(t *testing.T) {
	repo := &stubRepo{}
	svc := novoServicoTeste(repo, &stubLimiter{permitido: true}, &stubBuscador{})

	status, _ := svc.Executar(context.Background(), uuid.Nil, []byte(`{"nomes":["João"]}`))
	if status != http.StatusBadRequest {
		t.Fatalf("esperava 400 sem usuário, veio %d", status)
	}
}

func TestExecutarLimitadoAntesDoLog(t *testing.T) {
	repo := &stubRepo{}
	limiter := &stubLimiter{permitido: false}
	svc := novoServicoTeste(repo, limiter, &stubBuscador{})

	status, corpo := svc.Executar(context.Background(), uuid.New(), []byte(`{"nomes":["João"]}`))

	if status != http.StatusTooManyRequests {
		t.Fatalf("esperava 429, veio %d", status)
	}
	resposta, ok := corpo.(RespostaValidacao)
	if !ok {
		t.Fatalf("corpo inesperado: %T", corpo)
	}
	if resposta.Error == "" {
		t.Fatal("resposta limitada deveria trazer mensagem")
	}
	if repo.aberturas != 0 {
		t.Fatal("execução limitada não pode abrir log")
	}
}

func TestExecutarLimitadorIndisponivelLibera(t *testing.T) {
	repo := &stubRepo{}
	limiter := &stubLimiter{permitido: false, err: errors.New("redis fora")}
	svc := novoServicoTeste(repo, limiter, &stubBuscador{demo: true})

	status, _ := svc.Executar(context.Background(), uuid.New(), []byte(`{"nomes":["João"]}`))
	if status != http.StatusOK {
		t.Fatalf("limitador indisponível deveria liberar, veio %d", status)
	}
}

func TestExecutarFalhaAoGravarFechaComErro(t *testing.T) {
	repo := &stubRepo{inserirErr: errors.New("banco fora")}
	limiter := &stubLimiter{permitido: true}
	buscador := &stubBuscador{porFonte: map[string][]diario.Publicacao{
		"Diário Oficial SP": {{NomeAdvogado: "João", Titulo: "x", Conteudo: "y", Fonte: "Diário Oficial SP", Data: time.Now()}},
	}}
	svc := novoServicoTeste(repo, limiter, buscador)

	status, corpo := svc.Executar(context.Background(), uuid.New(), []byte(`{"nomes":["João"],"estados":["SP"]}`))

	if status != http.StatusInternalServerError {
		t.Fatalf("esperava 500, veio %d", status)
	}
	if _, ok := corpo.(RespostaErro); !ok {
		t.Fatalf("corpo inesperado: %T", corpo)
	}
	if len(repo.fechamentos) != 1 || repo.fechamentos[0].status != StatusErro {
		t.Fatalf("falha na gravação deveria fechar o log com erro: %+v", repo.fechamentos)
	}
}

func TestExecutarModoDemonstracao(t *testing.T) {
	repo := &stubRepo{}
	limiter := &stubLimiter{permitido: true}
	svc := novoServicoTeste(repo, limiter, &stubBuscador{demo: true})

	status, corpo := svc.Executar(context.Background(), uuid.New(), []byte(`{"nomes":["João"]}`))

	if status != http.StatusOK {
		t.Fatalf("esperava 200, veio %d", status)
	}
	resposta := corpo.(RespostaSucesso)
	if resposta.StatusIntegracao != IntegracaoDemonstracao {
		t.Fatalf("busca demo deveria reportar %s, veio %s", IntegracaoDemonstracao, resposta.StatusIntegracao)
	}
	if resposta.FontesConsultadas != 54 {
		t.Fatalf("sem estados deveria consultar 54 fontes, veio %d", resposta.FontesConsultadas)
	}
}

func TestPublicacoesFiltraPelaConfiguracaoAtiva(t *testing.T) {
	repo := &stubRepo{cfg: Configuracao{
		MonitoramentoAtivo: true,
		NomesMonitoramento: []string{"João Silva"},
	}}
	svc := novoServicoTeste(repo, &stubLimiter{permitido: true}, &stubBuscador{})

	if _, err := svc.Publicacoes(context.Background(), uuid.New(), FiltroPublicacoes{}); err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if len(repo.ultimoFiltro.Nomes) != 1 || repo.ultimoFiltro.Nomes[0] != "João Silva" {
		t.Fatalf("configuração ativa deveria restringir por nome: %v", repo.ultimoFiltro.Nomes)
	}

	repo.cfg.MonitoramentoAtivo = false
	if _, err := svc.Publicacoes(context.Background(), uuid.New(), FiltroPublicacoes{}); err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if repo.ultimoFiltro.Nomes != nil {
		t.Fatalf("configuração inativa não deveria filtrar por nome: %v", repo.ultimoFiltro.Nomes)
	}
}

func TestSalvarConfiguracaoSanitiza(t *testing.T) {
	repo := &stubRepo{}
	svc := novoServicoTeste(repo, &stubLimiter{permitido: true}, &stubBuscador{})

	cfg, err := svc.SalvarConfiguracao(context.Background(), Configuracao{
		UsuarioID:            uuid.New(),
		MonitoramentoAtivo:   true,
		NomesMonitoramento:   []string{" João <b>Silva</b> ", ""},
		EstadosMonitoramento: []string{"sp", " rj "},
		PalavrasChave:        []string{`intimação"`},
	})
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	if len(cfg.NomesMonitoramento) != 1 || cfg.NomesMonitoramento[0] != "João bSilva/b" {
		t.Fatalf("nomes não sanitizados: %v", cfg.NomesMonitoramento)
	}
	if cfg.EstadosMonitoramento[0] != "SP" || cfg.EstadosMonitoramento[1] != "RJ" {
		t.Fatalf("estados deveriam ir para maiúsculas: %v", cfg.EstadosMonitoramento)
	}
	if cfg.PalavrasChave[0] != "intimação" {
		t.Fatalf("palavras-chave não sanitizadas: %v", cfg.PalavrasChave)
	}
}
