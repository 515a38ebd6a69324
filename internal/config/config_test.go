package config

import (
	"testing"
	"time"
)

func prepararAmbienteMinimo(t *testing.T) {
	t.Helper()
	t.Setenv("DB_DSN", "postgres://localhost/teste")
	t.Setenv("REDIS_URL", "redis://localhost:6379")
	t.Setenv("JWT_SECRET", "segredo-de-teste-com-32-caracteres!")
}

func TestLoadOrcamentoDaExecucaoPadrao(t *testing.T) {
	prepararAmbienteMinimo(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("erro ao carregar: %v", err)
	}

	// orçamento da execução completa é independente do timeout por fonte
	if cfg.Monitoramento.TimeoutExecucao != 2*time.Minute {
		t.Fatalf("orçamento padrão incorreto: %v", cfg.Monitoramento.TimeoutExecucao)
	}
	if cfg.Diario.Timeout != 10*time.Second {
		t.Fatalf("timeout por fonte padrão incorreto: %v", cfg.Diario.Timeout)
	}
}

func TestLoadOrcamentoDaExecucaoConfigurado(t *testing.T) {
	prepararAmbienteMinimo(t)
	t.Setenv("MONITORAMENTO_TIMEOUT_EXECUCAO", "90s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("erro ao carregar: %v", err)
	}
	if cfg.Monitoramento.TimeoutExecucao != 90*time.Second {
		t.Fatalf("orçamento configurado incorreto: %v", cfg.Monitoramento.TimeoutExecucao)
	}
}

func TestLoadOrcamentoDaExecucaoInvalido(t *testing.T) {
	prepararAmbienteMinimo(t)
	t.Setenv("MONITORAMENTO_TIMEOUT_EXECUCAO", "rapido")

	if _, err := Load(); err == nil {
		t.Fatal("duração inválida deveria falhar o carregamento")
	}
}
