package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config centraliza a configuração carregada do ambiente.
type Config struct {
	Port          int
	DBDSN         string
	RedisURL      string
	JWTAccessTTL  time.Duration
	JWTRefreshTTL time.Duration
	JWTSecret     string
	AllowOrigins  []string

	RateLimitPublic RateLimitConfig
	RateLimitAuth   RateLimitConfig

	Monitoramento MonitoramentoConfig
	Diario        DiarioConfig
	Storage       StorageConfig
	Pagamento     PagamentoConfig
}

// RateLimitConfig representa limites simples para throttling.
type RateLimitConfig struct {
	RequestsPerSecond float64
	Burst             int
}

// MonitoramentoConfig define a janela de execuções manuais por usuário
// e o orçamento de tempo de uma execução completa.
type MonitoramentoConfig struct {
	MaxExecucoes int
	Janela       time.Duration
	// TimeoutExecucao limita a execução inteira; o timeout por fonte
	// consultada é o de DiarioConfig.
	TimeoutExecucao time.Duration
}

// DiarioConfig aponta para a API externa de diários oficiais.
// APIBase vazio mantém o buscador em modo demonstração.
type DiarioConfig struct {
	APIBase string
	Timeout time.Duration
}

// StorageConfig descreve o backend de arquivos (GED).
type StorageConfig struct {
	Provider    string
	S3Endpoint  string
	S3Region    string
	S3Bucket    string
	S3AccessKey string
	S3SecretKey string
	S3PublicURL string
}

// PagamentoConfig descreve o gateway de assinaturas.
type PagamentoConfig struct {
	APIBase   string
	APIKey    string
	PortalURL string
	PlanoID   string
}

// Load carrega variáveis de ambiente e aplica defaults seguros.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}

	portStr := getEnv("PORT", "8080")
	port, err := strconv.Atoi(portStr)
	if err != nil || port <= 0 {
		return nil, errors.New("PORT inválida")
	}
	cfg.Port = port

	cfg.DBDSN = getEnv("DB_DSN", "")
	if cfg.DBDSN == "" {
		return nil, errors.New("DB_DSN obrigatório")
	}

	cfg.RedisURL = getEnv("REDIS_URL", "")
	if cfg.RedisURL == "" {
		return nil, errors.New("REDIS_URL obrigatório")
	}

	cfg.JWTSecret = strings.TrimSpace(getEnv("JWT_SECRET", ""))
	if len(cfg.JWTSecret) < 32 {
		return nil, errors.New("JWT_SECRET deve ter pelo menos 32 caracteres")
	}

	accessTTL, err := parseDurationEnv("JWT_ACCESS_TTL", 15*time.Minute)
	if err != nil {
		return nil, err
	}
	cfg.JWTAccessTTL = accessTTL

	refreshTTL, err := parseDurationEnv("JWT_REFRESH_TTL", 30*24*time.Hour)
	if err != nil {
		return nil, err
	}
	cfg.JWTRefreshTTL = refreshTTL

	allowOrigins := strings.Split(getEnv("ALLOW_ORIGINS", ""), ",")
	cfg.AllowOrigins = nil
	for _, origin := range allowOrigins {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			cfg.AllowOrigins = append(cfg.AllowOrigins, origin)
		}
	}

	cfg.RateLimitPublic = RateLimitConfig{RequestsPerSecond: 10, Burst: 20}
	cfg.RateLimitAuth = RateLimitConfig{RequestsPerSecond: 10, Burst: 40}

	maxExec, err := parseIntEnv("MONITORAMENTO_MAX_EXECUCOES", 5)
	if err != nil {
		return nil, err
	}
	janela, err := parseDurationEnv("MONITORAMENTO_JANELA", 5*time.Minute)
	if err != nil {
		return nil, err
	}
	timeoutExecucao, err := parseDurationEnv("MONITORAMENTO_TIMEOUT_EXECUCAO", 2*time.Minute)
	if err != nil {
		return nil, err
	}
	cfg.Monitoramento = MonitoramentoConfig{
		MaxExecucoes:    maxExec,
		Janela:          janela,
		TimeoutExecucao: timeoutExecucao,
	}

	diarioTimeout, err := parseDurationEnv("DIARIO_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, err
	}
	cfg.Diario = DiarioConfig{
		APIBase: strings.TrimSpace(getEnv("DIARIO_API_BASE", "")),
		Timeout: diarioTimeout,
	}

	cfg.Storage = StorageConfig{
		Provider:    strings.TrimSpace(getEnv("STORAGE_PROVIDER", "")),
		S3Endpoint:  getEnv("STORAGE_S3_ENDPOINT", ""),
		S3Region:    getEnv("STORAGE_S3_REGION", ""),
		S3Bucket:    getEnv("STORAGE_S3_BUCKET", ""),
		S3AccessKey: getEnv("STORAGE_S3_ACCESS_KEY", ""),
		S3SecretKey: getEnv("STORAGE_S3_SECRET_KEY", ""),
		S3PublicURL: getEnv("STORAGE_S3_PUBLIC_URL", ""),
	}

	cfg.Pagamento = PagamentoConfig{
		APIBase:   strings.TrimSpace(getEnv("PAGAMENTO_API_BASE", "")),
		APIKey:    strings.TrimSpace(getEnv("PAGAMENTO_API_KEY", "")),
		PortalURL: strings.TrimSpace(getEnv("PAGAMENTO_PORTAL_URL", "")),
		PlanoID:   strings.TrimSpace(getEnv("PAGAMENTO_PLANO_ID", "")),
	}

	return cfg, nil
}

func getEnv(key, def string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return def
}

func parseDurationEnv(key string, def time.Duration) (time.Duration, error) {
	val := getEnv(key, "")
	if val == "" {
		return def, nil
	}
	dur, err := time.ParseDuration(val)
	if err != nil {
		return 0, errors.New(key + " inválido")
	}
	return dur, nil
}

func parseIntEnv(key string, def int) (int, error) {
	val := getEnv(key, "")
	if val == "" {
		return def, nil
	}
	n, err := strconv.Atoi(val)
	if err != nil || n <= 0 {
		return 0, errors.New(key + " inválido")
	}
	return n, nil
}
