package assinatura

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Service coordena o ciclo de vida da assinatura do usuário.
type Service struct {
	repo    *Repository
	gateway Gateway
	planoID string
	retorno string
	logger  zerolog.Logger
}

// NewService cria uma nova instância do serviço.
func NewService(repo *Repository, gateway Gateway, planoID, retorno string, logger zerolog.Logger) *Service {
	return &Service{repo: repo, gateway: gateway, planoID: planoID, retorno: retorno, logger: logger}
}

// Status devolve a assinatura do usuário; ausência vira registro inativo.
func (s *Service) Status(ctx context.Context, usuarioID uuid.UUID) (*Assinatura, error) {
	a, err := s.repo.Get(ctx, usuarioID)
	if errors.Is(err, ErrSemAssinatura) {
		return &Assinatura{UsuarioID: usuarioID, Status: StatusInativa}, nil
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

// IniciarCheckout abre uma sessão de pagamento e marca a assinatura como pendente.
func (s *Service) IniciarCheckout(ctx context.Context, usuarioID uuid.UUID, email string) (string, error) {
	if s.gateway == nil {
		return "", errors.New("cobrança não configurada")
	}

	checkout, err := s.gateway.CriarCheckout(ctx, CheckoutInput{
		ClienteID: usuarioID.String(),
		Email:     email,
		PlanoID:   s.planoID,
		Retorno:   s.retorno,
	})
	if err != nil {
		return "", err
	}

	clienteID := usuarioID.String()
	plano := s.planoID
	_, err = s.repo.Upsert(ctx, Assinatura{
		UsuarioID:           usuarioID,
		GatewayClienteID:    &clienteID,
		GatewayAssinaturaID: &checkout.AssinaturaID,
		Plano:               &plano,
		Status:              StatusPendente,
	})
	if err != nil {
		return "", err
	}
	return checkout.URL, nil
}

// Sincronizar consulta o provedor e atualiza o estado local.
func (s *Service) Sincronizar(ctx context.Context, usuarioID uuid.UUID) (*Assinatura, error) {
	a, err := s.repo.Get(ctx, usuarioID)
	if err != nil {
		return nil, err
	}
	if a.GatewayAssinaturaID == nil || s.gateway == nil {
		return a, nil
	}

	remoto, err := s.gateway.ConsultarAssinatura(ctx, *a.GatewayAssinaturaID)
	if err != nil {
		// estado local continua valendo quando o provedor está fora
		s.logger.Warn().Err(err).Str("usuario", usuarioID.String()).Msg("assinatura: falha ao sincronizar com o provedor")
		return a, nil
	}

	a.Status = traduzirStatus(remoto.Status)
	a.ExpiraEm = remoto.ExpiraEm
	return s.repo.Upsert(ctx, *a)
}

func traduzirStatus(remoto string) string {
	switch remoto {
	case "active", "trialing":
		return StatusAtiva
	case "pending", "incomplete":
		return StatusPendente
	case "expired", "past_due":
		return StatusExpirada
	default:
		return StatusInativa
	}
}
