package processo

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
)

// Service reúne regras de negócio de processos.
type Service struct {
	repo *Repository
}

// NewService cria uma nova instância do serviço.
func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

// Create cadastra um processo para o usuário.
func (s *Service) Create(ctx context.Context, input CreateInput) (*Processo, error) {
	input.NumeroProcesso = strings.TrimSpace(input.NumeroProcesso)
	if input.NumeroProcesso == "" {
		return nil, errors.New("número do processo obrigatório")
	}
	return s.repo.Create(ctx, input)
}

// Get recupera um processo do usuário.
func (s *Service) Get(ctx context.Context, usuarioID, id uuid.UUID) (*Processo, error) {
	return s.repo.Get(ctx, usuarioID, id)
}

// List lista processos do usuário.
func (s *Service) List(ctx context.Context, usuarioID uuid.UUID, filter Filter) ([]Processo, error) {
	if filter.Status != "" && !StatusValido(filter.Status) {
		return nil, ErrStatusInvalido
	}
	return s.repo.List(ctx, usuarioID, filter)
}

// Update altera um processo, validando transições de status.
func (s *Service) Update(ctx context.Context, input UpdateInput) (*Processo, error) {
	if input.Status != nil && !StatusValido(*input.Status) {
		return nil, ErrStatusInvalido
	}
	return s.repo.Update(ctx, input)
}

// Delete remove um processo.
func (s *Service) Delete(ctx context.Context, usuarioID, id uuid.UUID) error {
	return s.repo.Delete(ctx, usuarioID, id)
}
