package cliente

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
)

// Service reúne regras de negócio de clientes.
type Service struct {
	repo *Repository
}

// NewService cria uma nova instância do serviço.
func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

// Create cadastra um cliente para o usuário.
func (s *Service) Create(ctx context.Context, input CreateInput) (*Cliente, error) {
	input.Nome = strings.TrimSpace(input.Nome)
	if input.Nome == "" {
		return nil, errors.New("nome obrigatório")
	}
	return s.repo.Create(ctx, input)
}

// Get recupera um cliente do usuário.
func (s *Service) Get(ctx context.Context, usuarioID, id uuid.UUID) (*Cliente, error) {
	return s.repo.Get(ctx, usuarioID, id)
}

// List lista clientes do usuário.
func (s *Service) List(ctx context.Context, usuarioID uuid.UUID, filter Filter) ([]Cliente, error) {
	return s.repo.List(ctx, usuarioID, filter)
}

// Update altera dados cadastrais.
func (s *Service) Update(ctx context.Context, input UpdateInput) (*Cliente, error) {
	if input.Nome != nil {
		nome := strings.TrimSpace(*input.Nome)
		if nome == "" {
			return nil, errors.New("nome não pode ser vazio")
		}
		input.Nome = &nome
	}
	return s.repo.Update(ctx, input)
}

// Delete remove um cliente.
func (s *Service) Delete(ctx context.Context, usuarioID, id uuid.UUID) error {
	return s.repo.Delete(ctx, usuarioID, id)
}
