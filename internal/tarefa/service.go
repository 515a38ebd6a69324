package tarefa

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
)

// Service reúne regras de negócio de tarefas.
type Service struct {
	repo *Repository
}

// NewService cria uma nova instância do serviço.
func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

// Create cadastra uma tarefa.
func (s *Service) Create(ctx context.Context, input CreateInput) (*Tarefa, error) {
	input.Titulo = strings.TrimSpace(input.Titulo)
	if input.Titulo == "" {
		return nil, errors.New("título obrigatório")
	}
	if input.Prioridade == "" {
		input.Prioridade = "media"
	}
	if !prioridadesValidas[input.Prioridade] {
		return nil, ErrPrioridadeInvalida
	}
	return s.repo.Create(ctx, input)
}

// Get recupera uma tarefa do usuário.
func (s *Service) Get(ctx context.Context, usuarioID, id uuid.UUID) (*Tarefa, error) {
	return s.repo.Get(ctx, usuarioID, id)
}

// List lista tarefas do usuário.
func (s *Service) List(ctx context.Context, usuarioID uuid.UUID, filter Filter) ([]Tarefa, error) {
	if filter.Status != "" && !statusValidos[filter.Status] {
		return nil, ErrStatusInvalido
	}
	return s.repo.List(ctx, usuarioID, filter)
}

// Update altera uma tarefa.
func (s *Service) Update(ctx context.Context, input UpdateInput) (*Tarefa, error) {
	if input.Prioridade != nil && !prioridadesValidas[*input.Prioridade] {
		return nil, ErrPrioridadeInvalida
	}
	if input.Status != nil && !statusValidos[*input.Status] {
		return nil, ErrStatusInvalido
	}
	return s.repo.Update(ctx, input)
}

// Concluir marca a tarefa como concluída.
func (s *Service) Concluir(ctx context.Context, usuarioID, id uuid.UUID) (*Tarefa, error) {
	status := "concluida"
	return s.repo.Update(ctx, UpdateInput{ID: id, UsuarioID: usuarioID, Status: &status})
}

// Delete remove uma tarefa.
func (s *Service) Delete(ctx context.Context, usuarioID, id uuid.UUID) error {
	return s.repo.Delete(ctx, usuarioID, id)
}
