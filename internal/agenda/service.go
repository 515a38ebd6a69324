package agenda

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Service reúne regras de negócio da agenda.
type Service struct {
	repo *Repository
}

// NewService cria uma nova instância do serviço.
func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

// Create cadastra um evento.
func (s *Service) Create(ctx context.Context, input CreateInput) (*Evento, error) {
	input.Titulo = strings.TrimSpace(input.Titulo)
	if input.Titulo == "" {
		return nil, errors.New("título obrigatório")
	}
	if input.Tipo == "" {
		input.Tipo = "outro"
	}
	if !tiposValidos[input.Tipo] {
		return nil, ErrTipoInvalido
	}
	if input.Inicio.IsZero() {
		return nil, errors.New("início obrigatório")
	}
	if input.Fim != nil && input.Fim.Before(input.Inicio) {
		return nil, ErrPeriodoInvalido
	}
	return s.repo.Create(ctx, input)
}

// Get recupera um evento do usuário.
func (s *Service) Get(ctx context.Context, usuarioID, id uuid.UUID) (*Evento, error) {
	return s.repo.Get(ctx, usuarioID, id)
}

// ListDia lista os eventos de um dia.
func (s *Service) ListDia(ctx context.Context, usuarioID uuid.UUID, dia time.Time) ([]Evento, error) {
	inicio := time.Date(dia.Year(), dia.Month(), dia.Day(), 0, 0, 0, 0, dia.Location())
	return s.repo.ListByPeriodo(ctx, usuarioID, Periodo{De: inicio, Ate: inicio.AddDate(0, 0, 1)})
}

// ListPeriodo lista eventos dentro de uma janela arbitrária.
func (s *Service) ListPeriodo(ctx context.Context, usuarioID uuid.UUID, periodo Periodo) ([]Evento, error) {
	if !periodo.Ate.After(periodo.De) {
		return nil, ErrPeriodoInvalido
	}
	return s.repo.ListByPeriodo(ctx, usuarioID, periodo)
}

// Update altera um evento.
func (s *Service) Update(ctx context.Context, input UpdateInput) (*Evento, error) {
	if input.Tipo != nil && !tiposValidos[*input.Tipo] {
		return nil, ErrTipoInvalido
	}
	return s.repo.Update(ctx, input)
}

// Delete remove um evento.
func (s *Service) Delete(ctx context.Context, usuarioID, id uuid.UUID) error {
	return s.repo.Delete(ctx, usuarioID, id)
}
