package financeiro

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Service reúne regras de negócio do financeiro.
type Service struct {
	repo *Repository
}

// NewService cria uma nova instância do serviço.
func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

// Create cadastra um lançamento.
func (s *Service) Create(ctx context.Context, input CreateInput) (*Lancamento, error) {
	input.Descricao = strings.TrimSpace(input.Descricao)
	if input.Descricao == "" {
		return nil, errors.New("descrição obrigatória")
	}
	if input.Tipo != TipoReceita && input.Tipo != TipoDespesa {
		return nil, ErrTipoInvalido
	}
	if input.ValorCentavos <= 0 {
		return nil, ErrValorInvalido
	}
	return s.repo.Create(ctx, input)
}

// List lista lançamentos do usuário.
func (s *Service) List(ctx context.Context, usuarioID uuid.UUID, filter Filter) ([]Lancamento, error) {
	if filter.Tipo != "" && filter.Tipo != TipoReceita && filter.Tipo != TipoDespesa {
		return nil, ErrTipoInvalido
	}
	return s.repo.List(ctx, usuarioID, filter)
}

// MarcarPago quita ou reabre um lançamento.
func (s *Service) MarcarPago(ctx context.Context, usuarioID, id uuid.UUID, pago bool) error {
	return s.repo.MarcarPago(ctx, usuarioID, id, pago)
}

// Delete remove um lançamento.
func (s *Service) Delete(ctx context.Context, usuarioID, id uuid.UUID) error {
	return s.repo.Delete(ctx, usuarioID, id)
}

// ResumoMes devolve o consolidado do mês; ano e mês zerados usam o mês atual.
func (s *Service) ResumoMes(ctx context.Context, usuarioID uuid.UUID, ano, mes int) (Resumo, error) {
	agora := time.Now()
	if ano <= 0 {
		ano = agora.Year()
	}
	if mes <= 0 || mes > 12 {
		mes = int(agora.Month())
	}
	return s.repo.ResumoMes(ctx, usuarioID, ano, mes)
}
