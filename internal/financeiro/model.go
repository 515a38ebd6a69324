package financeiro

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound     = errors.New("lançamento não encontrado")
	ErrTipoInvalido = errors.New("tipo de lançamento inválido")
	ErrValorInvalido = errors.New("valor deve ser positivo")
)

const (
	TipoReceita = "receita"
	TipoDespesa = "despesa"
)

// Lancamento representa uma entrada ou saída financeira.
type Lancamento struct {
	ID            uuid.UUID  `json:"id"`
	UsuarioID     uuid.UUID  `json:"usuario_id"`
	ProcessoID    *uuid.UUID `json:"processo_id,omitempty"`
	Descricao     string     `json:"descricao"`
	Tipo          string     `json:"tipo"`
	ValorCentavos int64      `json:"valor_centavos"`
	Vencimento    *time.Time `json:"vencimento,omitempty"`
	Pago          bool       `json:"pago"`
	CriadoEm      time.Time  `json:"criado_em"`
}

// CreateInput encapsula os campos para cadastro.
type CreateInput struct {
	UsuarioID     uuid.UUID
	ProcessoID    *uuid.UUID
	Descricao     string
	Tipo          string
	ValorCentavos int64
	Vencimento    *time.Time
}

// Filter restringe a listagem.
type Filter struct {
	Tipo   string
	Pago   *bool
	Limit  int
	Offset int
}

// Resumo consolida o mês: totais em centavos.
type Resumo struct {
	Ano             int   `json:"ano"`
	Mes             int   `json:"mes"`
	ReceitasCentavos int64 `json:"receitas_centavos"`
	DespesasCentavos int64 `json:"despesas_centavos"`
	SaldoCentavos    int64 `json:"saldo_centavos"`
	PendentesCentavos int64 `json:"pendentes_centavos"`
}
