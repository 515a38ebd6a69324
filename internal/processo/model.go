package processo

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound      = errors.New("processo não encontrado")
	ErrNumeroEmUso   = errors.New("número de processo já cadastrado")
	ErrStatusInvalido = errors.New("status inválido")
)

// Status válidos de um processo.
var statusValidos = map[string]bool{
	"ativo":     true,
	"arquivado": true,
	"encerrado": true,
}

// StatusValido informa se o status é aceito.
func StatusValido(status string) bool {
	return statusValidos[status]
}

// Processo representa uma ação judicial acompanhada pelo escritório.
type Processo struct {
	ID                 uuid.UUID  `json:"id"`
	UsuarioID          uuid.UUID  `json:"usuario_id"`
	ClienteID          *uuid.UUID `json:"cliente_id,omitempty"`
	NumeroProcesso     string     `json:"numero_processo"`
	Vara               *string    `json:"vara,omitempty"`
	Comarca            *string    `json:"comarca,omitempty"`
	Area               *string    `json:"area,omitempty"`
	Fase               *string    `json:"fase,omitempty"`
	ValorCausaCentavos *int64     `json:"valor_causa_centavos,omitempty"`
	Status             string     `json:"status"`
	SegredoJustica     bool       `json:"segredo_justica"`
	CriadoEm           time.Time  `json:"criado_em"`
	AtualizadoEm       time.Time  `json:"atualizado_em"`
}

// CreateInput encapsula os campos para cadastro.
type CreateInput struct {
	UsuarioID          uuid.UUID
	ClienteID          *uuid.UUID
	NumeroProcesso     string
	Vara               *string
	Comarca            *string
	Area               *string
	Fase               *string
	ValorCausaCentavos *int64
	SegredoJustica     bool
}

// UpdateInput permite atualização parcial.
type UpdateInput struct {
	ID                 uuid.UUID
	UsuarioID          uuid.UUID
	ClienteID          *uuid.UUID
	Vara               *string
	Comarca            *string
	Area               *string
	Fase               *string
	ValorCausaCentavos *int64
	Status             *string
	SegredoJustica     *bool
}

// Filter restringe a listagem.
type Filter struct {
	Status string
	Busca  string
	Limit  int
	Offset int
}
