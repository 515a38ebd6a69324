package agenda

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound       = errors.New("evento não encontrado")
	ErrTipoInvalido   = errors.New("tipo de evento inválido")
	ErrPeriodoInvalido = errors.New("período inválido")
)

var tiposValidos = map[string]bool{
	"audiencia": true,
	"reuniao":   true,
	"prazo":     true,
	"outro":     true,
}

// Evento representa um compromisso na agenda do usuário.
type Evento struct {
	ID         uuid.UUID  `json:"id"`
	UsuarioID  uuid.UUID  `json:"usuario_id"`
	ProcessoID *uuid.UUID `json:"processo_id,omitempty"`
	Titulo     string     `json:"titulo"`
	Tipo       string     `json:"tipo"`
	Local      *string    `json:"local,omitempty"`
	Inicio     time.Time  `json:"inicio"`
	Fim        *time.Time `json:"fim,omitempty"`
	CriadoEm   time.Time  `json:"criado_em"`
}

// CreateInput encapsula os campos para cadastro.
type CreateInput struct {
	UsuarioID  uuid.UUID
	ProcessoID *uuid.UUID
	Titulo     string
	Tipo       string
	Local      *string
	Inicio     time.Time
	Fim        *time.Time
}

// UpdateInput permite atualização parcial.
type UpdateInput struct {
	ID         uuid.UUID
	UsuarioID  uuid.UUID
	ProcessoID *uuid.UUID
	Titulo     *string
	Tipo       *string
	Local      *string
	Inicio     *time.Time
	Fim        *time.Time
}

// Periodo delimita a janela de listagem.
type Periodo struct {
	De  time.Time
	Ate time.Time
}
