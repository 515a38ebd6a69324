package tarefa

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound           = errors.New("tarefa não encontrada")
	ErrPrioridadeInvalida = errors.New("prioridade inválida")
	ErrStatusInvalido     = errors.New("status inválido")
)

var prioridadesValidas = map[string]bool{
	"baixa": true,
	"media": true,
	"alta":  true,
}

var statusValidos = map[string]bool{
	"pendente":     true,
	"em_andamento": true,
	"concluida":    true,
}

// Tarefa representa um item de trabalho do escritório.
type Tarefa struct {
	ID            uuid.UUID  `json:"id"`
	UsuarioID     uuid.UUID  `json:"usuario_id"`
	ProcessoID    *uuid.UUID `json:"processo_id,omitempty"`
	ResponsavelID *uuid.UUID `json:"responsavel_id,omitempty"`
	Titulo        string     `json:"titulo"`
	Descricao     *string    `json:"descricao,omitempty"`
	Prioridade    string     `json:"prioridade"`
	Status        string     `json:"status"`
	Prazo         *time.Time `json:"prazo,omitempty"`
	ConcluidaEm   *time.Time `json:"concluida_em,omitempty"`
	CriadoEm      time.Time  `json:"criado_em"`
}

// CreateInput encapsula os campos para cadastro.
type CreateInput struct {
	UsuarioID     uuid.UUID
	ProcessoID    *uuid.UUID
	ResponsavelID *uuid.UUID
	Titulo        string
	Descricao     *string
	Prioridade    string
	Prazo         *time.Time
}

// UpdateInput permite atualização parcial.
type UpdateInput struct {
	ID            uuid.UUID
	UsuarioID     uuid.UUID
	ProcessoID    *uuid.UUID
	ResponsavelID *uuid.UUID
	Titulo        *string
	Descricao     *string
	Prioridade    *string
	Status        *string
	Prazo         *time.Time
}

// Filter restringe a listagem.
type Filter struct {
	Status     string
	ProcessoID *uuid.UUID
	Limit      int
	Offset     int
}
