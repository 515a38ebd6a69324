package cliente

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("cliente não encontrado")

// Cliente representa uma pessoa física ou jurídica atendida pelo escritório.
type Cliente struct {
	ID          uuid.UUID `json:"id"`
	UsuarioID   uuid.UUID `json:"usuario_id"`
	Nome        string    `json:"nome"`
	CPFCNPJ     *string   `json:"cpf_cnpj,omitempty"`
	Email       *string   `json:"email,omitempty"`
	Telefone    *string   `json:"telefone,omitempty"`
	Endereco    *string   `json:"endereco,omitempty"`
	Observacoes *string   `json:"observacoes,omitempty"`
	CriadoEm    time.Time `json:"criado_em"`
	AtualizadoEm time.Time `json:"atualizado_em"`
}

// CreateInput encapsula os campos para cadastro.
type CreateInput struct {
	UsuarioID   uuid.UUID
	Nome        string
	CPFCNPJ     *string
	Email       *string
	Telefone    *string
	Endereco    *string
	Observacoes *string
}

// UpdateInput permite atualização parcial.
type UpdateInput struct {
	ID          uuid.UUID
	UsuarioID   uuid.UUID
	Nome        *string
	CPFCNPJ     *string
	Email       *string
	Telefone    *string
	Endereco    *string
	Observacoes *string
}

// Filter restringe a listagem.
type Filter struct {
	Busca  string
	Limit  int
	Offset int
}
