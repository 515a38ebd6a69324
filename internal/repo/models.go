package repo

import (
	"time"

	"github.com/google/uuid"
)

// Usuario representa um advogado ou colaborador do escritório.
type Usuario struct {
	ID        uuid.UUID
	Nome      string
	Email     string
	SenhaHash string
	OAB       *string
	Ativo     bool
	CriadoEm  time.Time
}

// TokenRefresh modela a tabela de refresh tokens.
type TokenRefresh struct {
	ID        uuid.UUID
	UsuarioID uuid.UUID
	TokenHash string
	Expiracao time.Time
	Revogado  bool
	CriadoEm  time.Time
}
