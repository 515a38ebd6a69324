package assinatura

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrSemAssinatura = errors.New("assinatura não encontrada")

const (
	StatusAtiva    = "ativa"
	StatusInativa  = "inativa"
	StatusPendente = "pendente"
	StatusExpirada = "expirada"
)

// Assinatura é o vínculo do usuário com o plano.
type Assinatura struct {
	UsuarioID           uuid.UUID  `json:"usuario_id"`
	GatewayClienteID    *string    `json:"-"`
	GatewayAssinaturaID *string    `json:"-"`
	Plano               *string    `json:"plano,omitempty"`
	Status              string     `json:"status"`
	ExpiraEm            *time.Time `json:"expira_em,omitempty"`
	AtualizadoEm        time.Time  `json:"atualizado_em"`
}

// Vigente informa se a assinatura dá acesso hoje.
func (a Assinatura) Vigente() bool {
	if a.Status != StatusAtiva {
		return false
	}
	if a.ExpiraEm != nil && a.ExpiraEm.Before(time.Now()) {
		return false
	}
	return true
}
