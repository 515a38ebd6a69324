package documento

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound       = errors.New("documento não encontrado")
	ErrArquivoVazio   = errors.New("arquivo vazio")
	ErrArquivoGrande  = errors.New("arquivo excede o limite de tamanho")
)

// TamanhoMaximo é o limite por arquivo (10 MiB).
const TamanhoMaximo = 10 << 20

// Documento representa um arquivo anexado pelo usuário.
type Documento struct {
	ID            uuid.UUID  `json:"id"`
	UsuarioID     uuid.UUID  `json:"usuario_id"`
	ProcessoID    *uuid.UUID `json:"processo_id,omitempty"`
	Nome          string     `json:"nome"`
	ContentType   string     `json:"content_type"`
	TamanhoBytes  int64      `json:"tamanho_bytes"`
	URL           string     `json:"url"`
	CriadoEm      time.Time  `json:"criado_em"`
}

// UploadInput encapsula os campos de envio.
type UploadInput struct {
	UsuarioID   uuid.UUID
	ProcessoID  *uuid.UUID
	Nome        string
	ContentType string
	Conteudo    []byte
}
