package documento

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jusgestao/api/internal/storage"
)

// Service coordena metadados no banco e blobs no armazenamento.
type Service struct {
	repo     *Repository
	uploader storage.Uploader
	logger   zerolog.Logger
}

// NewService cria uma nova instância do serviço.
func NewService(repo *Repository, uploader storage.Uploader, logger zerolog.Logger) *Service {
	return &Service{repo: repo, uploader: uploader, logger: logger}
}

// Upload envia o arquivo ao armazenamento e registra os metadados.
func (s *Service) Upload(ctx context.Context, input UploadInput) (*Documento, error) {
	input.Nome = strings.TrimSpace(input.Nome)
	if input.Nome == "" {
		return nil, errors.New("nome do arquivo obrigatório")
	}
	if len(input.Conteudo) == 0 {
		return nil, ErrArquivoVazio
	}
	if len(input.Conteudo) > TamanhoMaximo {
		return nil, ErrArquivoGrande
	}
	if input.ContentType == "" {
		input.ContentType = "application/octet-stream"
	}

	key := chaveObjeto(input.UsuarioID, input.Nome)
	res, err := s.uploader.Upload(ctx, storage.UploadInput{
		Key:         key,
		Body:        input.Conteudo,
		ContentType: input.ContentType,
	})
	if err != nil {
		return nil, fmt.Errorf("enviar arquivo: %w", err)
	}

	doc, err := s.repo.Create(ctx, input, res.URL)
	if err != nil {
		// blob órfão sem registro: tenta limpar antes de propagar
		if delErr := s.uploader.Delete(ctx, key); delErr != nil {
			s.logger.Warn().Err(delErr).Str("key", key).Msg("documento: falha ao limpar blob órfão")
		}
		return nil, err
	}
	return doc, nil
}

// Get recupera os metadados de um documento.
func (s *Service) Get(ctx context.Context, usuarioID, id uuid.UUID) (*Documento, error) {
	return s.repo.Get(ctx, usuarioID, id)
}

// List lista documentos do usuário.
func (s *Service) List(ctx context.Context, usuarioID uuid.UUID, processoID *uuid.UUID) ([]Documento, error) {
	return s.repo.List(ctx, usuarioID, processoID)
}

// Delete remove o registro e o blob correspondente.
func (s *Service) Delete(ctx context.Context, usuarioID, id uuid.UUID) error {
	doc, err := s.repo.Get(ctx, usuarioID, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, usuarioID, id); err != nil {
		return err
	}
	if key := chaveDeURL(doc.URL); key != "" {
		if err := s.uploader.Delete(ctx, key); err != nil {
			s.logger.Warn().Err(err).Str("key", key).Msg("documento: falha ao remover blob")
		}
	}
	return nil
}

func chaveObjeto(usuarioID uuid.UUID, nome string) string {
	return fmt.Sprintf("documentos/%s/%s-%s", usuarioID, uuid.NewString()[:8], path.Base(nome))
}

func chaveDeURL(url string) string {
	idx := strings.Index(url, "/documentos/")
	if idx < 0 {
		return ""
	}
	return url[idx+1:]
}
