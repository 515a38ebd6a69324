package documento

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository provê acesso à tabela de documentos.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository cria instância do repositório.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

const colunas = "id, usuario_id, processo_id, nome, content_type, tamanho_bytes, url, criado_em"

// Create registra os metadados de um documento.
func (r *Repository) Create(ctx context.Context, input UploadInput, url string) (*Documento, error) {
	query := `
        INSERT INTO documentos (usuario_id, processo_id, nome, content_type, tamanho_bytes, url)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING ` + colunas

	row := r.pool.QueryRow(ctx, query,
		input.UsuarioID,
		input.ProcessoID,
		input.Nome,
		input.ContentType,
		int64(len(input.Conteudo)),
		url,
	)
	return scan(row)
}

// Get busca um documento do usuário.
func (r *Repository) Get(ctx context.Context, usuarioID, id uuid.UUID) (*Documento, error) {
	query := `SELECT ` + colunas + ` FROM documentos WHERE id = $1 AND usuario_id = $2`
	return scan(r.pool.QueryRow(ctx, query, id, usuarioID))
}

// List lista documentos do usuário, opcionalmente por processo.
func (r *Repository) List(ctx context.Context, usuarioID uuid.UUID, processoID *uuid.UUID) ([]Documento, error) {
	query := `SELECT ` + colunas + ` FROM documentos WHERE usuario_id = $1`
	args := []any{usuarioID}
	if processoID != nil {
		query += ` AND processo_id = $2`
		args = append(args, *processoID)
	}
	query += ` ORDER BY criado_em DESC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var documentos []Documento
	for rows.Next() {
		d, err := scan(rows)
		if err != nil {
			return nil, err
		}
		documentos = append(documentos, *d)
	}
	return documentos, rows.Err()
}

// Delete remove o registro do documento.
func (r *Repository) Delete(ctx context.Context, usuarioID, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM documentos WHERE id = $1 AND usuario_id = $2`, id, usuarioID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scan(row pgx.Row) (*Documento, error) {
	var d Documento
	err := row.Scan(
		&d.ID,
		&d.UsuarioID,
		&d.ProcessoID,
		&d.Nome,
		&d.ContentType,
		&d.TamanhoBytes,
		&d.URL,
		&d.CriadoEm,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &d, nil
}
