package cliente

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository provê acesso à tabela de clientes.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository cria instância do repositório.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

const colunas = "id, usuario_id, nome, cpf_cnpj, email, telefone, endereco, observacoes, criado_em, atualizado_em"

// Create insere um novo cliente.
func (r *Repository) Create(ctx context.Context, input CreateInput) (*Cliente, error) {
	query := `
        INSERT INTO clientes (usuario_id, nome, cpf_cnpj, email, telefone, endereco, observacoes)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING ` + colunas

	row := r.pool.QueryRow(ctx, query,
		input.UsuarioID,
		strings.TrimSpace(input.Nome),
		input.CPFCNPJ,
		input.Email,
		input.Telefone,
		input.Endereco,
		input.Observacoes,
	)
	return scan(row)
}

// Get busca um cliente do usuário.
func (r *Repository) Get(ctx context.Context, usuarioID, id uuid.UUID) (*Cliente, error) {
	query := `SELECT ` + colunas + ` FROM clientes WHERE id = $1 AND usuario_id = $2`
	return scan(r.pool.QueryRow(ctx, query, id, usuarioID))
}

// List lista clientes do usuário com busca textual simples.
func (r *Repository) List(ctx context.Context, usuarioID uuid.UUID, filter Filter) ([]Cliente, error) {
	query := `SELECT ` + colunas + ` FROM clientes WHERE usuario_id = $1`
	args := []any{usuarioID}
	idx := 2

	if busca := strings.TrimSpace(filter.Busca); busca != "" {
		query += fmt.Sprintf(" AND (nome ILIKE $%d OR cpf_cnpj ILIKE $%d)", idx, idx)
		args = append(args, "%"+busca+"%")
		idx++
	}

	limit := filter.Limit
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}

	query += fmt.Sprintf(" ORDER BY nome LIMIT $%d OFFSET $%d", idx, idx+1)
	args = append(args, limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var clientes []Cliente
	for rows.Next() {
		c, err := scan(rows)
		if err != nil {
			return nil, err
		}
		clientes = append(clientes, *c)
	}
	return clientes, rows.Err()
}

// Update aplica alterações parciais.
func (r *Repository) Update(ctx context.Context, input UpdateInput) (*Cliente, error) {
	query := `
        UPDATE clientes SET
            nome = COALESCE($3, nome),
            cpf_cnpj = COALESCE($4, cpf_cnpj),
            email = COALESCE($5, email),
            telefone = COALESCE($6, telefone),
            endereco = COALESCE($7, endereco),
            observacoes = COALESCE($8, observacoes),
            atualizado_em = now()
        WHERE id = $1 AND usuario_id = $2
        RETURNING ` + colunas

	row := r.pool.QueryRow(ctx, query,
		input.ID,
		input.UsuarioID,
		input.Nome,
		input.CPFCNPJ,
		input.Email,
		input.Telefone,
		input.Endereco,
		input.Observacoes,
	)
	return scan(row)
}

// Delete remove o cliente do usuário.
func (r *Repository) Delete(ctx context.Context, usuarioID, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM clientes WHERE id = $1 AND usuario_id = $2`, id, usuarioID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scan(row pgx.Row) (*Cliente, error) {
	var c Cliente
	err := row.Scan(
		&c.ID,
		&c.UsuarioID,
		&c.Nome,
		&c.CPFCNPJ,
		&c.Email,
		&c.Telefone,
		&c.Endereco,
		&c.Observacoes,
		&c.CriadoEm,
		&c.AtualizadoEm,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}
