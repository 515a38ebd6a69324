package tarefa

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository provê acesso à tabela de tarefas.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository cria instância do repositório.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

const colunas = "id, usuario_id, processo_id, responsavel_id, titulo, descricao, prioridade, status, prazo, concluida_em, criado_em"

// Create insere uma nova tarefa.
func (r *Repository) Create(ctx context.Context, input CreateInput) (*Tarefa, error) {
	query := `
        INSERT INTO tarefas (usuario_id, processo_id, responsavel_id, titulo, descricao, prioridade, prazo)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING ` + colunas

	row := r.pool.QueryRow(ctx, query,
		input.UsuarioID,
		input.ProcessoID,
		input.ResponsavelID,
		input.Titulo,
		input.Descricao,
		input.Prioridade,
		input.Prazo,
	)
	return scan(row)
}

// Get busca uma tarefa do usuário.
func (r *Repository) Get(ctx context.Context, usuarioID, id uuid.UUID) (*Tarefa, error) {
	query := `SELECT ` + colunas + ` FROM tarefas WHERE id = $1 AND usuario_id = $2`
	return scan(r.pool.QueryRow(ctx, query, id, usuarioID))
}

// List lista tarefas do usuário, pendentes primeiro e por prazo.
func (r *Repository) List(ctx context.Context, usuarioID uuid.UUID, filter Filter) ([]Tarefa, error) {
	query := `SELECT ` + colunas + ` FROM tarefas WHERE usuario_id = $1`
	args := []any{usuarioID}
	idx := 2

	if filter.Status != "" {
		query += fmt.Sprintf(" AND status = $%d", idx)
		args = append(args, filter.Status)
		idx++
	}
	if filter.ProcessoID != nil {
		query += fmt.Sprintf(" AND processo_id = $%d", idx)
		args = append(args, *filter.ProcessoID)
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

	query += fmt.Sprintf(" ORDER BY (status = 'concluida'), prazo NULLS LAST, criado_em DESC LIMIT $%d OFFSET $%d", idx, idx+1)
	args = append(args, limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tarefas []Tarefa
	for rows.Next() {
		t, err := scan(rows)
		if err != nil {
			return nil, err
		}
		tarefas = append(tarefas, *t)
	}
	return tarefas, rows.Err()
}

// Update aplica alterações parciais. A conclusão carimba concluida_em
// uma única vez e a reabertura limpa o carimbo.
func (r *Repository) Update(ctx context.Context, input UpdateInput) (*Tarefa, error) {
	query := `
        UPDATE tarefas SET
            processo_id = COALESCE($3, processo_id),
            responsavel_id = COALESCE($4, responsavel_id),
            titulo = COALESCE($5, titulo),
            descricao = COALESCE($6, descricao),
            prioridade = COALESCE($7, prioridade),
            status = COALESCE($8, status),
            prazo = COALESCE($9, prazo),
            concluida_em = CASE
                WHEN COALESCE($8, status) = 'concluida' THEN COALESCE(concluida_em, now())
                ELSE NULL
            END
        WHERE id = $1 AND usuario_id = $2
        RETURNING ` + colunas

	row := r.pool.QueryRow(ctx, query,
		input.ID,
		input.UsuarioID,
		input.ProcessoID,
		input.ResponsavelID,
		input.Titulo,
		input.Descricao,
		input.Prioridade,
		input.Status,
		input.Prazo,
	)
	return scan(row)
}

// Delete remove a tarefa do usuário.
func (r *Repository) Delete(ctx context.Context, usuarioID, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM tarefas WHERE id = $1 AND usuario_id = $2`, id, usuarioID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scan(row pgx.Row) (*Tarefa, error) {
	var t Tarefa
	err := row.Scan(
		&t.ID,
		&t.UsuarioID,
		&t.ProcessoID,
		&t.ResponsavelID,
		&t.Titulo,
		&t.Descricao,
		&t.Prioridade,
		&t.Status,
		&t.Prazo,
		&t.ConcluidaEm,
		&t.CriadoEm,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}
