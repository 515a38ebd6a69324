package agenda

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository provê acesso à tabela de eventos de agenda.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository cria instância do repositório.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

const colunas = "id, usuario_id, processo_id, titulo, tipo, local, inicio, fim, criado_em"

// Create insere um novo evento.
func (r *Repository) Create(ctx context.Context, input CreateInput) (*Evento, error) {
	query := `
        INSERT INTO agenda_eventos (usuario_id, processo_id, titulo, tipo, local, inicio, fim)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING ` + colunas

	row := r.pool.QueryRow(ctx, query,
		input.UsuarioID,
		input.ProcessoID,
		input.Titulo,
		input.Tipo,
		input.Local,
		input.Inicio,
		input.Fim,
	)
	return scan(row)
}

// Get busca um evento do usuário.
func (r *Repository) Get(ctx context.Context, usuarioID, id uuid.UUID) (*Evento, error) {
	query := `SELECT ` + colunas + ` FROM agenda_eventos WHERE id = $1 AND usuario_id = $2`
	return scan(r.pool.QueryRow(ctx, query, id, usuarioID))
}

// ListByPeriodo lista eventos cujo início cai na janela, em ordem cronológica.
func (r *Repository) ListByPeriodo(ctx context.Context, usuarioID uuid.UUID, periodo Periodo) ([]Evento, error) {
	query := `SELECT ` + colunas + ` FROM agenda_eventos
        WHERE usuario_id = $1 AND inicio >= $2 AND inicio < $3
        ORDER BY inicio`

	rows, err := r.pool.Query(ctx, query, usuarioID, periodo.De, periodo.Ate)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var eventos []Evento
	for rows.Next() {
		e, err := scan(rows)
		if err != nil {
			return nil, err
		}
		eventos = append(eventos, *e)
	}
	return eventos, rows.Err()
}

// Update aplica alterações parciais.
func (r *Repository) Update(ctx context.Context, input UpdateInput) (*Evento, error) {
	query := `
        UPDATE agenda_eventos SET
            processo_id = COALESCE($3, processo_id),
            titulo = COALESCE($4, titulo),
            tipo = COALESCE($5, tipo),
            local = COALESCE($6, local),
            inicio = COALESCE($7, inicio),
            fim = COALESCE($8, fim)
        WHERE id = $1 AND usuario_id = $2
        RETURNING ` + colunas

	row := r.pool.QueryRow(ctx, query,
		input.ID,
		input.UsuarioID,
		input.ProcessoID,
		input.Titulo,
		input.Tipo,
		input.Local,
		input.Inicio,
		input.Fim,
	)
	return scan(row)
}

// Delete remove o evento do usuário.
func (r *Repository) Delete(ctx context.Context, usuarioID, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM agenda_eventos WHERE id = $1 AND usuario_id = $2`, id, usuarioID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scan(row pgx.Row) (*Evento, error) {
	var e Evento
	err := row.Scan(
		&e.ID,
		&e.UsuarioID,
		&e.ProcessoID,
		&e.Titulo,
		&e.Tipo,
		&e.Local,
		&e.Inicio,
		&e.Fim,
		&e.CriadoEm,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &e, nil
}
