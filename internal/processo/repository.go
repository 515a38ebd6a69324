package processo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository provê acesso à tabela de processos.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository cria instância do repositório.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

const colunas = "id, usuario_id, cliente_id, numero_processo, vara, comarca, area, fase, valor_causa_centavos, status, segredo_justica, criado_em, atualizado_em"

// Create insere um novo processo.
func (r *Repository) Create(ctx context.Context, input CreateInput) (*Processo, error) {
	query := `
        INSERT INTO processos (usuario_id, cliente_id, numero_processo, vara, comarca, area, fase, valor_causa_centavos, segredo_justica)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        RETURNING ` + colunas

	row := r.pool.QueryRow(ctx, query,
		input.UsuarioID,
		input.ClienteID,
		strings.TrimSpace(input.NumeroProcesso),
		input.Vara,
		input.Comarca,
		input.Area,
		input.Fase,
		input.ValorCausaCentavos,
		input.SegredoJustica,
	)
	p, err := scan(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, ErrNumeroEmUso
		}
		return nil, err
	}
	return p, nil
}

// Get busca um processo do usuário.
func (r *Repository) Get(ctx context.Context, usuarioID, id uuid.UUID) (*Processo, error) {
	query := `SELECT ` + colunas + ` FROM processos WHERE id = $1 AND usuario_id = $2`
	return scan(r.pool.QueryRow(ctx, query, id, usuarioID))
}

// List lista processos do usuário.
func (r *Repository) List(ctx context.Context, usuarioID uuid.UUID, filter Filter) ([]Processo, error) {
	query := `SELECT ` + colunas + ` FROM processos WHERE usuario_id = $1`
	args := []any{usuarioID}
	idx := 2

	if filter.Status != "" {
		query += fmt.Sprintf(" AND status = $%d", idx)
		args = append(args, filter.Status)
		idx++
	}
	if busca := strings.TrimSpace(filter.Busca); busca != "" {
		query += fmt.Sprintf(" AND (numero_processo ILIKE $%d OR comarca ILIKE $%d)", idx, idx)
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

	query += fmt.Sprintf(" ORDER BY criado_em DESC LIMIT $%d OFFSET $%d", idx, idx+1)
	args = append(args, limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var processos []Processo
	for rows.Next() {
		p, err := scan(rows)
		if err != nil {
			return nil, err
		}
		processos = append(processos, *p)
	}
	return processos, rows.Err()
}

// Update aplica alterações parciais.
func (r *Repository) Update(ctx context.Context, input UpdateInput) (*Processo, error) {
	query := `
        UPDATE processos SET
            cliente_id = COALESCE($3, cliente_id),
            vara = COALESCE($4, vara),
            comarca = COALESCE($5, comarca),
            area = COALESCE($6, area),
            fase = COALESCE($7, fase),
            valor_causa_centavos = COALESCE($8, valor_causa_centavos),
            status = COALESCE($9, status),
            segredo_justica = COALESCE($10, segredo_justica),
            atualizado_em = now()
        WHERE id = $1 AND usuario_id = $2
        RETURNING ` + colunas

	row := r.pool.QueryRow(ctx, query,
		input.ID,
		input.UsuarioID,
		input.ClienteID,
		input.Vara,
		input.Comarca,
		input.Area,
		input.Fase,
		input.ValorCausaCentavos,
		input.Status,
		input.SegredoJustica,
	)
	return scan(row)
}

// Delete remove o processo do usuário.
func (r *Repository) Delete(ctx context.Context, usuarioID, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM processos WHERE id = $1 AND usuario_id = $2`, id, usuarioID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scan(row pgx.Row) (*Processo, error) {
	var p Processo
	err := row.Scan(
		&p.ID,
		&p.UsuarioID,
		&p.ClienteID,
		&p.NumeroProcesso,
		&p.Vara,
		&p.Comarca,
		&p.Area,
		&p.Fase,
		&p.ValorCausaCentavos,
		&p.Status,
		&p.SegredoJustica,
		&p.CriadoEm,
		&p.AtualizadoEm,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}
