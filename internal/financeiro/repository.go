package financeiro

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository provê acesso à tabela de lançamentos financeiros.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository cria instância do repositório.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

const colunas = "id, usuario_id, processo_id, descricao, tipo, valor_centavos, vencimento, pago, criado_em"

// Create insere um lançamento.
func (r *Repository) Create(ctx context.Context, input CreateInput) (*Lancamento, error) {
	query := `
        INSERT INTO lancamentos_financeiros (usuario_id, processo_id, descricao, tipo, valor_centavos, vencimento)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING ` + colunas

	row := r.pool.QueryRow(ctx, query,
		input.UsuarioID,
		input.ProcessoID,
		input.Descricao,
		input.Tipo,
		input.ValorCentavos,
		input.Vencimento,
	)
	return scan(row)
}

// List lista lançamentos do usuário.
func (r *Repository) List(ctx context.Context, usuarioID uuid.UUID, filter Filter) ([]Lancamento, error) {
	query := `SELECT ` + colunas + ` FROM lancamentos_financeiros WHERE usuario_id = $1`
	args := []any{usuarioID}
	idx := 2

	if filter.Tipo != "" {
		query += fmt.Sprintf(" AND tipo = $%d", idx)
		args = append(args, filter.Tipo)
		idx++
	}
	if filter.Pago != nil {
		query += fmt.Sprintf(" AND pago = $%d", idx)
		args = append(args, *filter.Pago)
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

	query += fmt.Sprintf(" ORDER BY vencimento NULLS LAST, criado_em DESC LIMIT $%d OFFSET $%d", idx, idx+1)
	args = append(args, limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lancamentos []Lancamento
	for rows.Next() {
		l, err := scan(rows)
		if err != nil {
			return nil, err
		}
		lancamentos = append(lancamentos, *l)
	}
	return lancamentos, rows.Err()
}

// MarcarPago registra ou desfaz a quitação.
func (r *Repository) MarcarPago(ctx context.Context, usuarioID, id uuid.UUID, pago bool) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE lancamentos_financeiros SET pago = $3 WHERE id = $1 AND usuario_id = $2`,
		id, usuarioID, pago)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete remove o lançamento do usuário.
func (r *Repository) Delete(ctx context.Context, usuarioID, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM lancamentos_financeiros WHERE id = $1 AND usuario_id = $2`, id, usuarioID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// ResumoMes consolida receitas, despesas e pendências do mês pelo vencimento.
func (r *Repository) ResumoMes(ctx context.Context, usuarioID uuid.UUID, ano, mes int) (Resumo, error) {
	inicio := time.Date(ano, time.Month(mes), 1, 0, 0, 0, 0, time.UTC)
	fim := inicio.AddDate(0, 1, 0)

	query := `
        SELECT
            COALESCE(SUM(valor_centavos) FILTER (WHERE tipo = 'receita'), 0),
            COALESCE(SUM(valor_centavos) FILTER (WHERE tipo = 'despesa'), 0),
            COALESCE(SUM(valor_centavos) FILTER (WHERE NOT pago), 0)
        FROM lancamentos_financeiros
        WHERE usuario_id = $1 AND vencimento >= $2 AND vencimento < $3`

	resumo := Resumo{Ano: ano, Mes: mes}
	err := r.pool.QueryRow(ctx, query, usuarioID, inicio, fim).Scan(
		&resumo.ReceitasCentavos,
		&resumo.DespesasCentavos,
		&resumo.PendentesCentavos,
	)
	if err != nil {
		return Resumo{}, err
	}
	resumo.SaldoCentavos = resumo.ReceitasCentavos - resumo.DespesasCentavos
	return resumo, nil
}

func scan(row pgx.Row) (*Lancamento, error) {
	var l Lancamento
	err := row.Scan(
		&l.ID,
		&l.UsuarioID,
		&l.ProcessoID,
		&l.Descricao,
		&l.Tipo,
		&l.ValorCentavos,
		&l.Vencimento,
		&l.Pago,
		&l.CriadoEm,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &l, nil
}
