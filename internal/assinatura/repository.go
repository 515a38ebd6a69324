package assinatura

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository provê acesso à tabela de assinaturas.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository cria instância do repositório.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

const colunas = "usuario_id, gateway_cliente_id, gateway_assinatura_id, plano, status, expira_em, atualizado_em"

// Get busca a assinatura do usuário.
func (r *Repository) Get(ctx context.Context, usuarioID uuid.UUID) (*Assinatura, error) {
	query := `SELECT ` + colunas + ` FROM assinaturas WHERE usuario_id = $1`
	return scan(r.pool.QueryRow(ctx, query, usuarioID))
}

// Upsert grava o estado atual da assinatura do usuário.
func (r *Repository) Upsert(ctx context.Context, a Assinatura) (*Assinatura, error) {
	query := `
        INSERT INTO assinaturas (usuario_id, gateway_cliente_id, gateway_assinatura_id, plano, status, expira_em, atualizado_em)
        VALUES ($1, $2, $3, $4, $5, $6, now())
        ON CONFLICT (usuario_id) DO UPDATE SET
            gateway_cliente_id = EXCLUDED.gateway_cliente_id,
            gateway_assinatura_id = EXCLUDED.gateway_assinatura_id,
            plano = EXCLUDED.plano,
            status = EXCLUDED.status,
            expira_em = EXCLUDED.expira_em,
            atualizado_em = now()
        RETURNING ` + colunas

	row := r.pool.QueryRow(ctx, query,
		a.UsuarioID,
		a.GatewayClienteID,
		a.GatewayAssinaturaID,
		a.Plano,
		a.Status,
		a.ExpiraEm,
	)
	return scan(row)
}

func scan(row pgx.Row) (*Assinatura, error) {
	var a Assinatura
	err := row.Scan(
		&a.UsuarioID,
		&a.GatewayClienteID,
		&a.GatewayAssinaturaID,
		&a.Plano,
		&a.Status,
		&a.ExpiraEm,
		&a.AtualizadoEm,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSemAssinatura
		}
		return nil, err
	}
	return &a, nil
}
