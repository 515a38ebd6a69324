package repo

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository concentra acesso a usuários e tokens de refresh.
type Repository struct {
	pool *pgxpool.Pool
}

// New cria instância do repositório.
func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// GetUsuarioByEmail busca usuário pelo e-mail normalizado.
func (r *Repository) GetUsuarioByEmail(ctx context.Context, email string) (Usuario, error) {
	const query = `
        SELECT id, nome, email, senha_hash, oab, ativo, criado_em
        FROM usuarios
        WHERE lower(email) = lower($1)
    `

	var u Usuario
	err := r.pool.QueryRow(ctx, query, strings.TrimSpace(email)).Scan(
		&u.ID, &u.Nome, &u.Email, &u.SenhaHash, &u.OAB, &u.Ativo, &u.CriadoEm,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Usuario{}, ErrNotFound
		}
		return Usuario{}, err
	}
	return u, nil
}

// GetUsuarioByID busca usuário pelo identificador.
func (r *Repository) GetUsuarioByID(ctx context.Context, id uuid.UUID) (Usuario, error) {
	const query = `
        SELECT id, nome, email, senha_hash, oab, ativo, criado_em
        FROM usuarios
        WHERE id = $1
    `

	var u Usuario
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&u.ID, &u.Nome, &u.Email, &u.SenhaHash, &u.OAB, &u.Ativo, &u.CriadoEm,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Usuario{}, ErrNotFound
		}
		return Usuario{}, err
	}
	return u, nil
}

// CreateUsuario insere novo usuário e devolve o registro completo.
func (r *Repository) CreateUsuario(ctx context.Context, nome, email, senhaHash string, oab *string) (Usuario, error) {
	const query = `
        INSERT INTO usuarios (nome, email, senha_hash, oab)
        VALUES ($1, lower($2), $3, $4)
        RETURNING id, nome, email, senha_hash, oab, ativo, criado_em
    `

	var u Usuario
	err := r.pool.QueryRow(ctx, query, strings.TrimSpace(nome), strings.TrimSpace(email), senhaHash, oab).Scan(
		&u.ID, &u.Nome, &u.Email, &u.SenhaHash, &u.OAB, &u.Ativo, &u.CriadoEm,
	)
	if err != nil {
		return Usuario{}, err
	}
	return u, nil
}

// SaveRefreshToken persiste o hash de um refresh token.
func (r *Repository) SaveRefreshToken(ctx context.Context, usuarioID uuid.UUID, tokenHash string, expiracao time.Time) error {
	const query = `
        INSERT INTO tokens_refresh (usuario_id, token_hash, expiracao)
        VALUES ($1, $2, $3)
    `

	_, err := r.pool.Exec(ctx, query, usuarioID, tokenHash, expiracao)
	return err
}

// GetRefreshToken busca token válido (não revogado e não expirado).
func (r *Repository) GetRefreshToken(ctx context.Context, tokenHash string) (TokenRefresh, error) {
	const query = `
        SELECT id, usuario_id, token_hash, expiracao, revogado, criado_em
        FROM tokens_refresh
        WHERE token_hash = $1
          AND revogado = FALSE
          AND expiracao > now()
    `

	var t TokenRefresh
	err := r.pool.QueryRow(ctx, query, tokenHash).Scan(
		&t.ID, &t.UsuarioID, &t.TokenHash, &t.Expiracao, &t.Revogado, &t.CriadoEm,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return TokenRefresh{}, ErrNotFound
		}
		return TokenRefresh{}, err
	}
	return t, nil
}

// RevokeRefreshToken marca o token como revogado.
func (r *Repository) RevokeRefreshToken(ctx context.Context, tokenHash string) error {
	const query = `
        UPDATE tokens_refresh
        SET revogado = TRUE
        WHERE token_hash = $1
    `

	_, err := r.pool.Exec(ctx, query, tokenHash)
	return err
}
