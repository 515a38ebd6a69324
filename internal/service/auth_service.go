package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/jusgestao/api/internal/auth"
	"github.com/jusgestao/api/internal/repo"
)

var (
	ErrInvalidCredentials = errors.New("credenciais inválidas")
	ErrAccountDisabled    = errors.New("conta desativada")
	ErrRefreshInvalid     = errors.New("refresh inválido")
)

// Profile resume o usuário autenticado para o cliente.
type Profile struct {
	ID    uuid.UUID `json:"id"`
	Nome  string    `json:"nome"`
	Email string    `json:"email"`
	OAB   *string   `json:"oab,omitempty"`
}

// LoginResult agrega tokens e perfil retornados em logins e refreshes.
type LoginResult struct {
	AccessToken   string
	RefreshToken  string
	RefreshExpiry time.Time
	Profile       Profile
}

// AuthService implementa login com senha e rotação de refresh tokens.
type AuthService struct {
	repo       *repo.Repository
	jwt        *auth.JWTManager
	refreshTTL time.Duration
}

// NewAuthService cria o serviço de autenticação.
func NewAuthService(repository *repo.Repository, jwtManager *auth.JWTManager, refreshTTL time.Duration) *AuthService {
	return &AuthService{repo: repository, jwt: jwtManager, refreshTTL: refreshTTL}
}

// JWT expõe o gerenciador para o middleware de autenticação.
func (s *AuthService) JWT() *auth.JWTManager {
	return s.jwt
}

// Login autentica advogado por e-mail e senha.
func (s *AuthService) Login(ctx context.Context, email, senha string) (*LoginResult, error) {
	user, err := s.repo.GetUsuarioByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	ok, err := auth.Verify(senha, user.SenhaHash)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrInvalidCredentials
	}

	if !user.Ativo {
		return nil, ErrAccountDisabled
	}

	return s.issueTokens(ctx, user)
}

// Refresh valida o token atual, revoga e emite novo par de tokens.
func (s *AuthService) Refresh(ctx context.Context, rawToken string) (*LoginResult, error) {
	hash := auth.HashRefreshToken(rawToken)

	stored, err := s.repo.GetRefreshToken(ctx, hash)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrRefreshInvalid
		}
		return nil, err
	}

	user, err := s.repo.GetUsuarioByID(ctx, stored.UsuarioID)
	if err != nil {
		return nil, ErrRefreshInvalid
	}
	if !user.Ativo {
		return nil, ErrAccountDisabled
	}

	if err := s.repo.RevokeRefreshToken(ctx, hash); err != nil {
		return nil, err
	}

	return s.issueTokens(ctx, user)
}

// Logout revoga o refresh token informado.
func (s *AuthService) Logout(ctx context.Context, rawToken string) error {
	return s.repo.RevokeRefreshToken(ctx, auth.HashRefreshToken(rawToken))
}

// GetProfile carrega o perfil do usuário autenticado.
func (s *AuthService) GetProfile(ctx context.Context, id uuid.UUID) (Profile, error) {
	user, err := s.repo.GetUsuarioByID(ctx, id)
	if err != nil {
		return Profile{}, err
	}
	return Profile{ID: user.ID, Nome: user.Nome, Email: user.Email, OAB: user.OAB}, nil
}

func (s *AuthService) issueTokens(ctx context.Context, user repo.Usuario) (*LoginResult, error) {
	accessToken, _, err := s.jwt.GenerateAccessToken(user.ID.String(), user.Nome)
	if err != nil {
		return nil, err
	}

	raw, hashed, err := auth.GenerateRefreshToken()
	if err != nil {
		return nil, err
	}

	expiry := time.Now().Add(s.refreshTTL)
	if err := s.repo.SaveRefreshToken(ctx, user.ID, hashed, expiry); err != nil {
		return nil, err
	}

	return &LoginResult{
		AccessToken:   accessToken,
		RefreshToken:  raw,
		RefreshExpiry: expiry,
		Profile:       Profile{ID: user.ID, Nome: user.Nome, Email: user.Email, OAB: user.OAB},
	}, nil
}
