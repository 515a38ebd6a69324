package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	httpmiddleware "github.com/jusgestao/api/internal/http/middleware"
	"github.com/jusgestao/api/internal/service"
)

const refreshCookieName = "refresh_token"

// Health responde liveness simples.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Ready verifica dependências antes de declarar prontidão.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.pool.Ping(ctx); err != nil {
		WriteError(w, http.StatusServiceUnavailable, "INTERNAL", "banco indisponível", nil)
		return
	}
	if err := h.redis.Ping(ctx).Err(); err != nil {
		WriteError(w, http.StatusServiceUnavailable, "INTERNAL", "redis indisponível", nil)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}

// Login autentica advogado por e-mail e senha.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Email string `json:"email"`
		Senha string `json:"senha"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		WriteError(w, http.StatusBadRequest, "VALIDATION", "JSON inválido", nil)
		return
	}

	payload.Email = strings.TrimSpace(strings.ToLower(payload.Email))
	if payload.Email == "" || payload.Senha == "" {
		WriteError(w, http.StatusBadRequest, "VALIDATION", "e-mail e senha obrigatórios", nil)
		return
	}

	result, err := h.authService.Login(r.Context(), payload.Email, payload.Senha)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			WriteError(w, http.StatusUnauthorized, "AUTH", "credenciais inválidas", nil)
		case errors.Is(err, service.ErrAccountDisabled):
			WriteError(w, http.StatusForbidden, "AUTH", "conta desativada", nil)
		default:
			WriteError(w, http.StatusInternalServerError, "INTERNAL", "falha no login", nil)
		}
		return
	}

	h.setRefreshCookie(w, result.RefreshToken, result.RefreshExpiry)
	WriteJSON(w, http.StatusOK, map[string]any{
		"access_token":  result.AccessToken,
		"refresh_token": result.RefreshToken,
		"usuario":       result.Profile,
	})
}

// Refresh rotaciona o refresh token vindo do cookie ou do corpo.
func (h *Handler) Refresh(w http.ResponseWriter, r *http.Request) {
	raw := h.refreshTokenFrom(r)
	if raw == "" {
		WriteError(w, http.StatusUnauthorized, "AUTH", "refresh token ausente", nil)
		return
	}

	result, err := h.authService.Refresh(r.Context(), raw)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRefreshInvalid):
			WriteError(w, http.StatusUnauthorized, "AUTH", "refresh inválido ou expirado", nil)
		case errors.Is(err, service.ErrAccountDisabled):
			WriteError(w, http.StatusForbidden, "AUTH", "conta desativada", nil)
		default:
			WriteError(w, http.StatusInternalServerError, "INTERNAL", "falha ao renovar sessão", nil)
		}
		return
	}

	h.setRefreshCookie(w, result.RefreshToken, result.RefreshExpiry)
	WriteJSON(w, http.StatusOK, map[string]any{
		"access_token":  result.AccessToken,
		"refresh_token": result.RefreshToken,
		"usuario":       result.Profile,
	})
}

// Logout revoga o refresh token e limpa o cookie.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if raw := h.refreshTokenFrom(r); raw != "" {
		_ = h.authService.Logout(r.Context(), raw)
	}

	h.setRefreshCookie(w, "", time.Unix(0, 0))
	WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Me devolve o perfil do usuário autenticado.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	id, ok := httpmiddleware.GetSubjectUUID(r.Context())
	if !ok {
		WriteError(w, http.StatusUnauthorized, "AUTH", "identificação inválida", nil)
		return
	}

	profile, err := h.authService.GetProfile(r.Context(), id)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "INTERNAL", "não foi possível carregar perfil", nil)
		return
	}

	WriteJSON(w, http.StatusOK, profile)
}

func (h *Handler) refreshTokenFrom(r *http.Request) string {
	var payload struct {
		RefreshToken string `json:"refresh_token"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err == nil && payload.RefreshToken != "" {
		return payload.RefreshToken
	}
	if cookie, err := r.Cookie(refreshCookieName); err == nil {
		return cookie.Value
	}
	return ""
}

func (h *Handler) setRefreshCookie(w http.ResponseWriter, value string, expiry time.Time) {
	cookie := &http.Cookie{
		Name:     refreshCookieName,
		Value:    value,
		Path:     "/auth",
		Expires:  expiry,
		HttpOnly: true,
		Secure:   !h.devCookies,
		SameSite: http.SameSiteStrictMode,
	}
	if h.devCookies {
		cookie.SameSite = http.SameSiteLaxMode
	}
	http.SetCookie(w, cookie)
}
