package http

import (
	"errors"
	"net/http"

	"github.com/jusgestao/api/internal/assinatura"
	httpmiddleware "github.com/jusgestao/api/internal/http/middleware"
)

// StatusAssinatura devolve o estado atual da assinatura do usuário.
func (h *Handler) StatusAssinatura(w http.ResponseWriter, r *http.Request) {
	usuarioID, ok := h.usuario(w, r)
	if !ok {
		return
	}

	a, err := h.assinaturas.Status(r.Context(), usuarioID)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "INTERNAL", "não foi possível consultar assinatura", nil)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{
		"assinatura": a,
		"vigente":    a.Vigente(),
	})
}

// CheckoutAssinatura abre uma sessão de pagamento no provedor.
func (h *Handler) CheckoutAssinatura(w http.ResponseWriter, r *http.Request) {
	usuarioID, ok := h.usuario(w, r)
	if !ok {
		return
	}

	profile, err := h.authService.GetProfile(r.Context(), usuarioID)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "INTERNAL", "não foi possível carregar perfil", nil)
		return
	}

	url, err := h.assinaturas.IniciarCheckout(r.Context(), usuarioID, profile.Email)
	if err != nil {
		WriteError(w, http.StatusServiceUnavailable, "INTERNAL", "não foi possível iniciar o pagamento", nil)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]string{"checkout_url": url})
}

// SincronizarAssinatura atualiza o estado local a partir do provedor.
func (h *Handler) SincronizarAssinatura(w http.ResponseWriter, r *http.Request) {
	usuarioID, ok := httpmiddleware.GetSubjectUUID(r.Context())
	if !ok {
		WriteError(w, http.StatusUnauthorized, "AUTH", "identificação inválida", nil)
		return
	}

	a, err := h.assinaturas.Sincronizar(r.Context(), usuarioID)
	if err != nil {
		if errors.Is(err, assinatura.ErrSemAssinatura) {
			WriteError(w, http.StatusNotFound, "NOT_FOUND", "assinatura não encontrada", nil)
			return
		}
		WriteError(w, http.StatusInternalServerError, "INTERNAL", "não foi possível sincronizar assinatura", nil)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{
		"assinatura": a,
		"vigente":    a.Vigente(),
	})
}
