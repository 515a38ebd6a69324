package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/jusgestao/api/internal/financeiro"
)

// ListLancamentos lista lançamentos do usuário.
func (h *Handler) ListLancamentos(w http.ResponseWriter, r *http.Request) {
	usuarioID, ok := h.usuario(w, r)
	if !ok {
		return
	}

	filter := financeiro.Filter{
		Tipo:   strings.TrimSpace(r.URL.Query().Get("tipo")),
		Limit:  queryInt(r, "limit"),
		Offset: queryInt(r, "offset"),
	}
	if pagoStr := strings.TrimSpace(r.URL.Query().Get("pago")); pagoStr != "" {
		if pago, err := strconv.ParseBool(pagoStr); err == nil {
			filter.Pago = &pago
		}
	}

	lancamentos, err := h.financeiro.List(r.Context(), usuarioID, filter)
	if err != nil {
		if errors.Is(err, financeiro.ErrTipoInvalido) {
			WriteError(w, http.StatusBadRequest, "VALIDATION", "tipo inválido", nil)
			return
		}
		WriteError(w, http.StatusInternalServerError, "INTERNAL", "não foi possível listar lançamentos", nil)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{"lancamentos": lancamentos})
}

// CreateLancamento cadastra um lançamento.
func (h *Handler) CreateLancamento(w http.ResponseWriter, r *http.Request) {
	usuarioID, ok := h.usuario(w, r)
	if !ok {
		return
	}

	var payload struct {
		ProcessoID    *string    `json:"processo_id"`
		Descricao     string     `json:"descricao"`
		Tipo          string     `json:"tipo"`
		ValorCentavos int64      `json:"valor_centavos"`
		Vencimento    *time.Time `json:"vencimento"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		WriteError(w, http.StatusBadRequest, "VALIDATION", "JSON inválido", nil)
		return
	}

	processoID, err := parseUUIDRef(payload.ProcessoID)
	if err != nil {
		WriteError(w, http.StatusBadRequest, "VALIDATION", "processo_id inválido", nil)
		return
	}

	novo, err := h.financeiro.Create(r.Context(), financeiro.CreateInput{
		UsuarioID:     usuarioID,
		ProcessoID:    processoID,
		Descricao:     payload.Descricao,
		Tipo:          payload.Tipo,
		ValorCentavos: payload.ValorCentavos,
		Vencimento:    payload.Vencimento,
	})
	if err != nil {
		WriteError(w, http.StatusBadRequest, "VALIDATION", err.Error(), nil)
		return
	}

	WriteJSON(w, http.StatusCreated, novo)
}

// MarcarLancamentoPago quita ou reabre um lançamento.
func (h *Handler) MarcarLancamentoPago(w http.ResponseWriter, r *http.Request) {
	usuarioID, ok := h.usuario(w, r)
	if !ok {
		return
	}

	id, err := idParam(r)
	if err != nil {
		WriteError(w, http.StatusBadRequest, "VALIDATION", "id inválido", nil)
		return
	}

	pago := true
	var payload struct {
		Pago *bool `json:"pago"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err == nil && payload.Pago != nil {
		pago = *payload.Pago
	}

	if err := h.financeiro.MarcarPago(r.Context(), usuarioID, id, pago); err != nil {
		if errors.Is(err, financeiro.ErrNotFound) {
			WriteError(w, http.StatusNotFound, "NOT_FOUND", "lançamento não encontrado", nil)
			return
		}
		WriteError(w, http.StatusInternalServerError, "INTERNAL", "não foi possível atualizar lançamento", nil)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]bool{"pago": pago})
}

// DeleteLancamento remove um lançamento.
func (h *Handler) DeleteLancamento(w http.ResponseWriter, r *http.Request) {
	usuarioID, ok := h.usuario(w, r)
	if !ok {
		return
	}

	id, err := idParam(r)
	if err != nil {
		WriteError(w, http.StatusBadRequest, "VALIDATION", "id inválido", nil)
		return
	}

	if err := h.financeiro.Delete(r.Context(), usuarioID, id); err != nil {
		if errors.Is(err, financeiro.ErrNotFound) {
			WriteError(w, http.StatusNotFound, "NOT_FOUND", "lançamento não encontrado", nil)
			return
		}
		WriteError(w, http.StatusInternalServerError, "INTERNAL", "não foi possível remover lançamento", nil)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]bool{"removido": true})
}

// ResumoFinanceiro devolve o consolidado do mês.
func (h *Handler) ResumoFinanceiro(w http.ResponseWriter, r *http.Request) {
	usuarioID, ok := h.usuario(w, r)
	if !ok {
		return
	}

	resumo, err := h.financeiro.ResumoMes(r.Context(), usuarioID, queryInt(r, "ano"), queryInt(r, "mes"))
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "INTERNAL", "não foi possível gerar resumo", nil)
		return
	}

	WriteJSON(w, http.StatusOK, resumo)
}
