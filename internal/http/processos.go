package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/jusgestao/api/internal/processo"
)

// ListProcessos lista processos do usuário.
func (h *Handler) ListProcessos(w http.ResponseWriter, r *http.Request) {
	usuarioID, ok := h.usuario(w, r)
	if !ok {
		return
	}

	filter := processo.Filter{
		Status: strings.TrimSpace(r.URL.Query().Get("status")),
		Busca:  r.URL.Query().Get("busca"),
		Limit:  queryInt(r, "limit"),
		Offset: queryInt(r, "offset"),
	}

	processos, err := h.processos.List(r.Context(), usuarioID, filter)
	if err != nil {
		if errors.Is(err, processo.ErrStatusInvalido) {
			WriteError(w, http.StatusBadRequest, "VALIDATION", "status inválido", nil)
			return
		}
		WriteError(w, http.StatusInternalServerError, "INTERNAL", "não foi possível listar processos", nil)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{"processos": processos})
}

type processoPayload struct {
	ClienteID          *string `json:"cliente_id"`
	NumeroProcesso     string  `json:"numero_processo"`
	Vara               *string `json:"vara"`
	Comarca            *string `json:"comarca"`
	Area               *string `json:"area"`
	Fase               *string `json:"fase"`
	ValorCausaCentavos *int64  `json:"valor_causa_centavos"`
	Status             *string `json:"status"`
	SegredoJustica     *bool   `json:"segredo_justica"`
}

func parseClienteID(raw *string) (*uuid.UUID, error) {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return nil, nil
	}
	parsed, err := uuid.Parse(strings.TrimSpace(*raw))
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

// CreateProcesso cadastra um processo.
func (h *Handler) CreateProcesso(w http.ResponseWriter, r *http.Request) {
	usuarioID, ok := h.usuario(w, r)
	if !ok {
		return
	}

	var payload processoPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		WriteError(w, http.StatusBadRequest, "VALIDATION", "JSON inválido", nil)
		return
	}

	clienteID, err := parseClienteID(payload.ClienteID)
	if err != nil {
		WriteError(w, http.StatusBadRequest, "VALIDATION", "cliente_id inválido", nil)
		return
	}

	segredo := false
	if payload.SegredoJustica != nil {
		segredo = *payload.SegredoJustica
	}

	novo, err := h.processos.Create(r.Context(), processo.CreateInput{
		UsuarioID:          usuarioID,
		ClienteID:          clienteID,
		NumeroProcesso:     payload.NumeroProcesso,
		Vara:               payload.Vara,
		Comarca:            payload.Comarca,
		Area:               payload.Area,
		Fase:               payload.Fase,
		ValorCausaCentavos: payload.ValorCausaCentavos,
		SegredoJustica:     segredo,
	})
	if err != nil {
		if errors.Is(err, processo.ErrNumeroEmUso) {
			WriteError(w, http.StatusConflict, "CONFLICT", "número de processo já cadastrado", nil)
			return
		}
		WriteError(w, http.StatusBadRequest, "VALIDATION", err.Error(), nil)
		return
	}

	WriteJSON(w, http.StatusCreated, novo)
}

// GetProcesso devolve um processo específico.
func (h *Handler) GetProcesso(w http.ResponseWriter, r *http.Request) {
	usuarioID, ok := h.usuario(w, r)
	if !ok {
		return
	}

	id, err := idParam(r)
	if err != nil {
		WriteError(w, http.StatusBadRequest, "VALIDATION", "id inválido", nil)
		return
	}

	p, err := h.processos.Get(r.Context(), usuarioID, id)
	if err != nil {
		if errors.Is(err, processo.ErrNotFound) {
			WriteError(w, http.StatusNotFound, "NOT_FOUND", "processo não encontrado", nil)
			return
		}
		WriteError(w, http.StatusInternalServerError, "INTERNAL", "não foi possível carregar processo", nil)
		return
	}

	WriteJSON(w, http.StatusOK, p)
}

// UpdateProcesso altera um processo.
func (h *Handler) UpdateProcesso(w http.ResponseWriter, r *http.Request) {
	usuarioID, ok := h.usuario(w, r)
	if !ok {
		return
	}

	id, err := idParam(r)
	if err != nil {
		WriteError(w, http.StatusBadRequest, "VALIDATION", "id inválido", nil)
		return
	}

	var payload processoPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		WriteError(w, http.StatusBadRequest, "VALIDATION", "JSON inválido", nil)
		return
	}

	clienteID, err := parseClienteID(payload.ClienteID)
	if err != nil {
		WriteError(w, http.StatusBadRequest, "VALIDATION", "cliente_id inválido", nil)
		return
	}

	atualizado, err := h.processos.Update(r.Context(), processo.UpdateInput{
		ID:                 id,
		UsuarioID:          usuarioID,
		ClienteID:          clienteID,
		Vara:               payload.Vara,
		Comarca:            payload.Comarca,
		Area:               payload.Area,
		Fase:               payload.Fase,
		ValorCausaCentavos: payload.ValorCausaCentavos,
		Status:             payload.Status,
		SegredoJustica:     payload.SegredoJustica,
	})
	if err != nil {
		switch {
		case errors.Is(err, processo.ErrNotFound):
			WriteError(w, http.StatusNotFound, "NOT_FOUND", "processo não encontrado", nil)
		case errors.Is(err, processo.ErrStatusInvalido):
			WriteError(w, http.StatusBadRequest, "VALIDATION", "status inválido", nil)
		default:
			WriteError(w, http.StatusInternalServerError, "INTERNAL", "não foi possível atualizar processo", nil)
		}
		return
	}

	WriteJSON(w, http.StatusOK, atualizado)
}

// DeleteProcesso remove um processo.
func (h *Handler) DeleteProcesso(w http.ResponseWriter, r *http.Request) {
	usuarioID, ok := h.usuario(w, r)
	if !ok {
		return
	}

	id, err := idParam(r)
	if err != nil {
		WriteError(w, http.StatusBadRequest, "VALIDATION", "id inválido", nil)
		return
	}

	if err := h.processos.Delete(r.Context(), usuarioID, id); err != nil {
		if errors.Is(err, processo.ErrNotFound) {
			WriteError(w, http.StatusNotFound, "NOT_FOUND", "processo não encontrado", nil)
			return
		}
		WriteError(w, http.StatusInternalServerError, "INTERNAL", "não foi possível remover processo", nil)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]bool{"removido": true})
}
