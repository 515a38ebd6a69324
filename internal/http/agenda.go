package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/jusgestao/api/internal/agenda"
)

// ListAgenda lista eventos por dia ou por período.
// Aceita ?dia=2026-09-01 ou ?de=...&ate=... em RFC 3339.
func (h *Handler) ListAgenda(w http.ResponseWriter, r *http.Request) {
	usuarioID, ok := h.usuario(w, r)
	if !ok {
		return
	}

	query := r.URL.Query()

	if diaStr := strings.TrimSpace(query.Get("dia")); diaStr != "" {
		dia, err := time.Parse("2006-01-02", diaStr)
		if err != nil {
			WriteError(w, http.StatusBadRequest, "VALIDATION", "dia inválido, use AAAA-MM-DD", nil)
			return
		}
		eventos, err := h.agenda.ListDia(r.Context(), usuarioID, dia)
		if err != nil {
			WriteError(w, http.StatusInternalServerError, "INTERNAL", "não foi possível listar agenda", nil)
			return
		}
		WriteJSON(w, http.StatusOK, map[string]any{"eventos": eventos})
		return
	}

	de, err := time.Parse(time.RFC3339, strings.TrimSpace(query.Get("de")))
	if err != nil {
		WriteError(w, http.StatusBadRequest, "VALIDATION", "parâmetro de inválido", nil)
		return
	}
	ate, err := time.Parse(time.RFC3339, strings.TrimSpace(query.Get("ate")))
	if err != nil {
		WriteError(w, http.StatusBadRequest, "VALIDATION", "parâmetro ate inválido", nil)
		return
	}

	eventos, err := h.agenda.ListPeriodo(r.Context(), usuarioID, agenda.Periodo{De: de, Ate: ate})
	if err != nil {
		if errors.Is(err, agenda.ErrPeriodoInvalido) {
			WriteError(w, http.StatusBadRequest, "VALIDATION", "período inválido", nil)
			return
		}
		WriteError(w, http.StatusInternalServerError, "INTERNAL", "não foi possível listar agenda", nil)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{"eventos": eventos})
}

type eventoPayload struct {
	ProcessoID *string    `json:"processo_id"`
	Titulo     *string    `json:"titulo"`
	Tipo       *string    `json:"tipo"`
	Local      *string    `json:"local"`
	Inicio     *time.Time `json:"inicio"`
	Fim        *time.Time `json:"fim"`
}

// CreateEvento cadastra um evento na agenda.
func (h *Handler) CreateEvento(w http.ResponseWriter, r *http.Request) {
	usuarioID, ok := h.usuario(w, r)
	if !ok {
		return
	}

	var payload eventoPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		WriteError(w, http.StatusBadRequest, "VALIDATION", "JSON inválido", nil)
		return
	}

	processoID, err := parseUUIDRef(payload.ProcessoID)
	if err != nil {
		WriteError(w, http.StatusBadRequest, "VALIDATION", "processo_id inválido", nil)
		return
	}

	input := agenda.CreateInput{
		UsuarioID:  usuarioID,
		ProcessoID: processoID,
		Local:      payload.Local,
		Fim:        payload.Fim,
	}
	if payload.Titulo != nil {
		input.Titulo = *payload.Titulo
	}
	if payload.Tipo != nil {
		input.Tipo = *payload.Tipo
	}
	if payload.Inicio != nil {
		input.Inicio = *payload.Inicio
	}

	novo, err := h.agenda.Create(r.Context(), input)
	if err != nil {
		WriteError(w, http.StatusBadRequest, "VALIDATION", err.Error(), nil)
		return
	}

	WriteJSON(w, http.StatusCreated, novo)
}

// UpdateEvento altera um evento.
func (h *Handler) UpdateEvento(w http.ResponseWriter, r *http.Request) {
	usuarioID, ok := h.usuario(w, r)
	if !ok {
		return
	}

	id, err := idParam(r)
	if err != nil {
		WriteError(w, http.StatusBadRequest, "VALIDATION", "id inválido", nil)
		return
	}

	var payload eventoPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		WriteError(w, http.StatusBadRequest, "VALIDATION", "JSON inválido", nil)
		return
	}

	processoID, err := parseUUIDRef(payload.ProcessoID)
	if err != nil {
		WriteError(w, http.StatusBadRequest, "VALIDATION", "processo_id inválido", nil)
		return
	}

	atualizado, err := h.agenda.Update(r.Context(), agenda.UpdateInput{
		ID:         id,
		UsuarioID:  usuarioID,
		ProcessoID: processoID,
		Titulo:     payload.Titulo,
		Tipo:       payload.Tipo,
		Local:      payload.Local,
		Inicio:     payload.Inicio,
		Fim:        payload.Fim,
	})
	if err != nil {
		switch {
		case errors.Is(err, agenda.ErrNotFound):
			WriteError(w, http.StatusNotFound, "NOT_FOUND", "evento não encontrado", nil)
		case errors.Is(err, agenda.ErrTipoInvalido):
			WriteError(w, http.StatusBadRequest, "VALIDATION", "tipo inválido", nil)
		default:
			WriteError(w, http.StatusInternalServerError, "INTERNAL", "não foi possível atualizar evento", nil)
		}
		return
	}

	WriteJSON(w, http.StatusOK, atualizado)
}

// DeleteEvento remove um evento.
func (h *Handler) DeleteEvento(w http.ResponseWriter, r *http.Request) {
	usuarioID, ok := h.usuario(w, r)
	if !ok {
		return
	}

	id, err := idParam(r)
	if err != nil {
		WriteError(w, http.StatusBadRequest, "VALIDATION", "id inválido", nil)
		return
	}

	if err := h.agenda.Delete(r.Context(), usuarioID, id); err != nil {
		if errors.Is(err, agenda.ErrNotFound) {
			WriteError(w, http.StatusNotFound, "NOT_FOUND", "evento não encontrado", nil)
			return
		}
		WriteError(w, http.StatusInternalServerError, "INTERNAL", "não foi possível remover evento", nil)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]bool{"removido": true})
}
