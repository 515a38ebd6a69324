package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jusgestao/api/internal/tarefa"
)

// ListTarefas lista tarefas do usuário.
func (h *Handler) ListTarefas(w http.ResponseWriter, r *http.Request) {
	usuarioID, ok := h.usuario(w, r)
	if !ok {
		return
	}

	filter := tarefa.Filter{
		Status: strings.TrimSpace(r.URL.Query().Get("status")),
		Limit:  queryInt(r, "limit"),
		Offset: queryInt(r, "offset"),
	}

	if raw := strings.TrimSpace(r.URL.Query().Get("processo_id")); raw != "" {
		processoID, err := uuid.Parse(raw)
		if err != nil {
			WriteError(w, http.StatusBadRequest, "VALIDATION", "processo_id inválido", nil)
			return
		}
		filter.ProcessoID = &processoID
	}

	tarefas, err := h.tarefas.List(r.Context(), usuarioID, filter)
	if err != nil {
		if errors.Is(err, tarefa.ErrStatusInvalido) {
			WriteError(w, http.StatusBadRequest, "VALIDATION", "status inválido", nil)
			return
		}
		WriteError(w, http.StatusInternalServerError, "INTERNAL", "não foi possível listar tarefas", nil)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{"tarefas": tarefas})
}

type tarefaPayload struct {
	ProcessoID    *string    `json:"processo_id"`
	ResponsavelID *string    `json:"responsavel_id"`
	Titulo        *string    `json:"titulo"`
	Descricao     *string    `json:"descricao"`
	Prioridade    *string    `json:"prioridade"`
	Status        *string    `json:"status"`
	Prazo         *time.Time `json:"prazo"`
}

func parseUUIDRef(raw *string) (*uuid.UUID, error) {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return nil, nil
	}
	parsed, err := uuid.Parse(strings.TrimSpace(*raw))
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

// CreateTarefa cadastra uma tarefa.
func (h *Handler) CreateTarefa(w http.ResponseWriter, r *http.Request) {
	usuarioID, ok := h.usuario(w, r)
	if !ok {
		return
	}

	var payload tarefaPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		WriteError(w, http.StatusBadRequest, "VALIDATION", "JSON inválido", nil)
		return
	}

	processoID, err := parseUUIDRef(payload.ProcessoID)
	if err != nil {
		WriteError(w, http.StatusBadRequest, "VALIDATION", "processo_id inválido", nil)
		return
	}
	responsavelID, err := parseUUIDRef(payload.ResponsavelID)
	if err != nil {
		WriteError(w, http.StatusBadRequest, "VALIDATION", "responsavel_id inválido", nil)
		return
	}

	titulo := ""
	if payload.Titulo != nil {
		titulo = *payload.Titulo
	}
	prioridade := ""
	if payload.Prioridade != nil {
		prioridade = *payload.Prioridade
	}

	nova, err := h.tarefas.Create(r.Context(), tarefa.CreateInput{
		UsuarioID:     usuarioID,
		ProcessoID:    processoID,
		ResponsavelID: responsavelID,
		Titulo:        titulo,
		Descricao:     payload.Descricao,
		Prioridade:    prioridade,
		Prazo:         payload.Prazo,
	})
	if err != nil {
		WriteError(w, http.StatusBadRequest, "VALIDATION", err.Error(), nil)
		return
	}

	WriteJSON(w, http.StatusCreated, nova)
}

// UpdateTarefa altera uma tarefa.
func (h *Handler) UpdateTarefa(w http.ResponseWriter, r *http.Request) {
	usuarioID, ok := h.usuario(w, r)
	if !ok {
		return
	}

	id, err := idParam(r)
	if err != nil {
		WriteError(w, http.StatusBadRequest, "VALIDATION", "id inválido", nil)
		return
	}

	var payload tarefaPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		WriteError(w, http.StatusBadRequest, "VALIDATION", "JSON inválido", nil)
		return
	}

	processoID, err := parseUUIDRef(payload.ProcessoID)
	if err != nil {
		WriteError(w, http.StatusBadRequest, "VALIDATION", "processo_id inválido", nil)
		return
	}
	responsavelID, err := parseUUIDRef(payload.ResponsavelID)
	if err != nil {
		WriteError(w, http.StatusBadRequest, "VALIDATION", "responsavel_id inválido", nil)
		return
	}

	atualizada, err := h.tarefas.Update(r.Context(), tarefa.UpdateInput{
		ID:            id,
		UsuarioID:     usuarioID,
		ProcessoID:    processoID,
		ResponsavelID: responsavelID,
		Titulo:        payload.Titulo,
		Descricao:     payload.Descricao,
		Prioridade:    payload.Prioridade,
		Status:        payload.Status,
		Prazo:         payload.Prazo,
	})
	if err != nil {
		switch {
		case errors.Is(err, tarefa.ErrNotFound):
			WriteError(w, http.StatusNotFound, "NOT_FOUND", "tarefa não encontrada", nil)
		case errors.Is(err, tarefa.ErrStatusInvalido), errors.Is(err, tarefa.ErrPrioridadeInvalida):
			WriteError(w, http.StatusBadRequest, "VALIDATION", err.Error(), nil)
		default:
			WriteError(w, http.StatusInternalServerError, "INTERNAL", "não foi possível atualizar tarefa", nil)
		}
		return
	}

	WriteJSON(w, http.StatusOK, atualizada)
}

// ConcluirTarefa marca uma tarefa como concluída.
func (h *Handler) ConcluirTarefa(w http.ResponseWriter, r *http.Request) {
	usuarioID, ok := h.usuario(w, r)
	if !ok {
		return
	}

	id, err := idParam(r)
	if err != nil {
		WriteError(w, http.StatusBadRequest, "VALIDATION", "id inválido", nil)
		return
	}

	concluida, err := h.tarefas.Concluir(r.Context(), usuarioID, id)
	if err != nil {
		if errors.Is(err, tarefa.ErrNotFound) {
			WriteError(w, http.StatusNotFound, "NOT_FOUND", "tarefa não encontrada", nil)
			return
		}
		WriteError(w, http.StatusInternalServerError, "INTERNAL", "não foi possível concluir tarefa", nil)
		return
	}

	WriteJSON(w, http.StatusOK, concluida)
}

// DeleteTarefa remove uma tarefa.
func (h *Handler) DeleteTarefa(w http.ResponseWriter, r *http.Request) {
	usuarioID, ok := h.usuario(w, r)
	if !ok {
		return
	}

	id, err := idParam(r)
	if err != nil {
		WriteError(w, http.StatusBadRequest, "VALIDATION", "id inválido", nil)
		return
	}

	if err := h.tarefas.Delete(r.Context(), usuarioID, id); err != nil {
		if errors.Is(err, tarefa.ErrNotFound) {
			WriteError(w, http.StatusNotFound, "NOT_FOUND", "tarefa não encontrada", nil)
			return
		}
		WriteError(w, http.StatusInternalServerError, "INTERNAL", "não foi possível remover tarefa", nil)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]bool{"removido": true})
}
