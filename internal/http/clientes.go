package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/jusgestao/api/internal/cliente"
	httpmiddleware "github.com/jusgestao/api/internal/http/middleware"
)

// usuario extrai o UUID do usuário autenticado ou escreve 401.
func (h *Handler) usuario(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, ok := httpmiddleware.GetSubjectUUID(r.Context())
	if !ok {
		WriteError(w, http.StatusUnauthorized, "AUTH", "identificação inválida", nil)
		return uuid.Nil, false
	}
	return id, true
}

func idParam(r *http.Request) (uuid.UUID, error) {
	return uuid.Parse(chi.URLParam(r, "id"))
}

func queryInt(r *http.Request, key string) int {
	if raw := strings.TrimSpace(r.URL.Query().Get(key)); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			return v
		}
	}
	return 0
}

// ListClientes lista clientes do usuário.
func (h *Handler) ListClientes(w http.ResponseWriter, r *http.Request) {
	usuarioID, ok := h.usuario(w, r)
	if !ok {
		return
	}

	filter := cliente.Filter{
		Busca:  r.URL.Query().Get("busca"),
		Limit:  queryInt(r, "limit"),
		Offset: queryInt(r, "offset"),
	}

	clientes, err := h.clientes.List(r.Context(), usuarioID, filter)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "INTERNAL", "não foi possível listar clientes", nil)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{"clientes": clientes})
}

// CreateCliente cadastra um cliente.
func (h *Handler) CreateCliente(w http.ResponseWriter, r *http.Request) {
	usuarioID, ok := h.usuario(w, r)
	if !ok {
		return
	}

	var payload struct {
		Nome        string  `json:"nome"`
		CPFCNPJ     *string `json:"cpf_cnpj"`
		Email       *string `json:"email"`
		Telefone    *string `json:"telefone"`
		Endereco    *string `json:"endereco"`
		Observacoes *string `json:"observacoes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		WriteError(w, http.StatusBadRequest, "VALIDATION", "JSON inválido", nil)
		return
	}

	novo, err := h.clientes.Create(r.Context(), cliente.CreateInput{
		UsuarioID:   usuarioID,
		Nome:        payload.Nome,
		CPFCNPJ:     payload.CPFCNPJ,
		Email:       payload.Email,
		Telefone:    payload.Telefone,
		Endereco:    payload.Endereco,
		Observacoes: payload.Observacoes,
	})
	if err != nil {
		WriteError(w, http.StatusBadRequest, "VALIDATION", err.Error(), nil)
		return
	}

	WriteJSON(w, http.StatusCreated, novo)
}

// GetCliente devolve um cliente específico.
func (h *Handler) GetCliente(w http.ResponseWriter, r *http.Request) {
	usuarioID, ok := h.usuario(w, r)
	if !ok {
		return
	}

	id, err := idParam(r)
	if err != nil {
		WriteError(w, http.StatusBadRequest, "VALIDATION", "id inválido", nil)
		return
	}

	c, err := h.clientes.Get(r.Context(), usuarioID, id)
	if err != nil {
		if errors.Is(err, cliente.ErrNotFound) {
			WriteError(w, http.StatusNotFound, "NOT_FOUND", "cliente não encontrado", nil)
			return
		}
		WriteError(w, http.StatusInternalServerError, "INTERNAL", "não foi possível carregar cliente", nil)
		return
	}

	WriteJSON(w, http.StatusOK, c)
}

// UpdateCliente altera dados cadastrais.
func (h *Handler) UpdateCliente(w http.ResponseWriter, r *http.Request) {
	usuarioID, ok := h.usuario(w, r)
	if !ok {
		return
	}

	id, err := idParam(r)
	if err != nil {
		WriteError(w, http.StatusBadRequest, "VALIDATION", "id inválido", nil)
		return
	}

	var payload struct {
		Nome        *string `json:"nome"`
		CPFCNPJ     *string `json:"cpf_cnpj"`
		Email       *string `json:"email"`
		Telefone    *string `json:"telefone"`
		Endereco    *string `json:"endereco"`
		Observacoes *string `json:"observacoes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		WriteError(w, http.StatusBadRequest, "VALIDATION", "JSON inválido", nil)
		return
	}

	atualizado, err := h.clientes.Update(r.Context(), cliente.UpdateInput{
		ID:          id,
		UsuarioID:   usuarioID,
		Nome:        payload.Nome,
		CPFCNPJ:     payload.CPFCNPJ,
		Email:       payload.Email,
		Telefone:    payload.Telefone,
		Endereco:    payload.Endereco,
		Observacoes: payload.Observacoes,
	})
	if err != nil {
		if errors.Is(err, cliente.ErrNotFound) {
			WriteError(w, http.StatusNotFound, "NOT_FOUND", "cliente não encontrado", nil)
			return
		}
		WriteError(w, http.StatusBadRequest, "VALIDATION", err.Error(), nil)
		return
	}

	WriteJSON(w, http.StatusOK, atualizado)
}

// DeleteCliente remove um cliente.
func (h *Handler) DeleteCliente(w http.ResponseWriter, r *http.Request) {
	usuarioID, ok := h.usuario(w, r)
	if !ok {
		return
	}

	id, err := idParam(r)
	if err != nil {
		WriteError(w, http.StatusBadRequest, "VALIDATION", "id inválido", nil)
		return
	}

	if err := h.clientes.Delete(r.Context(), usuarioID, id); err != nil {
		if errors.Is(err, cliente.ErrNotFound) {
			WriteError(w, http.StatusNotFound, "NOT_FOUND", "cliente não encontrado", nil)
			return
		}
		WriteError(w, http.StatusInternalServerError, "INTERNAL", "não foi possível remover cliente", nil)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]bool{"removido": true})
}
