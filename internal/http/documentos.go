package http

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/jusgestao/api/internal/documento"
	"github.com/jusgestao/api/internal/storage"
)

// ListDocumentos lista documentos do usuário.
func (h *Handler) ListDocumentos(w http.ResponseWriter, r *http.Request) {
	usuarioID, ok := h.usuario(w, r)
	if !ok {
		return
	}

	var processoRef *string
	if raw := strings.TrimSpace(r.URL.Query().Get("processo_id")); raw != "" {
		processoRef = &raw
	}
	processoID, err := parseUUIDRef(processoRef)
	if err != nil {
		WriteError(w, http.StatusBadRequest, "VALIDATION", "processo_id inválido", nil)
		return
	}

	documentos, err := h.documentos.List(r.Context(), usuarioID, processoID)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "INTERNAL", "não foi possível listar documentos", nil)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{"documentos": documentos})
}

// UploadDocumento recebe um arquivo via multipart e anexa ao acervo.
func (h *Handler) UploadDocumento(w http.ResponseWriter, r *http.Request) {
	usuarioID, ok := h.usuario(w, r)
	if !ok {
		return
	}

	if err := r.ParseMultipartForm(documento.TamanhoMaximo); err != nil {
		WriteError(w, http.StatusBadRequest, "VALIDATION", "multipart inválido", nil)
		return
	}

	file, header, err := r.FormFile("arquivo")
	if err != nil {
		WriteError(w, http.StatusBadRequest, "VALIDATION", "campo arquivo obrigatório", nil)
		return
	}
	defer file.Close()

	conteudo, err := io.ReadAll(io.LimitReader(file, documento.TamanhoMaximo+1))
	if err != nil {
		WriteError(w, http.StatusBadRequest, "VALIDATION", "falha ao ler arquivo", nil)
		return
	}

	var processoRef *string
	if raw := strings.TrimSpace(r.FormValue("processo_id")); raw != "" {
		processoRef = &raw
	}
	processoID, err := parseUUIDRef(processoRef)
	if err != nil {
		WriteError(w, http.StatusBadRequest, "VALIDATION", "processo_id inválido", nil)
		return
	}

	doc, err := h.documentos.Upload(r.Context(), documento.UploadInput{
		UsuarioID:   usuarioID,
		ProcessoID:  processoID,
		Nome:        header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Conteudo:    conteudo,
	})
	if err != nil {
		switch {
		case errors.Is(err, documento.ErrArquivoVazio), errors.Is(err, documento.ErrArquivoGrande):
			WriteError(w, http.StatusBadRequest, "VALIDATION", err.Error(), nil)
		case errors.Is(err, storage.ErrNaoConfigurado):
			WriteError(w, http.StatusServiceUnavailable, "INTERNAL", "armazenamento não configurado", nil)
		default:
			WriteError(w, http.StatusInternalServerError, "INTERNAL", "não foi possível enviar documento", nil)
		}
		return
	}

	WriteJSON(w, http.StatusCreated, doc)
}

// DeleteDocumento remove registro e arquivo.
func (h *Handler) DeleteDocumento(w http.ResponseWriter, r *http.Request) {
	usuarioID, ok := h.usuario(w, r)
	if !ok {
		return
	}

	id, err := idParam(r)
	if err != nil {
		WriteError(w, http.StatusBadRequest, "VALIDATION", "id inválido", nil)
		return
	}

	if err := h.documentos.Delete(r.Context(), usuarioID, id); err != nil {
		if errors.Is(err, documento.ErrNotFound) {
			WriteError(w, http.StatusNotFound, "NOT_FOUND", "documento não encontrado", nil)
			return
		}
		WriteError(w, http.StatusInternalServerError, "INTERNAL", "não foi possível remover documento", nil)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]bool{"removido": true})
}
