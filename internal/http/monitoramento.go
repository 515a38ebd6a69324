package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	httpmiddleware "github.com/jusgestao/api/internal/http/middleware"
	"github.com/jusgestao/api/internal/monitoramento"
)

// As rotas de monitoramento atendem clientes legados que esperam o
// formato plano de resposta e cabeçalhos CORS permissivos.
func setMonitoramentoCORS(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Headers", "authorization, x-client-info, apikey, content-type")
}

// MonitoramentoPreflight responde o preflight CORS das rotas legadas.
func (h *Handler) MonitoramentoPreflight(w http.ResponseWriter, r *http.Request) {
	setMonitoramentoCORS(w)
	w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, OPTIONS")
	w.WriteHeader(http.StatusOK)
}

// MonitoramentoExecutar dispara uma execução manual do pipeline.
func (h *Handler) MonitoramentoExecutar(w http.ResponseWriter, r *http.Request) {
	setMonitoramentoCORS(w)

	usuarioID, _ := httpmiddleware.GetSubjectUUID(r.Context())

	body, err := io.ReadAll(io.LimitReader(r.Body, 1<<20))
	if err != nil {
		body = nil
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.cfg.Monitoramento.TimeoutExecucao)
	defer cancel()

	status, resposta := h.monitoramento.Executar(ctx, usuarioID, body)
	WriteRaw(w, status, resposta)
}

// MonitoramentoLogs devolve o histórico de execuções do usuário.
func (h *Handler) MonitoramentoLogs(w http.ResponseWriter, r *http.Request) {
	setMonitoramentoCORS(w)

	usuarioID, ok := httpmiddleware.GetSubjectUUID(r.Context())
	if !ok {
		WriteError(w, http.StatusUnauthorized, "AUTH", "identificação inválida", nil)
		return
	}

	limit := 0
	if limitStr := strings.TrimSpace(r.URL.Query().Get("limit")); limitStr != "" {
		if v, err := strconv.Atoi(limitStr); err == nil {
			limit = v
		}
	}

	logs, err := h.monitoramento.Logs(r.Context(), usuarioID, limit)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "INTERNAL", "não foi possível listar execuções", nil)
		return
	}

	WriteRaw(w, http.StatusOK, map[string]any{"logs": logs})
}

// MonitoramentoConfiguracao devolve a configuração do usuário.
func (h *Handler) MonitoramentoConfiguracao(w http.ResponseWriter, r *http.Request) {
	setMonitoramentoCORS(w)

	usuarioID, ok := httpmiddleware.GetSubjectUUID(r.Context())
	if !ok {
		WriteError(w, http.StatusUnauthorized, "AUTH", "identificação inválida", nil)
		return
	}

	cfg, err := h.monitoramento.Configuracao(r.Context(), usuarioID)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "INTERNAL", "não foi possível carregar configuração", nil)
		return
	}

	WriteRaw(w, http.StatusOK, cfg)
}

// MonitoramentoSalvarConfiguracao grava a configuração do usuário.
func (h *Handler) MonitoramentoSalvarConfiguracao(w http.ResponseWriter, r *http.Request) {
	setMonitoramentoCORS(w)

	usuarioID, ok := httpmiddleware.GetSubjectUUID(r.Context())
	if !ok {
		WriteError(w, http.StatusUnauthorized, "AUTH", "identificação inválida", nil)
		return
	}

	var payload struct {
		MonitoramentoAtivo   bool     `json:"monitoramento_ativo"`
		NomesMonitoramento   []string `json:"nomes_monitoramento"`
		EstadosMonitoramento []string `json:"estados_monitoramento"`
		PalavrasChave        []string `json:"palavras_chave"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		WriteError(w, http.StatusBadRequest, "VALIDATION", "JSON inválido", nil)
		return
	}

	cfg, err := h.monitoramento.SalvarConfiguracao(r.Context(), monitoramento.Configuracao{
		UsuarioID:            usuarioID,
		MonitoramentoAtivo:   payload.MonitoramentoAtivo,
		NomesMonitoramento:   payload.NomesMonitoramento,
		EstadosMonitoramento: payload.EstadosMonitoramento,
		PalavrasChave:        payload.PalavrasChave,
	})
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "INTERNAL", "não foi possível salvar configuração", nil)
		return
	}

	WriteRaw(w, http.StatusOK, cfg)
}

// MonitoramentoDiagnostico devolve o levantamento estático de pendências.
func (h *Handler) MonitoramentoDiagnostico(w http.ResponseWriter, r *http.Request) {
	setMonitoramentoCORS(w)
	WriteRaw(w, http.StatusOK, monitoramento.DiagnosticoAtual())
}

// ListPublicacoes lista publicações do usuário conforme a configuração.
func (h *Handler) ListPublicacoes(w http.ResponseWriter, r *http.Request) {
	setMonitoramentoCORS(w)

	usuarioID, ok := httpmiddleware.GetSubjectUUID(r.Context())
	if !ok {
		WriteError(w, http.StatusUnauthorized, "AUTH", "identificação inválida", nil)
		return
	}

	var filtro monitoramento.FiltroPublicacoes
	if lidaStr := strings.TrimSpace(r.URL.Query().Get("lida")); lidaStr != "" {
		if lida, err := strconv.ParseBool(lidaStr); err == nil {
			filtro.ApenasLida = &lida
		}
	}
	if limitStr := strings.TrimSpace(r.URL.Query().Get("limit")); limitStr != "" {
		if v, err := strconv.Atoi(limitStr); err == nil {
			filtro.Limit = v
		}
	}
	if offsetStr := strings.TrimSpace(r.URL.Query().Get("offset")); offsetStr != "" {
		if v, err := strconv.Atoi(offsetStr); err == nil {
			filtro.Offset = v
		}
	}

	publicacoes, err := h.monitoramento.Publicacoes(r.Context(), usuarioID, filtro)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "INTERNAL", "não foi possível listar publicações", nil)
		return
	}

	WriteRaw(w, http.StatusOK, map[string]any{"publicacoes": publicacoes})
}

// MarcarPublicacaoLida alterna a flag de leitura.
func (h *Handler) MarcarPublicacaoLida(w http.ResponseWriter, r *http.Request) {
	h.marcarPublicacao(w, r, func(ctx context.Context, usuarioID, id uuid.UUID, valor bool) error {
		return h.monitoramento.AlternarLida(ctx, usuarioID, id, valor)
	})
}

// MarcarPublicacaoImportante alterna a flag de importância.
func (h *Handler) MarcarPublicacaoImportante(w http.ResponseWriter, r *http.Request) {
	h.marcarPublicacao(w, r, func(ctx context.Context, usuarioID, id uuid.UUID, valor bool) error {
		return h.monitoramento.AlternarImportante(ctx, usuarioID, id, valor)
	})
}

func (h *Handler) marcarPublicacao(w http.ResponseWriter, r *http.Request, aplicar func(context.Context, uuid.UUID, uuid.UUID, bool) error) {
	setMonitoramentoCORS(w)

	usuarioID, ok := httpmiddleware.GetSubjectUUID(r.Context())
	if !ok {
		WriteError(w, http.StatusUnauthorized, "AUTH", "identificação inválida", nil)
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		WriteError(w, http.StatusBadRequest, "VALIDATION", "id inválido", nil)
		return
	}

	valor := true
	var payload struct {
		Valor *bool `json:"valor"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err == nil && payload.Valor != nil {
		valor = *payload.Valor
	}

	if err := aplicar(r.Context(), usuarioID, id, valor); err != nil {
		if errors.Is(err, monitoramento.ErrPublicacaoNaoEncontrada) {
			WriteError(w, http.StatusNotFound, "NOT_FOUND", "publicação não encontrada", nil)
			return
		}
		WriteError(w, http.StatusInternalServerError, "INTERNAL", "não foi possível atualizar publicação", nil)
		return
	}

	WriteRaw(w, http.StatusOK, map[string]bool{"success": true})
}
