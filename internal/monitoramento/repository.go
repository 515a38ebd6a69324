package monitoramento

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jusgestao/api/internal/db"
)

// Repository encapsula as tabelas de monitoramento e publicações.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository cria instância do repositório.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// GetConfiguracao devolve a configuração do usuário; sem registro,
// devolve configuração inativa vazia.
func (r *Repository) GetConfiguracao(ctx context.Context, usuarioID uuid.UUID) (Configuracao, error) {
	const query = `
        SELECT usuario_id, monitoramento_ativo, nomes_monitoramento, estados_monitoramento, palavras_chave, atualizado_em
        FROM configuracoes_monitoramento
        WHERE usuario_id = $1
    `

	var cfg Configuracao
	err := r.pool.QueryRow(ctx, query, usuarioID).Scan(
		&cfg.UsuarioID,
		&cfg.MonitoramentoAtivo,
		&cfg.NomesMonitoramento,
		&cfg.EstadosMonitoramento,
		&cfg.PalavrasChave,
		&cfg.AtualizadoEm,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Configuracao{UsuarioID: usuarioID, NomesMonitoramento: []string{}, EstadosMonitoramento: []string{}, PalavrasChave: []string{}}, nil
		}
		return Configuracao{}, err
	}
	return cfg, nil
}

// UpsertConfiguracao grava a configuração do usuário.
func (r *Repository) UpsertConfiguracao(ctx context.Context, cfg Configuracao) (Configuracao, error) {
	const query = `
        INSERT INTO configuracoes_monitoramento (usuario_id, monitoramento_ativo, nomes_monitoramento, estados_monitoramento, palavras_chave, atualizado_em)
        VALUES ($1, $2, $3, $4, $5, now())
        ON CONFLICT (usuario_id) DO UPDATE SET
            monitoramento_ativo = EXCLUDED.monitoramento_ativo,
            nomes_monitoramento = EXCLUDED.nomes_monitoramento,
            estados_monitoramento = EXCLUDED.estados_monitoramento,
            palavras_chave = EXCLUDED.palavras_chave,
            atualizado_em = now()
        RETURNING usuario_id, monitoramento_ativo, nomes_monitoramento, estados_monitoramento, palavras_chave, atualizado_em
    `

	nomes := cfg.NomesMonitoramento
	if nomes == nil {
		nomes = []string{}
	}
	estados := cfg.EstadosMonitoramento
	if estados == nil {
		estados = []string{}
	}
	palavras := cfg.PalavrasChave
	if palavras == nil {
		palavras = []string{}
	}

	var saved Configuracao
	err := r.pool.QueryRow(ctx, query, cfg.UsuarioID, cfg.MonitoramentoAtivo, nomes, estados, palavras).Scan(
		&saved.UsuarioID,
		&saved.MonitoramentoAtivo,
		&saved.NomesMonitoramento,
		&saved.EstadosMonitoramento,
		&saved.PalavrasChave,
		&saved.AtualizadoEm,
	)
	if err != nil {
		return Configuracao{}, err
	}
	return saved, nil
}

// AbrirLog cria o registro de auditoria no início da execução.
func (r *Repository) AbrirLog(ctx context.Context, usuarioID uuid.UUID) (uuid.UUID, error) {
	const query = `
        INSERT INTO logs_monitoramento (usuario_id, status, data_execucao)
        VALUES ($1, $2, now())
        RETURNING id
    `

	var id uuid.UUID
	if err := r.pool.QueryRow(ctx, query, usuarioID, StatusIniciado).Scan(&id); err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

// FecharLog grava o desfecho da execução. Transição única: um log
// fechado não volta a iniciado.
func (r *Repository) FecharLog(ctx context.Context, id uuid.UUID, status string, encontradas int, segundos float64, fontes []string, erros *string) error {
	const query = `
        UPDATE logs_monitoramento
        SET status = $2,
            publicacoes_encontradas = $3,
            tempo_execucao_segundos = $4,
            fontes_consultadas = $5,
            erros = $6
        WHERE id = $1
          AND status = $7
    `

	if fontes == nil {
		fontes = []string{}
	}

	_, err := r.pool.Exec(ctx, query, id, status, encontradas, segundos, fontes, erros, StatusIniciado)
	return err
}

// ListarLogs devolve o histórico de execuções do usuário.
func (r *Repository) ListarLogs(ctx context.Context, usuarioID uuid.UUID, limit int) ([]LogExecucao, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	const query = `
        SELECT id, usuario_id, status, data_execucao, publicacoes_encontradas, tempo_execucao_segundos, fontes_consultadas, erros
        FROM logs_monitoramento
        WHERE usuario_id = $1
        ORDER BY data_execucao DESC
        LIMIT $2
    `

	rows, err := r.pool.Query(ctx, query, usuarioID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var logs []LogExecucao
	for rows.Next() {
		var l LogExecucao
		if err := rows.Scan(
			&l.ID,
			&l.UsuarioID,
			&l.Status,
			&l.DataExecucao,
			&l.PublicacoesEncontradas,
			&l.TempoExecucaoSegundos,
			&l.FontesConsultadas,
			&l.Erros,
		); err != nil {
			return nil, err
		}
		logs = append(logs, l)
	}
	return logs, rows.Err()
}

// NovaPublicacao é um rascunho descoberto na busca, antes da marcação
// de propriedade e flags padrão.
type NovaPublicacao struct {
	NomeAdvogado       string
	TituloPublicacao   string
	ConteudoPublicacao string
	Fonte              string
	DataPublicacao     time.Time
}

// InserirPublicacoes grava o lote com flags padrão dentro de uma
// transação. Lote vazio não é erro; falha descarta o lote inteiro.
func (r *Repository) InserirPublicacoes(ctx context.Context, usuarioID uuid.UUID, pubs []NovaPublicacao) error {
	if len(pubs) == 0 {
		return nil
	}

	const query = `
        INSERT INTO publicacoes_diario_oficial
            (usuario_id, nome_advogado, titulo_publicacao, conteudo_publicacao, fonte, data_publicacao, lida, importante, segredo_justica)
        VALUES ($1, $2, $3, $4, $5, $6, FALSE, FALSE, FALSE)
    `

	return db.WithTx(ctx, r.pool, func(pctx context.Context, tx pgx.Tx) error {
		for _, pub := range pubs {
			if _, err := tx.Exec(pctx, query,
				usuarioID,
				pub.NomeAdvogado,
				pub.TituloPublicacao,
				pub.ConteudoPublicacao,
				pub.Fonte,
				pub.DataPublicacao,
			); err != nil {
				return err
			}
		}
		return nil
	})
}

// FiltroPublicacoes restringe a listagem de publicações.
type FiltroPublicacoes struct {
	Nomes      []string
	ApenasLida *bool
	Limit      int
	Offset     int
}

// ListarPublicacoes lista publicações do usuário, opcionalmente
// filtradas pelos nomes monitorados (filtro de exibição, não de escrita).
func (r *Repository) ListarPublicacoes(ctx context.Context, usuarioID uuid.UUID, filtro FiltroPublicacoes) ([]Publicacao, error) {
	query := `
        SELECT id, usuario_id, nome_advogado, titulo_publicacao, conteudo_publicacao, fonte, data_publicacao, lida, importante, segredo_justica, criado_em
        FROM publicacoes_diario_oficial
        WHERE usuario_id = $1`

	args := []any{usuarioID}
	idx := 2

	if len(filtro.Nomes) > 0 {
		query += ` AND nome_advogado = ANY($2)`
		args = append(args, filtro.Nomes)
		idx++
	}

	if filtro.ApenasLida != nil {
		query += fmt.Sprintf(" AND lida = $%d", idx)
		args = append(args, *filtro.ApenasLida)
		idx++
	}

	limit := filtro.Limit
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	offset := filtro.Offset
	if offset < 0 {
		offset = 0
	}

	query += fmt.Sprintf(" ORDER BY data_publicacao DESC, criado_em DESC LIMIT $%d OFFSET $%d", idx, idx+1)
	args = append(args, limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pubs []Publicacao
	for rows.Next() {
		var p Publicacao
		if err := rows.Scan(
			&p.ID,
			&p.UsuarioID,
			&p.NomeAdvogado,
			&p.TituloPublicacao,
			&p.ConteudoPublicacao,
			&p.Fonte,
			&p.DataPublicacao,
			&p.Lida,
			&p.Importante,
			&p.SegredoJustica,
			&p.CriadoEm,
		); err != nil {
			return nil, err
		}
		pubs = append(pubs, p)
	}
	return pubs, rows.Err()
}

// MarcarLida alterna a flag de leitura de uma publicação do usuário.
func (r *Repository) MarcarLida(ctx context.Context, usuarioID, id uuid.UUID, lida bool) error {
	return r.marcarFlag(ctx, usuarioID, id, "lida", lida)
}

// MarcarImportante alterna a flag de importância.
func (r *Repository) MarcarImportante(ctx context.Context, usuarioID, id uuid.UUID, importante bool) error {
	return r.marcarFlag(ctx, usuarioID, id, "importante", importante)
}

func (r *Repository) marcarFlag(ctx context.Context, usuarioID, id uuid.UUID, coluna string, valor bool) error {
	query := `UPDATE publicacoes_diario_oficial SET ` + coluna + ` = $3 WHERE id = $1 AND usuario_id = $2`

	tag, err := r.pool.Exec(ctx, query, id, usuarioID, valor)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrPublicacaoNaoEncontrada
	}
	return nil
}

var ErrPublicacaoNaoEncontrada = errors.New("publicação não encontrada")
