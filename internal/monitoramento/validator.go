package monitoramento

import (
	"encoding/json"
	"errors"
	"strings"
)

var (
	ErrCorpoAusente     = errors.New("corpo da requisição ausente")
	ErrJSONInvalido     = errors.New("JSON inválido")
	ErrUsuarioAusente   = errors.New("usuário não identificado")
	ErrNomesAusentes    = errors.New("lista de nomes ausente ou vazia")
	ErrNenhumNomeValido = errors.New("nenhum nome válido informado")
)

// corpoRequisicao mantém os campos crus para validar tipo a tipo.
// Campos com tipo inesperado em estados/palavras_chave não derrubam a
// requisição; em nomes, derrubam.
type corpoRequisicao struct {
	Nomes         json.RawMessage `json:"nomes"`
	Estados       json.RawMessage `json:"estados"`
	PalavrasChave json.RawMessage `json:"palavras_chave"`
}

// ParseRequisicao valida o corpo e devolve a requisição normalizada.
// Sem efeitos colaterais; determinística para o mesmo corpo.
func ParseRequisicao(body []byte) (Requisicao, error) {
	if len(strings.TrimSpace(string(body))) == 0 {
		return Requisicao{}, ErrCorpoAusente
	}

	var raw corpoRequisicao
	if err := json.Unmarshal(body, &raw); err != nil {
		return Requisicao{}, ErrJSONInvalido
	}

	var nomes []string
	if len(raw.Nomes) == 0 || json.Unmarshal(raw.Nomes, &nomes) != nil || len(nomes) == 0 {
		return Requisicao{}, ErrNomesAusentes
	}

	validos := make([]string, 0, len(nomes))
	for _, nome := range nomes {
		nome = strings.TrimSpace(nome)
		if nome != "" {
			validos = append(validos, nome)
		}
	}
	if len(validos) == 0 {
		return Requisicao{}, ErrNenhumNomeValido
	}

	var estados []string
	if len(raw.Estados) > 0 {
		var lidos []string
		if json.Unmarshal(raw.Estados, &lidos) == nil {
			for _, uf := range lidos {
				uf = strings.ToUpper(strings.TrimSpace(uf))
				if uf != "" {
					estados = append(estados, uf)
				}
			}
		}
	}

	var palavras []string
	if len(raw.PalavrasChave) > 0 {
		var lidas []string
		if json.Unmarshal(raw.PalavrasChave, &lidas) == nil {
			for _, p := range lidas {
				p = strings.TrimSpace(p)
				if p != "" {
					palavras = append(palavras, p)
				}
			}
		}
	}

	return Requisicao{Nomes: validos, Estados: estados, PalavrasChave: palavras}, nil
}
