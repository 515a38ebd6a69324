package monitoramento

import "strings"

// caracteres removidos de campos de texto livre antes de persistência
// ou uso em consultas e logs.
const caracteresInseguros = `<>'"&`

// SanitizarTexto remove caracteres inseguros e espaços nas pontas.
// Idempotente: sanitizar texto já sanitizado não altera nada.
func SanitizarTexto(texto string) string {
	var b strings.Builder
	b.Grow(len(texto))
	for _, r := range texto {
		if strings.ContainsRune(caracteresInseguros, r) {
			continue
		}
		b.WriteRune(r)
	}
	return strings.TrimSpace(b.String())
}

// SanitizarLista aplica SanitizarTexto e descarta entradas vazias.
func SanitizarLista(itens []string) []string {
	if len(itens) == 0 {
		return nil
	}
	out := make([]string, 0, len(itens))
	for _, item := range itens {
		if limpo := SanitizarTexto(item); limpo != "" {
			out = append(out, limpo)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// Sanitizar normaliza os três campos de texto livre da requisição.
func Sanitizar(req Requisicao) Requisicao {
	return Requisicao{
		Nomes:         SanitizarLista(req.Nomes),
		Estados:       SanitizarLista(req.Estados),
		PalavrasChave: SanitizarLista(req.PalavrasChave),
	}
}
