package monitoramento

import "fmt"

// UFs lista os 27 estados consultados quando a requisição não restringe.
var UFs = []string{
	"SP", "RJ", "MG", "CE", "PR", "RS", "SC", "BA", "GO", "PE",
	"ES", "DF", "MT", "MS", "PA", "AM", "RO", "AC", "RR", "AP",
	"TO", "MA", "PI", "AL", "SE", "PB", "RN",
}

// Fontes expande os estados pedidos na lista de fontes a consultar.
// Estados vazios expandem para todos os 27; cada estado gera duas fontes.
func Fontes(estados []string) []string {
	if len(estados) == 0 {
		estados = UFs
	}

	fontes := make([]string, 0, len(estados)*2)
	for _, uf := range estados {
		fontes = append(fontes,
			fmt.Sprintf("Diário Oficial %s", uf),
			fmt.Sprintf("Diário da Justiça %s", uf),
		)
	}
	return fontes
}
