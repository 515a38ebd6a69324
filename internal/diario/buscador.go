// Package diario consulta fontes externas de diários oficiais.
//
// A integração real ainda depende de credenciamento junto aos tribunais;
// sem DIARIO_API_BASE configurada a busca roda em modo demonstração.
package diario

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Publicacao é um resultado bruto de uma fonte consultada.
type Publicacao struct {
	NomeAdvogado string    `json:"nome_advogado"`
	Titulo       string    `json:"titulo"`
	Conteudo     string    `json:"conteudo"`
	Fonte        string    `json:"fonte"`
	Data         time.Time `json:"data"`
}

// Resultado agrega as publicações de uma fonte e indica origem demo.
type Resultado struct {
	Publicacoes []Publicacao
	Demo        bool
}

// Buscador consulta uma fonte por nomes e palavras-chave.
type Buscador interface {
	Buscar(ctx context.Context, fonte string, nomes, palavrasChave []string) (*Resultado, error)
}

// ClienteHTTP consulta uma API agregadora de diários oficiais.
type ClienteHTTP struct {
	base   string
	client *http.Client
}

// NewClienteHTTP cria o cliente com timeout por requisição.
func NewClienteHTTP(base string, timeout time.Duration) *ClienteHTTP {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &ClienteHTTP{
		base:   strings.TrimRight(base, "/"),
		client: &http.Client{Timeout: timeout},
	}
}

// Buscar consulta a API externa para uma fonte.
func (c *ClienteHTTP) Buscar(ctx context.Context, fonte string, nomes, palavrasChave []string) (*Resultado, error) {
	params := url.Values{}
	params.Set("fonte", fonte)
	for _, nome := range nomes {
		params.Add("nome", nome)
	}
	for _, palavra := range palavrasChave {
		params.Add("palavra_chave", palavra)
	}

	endpoint := fmt.Sprintf("%s/publicacoes?%s", c.base, params.Encode())

	requestCtx, cancel := context.WithTimeout(ctx, c.client.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(requestCtx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return nil, fmt.Errorf("fonte %s respondeu %d: %s", fonte, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var payload struct {
		Publicacoes []Publicacao `json:"publicacoes"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("fonte %s: resposta inválida: %w", fonte, err)
	}

	return &Resultado{Publicacoes: payload.Publicacoes}, nil
}

// BuscadorDemo devolve respostas fixas para ambientes sem integração.
// Só a primeira fonte de cada estado produz resultados, um por nome.
type BuscadorDemo struct {
	Agora func() time.Time
}

// Buscar gera uma publicação de demonstração por nome monitorado.
func (b BuscadorDemo) Buscar(ctx context.Context, fonte string, nomes, palavrasChave []string) (*Resultado, error) {
	res := &Resultado{Demo: true}

	if !strings.HasPrefix(fonte, "Diário Oficial SP") {
		return res, nil
	}

	agora := time.Now
	if b.Agora != nil {
		agora = b.Agora
	}

	for _, nome := range nomes {
		res.Publicacoes = append(res.Publicacoes, Publicacao{
			NomeAdvogado: nome,
			Titulo:       fmt.Sprintf("Intimação - %s", nome),
			Conteudo:     fmt.Sprintf("Publicação de demonstração citando %s no %s.", nome, fonte),
			Fonte:        fonte,
			Data:         agora(),
		})
	}

	return res, nil
}
