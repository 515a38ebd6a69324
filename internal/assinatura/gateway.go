package assinatura

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Gateway abstrai o provedor de cobrança recorrente.
type Gateway interface {
	CriarCheckout(ctx context.Context, input CheckoutInput) (*Checkout, error)
	ConsultarAssinatura(ctx context.Context, assinaturaID string) (*StatusGateway, error)
}

// CheckoutInput descreve a sessão de pagamento a criar.
type CheckoutInput struct {
	ClienteID string
	Email     string
	PlanoID   string
	Retorno   string
}

// Checkout é a sessão criada no provedor.
type Checkout struct {
	URL          string
	AssinaturaID string
}

// StatusGateway é o estado da assinatura no provedor.
type StatusGateway struct {
	Status   string
	ExpiraEm *time.Time
}

// ClienteGateway fala com a API HTTP do provedor de pagamentos.
type ClienteGateway struct {
	base   string
	apiKey string
	http   *http.Client
}

// NewClienteGateway cria o cliente do provedor.
func NewClienteGateway(base, apiKey string, timeout time.Duration) *ClienteGateway {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &ClienteGateway{
		base:   strings.TrimRight(base, "/"),
		apiKey: apiKey,
		http:   &http.Client{Timeout: timeout},
	}
}

// CriarCheckout abre uma sessão de pagamento para o plano.
func (c *ClienteGateway) CriarCheckout(ctx context.Context, input CheckoutInput) (*Checkout, error) {
	payload := map[string]string{
		"customer_id": input.ClienteID,
		"email":       input.Email,
		"plan_id":     input.PlanoID,
		"return_url":  input.Retorno,
	}

	var resp struct {
		CheckoutURL    string `json:"checkout_url"`
		SubscriptionID string `json:"subscription_id"`
	}
	if err := c.post(ctx, "/v1/checkout", payload, &resp); err != nil {
		return nil, err
	}
	return &Checkout{URL: resp.CheckoutURL, AssinaturaID: resp.SubscriptionID}, nil
}

// ConsultarAssinatura consulta o estado atual da assinatura.
func (c *ClienteGateway) ConsultarAssinatura(ctx context.Context, assinaturaID string) (*StatusGateway, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+"/v1/subscriptions/"+assinaturaID, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	var resp struct {
		Status    string     `json:"status"`
		ExpiresAt *time.Time `json:"expires_at"`
	}
	if err := c.do(req, &resp); err != nil {
		return nil, err
	}
	return &StatusGateway{Status: resp.Status, ExpiraEm: resp.ExpiresAt}, nil
}

func (c *ClienteGateway) post(ctx context.Context, path string, payload any, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	return c.do(req, out)
}

func (c *ClienteGateway) do(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("gateway de pagamento: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return fmt.Errorf("gateway de pagamento respondeu %d: %s", resp.StatusCode, strings.TrimSpace(string(snippet)))
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
