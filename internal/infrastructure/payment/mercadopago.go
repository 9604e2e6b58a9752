package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gamevault/gamevault-backend/internal/domain/ports"
	"github.com/gamevault/gamevault-backend/internal/infrastructure/config"
)

// MercadoPagoClient implementa ports.PaymentGateway contra a API REST
// do Mercado Pago (Checkout Pro). Duas chamadas são usadas: criação de
// preference e consulta de payment a partir do webhook.
type MercadoPagoClient struct {
	httpClient  *http.Client
	baseURL     string
	accessToken string
	logger      ports.Logger
}

// NewMercadoPagoClient cria o adapter do gateway
func NewMercadoPagoClient(cfg *config.MercadoPagoConfig, logger ports.Logger) *MercadoPagoClient {
	return &MercadoPagoClient{
		httpClient:  &http.Client{Timeout: 15 * time.Second},
		baseURL:     cfg.BaseURL,
		accessToken: cfg.AccessToken,
		logger:      logger,
	}
}

type preferenceItem struct {
	Title     string          `json:"title"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

type preferenceRequest struct {
	Items             []preferenceItem `json:"items"`
	ExternalReference string           `json:"external_reference"`
	Payer             struct {
		Email string `json:"email"`
	} `json:"payer"`
}

type preferenceResponse struct {
	ID        string `json:"id"`
	InitPoint string `json:"init_point"`
}

type paymentResponse struct {
	ID                json.Number `json:"id"`
	Status            string      `json:"status"`
	ExternalReference string      `json:"external_reference"`
}

// CreatePreference monta o checkout no gateway. Os itens chegam com os
// preços relidos da tabela de produtos; valores do cliente nunca entram.
func (c *MercadoPagoClient) CreatePreference(ctx context.Context, externalReference string, payerEmail string, items []ports.PreferenceItem) (*ports.Preference, error) {
	reqBody := preferenceRequest{ExternalReference: externalReference}
	reqBody.Payer.Email = payerEmail
	for _, item := range items {
		reqBody.Items = append(reqBody.Items, preferenceItem{
			Title:     item.Title,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}

	var resp preferenceResponse
	if err := c.do(ctx, http.MethodPost, "/checkout/preferences", reqBody, &resp); err != nil {
		return nil, fmt.Errorf("failed to create preference: %w", err)
	}

	return &ports.Preference{ID: resp.ID, InitPoint: resp.InitPoint}, nil
}

// GetPayment consulta o estado de um pagamento notificado pelo webhook
func (c *MercadoPagoClient) GetPayment(ctx context.Context, paymentID string) (*ports.GatewayPayment, error) {
	var resp paymentResponse
	if err := c.do(ctx, http.MethodGet, "/v1/payments/"+paymentID, nil, &resp); err != nil {
		return nil, fmt.Errorf("failed to get payment: %w", err)
	}

	return &ports.GatewayPayment{
		ID:                resp.ID.String(),
		Status:            resp.Status,
		ExternalReference: resp.ExternalReference,
		Approved:          resp.Status == "approved",
	}, nil
}

func (c *MercadoPagoClient) do(ctx context.Context, method, path string, body any, out any) error {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.accessToken)
	req.Header.Set("Content-Type", "application/json")
	// Idempotency key exigida pelo gateway em POSTs
	if method == http.MethodPost {
		req.Header.Set("X-Idempotency-Key", uuid.NewString())
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var gatewayErr struct {
			Message string `json:"message"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&gatewayErr)
		return fmt.Errorf("gateway returned %d: %s", resp.StatusCode, gatewayErr.Message)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
