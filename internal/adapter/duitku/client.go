package duitku

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"
)

// StatusCodeOK is the inquiry status Duitku returns for an accepted request.
const StatusCodeOK = "00"

// QRIS payment method code in Duitku's catalog.
const paymentMethodQRIS = "SP"

// InquiryError represents a non-success inquiry response from the processor.
type InquiryError struct {
	StatusCode    string
	StatusMessage string
}

func (e InquiryError) Error() string {
	return fmt.Sprintf("duitku inquiry rejected: %s %s", e.StatusCode, e.StatusMessage)
}

// InvoiceRequest describes one merchant-side invoice attempt.
type InvoiceRequest struct {
	MerchantOrderID string
	Amount          int64
	ProductDetails  string
	CustomerEmail   string
	ExpiryMinutes   int
}

// Invoice is the processor's accepted-invoice payload.
type Invoice struct {
	Reference  string
	PaymentURL string
	QRString   string
	Amount     int64
}

// Client exposes invoice creation against the payment processor.
type Client interface {
	CreateInvoice(ctx context.Context, req InvoiceRequest) (*Invoice, error)
}

// HTTPClient implements Client via Duitku's merchant HTTP API.
type HTTPClient struct {
	baseURL      *url.URL
	merchantCode string
	apiKey       string
	callbackURL  string
	returnURL    string
	httpClient   *http.Client
	logger       *slog.Logger
}

type inquiryPayload struct {
	MerchantCode    string `json:"merchantCode"`
	PaymentAmount   int64  `json:"paymentAmount"`
	MerchantOrderID string `json:"merchantOrderId"`
	ProductDetails  string `json:"productDetails"`
	Email           string `json:"email"`
	PaymentMethod   string `json:"paymentMethod"`
	ReturnURL       string `json:"returnUrl"`
	CallbackURL     string `json:"callbackUrl"`
	Signature       string `json:"signature"`
	ExpiryPeriod    int    `json:"expiryPeriod"`
}

type inquiryResponse struct {
	StatusCode    string          `json:"statusCode"`
	StatusMessage string          `json:"statusMessage"`
	Reference     string          `json:"reference"`
	PaymentURL    string          `json:"paymentUrl"`
	QRString      string          `json:"qrString"`
	Amount        json.RawMessage `json:"amount"`
}

// NewHTTPClient creates a Duitku client with default timeout.
func NewHTTPClient(baseURL, merchantCode, apiKey, callbackURL, returnURL string, logger *slog.Logger) (*HTTPClient, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse duitku url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("duitku url must be absolute")
	}
	return &HTTPClient{
		baseURL:      parsed,
		merchantCode: merchantCode,
		apiKey:       apiKey,
		callbackURL:  callbackURL,
		returnURL:    returnURL,
		logger:       logger,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}, nil
}

// CreateInvoice submits a signed inquiry and returns the accepted invoice.
func (c *HTTPClient) CreateInvoice(ctx context.Context, req InvoiceRequest) (*Invoice, error) {
	payload := inquiryPayload{
		MerchantCode:    c.merchantCode,
		PaymentAmount:   req.Amount,
		MerchantOrderID: req.MerchantOrderID,
		ProductDetails:  req.ProductDetails,
		Email:           req.CustomerEmail,
		PaymentMethod:   paymentMethodQRIS,
		ReturnURL:       c.returnURL,
		CallbackURL:     c.callbackURL,
		Signature:       RequestSignature(c.merchantCode, req.MerchantOrderID, req.Amount, c.apiKey),
		ExpiryPeriod:    req.ExpiryMinutes,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	endpoint := c.baseURL.JoinPath("v2", "inquiry")
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.Error("duitku inquiry failed",
			slog.Int("status", resp.StatusCode),
			slog.String("merchant_order_id", req.MerchantOrderID),
			slog.String("body", string(raw)),
		)
		return nil, fmt.Errorf("duitku inquiry: %s", resp.Status)
	}

	var data inquiryResponse
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("decode duitku response: %w", err)
	}

	if data.StatusCode != StatusCodeOK {
		return nil, InquiryError{StatusCode: data.StatusCode, StatusMessage: data.StatusMessage}
	}

	return &Invoice{
		Reference:  data.Reference,
		PaymentURL: data.PaymentURL,
		QRString:   data.QRString,
		Amount:     parseAmount(data.Amount, req.Amount),
	}, nil
}

// Duitku echoes amount back either as a number or a numeric string.
func parseAmount(raw json.RawMessage, fallback int64) int64 {
	if len(raw) == 0 || string(raw) == "null" {
		return fallback
	}
	var n int64
	if err := json.Unmarshal(raw, &n); err == nil {
		return n
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if v, err := parseInt(s); err == nil {
			return v
		}
	}
	return fallback
}

func parseInt(s string) (int64, error) {
	var n int64
	_, err := fmt.Sscanf(s, "%d", &n)
	return n, err
}
