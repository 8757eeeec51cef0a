// Package captcha verifies reCAPTCHA tokens submitted with public forms.
package captcha

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"erpapi/internal/config"
)

// ErrRejected is returned when the provider does not accept the token.
var ErrRejected = errors.New("captcha rejected")

// Verifier checks a client token.
type Verifier interface {
	Verify(ctx context.Context, token, remoteIP string) error
}

type siteverifyResponse struct {
	Success    bool     `json:"success"`
	Score      *float64 `json:"score"`
	Action     string   `json:"action"`
	Hostname   string   `json:"hostname"`
	ErrorCodes []string `json:"error-codes"`
}

// Recaptcha calls the siteverify endpoint.
type Recaptcha struct {
	client   *http.Client
	secret   string
	url      string
	minScore float64
}

// NewRecaptcha returns a verifier for cfg. Outgoing calls are traced.
func NewRecaptcha(cfg config.RecaptchaConfig) *Recaptcha {
	return &Recaptcha{
		client: &http.Client{
			Timeout:   10 * time.Second,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		secret:   cfg.SecretKey,
		url:      cfg.VerifyURL,
		minScore: cfg.MinScore,
	}
}

// Verify succeeds when the token is valid and, for v3 tokens, the score
// reaches the configured minimum.
func (r *Recaptcha) Verify(ctx context.Context, token, remoteIP string) error {
	if token == "" {
		return fmt.Errorf("%w: missing token", ErrRejected)
	}

	form := url.Values{"secret": {r.secret}, "response": {token}}
	if remoteIP != "" {
		form.Set("remoteip", remoteIP)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.url, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("siteverify: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("siteverify: unexpected status %d", resp.StatusCode)
	}

	var body siteverifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return fmt.Errorf("siteverify: decode: %w", err)
	}
	if !body.Success {
		return fmt.Errorf("%w: %s", ErrRejected, strings.Join(body.ErrorCodes, ","))
	}
	// v2 responses carry no score.
	if body.Score != nil && *body.Score < r.minScore {
		return fmt.Errorf("%w: score %.2f", ErrRejected, *body.Score)
	}
	return nil
}

// Disabled accepts every token.
type Disabled struct{}

func (Disabled) Verify(context.Context, string, string) error { return nil }
