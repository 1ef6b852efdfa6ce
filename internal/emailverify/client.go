// Package emailverify talks to the external email-verification service.
package emailverify

import (
	"bytes"
	"context"
	"crypto/subtle"
	"fmt"
	"io"
	"net/http"
	"time"

	json "github.com/goccy/go-json"
	"github.com/rs/zerolog/log"
)

// Result of a verification request.
type Result string

const (
	AlreadyVerified       Result = "AlreadyVerified"
	VerificationRequested Result = "VerificationRequested"
)

// Client sends verification requests. A zero base URL disables the remote
// call and reports VerificationRequested, which keeps local runs working
// without the service.
type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 2 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		http: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 100,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
}

type requestBody struct {
	Email         string `json:"email"`
	CorrelationID string `json:"correlation_id"`
	Name          string `json:"name"`
}

// Request asks the service to send a verification email. HTTP 409 means the
// address is already verified for this correlation id; 200/201 mean a
// verification email is on its way. Anything else is an error.
func (c *Client) Request(ctx context.Context, email, correlationID, name string) (Result, error) {
	if c.baseURL == "" {
		log.Debug().Str("correlation_id", correlationID).Msg("email verification disabled, skipping remote call")
		return VerificationRequested, nil
	}

	body, err := json.Marshal(requestBody{Email: email, CorrelationID: correlationID, Name: name})
	if err != nil {
		return "", fmt.Errorf("encoding verification request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/verification-requests", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("building verification request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("calling verification service: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	switch resp.StatusCode {
	case http.StatusConflict:
		return AlreadyVerified, nil
	case http.StatusOK, http.StatusCreated:
		return VerificationRequested, nil
	default:
		return "", fmt.Errorf("verification service returned status %d", resp.StatusCode)
	}
}

// TokenMatches compares a callback token against the expected one without
// leaking timing information.
func TokenMatches(expected, got string) bool {
	return subtle.ConstantTimeCompare([]byte(expected), []byte(got)) == 1
}
