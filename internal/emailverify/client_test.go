package emailverify

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequest_Outcomes(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		want    Result
		wantErr bool
	}{
		{"conflict means already verified", http.StatusConflict, AlreadyVerified, false},
		{"created means requested", http.StatusCreated, VerificationRequested, false},
		{"ok means requested", http.StatusOK, VerificationRequested, false},
		{"server error", http.StatusInternalServerError, "", true},
		{"bad request", http.StatusBadRequest, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "/verification-requests", r.URL.Path)
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			c := New(srv.URL, time.Second)
			got, err := c.Request(context.Background(), "jane@example.com", "r-1", "Jane Doe")
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRequest_SendsBody(t *testing.T) {
	var got requestBody
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &got))
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second)
	_, err := c.Request(context.Background(), "jane@example.com", "r-1", "Jane Doe")
	require.NoError(t, err)

	assert.Equal(t, "jane@example.com", got.Email)
	assert.Equal(t, "r-1", got.CorrelationID)
	assert.Equal(t, "Jane Doe", got.Name)
}

func TestRequest_DisabledBaseURL(t *testing.T) {
	c := New("", time.Second)
	got, err := c.Request(context.Background(), "jane@example.com", "r-1", "Jane Doe")
	require.NoError(t, err)
	assert.Equal(t, VerificationRequested, got)
}

func TestTokenMatches(t *testing.T) {
	assert.True(t, TokenMatches("tok-123", "tok-123"))
	assert.False(t, TokenMatches("tok-123", "tok-124"))
	assert.False(t, TokenMatches("tok-123", ""))
	assert.False(t, TokenMatches("", "tok-123"))
}
