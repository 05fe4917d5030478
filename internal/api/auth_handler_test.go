package api

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/shutter-academy/academy-api/internal/mocks"
	"github.com/stretchr/testify/assert"
)

func TestIssueToken(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		body        interface{}
		generateErr error
		wantStatus  int
		wantToken   bool
		wantMessage string
	}{
		{
			name:       "valid email",
			body:       map[string]string{"email": "s@example.com"},
			wantStatus: http.StatusOK,
			wantToken:  true,
		},
		{
			name:       "extra fields ignored",
			body:       map[string]string{"email": "s@example.com", "displayName": "Sam"},
			wantStatus: http.StatusOK,
			wantToken:  true,
		},
		{
			name:        "missing email",
			body:        map[string]string{},
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Invalid email: required field",
		},
		{
			name:        "malformed email",
			body:        map[string]string{"email": "not-an-email"},
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Invalid email: invalid email format",
		},
		{
			name:       "malformed json",
			body:       `{"email":`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:        "signing failure",
			body:        map[string]string{"email": "s@example.com"},
			generateErr: errors.New("hmac exploded"),
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "Failed to generate authentication token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var gotEmail string
			jwtService := &mocks.MockJWTService{
				GenerateTokenFn: func(_ context.Context, email string) (string, error) {
					gotEmail = email
					return "signed-token", tt.generateErr
				},
			}
			h := NewAuthHandler(jwtService)

			rec := serve(t, http.MethodPost, "/jwt", "/jwt", h.IssueToken, tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantToken {
				var resp TokenResponse
				decodeBody(t, rec, &resp)
				assert.Equal(t, "signed-token", resp.Token)
				assert.Equal(t, "s@example.com", gotEmail)
				return
			}
			resp := decodeError(t, rec)
			if tt.wantMessage != "" {
				assert.Equal(t, tt.wantMessage, resp.Message)
			}
			assert.NotContains(t, rec.Body.String(), "hmac")
		})
	}
}
