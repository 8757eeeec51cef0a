package captcha

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"erpapi/internal/config"
)

func newServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "secret", r.PostForm.Get("secret"))
		assert.Equal(t, "tok", r.PostForm.Get("response"))
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func verifier(url string) *Recaptcha {
	return NewRecaptcha(config.RecaptchaConfig{SecretKey: "secret", VerifyURL: url, MinScore: 0.5})
}

func TestRecaptcha_Verify(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		rejected bool
		fails    bool
	}{
		{"v2 success", http.StatusOK, `{"success":true}`, false, false},
		{"v3 good score", http.StatusOK, `{"success":true,"score":0.9}`, false, false},
		{"v3 low score", http.StatusOK, `{"success":true,"score":0.1}`, true, true},
		{"v3 zero score", http.StatusOK, `{"success":true,"score":0.0,"action":"inquiry"}`, true, true},
		{"v3 score at minimum", http.StatusOK, `{"success":true,"score":0.5}`, false, false},
		{"invalid token", http.StatusOK, `{"success":false,"error-codes":["invalid-input-response"]}`, true, true},
		{"provider error", http.StatusInternalServerError, ``, false, true},
		{"garbage body", http.StatusOK, `not json`, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newServer(t, tt.status, tt.body)
			err := verifier(srv.URL).Verify(context.Background(), "tok", "10.0.0.1")
			if !tt.fails {
				assert.NoError(t, err)
				return
			}
			assert.Error(t, err)
			assert.Equal(t, tt.rejected, errors.Is(err, ErrRejected))
		})
	}
}

func TestRecaptcha_MissingToken(t *testing.T) {
	err := verifier("http://127.0.0.1:0").Verify(context.Background(), "", "")
	assert.ErrorIs(t, err, ErrRejected)
}

func TestDisabled(t *testing.T) {
	assert.NoError(t, Disabled{}.Verify(context.Background(), "", ""))
}
