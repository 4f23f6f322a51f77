package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractToken(t *testing.T) {
	tests := []struct {
		name     string
		headers  map[string]string
		expected string
	}{
		{
			name:     "bearer header",
			headers:  map[string]string{"Authorization": "Bearer abc123"},
			expected: "abc123",
		},
		{
			name:     "cookie only",
			headers:  map[string]string{"Cookie": "auth-token=cookie-token"},
			expected: "cookie-token",
		},
		{
			name: "header wins over cookie",
			headers: map[string]string{
				"Authorization": "Bearer header-token",
				"Cookie":        "auth-token=cookie-token",
			},
			expected: "header-token",
		},
		{
			name:     "cookie among other segments",
			headers:  map[string]string{"Cookie": "theme=dark; auth-token=tok; lang=en"},
			expected: "tok",
		},
		{
			name:     "non-bearer authorization falls back to cookie",
			headers:  map[string]string{"Authorization": "Basic dXNlcg==", "Cookie": "auth-token=tok"},
			expected: "tok",
		},
		{
			name:     "empty bearer value falls back to cookie",
			headers:  map[string]string{"Authorization": "Bearer ", "Cookie": "auth-token=tok"},
			expected: "tok",
		},
		{
			name:     "unrelated cookie",
			headers:  map[string]string{"Cookie": "session=other"},
			expected: "",
		},
		{
			name:     "nothing",
			headers:  map[string]string{},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			assert.Equal(t, tt.expected, ExtractToken(req))
		})
	}
}
