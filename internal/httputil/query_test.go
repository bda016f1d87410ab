package httputil_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/abderrahimghazali/vault-api/internal/httputil"
)

func TestParseSearchQuery(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name          string
		url           string
		expectedText  string
		expectedLimit int
		expectError   bool
		errorMsg      string
	}{
		{
			name:          "default limit",
			url:           "/?text=hello",
			expectedText:  "hello",
			expectedLimit: 10,
		},
		{
			name:          "custom limit",
			url:           "/?text=hello+world&limit=20",
			expectedText:  "hello world",
			expectedLimit: 20,
		},
		{
			name:          "max limit",
			url:           "/?text=hello&limit=100",
			expectedText:  "hello",
			expectedLimit: 100,
		},
		{
			name:        "missing text",
			url:         "/?limit=5",
			expectError: true,
			errorMsg:    "missing text parameter",
		},
		{
			name:        "limit zero",
			url:         "/?text=hello&limit=0",
			expectError: true,
			errorMsg:    "invalid limit parameter: must be between 1 and 100",
		},
		{
			name:        "limit too large",
			url:         "/?text=hello&limit=101",
			expectError: true,
			errorMsg:    "invalid limit parameter: must be between 1 and 100",
		},
		{
			name:        "limit not an integer",
			url:         "/?text=hello&limit=abc",
			expectError: true,
			errorMsg:    "invalid limit parameter: must be between 1 and 100",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, tt.url, nil)

			text, limit, err := httputil.ParseSearchQuery(c, 10, 100)

			if tt.expectError {
				assert.EqualError(t, err, tt.errorMsg)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedText, text)
			assert.Equal(t, tt.expectedLimit, limit)
		})
	}
}
