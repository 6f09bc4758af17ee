package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requestContext(t *testing.T, remoteAddr string, headers map[string]string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	req, err := http.NewRequest(http.MethodGet, "/", nil)
	require.NoError(t, err)
	req.RemoteAddr = remoteAddr
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	c.Request = req
	return c
}

func TestGetClientIPPrefersForwardedFor(t *testing.T) {
	c := requestContext(t, "10.0.0.1:4321", map[string]string{
		"X-Forwarded-For": "203.0.113.9, 10.0.0.2",
	})
	assert.Equal(t, "203.0.113.9", getClientIP(c))
}

func TestGetClientIPIgnoresUnparseableForwardedFor(t *testing.T) {
	c := requestContext(t, "10.0.0.1:4321", map[string]string{
		"X-Forwarded-For": "not-an-ip",
		"X-Real-IP":       "198.51.100.7",
	})
	assert.Equal(t, "198.51.100.7", getClientIP(c))
}

func TestGetClientIPFallsBackToRemoteAddr(t *testing.T) {
	c := requestContext(t, "192.0.2.4:9999", nil)
	assert.Equal(t, "192.0.2.4", getClientIP(c))

	// No port on the peer address is tolerated.
	c = requestContext(t, "192.0.2.4", nil)
	assert.Equal(t, "192.0.2.4", getClientIP(c))
}
