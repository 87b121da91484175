package testutils

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// HTTPTestSuite wraps a bare gin engine for handler tests
type HTTPTestSuite struct {
	Router *gin.Engine
}

// SetupHTTPTest returns a router in test mode with no middleware
func SetupHTTPTest() *HTTPTestSuite {
	gin.SetMode(gin.TestMode)
	return &HTTPTestSuite{Router: gin.New()}
}

// MakeRequest serves one request; a non-nil body is sent as JSON
func (s *HTTPTestSuite) MakeRequest(method, url string, body interface{}) *httptest.ResponseRecorder {
	return s.MakeRequestWithHeaders(method, url, body, nil)
}

// MakeRequestWithHeaders serves one request with extra headers
func (s *HTTPTestSuite) MakeRequestWithHeaders(method, url string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		payload, _ := json.Marshal(body)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, url, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	recorder := httptest.NewRecorder()
	s.Router.ServeHTTP(recorder, req)
	return recorder
}

// ParseJSONResponse decodes the recorded body into target
func ParseJSONResponse(t *testing.T, recorder *httptest.ResponseRecorder, target interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), target), "body: %s", recorder.Body.String())
}

// AssertErrorResponse checks the status and that the "error" field contains expectedMessage
func AssertErrorResponse(t *testing.T, recorder *httptest.ResponseRecorder, expectedStatus int, expectedMessage string) {
	t.Helper()
	assert.Equal(t, expectedStatus, recorder.Code)

	var body struct {
		Error   string `json:"error"`
		Details string `json:"details"`
	}
	ParseJSONResponse(t, recorder, &body)
	if expectedMessage != "" {
		assert.Contains(t, body.Error, expectedMessage)
	}
}
