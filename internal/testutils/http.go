package testutils

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// HTTPTestSuite drives a gin engine in memory
type HTTPTestSuite struct {
	Router *gin.Engine
}

// SetupHTTPTest returns a bare engine in test mode. UseRawPath matches the
// production router so escaped team names reach handlers intact.
func SetupHTTPTest() *HTTPTestSuite {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.UseRawPath = true
	return &HTTPTestSuite{Router: router}
}

// MakeRequest executes a request against the router, encoding body as JSON when set
func (s *HTTPTestSuite) MakeRequest(method, url string, body interface{}) *httptest.ResponseRecorder {
	return s.MakeRequestWithHeaders(method, url, body, nil)
}

// MakeRequestWithHeaders is MakeRequest with extra request headers
func (s *HTTPTestSuite) MakeRequestWithHeaders(method, url string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	var reqBody io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reqBody = bytes.NewBufferString(b)
	default:
		jsonBytes, _ := json.Marshal(b)
		reqBody = bytes.NewBuffer(jsonBytes)
	}

	req := httptest.NewRequest(method, url, reqBody)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	recorder := httptest.NewRecorder()
	s.Router.ServeHTTP(recorder, req)
	return recorder
}

// AssertJSONResponse checks status and content type, then decodes into target
func AssertJSONResponse(t *testing.T, recorder *httptest.ResponseRecorder, expectedStatus int, target interface{}) {
	t.Helper()
	assert.Equal(t, expectedStatus, recorder.Code)
	assert.Equal(t, "application/json; charset=utf-8", recorder.Header().Get("Content-Type"))
	if target != nil {
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), target))
	}
}

// AssertErrorResponse checks status and that the error field contains expectedMessage
func AssertErrorResponse(t *testing.T, recorder *httptest.ResponseRecorder, expectedStatus int, expectedMessage string) {
	t.Helper()
	assert.Equal(t, expectedStatus, recorder.Code)

	var errorResponse map[string]interface{}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &errorResponse))
	if expectedMessage != "" {
		assert.Contains(t, errorResponse["error"], expectedMessage)
	}
}

// Bearer builds an Authorization header map
func Bearer(token string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + token}
}

var _ http.Handler = (*gin.Engine)(nil)

// ParseJSONResponse decodes the response body into target
func ParseJSONResponse(t *testing.T, recorder *httptest.ResponseRecorder, target interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), target))
}
