package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func doRequest(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	testHandler.ServeHTTP(rr, req)
	return rr
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body), rr.Body.String())
	return body
}

func requireError(t *testing.T, rr *httptest.ResponseRecorder, status int, message string) {
	t.Helper()

	require.Equal(t, status, rr.Code, rr.Body.String())
	require.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	require.Equal(t, map[string]any{"error": message}, decodeBody(t, rr))
}

func createTestUserAPI(t *testing.T, name string) int64 {
	t.Helper()

	payload := fmt.Sprintf(`{"name":%q,"email":"%s@example.com","password":"pw"}`, name, name)
	rr := doRequest(t, http.MethodPost, "/user", payload)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	return int64(decodeBody(t, rr)["id"].(float64))
}

func createTestHabitAPI(t *testing.T, userID int64, name string) int64 {
	t.Helper()

	rr := doRequest(t, http.MethodPost, fmt.Sprintf("/user/%d/habit", userID), fmt.Sprintf(`{"name":%q}`, name))
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	return int64(decodeBody(t, rr)["id"].(float64))
}
