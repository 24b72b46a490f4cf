package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/genads/genads-api/pkg/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealth(t *testing.T) {
	router := newTestRouter(t, newFakeStore())

	w := doJSON(t, router, http.MethodGet, "/", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "GenAds Backend Running", body["message"])
}

func TestHealth_SetsRequestID(t *testing.T) {
	router := newTestRouter(t, newFakeStore())

	w := doJSON(t, router, http.MethodGet, "/", nil)
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
}

func decodeDiagnostic(t *testing.T, body []byte) map[string]interface{} {
	t.Helper()
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(body, &resp))
	return resp
}

func TestDatabaseDiagnostic_NoStore(t *testing.T) {
	router := newTestRouter(t, nil)

	w := doJSON(t, router, http.MethodGet, "/test", nil)
	require.Equal(t, http.StatusOK, w.Code, "diagnostic must never fail")

	resp := decodeDiagnostic(t, w.Body.Bytes())
	assert.Equal(t, "✅ Running", resp["backend"])
	assert.Equal(t, "❌ Not Available", resp["database"])
	assert.Equal(t, "Not Connected", resp["connection_status"])
	assert.Empty(t, resp["collections"])
}

func TestDatabaseDiagnostic_Connected(t *testing.T) {
	fs := newFakeStore()
	fs.collections = []string{"user", "project", "videojob"}
	router := newTestRouter(t, fs)

	w := doJSON(t, router, http.MethodGet, "/test", nil)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decodeDiagnostic(t, w.Body.Bytes())
	assert.Equal(t, "✅ Connected & Working", resp["database"])
	assert.Equal(t, "✅ Set", resp["database_url"])
	assert.Equal(t, "genads_test", resp["database_name"])
	assert.Equal(t, "Connected", resp["connection_status"])
	assert.ElementsMatch(t, []interface{}{"user", "project", "videojob"}, resp["collections"])
}

func TestDatabaseDiagnostic_TruncatesCollections(t *testing.T) {
	fs := newFakeStore()
	for i := 0; i < 15; i++ {
		fs.collections = append(fs.collections, string(rune('a'+i)))
	}
	router := newTestRouter(t, fs)

	w := doJSON(t, router, http.MethodGet, "/test", nil)
	resp := decodeDiagnostic(t, w.Body.Bytes())
	collections, ok := resp["collections"].([]interface{})
	require.True(t, ok)
	assert.Len(t, collections, 10)
}

func TestDatabaseDiagnostic_IntrospectionError(t *testing.T) {
	fs := newFakeStore()
	fs.collectionsErr = errors.New("network timeout talking to mongod")
	router := newTestRouter(t, fs)

	w := doJSON(t, router, http.MethodGet, "/test", nil)
	require.Equal(t, http.StatusOK, w.Code, "introspection failures stay in the body")

	resp := decodeDiagnostic(t, w.Body.Bytes())
	assert.Contains(t, resp["database"], "Connected but Error")
	assert.Contains(t, resp["database"], "network timeout")
}
