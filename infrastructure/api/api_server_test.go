package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/helixml/antigone"
	"github.com/helixml/antigone/infrastructure/api"
	"github.com/helixml/antigone/infrastructure/api/v1/dto"
	"github.com/helixml/antigone/internal/config"
	"github.com/helixml/antigone/internal/log"
	"github.com/helixml/antigone/internal/testdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, opts ...config.AppConfigOption) *httptest.Server {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	testdb.File(t, path, testdb.Sample())

	client, err := antigone.New(
		antigone.WithSQLite(path),
		antigone.WithLogger(log.Discard().Slog()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	cfg := config.NewAppConfigWithOptions(opts...)
	srv := httptest.NewServer(api.NewAPIServer(client, cfg, "test").Handler())
	t.Cleanup(srv.Close)
	return srv
}

func TestAPIServer_Health(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var body dto.Health
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "ok", body.Status)
}

func TestAPIServer_BasePath(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/AntigoneApp/lines/2")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var lines []dto.Line
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&lines))
	require.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].LineNum)

	resp, err = http.Get(srv.URL + "/lines/2")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestAPIServer_CustomBasePath(t *testing.T) {
	srv := newTestServer(t, config.WithBasePath(""))

	resp, err := http.Get(srv.URL + "/get_all_speakers")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAPIServer_Headers(t *testing.T) {
	srv := newTestServer(t, config.WithCORSOrigins([]string{"https://reader.example"}))

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/AntigoneApp/get_all_speakers", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "https://reader.example")
	req.Header.Set("X-Correlation-ID", "trace-1")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "https://reader.example", resp.Header.Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "trace-1", resp.Header.Get("X-Correlation-ID"))
}

func TestAPIServer_HealthUnderBasePath(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/AntigoneApp/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAPIServer_Docs(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/docs/")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")

	doc := fetchAPIDocument(t, srv.URL)
	assert.Equal(t, "2.0", doc.Swagger)
	assert.Equal(t, "/AntigoneApp", doc.BasePath)
	for _, path := range []string{
		"/lines/{start}",
		"/lines/{start}/{end}",
		"/read/{page}",
		"/word-details/{word}",
		"/search",
		"/get_all_speakers",
		"/health",
	} {
		assert.Contains(t, doc.Paths, path)
	}
}

func TestAPIServer_DocsFollowBasePath(t *testing.T) {
	srv := newTestServer(t, config.WithBasePath(""))

	doc := fetchAPIDocument(t, srv.URL)
	assert.Equal(t, "/", doc.BasePath)
}

type apiDocument struct {
	Swagger  string                     `json:"swagger"`
	BasePath string                     `json:"basePath"`
	Paths    map[string]json.RawMessage `json:"paths"`
}

func fetchAPIDocument(t *testing.T, baseURL string) apiDocument {
	t.Helper()
	resp, err := http.Get(baseURL + "/docs/swagger.json")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	var doc apiDocument
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&doc))
	return doc
}
