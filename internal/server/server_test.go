package server

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, changelog string) *Server {
	t.Helper()

	path := filepath.Join(t.TempDir(), "CHANGELOG.md")
	if changelog != "" {
		require.NoError(t, os.WriteFile(path, []byte(changelog), 0o644))
	}

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(path, log)
}

func TestServer_Health(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, "# Changelog\n")

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestServer_Index(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, "# Changelog\n")

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "changelint")
}

func TestServer_ChangelogRendersHTML(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, "# Changelog\n\n## [Unreleased]\n\n### Added\n- New feature\n")

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/changelog", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "<h1>Changelog</h1>")
	assert.Contains(t, body, "New feature")
}

func TestServer_ChangelogMissingFile(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, "")

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/changelog", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServer_UnknownRoute(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, "# Changelog\n")

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
