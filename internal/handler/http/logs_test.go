package http

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ShivenPandit/Super-Mall-Web-App/internal/auditlog"
)

func setupLogsRouter(buffer *auditlog.Buffer) *chi.Mux {
	handler := NewLogsHandler(buffer)
	r := chi.NewRouter()
	r.Get("/api/v1/admin/logs", handler.Query)
	r.Get("/api/v1/admin/logs/export", handler.Export)
	r.Delete("/api/v1/admin/logs", handler.Clear)
	return r
}

func seededBuffer() *auditlog.Buffer {
	b := auditlog.NewBuffer(100)
	base := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	b.Append(auditlog.Entry{Timestamp: base, Level: auditlog.LevelInfo, Message: "shop created", Metadata: map[string]string{"module": "shops"}})
	b.Append(auditlog.Entry{Timestamp: base.Add(time.Minute), Level: auditlog.LevelError, Message: "reload failed", Metadata: map[string]string{"module": "offers"}})
	b.Append(auditlog.Entry{Timestamp: base.Add(2 * time.Minute), Level: auditlog.LevelInfo, Message: "offer created", Metadata: map[string]string{"module": "offers"}})
	return b
}

func TestLogsQuery_All(t *testing.T) {
	router := setupLogsRouter(seededBuffer())

	rec := doJSON(t, router, http.MethodGet, "/api/v1/admin/logs", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data []auditlog.Entry `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Data, 3)
}

func TestLogsQuery_ByLevelAndModule(t *testing.T) {
	router := setupLogsRouter(seededBuffer())

	rec := doJSON(t, router, http.MethodGet, "/api/v1/admin/logs?level=error&module=offers", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data []auditlog.Entry `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "reload failed", resp.Data[0].Message)
}

func TestLogsQuery_TimeRangeInclusive(t *testing.T) {
	router := setupLogsRouter(seededBuffer())

	rec := doJSON(t, router, http.MethodGet,
		"/api/v1/admin/logs?from=2026-08-30T12:01:00Z&to=2026-08-30T12:02:00Z", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data []auditlog.Entry `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Data, 2)
}

func TestLogsQuery_BadTimestamp(t *testing.T) {
	router := setupLogsRouter(seededBuffer())

	rec := doJSON(t, router, http.MethodGet, "/api/v1/admin/logs?from=yesterday", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLogsExport_SetsAttachmentHeader(t *testing.T) {
	router := setupLogsRouter(seededBuffer())

	rec := doJSON(t, router, http.MethodGet, "/api/v1/admin/logs/export", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "attachment; filename=supermall-logs-")

	var entries []auditlog.Entry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &entries))
	assert.Len(t, entries, 3)
}

func TestLogsClear(t *testing.T) {
	buffer := seededBuffer()
	router := setupLogsRouter(buffer)

	rec := doJSON(t, router, http.MethodDelete, "/api/v1/admin/logs", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, 0, buffer.Len())
}
