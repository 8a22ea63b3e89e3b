package http

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/ShivenPandit/Super-Mall-Web-App/internal/auditlog"
)

// LogsHandler exposes the in-memory audit log buffer to admins.
type LogsHandler struct {
	buffer *auditlog.Buffer
}

// NewLogsHandler creates a new audit log HTTP handler.
func NewLogsHandler(buffer *auditlog.Buffer) *LogsHandler {
	return &LogsHandler{buffer: buffer}
}

func parseLogFilter(r *http.Request) (auditlog.Filter, error) {
	q := r.URL.Query()
	f := auditlog.Filter{
		Level:  strings.ToUpper(q.Get("level")),
		Module: q.Get("module"),
	}

	if v := q.Get("from"); v != "" {
		from, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return f, fmt.Errorf("from must be in RFC3339 format")
		}
		f.From = from
	}
	if v := q.Get("to"); v != "" {
		to, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return f, fmt.Errorf("to must be in RFC3339 format")
		}
		f.To = to
	}

	return f, nil
}

// Query handles GET /api/v1/admin/logs
func (h *LogsHandler) Query(w http.ResponseWriter, r *http.Request) {
	filter, err := parseLogFilter(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, response{
			Error: &errorResponse{Code: "INVALID_INPUT", Message: err.Error()},
		})
		return
	}

	writeJSON(w, http.StatusOK, response{Data: h.buffer.Query(filter)})
}

// Export handles GET /api/v1/admin/logs/export. It returns the filtered
// entries as a JSON attachment.
func (h *LogsHandler) Export(w http.ResponseWriter, r *http.Request) {
	filter, err := parseLogFilter(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, response{
			Error: &errorResponse{Code: "INVALID_INPUT", Message: err.Error()},
		})
		return
	}

	filename := fmt.Sprintf("supermall-logs-%s.json", time.Now().UTC().Format("2006-01-02"))
	w.Header().Set("Content-Disposition", "attachment; filename="+filename)
	writeJSON(w, http.StatusOK, h.buffer.Query(filter))
}

// Clear handles DELETE /api/v1/admin/logs
func (h *LogsHandler) Clear(w http.ResponseWriter, r *http.Request) {
	h.buffer.Clear()
	writeJSON(w, http.StatusNoContent, nil)
}
