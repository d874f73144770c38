// Package web - JSON API endpoints for programmatic access.

package web

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/pkg/errors"

	"github.com/cabewaldrop/tinytable/internal/row"
	"github.com/cabewaldrop/tinytable/internal/sql/parser"
	"github.com/cabewaldrop/tinytable/internal/table"
)

// maxPageLimit caps how many rows one /api/rows request may return.
const maxPageLimit = 1000

// ============================================================================
// API Response Types
// ============================================================================

// APIResponse wraps all API responses with success/error info.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	Hint    string      `json:"hint,omitempty"`
}

// ColumnInfo describes a single column in the fixed schema.
type ColumnInfo struct {
	Name  string `json:"name"`
	Type  string `json:"type"`
	Width int    `json:"width"`
}

// SchemaResponse describes the table's structure.
type SchemaResponse struct {
	Columns []ColumnInfo `json:"columns"`
	RowSize int          `json:"row_size"`
}

// RowPayload is the JSON shape of one row, both in and out.
type RowPayload struct {
	ID       uint32 `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// RowsResponse contains paginated row data.
type RowsResponse struct {
	Rows       []RowPayload `json:"rows"`
	TotalCount int          `json:"total_count"`
	Offset     int          `json:"offset"`
	Limit      int          `json:"limit"`
	HasMore    bool         `json:"has_more"`
}

// QueryRequest is the body for statement execution.
type QueryRequest struct {
	Statement string `json:"statement"`
}

// QueryResponse contains statement results.
type QueryResponse struct {
	Columns  []string   `json:"columns,omitempty"`
	Rows     [][]string `json:"rows,omitempty"`
	RowCount int        `json:"row_count"`
	Message  string     `json:"message,omitempty"`
}

// ============================================================================
// Helper Functions
// ============================================================================

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeSuccess writes a successful API response.
func writeSuccess(w http.ResponseWriter, data interface{}) {
	writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data:    data,
	})
}

// writeError writes an error API response, attaching a hint when one is
// available for the error.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, APIResponse{
		Success: false,
		Error:   message,
		Hint:    GetErrorHint(message),
	})
}

// statusForError maps storage and parse errors onto HTTP status codes.
func statusForError(err error) int {
	switch {
	case errors.Is(err, table.ErrTableFull), errors.Is(err, row.ErrFieldTooLong):
		return http.StatusUnprocessableEntity
	case errors.Is(err, parser.ErrSyntax), errors.Is(err, parser.ErrUnrecognized):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// toPayload converts a stored row to its JSON shape.
func toPayload(r row.Row) RowPayload {
	return RowPayload{ID: r.ID, Username: r.Username, Email: r.Email}
}

// ============================================================================
// API Handlers
// ============================================================================

// handleSchema returns the fixed schema.
// GET /api/schema
func (s *Server) handleSchema(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, SchemaResponse{
		Columns: []ColumnInfo{
			{Name: "id", Type: "uint32", Width: row.IDSize},
			{Name: "username", Type: "text", Width: row.UsernameSize},
			{Name: "email", Type: "text", Width: row.EmailSize},
		},
		RowSize: row.RowSize,
	})
}

// handleStats returns row and page usage.
// GET /api/stats
func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	exec := GetExecutor(r)

	s.mu.Lock()
	stats := exec.Stats()
	s.mu.Unlock()

	writeSuccess(w, stats)
}

// handleListRows returns paginated rows in insertion order.
// GET /api/rows?limit=50&offset=0
func (s *Server) handleListRows(w http.ResponseWriter, r *http.Request) {
	exec := GetExecutor(r)

	// Parse pagination params
	limit := 50
	offset := 0
	if l := r.URL.Query().Get("limit"); l != "" {
		if parsed, err := strconv.Atoi(l); err == nil && parsed > 0 {
			if parsed > maxPageLimit {
				parsed = maxPageLimit
			}
			limit = parsed
		}
	}
	if o := r.URL.Query().Get("offset"); o != "" {
		if parsed, err := strconv.Atoi(o); err == nil && parsed >= 0 {
			offset = parsed
		}
	}

	s.mu.Lock()
	allRows, err := exec.SelectAll()
	s.mu.Unlock()
	if err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("scan failed: %v", err))
		return
	}

	totalCount := len(allRows)
	start := offset
	if start > totalCount {
		start = totalCount
	}
	// Computed from the clamped start so a huge offset cannot overflow end.
	end := start + limit
	if end < start || end > totalCount {
		end = totalCount
	}

	page := make([]RowPayload, 0, end-start)
	for _, rw := range allRows[start:end] {
		page = append(page, toPayload(rw))
	}

	writeSuccess(w, RowsResponse{
		Rows:       page,
		TotalCount: totalCount,
		Offset:     offset,
		Limit:      limit,
		HasMore:    end < totalCount,
	})
}

// handleInsertRow appends one row.
// POST /api/rows
func (s *Server) handleInsertRow(w http.ResponseWriter, r *http.Request) {
	exec := GetExecutor(r)

	var payload RowPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	s.mu.Lock()
	err := exec.Insert(row.Row{ID: payload.ID, Username: payload.Username, Email: payload.Email})
	s.mu.Unlock()
	if err != nil {
		writeError(w, statusForError(err), err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, APIResponse{Success: true, Data: payload})
}

// handleQuery executes a text statement ("insert ..." or "select").
// POST /api/query
func (s *Server) handleQuery(w http.ResponseWriter, r *http.Request) {
	exec := GetExecutor(r)

	var req QueryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Statement == "" {
		writeError(w, http.StatusBadRequest, "statement field is required")
		return
	}

	stmt, err := parser.Parse(req.Statement)
	if err != nil {
		writeError(w, statusForError(err), fmt.Sprintf("parse error: %v", err))
		return
	}

	s.mu.Lock()
	result, err := exec.Execute(stmt)
	s.mu.Unlock()
	if err != nil {
		writeError(w, statusForError(err), fmt.Sprintf("execution error: %v", err))
		return
	}

	writeSuccess(w, QueryResponse{
		Columns:  result.Columns,
		Rows:     result.Rows,
		RowCount: len(result.Rows),
		Message:  result.Message,
	})
}
