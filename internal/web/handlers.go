package web

import (
	"fmt"
	"net/http"
)

// handleIndex serves a minimal landing page describing the API.
// GET /
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, `<!DOCTYPE html>
<html>
<head><title>tinytable</title></head>
<body>
<h1>tinytable</h1>
<p>An in-memory fixed-schema row store.</p>
<ul>
  <li><code>GET /health</code> - liveness check</li>
  <li><code>GET /api/schema</code> - column layout</li>
  <li><code>GET /api/stats</code> - row and page usage</li>
  <li><code>GET /api/rows?limit=&amp;offset=</code> - list rows</li>
  <li><code>POST /api/rows</code> - insert a row (JSON)</li>
  <li><code>POST /api/query</code> - run an insert/select statement</li>
</ul>
</body>
</html>
`)
}

// handleHealth reports server liveness.
// GET /health
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
