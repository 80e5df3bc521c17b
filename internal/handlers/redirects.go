package handlers

import "net/http"

// AuthPaths are served by the Orchestrator, which owns authentication.
var AuthPaths = []string{"/login", "/register", "/verification-pending", "/email-verified"}

// AuthRedirect sends the visitor to the same path on the Orchestrator,
// keeping the query string.
func (h *Handler) AuthRedirect(w http.ResponseWriter, r *http.Request) {
	target := h.site.OrchestratorURL + r.URL.Path
	if r.URL.RawQuery != "" {
		target += "?" + r.URL.RawQuery
	}
	http.Redirect(w, r, target, http.StatusTemporaryRedirect)
}
