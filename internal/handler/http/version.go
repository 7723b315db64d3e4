package http

import (
	"net/http"
)

func (h *Handler) getAddonVersion(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	_, _ = w.Write([]byte(h.buildVersion))
}
