package http

import "net/http"

const indexPage = `<h1>Go Add-on Skeleton</h1><p>The add-on is running!</p>`

func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(indexPage))
}
