package http

import (
	nethttp "net/http"

	"github.com/dfsstartinglineups/nbastartingingfive/internal/http/handlers"
)

// NewRouter registers HTTP routes on a ServeMux.
func NewRouter(handler *handlers.Handler) nethttp.Handler {
	mux := nethttp.NewServeMux()
	mux.Handle("/health", handler)
	mux.Handle("/ready", handler)
	mux.Handle("/feed", handler)
	mux.Handle("/feed/", handler)
	return mux
}
