// Package middleware holds HTTP middleware shared by the GeneMatch server.
package middleware

import (
	"log"
	"net/http"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

// NewLogger returns access logging middleware writing one line per request
// to l, without colour codes.
func NewLogger(l *log.Logger) func(http.Handler) http.Handler {
	return chimiddleware.RequestLogger(&chimiddleware.DefaultLogFormatter{
		Logger:  l,
		NoColor: true,
	})
}
