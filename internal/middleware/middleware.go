// Package middleware runs ordered request checks in front of a handler.
//
// Each Step inspects the request and either lets it through, optionally
// returning an enriched request for the next step, or rejects it. The first
// rejection ends the chain: later steps and the handler never run.
package middleware

import "net/http"

// Rejection is the response a Step wants sent instead of calling the handler.
// Err, when set, is the underlying failure and is meant for logs only.
type Rejection struct {
	Status  int
	Message string
	Err     error
}

func Reject(status int, message string) *Rejection {
	return &Rejection{Status: status, Message: message}
}

// Fail rejects with 500 because of err.
func Fail(err error) *Rejection {
	return &Rejection{Status: http.StatusInternalServerError, Err: err}
}

// Step returns a nil Rejection to proceed. A nil request means the incoming
// one is passed on unchanged.
type Step func(r *http.Request) (*http.Request, *Rejection)

// Responder writes the response for a rejection.
type Responder func(w http.ResponseWriter, r *http.Request, rej *Rejection)

// Chain composes steps left to right into a router middleware.
func Chain(respond Responder, steps ...Step) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for _, step := range steps {
				enriched, rej := step(r)
				if rej != nil {
					respond(w, r, rej)
					return
				}

				if enriched != nil {
					r = enriched
				}
			}

			next.ServeHTTP(w, r)
		})
	}
}
