// Package cayleyhttp is the JSON API boundary: httprouter routes that accept
// triple, pattern, path, and proof requests and shape typed internal results
// back into the QueryResult / ProofTree JSON contracts, keeping JSON at the
// edge only (spec §9, "Dynamic JSON as API").
//
// Grounded on the teacher's server/http (API v2 route registration style,
// jsonResponse error envelope) and internal/http/http.go (LogRequest
// wrapper, ResponseHandler signature).
package cayleyhttp

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/julienschmidt/httprouter"

	"github.com/reasoncore/core/clog"
)

const contentTypeJSON = "application/json; charset=utf-8"

func jsonResponse(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func errorResponse(w http.ResponseWriter, code int, err interface{}) {
	var s string
	switch err := err.(type) {
	case string:
		s = err
	case error:
		s = err.Error()
	default:
		s = fmt.Sprint(err)
	}
	jsonResponse(w, code, map[string]string{"error": s})
}

// ResponseHandler is an httprouter handler that reports the status code it
// wrote, so LogRequest can log it after the fact.
type ResponseHandler func(http.ResponseWriter, *http.Request, httprouter.Params) int

// LogRequest wraps a ResponseHandler and, once it returns, logs one line
// through clog with the method, path, status code and elapsed time. Each
// request gets a fresh request id, sent back in the X-Request-Id response
// header and included in that log line, so a response can be matched to its
// access log entry.
func LogRequest(handler ResponseHandler) httprouter.Handle {
	return func(w http.ResponseWriter, req *http.Request, params httprouter.Params) {
		id := uuid.NewString()
		w.Header().Set("X-Request-Id", id)
		start := time.Now()
		code := handler(w, req, params)
		clog.Infof("[%s] %s %s -> %d (%v)", id, req.Method, req.URL.Path, code, time.Since(start))
	}
}
