// Package respond writes the API's JSON bodies: ETag-cached roster and game
// log payloads, per-request projections, and structured errors.
//
// Bodies are marshalled before any header is sent, so a value that cannot be
// encoded (a NaN stat, say) becomes a 500 instead of an empty 200.
package respond

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// ErrorResponse is the standard error shape for all API errors.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// ErrorBody carries a machine-readable code and a human message.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
}

// Cached writes an already-encoded payload from the response cache.
func Cached(w http.ResponseWriter, body []byte, etag string, ttl time.Duration, hit bool) {
	h := w.Header()
	h.Set("ETag", etag)
	h.Set("Vary", "Accept-Encoding")
	h.Set("Cache-Control", fmt.Sprintf("public, max-age=%d, stale-while-revalidate=%d",
		int(ttl.Seconds()), int(ttl.Seconds())/2))
	if hit {
		h.Set("X-Cache", "HIT")
	} else {
		h.Set("X-Cache", "MISS")
	}
	send(w, http.StatusOK, body)
}

// NotModified answers a conditional request whose ETag still matches.
func NotModified(w http.ResponseWriter, etag string) {
	w.Header().Set("ETag", etag)
	w.WriteHeader(http.StatusNotModified)
}

// Fresh writes a value recomputed for this request (projections, forecasts).
// Intermediaries must not cache it.
func Fresh(w http.ResponseWriter, v interface{}) {
	body, err := json.Marshal(v)
	if err != nil {
		encodeFailed(w, err)
		return
	}
	w.Header().Set("Cache-Control", "no-store")
	send(w, http.StatusOK, body)
}

// Object writes v with the given status.
func Object(w http.ResponseWriter, status int, v interface{}) {
	body, err := json.Marshal(v)
	if err != nil {
		encodeFailed(w, err)
		return
	}
	send(w, status, body)
}

// Error sends a structured JSON error response.
func Error(w http.ResponseWriter, status int, code, message string) {
	ErrorDetail(w, status, code, message, "")
}

// ErrorDetail sends a structured error with additional detail.
func ErrorDetail(w http.ResponseWriter, status int, code, message, detail string) {
	body, _ := json.Marshal(ErrorResponse{Error: ErrorBody{Code: code, Message: message, Detail: detail}})
	w.Header().Set("Cache-Control", "no-store")
	send(w, status, body)
}

func encodeFailed(w http.ResponseWriter, err error) {
	ErrorDetail(w, http.StatusInternalServerError, "ENCODE_FAILED", "Response could not be encoded", err.Error())
}

func send(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(body)
}
