// Package respond writes the uniform JSON envelope every endpoint
// answers with: {"status": "ok"|"fail"|"error", "message": "..."}.
package respond

import (
	"encoding/json"
	"net/http"
)

// Status follows JSend conventions: ok for success, fail for
// client-caused rejections, error for server-side faults.
type Status string

const (
	StatusOK    Status = "ok"
	StatusFail  Status = "fail"
	StatusError Status = "error"
)

// Response is the envelope serialized on every reply. It is created
// fresh per request and never reused.
type Response struct {
	Status  Status `json:"status"`
	Message string `json:"message"`
}

// JSON writes the envelope with the given HTTP status code.
func JSON(w http.ResponseWriter, code int, res Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(res)
}

// OK answers 200 with status ok and the given message.
func OK(w http.ResponseWriter, message string) {
	JSON(w, http.StatusOK, Response{Status: StatusOK, Message: message})
}

// Fail answers a client-caused rejection with status fail.
func Fail(w http.ResponseWriter, code int, err error) {
	JSON(w, code, Response{Status: StatusFail, Message: err.Error()})
}

// Error answers a server-side fault with status error.
func Error(w http.ResponseWriter, code int, err error) {
	JSON(w, code, Response{Status: StatusError, Message: err.Error()})
}
