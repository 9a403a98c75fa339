package response

import (
	"encoding/json"
	"net/http"
)

type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Kind    string `json:"kind,omitempty"`
}

type Response struct {
	Data  any    `json:"data,omitempty"`
	Error *Error `json:"error,omitempty"`
}

func JSON(w http.ResponseWriter, status int, data any) {
	write(w, status, Response{Data: data})
}

// ErrorJSON writes the error envelope. kind is a machine-readable failure
// kind and may be empty.
func ErrorJSON(w http.ResponseWriter, status int, kind, message string) {
	write(w, status, Response{
		Error: &Error{
			Code:    status,
			Message: message,
			Kind:    kind,
		},
	})
}

func write(w http.ResponseWriter, status int, resp Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(resp)
}
