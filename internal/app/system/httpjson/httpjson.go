// internal/app/system/httpjson/httpjson.go

// Package httpjson holds the JSON request/response helpers shared by the
// feature handlers. Responses are small envelopes: data payloads on
// success, {"error": "..."} on failure.
package httpjson

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
)

// maxBodyBytes caps JSON request bodies at one megabyte.
const maxBodyBytes = 1 << 20

type errorEnvelope struct {
	Error string `json:"error"`
}

// Write marshals v and sends it with the given status code.
func Write(w http.ResponseWriter, statusCode int, v interface{}) {
	payload, err := json.Marshal(v)
	if err != nil {
		http.Error(w, `{"error":"internal error"}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_, _ = w.Write(payload)
}

// Error sends {"error": msg} with the given status code.
func Error(w http.ResponseWriter, statusCode int, msg string) {
	Write(w, statusCode, errorEnvelope{Error: msg})
}

// Read decodes a single JSON value from the request body into data.
// Unknown fields and trailing values are rejected so malformed clients
// fail loudly instead of half-working.
func Read(w http.ResponseWriter, r *http.Request, data interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(data); err != nil {
		return err
	}

	// make sure only one JSON value in payload
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return errors.New("body must only contain a single JSON value")
	}
	return nil
}
