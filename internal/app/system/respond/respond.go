// internal/app/system/respond/respond.go

// Package respond writes the API's success envelopes.
// Error envelopes live in apperr; this keeps the two shapes in one place each.
package respond

import (
	"encoding/json"
	"net/http"
)

type dataEnvelope struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

type listEnvelope struct {
	Success bool `json:"success"`
	Count   int  `json:"count"`
	Data    any  `json:"data"`
}

type tokenEnvelope struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
}

// Data writes {"success":true,"data":<v>} with the given status.
func Data(w http.ResponseWriter, status int, v any) {
	write(w, status, dataEnvelope{Success: true, Data: v})
}

// List writes {"success":true,"count":N,"data":[...]} with status 200.
func List(w http.ResponseWriter, count int, v any) {
	write(w, http.StatusOK, listEnvelope{Success: true, Count: count, Data: v})
}

// Token writes {"success":true,"token":"..."} with the given status.
func Token(w http.ResponseWriter, status int, token string) {
	write(w, status, tokenEnvelope{Success: true, Token: token})
}

// Empty writes {"success":true,"data":{}} with status 200, the delete
// acknowledgement shape.
func Empty(w http.ResponseWriter) {
	write(w, http.StatusOK, dataEnvelope{Success: true, Data: struct{}{}})
}

func write(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
