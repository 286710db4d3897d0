package controllers

import (
	"errors"
	"net/http"
	"portfolio/internal/providers"
	"portfolio/internal/repository"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/gorilla/mux"
	"github.com/spf13/cast"
)

const maxRequestBodySize = 1 << 20 // 1 MB

// maxImportBodySize bounds POST /api/admin/import; snapshots carry full blog content.
const maxImportBodySize = 16 << 20

var errBadID = errors.New("id must be a positive integer")

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	gson, err := json.Marshal(v)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(gson)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// errorStatus maps repository errors onto HTTP codes.
func errorStatus(err error) int {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, repository.ErrInvalid), errors.Is(err, repository.ErrSchema), errors.Is(err, errBadID):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeRepoError(w http.ResponseWriter, logger providers.Logger, err error) {
	status := errorStatus(err)
	if status == http.StatusInternalServerError {
		logger.Errorf(providers.TypeStorage, "Request failed: %s", err)
		writeError(w, status, "Internal Server Error")
		return
	}
	writeError(w, status, err.Error())
}

// idParam accepts plain decimal ids. cast reads a leading 0 as octal and 0x
// as hex, so those forms are rejected before it sees them.
func idParam(r *http.Request) (int, error) {
	raw := mux.Vars(r)["id"]
	if raw == "" || raw[0] == '0' || strings.Trim(raw, "0123456789") != "" {
		return 0, errBadID
	}
	id, err := cast.ToIntE(raw)
	if err != nil || id < 1 {
		return 0, errBadID
	}
	return id, nil
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "Bad Request")
		return false
	}
	return true
}
