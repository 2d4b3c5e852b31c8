package endpoints

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/viadata/crashdb/pkg/idgen"
	"github.com/viadata/crashdb/pkg/server/store"
	"github.com/viadata/crashdb/pkg/validate"
)

// defaultPageSize is the limit applied when a listing request names none.
const defaultPageSize = 100

func respondWithError(w http.ResponseWriter, code int, payload interface{}) {
	respondWithJSON(w, code, map[string]interface{}{"error": payload})
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, _ := json.Marshal(payload)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(response)
}

// respondWithDomainError maps validation, identifier, and store errors onto
// HTTP statuses. Anything unrecognized is a 500.
func respondWithDomainError(w http.ResponseWriter, err error) {
	var fieldErr *validate.FieldError
	switch {
	case errors.As(err, &fieldErr):
		respondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, store.ErrReferenceNotFound):
		respondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, store.ErrNotFound):
		respondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, store.ErrAlreadyExists):
		respondWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, idgen.ErrIdentifierSpaceExhausted):
		respondWithError(w, http.StatusInternalServerError, err.Error())
	default:
		respondWithError(w, http.StatusInternalServerError, err.Error())
	}
}

// parsePagination reads skip/limit query parameters. It writes a 400 and
// returns ok=false when either is malformed or out of bounds.
func parsePagination(w http.ResponseWriter, r *http.Request, maxLimit int) (offset, limit int, ok bool) {
	offset = 0
	limit = defaultPageSize

	if v := r.URL.Query().Get("skip"); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil || i < 0 {
			respondWithError(w, http.StatusBadRequest, fmt.Sprintf("invalid skip parameter: %q", v))
			return 0, 0, false
		}
		offset = i
	}

	if v := r.URL.Query().Get("limit"); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil || i < 0 || i > maxLimit {
			respondWithError(w, http.StatusBadRequest,
				fmt.Sprintf("invalid limit parameter: %q not in [0, %d]", v, maxLimit))
			return 0, 0, false
		}
		limit = i
	}

	return offset, limit, true
}

// decodeBody decodes a JSON object request body. Field-level checks happen
// later in the schema, so this only rejects bodies that aren't JSON objects.
func decodeBody(w http.ResponseWriter, r *http.Request) (map[string]interface{}, bool) {
	var body map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondWithError(w, http.StatusBadRequest, "request body must be a JSON object")
		return nil, false
	}
	return body, true
}

// parseNumericID parses an int64 path segment, writing a 400 on failure.
func parseNumericID(w http.ResponseWriter, raw string) (int64, bool) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, fmt.Sprintf("invalid numeric identifier: %q", raw))
		return 0, false
	}
	return id, true
}
