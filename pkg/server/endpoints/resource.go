package endpoints

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/gorilla/mux"

	"github.com/viadata/crashdb/pkg/server"
	"github.com/viadata/crashdb/pkg/server/store"
	"github.com/viadata/crashdb/pkg/validate"
)

// satelliteRoutes wires the five CRUD operations for a 1:1 satellite whose
// primary key doubles as its foreign key to the parent entity. The root
// entities (crashes, vehicles, people) have their own handlers because their
// create paths generate identifiers.
type satelliteRoutes[K comparable, T any] struct {
	prefix   string // route prefix, e.g. "/crash-date"
	keyField string // column carrying both PK and FK

	kind       store.Kind
	parentKind store.Kind

	parseKey func(http.ResponseWriter, string) (K, bool)
	colKey   func(interface{}) (K, bool)

	schema validate.Schema

	parentExists func(K) (bool, error)

	list   func(offset, limit int) ([]T, error)
	fetch  func(K) (*T, error)
	build  func(K, map[string]interface{}) *T
	create func(*T) error
	update func(K, map[string]interface{}) (*T, error)
	remove func(K) error
}

func (sr satelliteRoutes[K, T]) register(s *server.Server) {
	router := s.Router.PathPrefix(sr.prefix).Subrouter()
	maxLimit := s.Config.PageLimitMax

	router.HandleFunc("", sr.handleList(maxLimit)).Methods("GET")
	router.HandleFunc("", sr.handleCreate()).Methods("POST")
	router.HandleFunc("/{id}", sr.handleFetch()).Methods("GET")
	router.HandleFunc("/{id}", sr.handleUpdate()).Methods("PUT")
	router.HandleFunc("/{id}", sr.handleDelete()).Methods("DELETE")
}

func (sr satelliteRoutes[K, T]) handleList(maxLimit int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		offset, limit, ok := parsePagination(w, r, maxLimit)
		if !ok {
			return
		}

		rows, err := sr.list(offset, limit)
		if err != nil {
			respondWithDomainError(w, err)
			return
		}
		respondWithJSON(w, http.StatusOK, rows)
	}
}

func (sr satelliteRoutes[K, T]) handleFetch() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key, ok := sr.parseKey(w, mux.Vars(r)["id"])
		if !ok {
			return
		}

		row, err := sr.fetch(key)
		if err != nil {
			respondWithDomainError(w, err)
			return
		}
		respondWithJSON(w, http.StatusOK, row)
	}
}

func (sr satelliteRoutes[K, T]) handleCreate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, ok := decodeBody(w, r)
		if !ok {
			return
		}

		cols, err := sr.schema.Normalize(body)
		if err != nil {
			respondWithDomainError(w, err)
			return
		}
		if err := validate.Required(cols, sr.keyField); err != nil {
			respondWithDomainError(w, err)
			return
		}

		key, ok := sr.colKey(cols[sr.keyField])
		if !ok {
			respondWithError(w, http.StatusBadRequest, fmt.Sprintf("invalid %s", sr.keyField))
			return
		}

		exists, err := sr.parentExists(key)
		if err != nil {
			respondWithDomainError(w, err)
			return
		}
		if !exists {
			respondWithDomainError(w, &store.RefError{Kind: sr.parentKind, Key: key})
			return
		}

		// One row per parent: a prior row wins
		if _, err := sr.fetch(key); err == nil {
			respondWithError(w, http.StatusConflict,
				fmt.Sprintf("%s %v already exists", sr.kind, key))
			return
		} else if !errors.Is(err, store.ErrNotFound) {
			respondWithDomainError(w, err)
			return
		}

		delete(cols, sr.keyField)
		row := sr.build(key, cols)
		if err := sr.create(row); err != nil {
			respondWithDomainError(w, err)
			return
		}
		respondWithJSON(w, http.StatusCreated, row)
	}
}

func (sr satelliteRoutes[K, T]) handleUpdate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key, ok := sr.parseKey(w, mux.Vars(r)["id"])
		if !ok {
			return
		}

		body, ok := decodeBody(w, r)
		if !ok {
			return
		}

		cols, err := sr.schema.Normalize(body)
		if err != nil {
			respondWithDomainError(w, err)
			return
		}
		// The key is addressed by the path and never reassigned
		delete(cols, sr.keyField)

		row, err := sr.update(key, cols)
		if err != nil {
			respondWithDomainError(w, err)
			return
		}
		respondWithJSON(w, http.StatusOK, row)
	}
}

func (sr satelliteRoutes[K, T]) handleDelete() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key, ok := sr.parseKey(w, mux.Vars(r)["id"])
		if !ok {
			return
		}

		if err := sr.remove(key); err != nil {
			respondWithDomainError(w, err)
			return
		}
		respondWithJSON(w, http.StatusOK, map[string]interface{}{"deleted": key})
	}
}

// parseStringKey unescapes a string path segment.
func parseStringKey(w http.ResponseWriter, raw string) (string, bool) {
	key, err := url.PathUnescape(raw)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, fmt.Sprintf("invalid identifier: %q", raw))
		return "", false
	}
	return key, true
}

func stringColKey(v interface{}) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

func intColKey(v interface{}) (int64, bool) {
	i, ok := v.(int64)
	return i, ok
}
