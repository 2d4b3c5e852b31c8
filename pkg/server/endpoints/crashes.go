package endpoints

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/viadata/crashdb/pkg/idgen"
	"github.com/viadata/crashdb/pkg/model"
	"github.com/viadata/crashdb/pkg/server"
	"github.com/viadata/crashdb/pkg/server/store"
	"github.com/viadata/crashdb/pkg/validate"
)

// RegisterCrashesEndpoints registers the crash root resource.
func RegisterCrashesEndpoints(s *server.Server) {
	crashes := s.CrashesStore
	maxLimit := s.Config.PageLimitMax

	router := s.Router.PathPrefix("/crashes").Subrouter()
	router.HandleFunc("", handleListCrashes(crashes, maxLimit)).Methods("GET")
	router.HandleFunc("", handleCreateCrash(crashes)).Methods("POST")
	router.HandleFunc("/{id}", handleFetchCrash(crashes)).Methods("GET")
	router.HandleFunc("/{id}", handleUpdateCrash(crashes)).Methods("PUT")
	router.HandleFunc("/{id}", handleDeleteCrash(crashes)).Methods("DELETE")
}

func handleListCrashes(crashes store.CrashesStore, maxLimit int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		offset, limit, ok := parsePagination(w, r, maxLimit)
		if !ok {
			return
		}

		rows, err := crashes.ListCrashes(offset, limit)
		if err != nil {
			respondWithDomainError(w, err)
			return
		}
		respondWithJSON(w, http.StatusOK, rows)
	}
}

func handleFetchCrash(crashes store.CrashesStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseStringKey(w, mux.Vars(r)["id"])
		if !ok {
			return
		}

		crash, err := crashes.FetchCrash(id)
		if err != nil {
			respondWithDomainError(w, err)
			return
		}
		respondWithJSON(w, http.StatusOK, crash)
	}
}

// handleCreateCrash derives the record ID from the identifying attributes.
// Coordinates are truncated before both hashing and storage so the stored
// row re-hashes to its own ID.
func handleCreateCrash(crashes store.CrashesStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, ok := decodeBody(w, r)
		if !ok {
			return
		}

		cols, err := crashSchema.Normalize(body)
		if err != nil {
			respondWithDomainError(w, err)
			return
		}
		if err := validate.Required(cols, "incident_date", "latitude", "longitude"); err != nil {
			respondWithDomainError(w, err)
			return
		}

		incidentDate := *timeCol(cols, "incident_date")
		latitude := idgen.TruncateCoordinate(*floatCol(cols, "latitude"))
		longitude := idgen.TruncateCoordinate(*floatCol(cols, "longitude"))
		streetNo := intCol(cols, "street_no")
		streetName := strCol(cols, "street_name")

		crash := &model.Crash{
			CrashRecordID: idgen.CrashRecordID(incidentDate, latitude, longitude, streetNo, streetName),
			IncidentDate:  &incidentDate,
			Latitude:      &latitude,
			Longitude:     &longitude,
			StreetNo:      streetNo,
			StreetName:    streetName,
		}

		if err := crashes.CreateCrash(crash); err != nil {
			respondWithDomainError(w, err)
			return
		}
		respondWithJSON(w, http.StatusCreated, crash)
	}
}

// handleUpdateCrash applies a partial update. The record ID is never
// re-derived and updated coordinates are stored as given.
func handleUpdateCrash(crashes store.CrashesStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseStringKey(w, mux.Vars(r)["id"])
		if !ok {
			return
		}

		body, ok := decodeBody(w, r)
		if !ok {
			return
		}

		cols, err := crashSchema.Normalize(body)
		if err != nil {
			respondWithDomainError(w, err)
			return
		}

		crash, err := crashes.UpdateCrash(id, cols)
		if err != nil {
			respondWithDomainError(w, err)
			return
		}
		respondWithJSON(w, http.StatusOK, crash)
	}
}

func handleDeleteCrash(crashes store.CrashesStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseStringKey(w, mux.Vars(r)["id"])
		if !ok {
			return
		}

		if err := crashes.DeleteCrash(id); err != nil {
			respondWithDomainError(w, err)
			return
		}
		respondWithJSON(w, http.StatusOK, map[string]interface{}{"deleted": id})
	}
}
