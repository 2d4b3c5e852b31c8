package endpoints

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/viadata/crashdb/pkg/model"
	"github.com/viadata/crashdb/pkg/server"
	"github.com/viadata/crashdb/pkg/server/store"
	"github.com/viadata/crashdb/pkg/validate"
)

// RegisterPeopleEndpoints registers the person root resource.
func RegisterPeopleEndpoints(s *server.Server) {
	people := s.PeopleStore
	crashes := s.CrashesStore
	vehicles := s.VehiclesStore
	maxLimit := s.Config.PageLimitMax
	retries := s.Config.CreateRetryAttempts

	router := s.Router.PathPrefix("/people").Subrouter()
	router.HandleFunc("", handleListPeople(people, maxLimit)).Methods("GET")
	router.HandleFunc("", handleCreatePerson(people, crashes, vehicles, retries)).Methods("POST")
	router.HandleFunc("/{id}", handleFetchPerson(people)).Methods("GET")
	router.HandleFunc("/{id}", handleUpdatePerson(people)).Methods("PUT")
	router.HandleFunc("/{id}", handleDeletePerson(people)).Methods("DELETE")
}

func handleListPeople(people store.PeopleStore, maxLimit int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		offset, limit, ok := parsePagination(w, r, maxLimit)
		if !ok {
			return
		}

		rows, err := people.ListPeople(offset, limit)
		if err != nil {
			respondWithDomainError(w, err)
			return
		}
		respondWithJSON(w, http.StatusOK, rows)
	}
}

func handleFetchPerson(people store.PeopleStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseStringKey(w, mux.Vars(r)["id"])
		if !ok {
			return
		}

		person, err := people.FetchPerson(id)
		if err != nil {
			respondWithDomainError(w, err)
			return
		}
		respondWithJSON(w, http.StatusOK, person)
	}
}

// handleCreatePerson assigns the next Q-prefixed display ID and retries the
// generate+insert sequence when a concurrent create takes it first. Both
// foreign keys are optional; present ones must resolve.
func handleCreatePerson(
	people store.PeopleStore,
	crashes store.CrashesStore,
	vehicles store.VehiclesStore,
	retries int,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, ok := decodeBody(w, r)
		if !ok {
			return
		}

		cols, err := personSchema.Normalize(body)
		if err != nil {
			respondWithDomainError(w, err)
			return
		}
		if err := validate.Required(cols, "person_type"); err != nil {
			respondWithDomainError(w, err)
			return
		}

		if crashRecordID := strCol(cols, "crash_record_id"); crashRecordID != nil {
			exists, err := crashes.CrashExists(*crashRecordID)
			if err != nil {
				respondWithDomainError(w, err)
				return
			}
			if !exists {
				respondWithDomainError(w, &store.RefError{Kind: store.KindCrash, Key: *crashRecordID})
				return
			}
		}
		if vehicleID := intCol(cols, "vehicle_id"); vehicleID != nil {
			exists, err := vehicles.VehicleExists(*vehicleID)
			if err != nil {
				respondWithDomainError(w, err)
				return
			}
			if !exists {
				respondWithDomainError(w, &store.RefError{Kind: store.KindVehicle, Key: *vehicleID})
				return
			}
		}

		var person *model.Person
		for attempt := 0; attempt < retries; attempt++ {
			personID, idErr := people.NextPersonID()
			if idErr != nil {
				respondWithDomainError(w, idErr)
				return
			}

			person = &model.Person{
				PersonID:             personID,
				PersonType:           strCol(cols, "person_type"),
				CrashRecordID:        strCol(cols, "crash_record_id"),
				VehicleID:            intCol(cols, "vehicle_id"),
				Sex:                  strCol(cols, "sex"),
				Age:                  intCol(cols, "age"),
				SafetyEquipment:      strCol(cols, "safety_equipment"),
				AirbagDeployed:       strCol(cols, "airbag_deployed"),
				InjuryClassification: strCol(cols, "injury_classification"),
			}

			err = people.CreatePerson(person)
			if !errors.Is(err, store.ErrAlreadyExists) {
				break
			}
		}
		if err != nil {
			respondWithDomainError(w, err)
			return
		}
		respondWithJSON(w, http.StatusCreated, person)
	}
}

func handleUpdatePerson(people store.PeopleStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseStringKey(w, mux.Vars(r)["id"])
		if !ok {
			return
		}

		body, ok := decodeBody(w, r)
		if !ok {
			return
		}

		cols, err := personSchema.Normalize(body)
		if err != nil {
			respondWithDomainError(w, err)
			return
		}

		person, err := people.UpdatePerson(id, cols)
		if err != nil {
			respondWithDomainError(w, err)
			return
		}
		respondWithJSON(w, http.StatusOK, person)
	}
}

func handleDeletePerson(people store.PeopleStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseStringKey(w, mux.Vars(r)["id"])
		if !ok {
			return
		}

		if err := people.DeletePerson(id); err != nil {
			respondWithDomainError(w, err)
			return
		}
		respondWithJSON(w, http.StatusOK, map[string]interface{}{"deleted": id})
	}
}
