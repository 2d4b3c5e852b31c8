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

// RegisterVehiclesEndpoints registers the vehicle root resource.
func RegisterVehiclesEndpoints(s *server.Server) {
	vehicles := s.VehiclesStore
	crashes := s.CrashesStore
	maxLimit := s.Config.PageLimitMax
	retries := s.Config.CreateRetryAttempts

	router := s.Router.PathPrefix("/vehicles").Subrouter()
	router.HandleFunc("", handleListVehicles(vehicles, maxLimit)).Methods("GET")
	router.HandleFunc("", handleCreateVehicle(vehicles, crashes, retries)).Methods("POST")
	router.HandleFunc("/{id}", handleFetchVehicle(vehicles)).Methods("GET")
	router.HandleFunc("/{id}", handleUpdateVehicle(vehicles)).Methods("PUT")
	router.HandleFunc("/{id}", handleDeleteVehicle(vehicles)).Methods("DELETE")
}

func handleListVehicles(vehicles store.VehiclesStore, maxLimit int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		offset, limit, ok := parsePagination(w, r, maxLimit)
		if !ok {
			return
		}

		rows, err := vehicles.ListVehicles(offset, limit)
		if err != nil {
			respondWithDomainError(w, err)
			return
		}
		respondWithJSON(w, http.StatusOK, rows)
	}
}

func handleFetchVehicle(vehicles store.VehiclesStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseNumericID(w, mux.Vars(r)["id"])
		if !ok {
			return
		}

		vehicle, err := vehicles.FetchVehicle(id)
		if err != nil {
			respondWithDomainError(w, err)
			return
		}
		respondWithJSON(w, http.StatusOK, vehicle)
	}
}

// handleCreateVehicle assigns vehicle_id and crash_unit_id as max+1 and
// retries the whole generate+insert sequence when a concurrent create takes
// the same identifier first.
func handleCreateVehicle(vehicles store.VehiclesStore, crashes store.CrashesStore, retries int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, ok := decodeBody(w, r)
		if !ok {
			return
		}

		cols, err := vehicleSchema.Normalize(body)
		if err != nil {
			respondWithDomainError(w, err)
			return
		}
		if err := validate.Required(cols, "crash_record_id"); err != nil {
			respondWithDomainError(w, err)
			return
		}

		crashRecordID := *strCol(cols, "crash_record_id")
		exists, err := crashes.CrashExists(crashRecordID)
		if err != nil {
			respondWithDomainError(w, err)
			return
		}
		if !exists {
			respondWithDomainError(w, &store.RefError{Kind: store.KindCrash, Key: crashRecordID})
			return
		}

		var vehicle *model.Vehicle
		for attempt := 0; attempt < retries; attempt++ {
			vehicleID, idErr := vehicles.NextVehicleID()
			if idErr != nil {
				respondWithDomainError(w, idErr)
				return
			}
			crashUnitID, idErr := vehicles.NextCrashUnitID()
			if idErr != nil {
				respondWithDomainError(w, idErr)
				return
			}

			vehicle = &model.Vehicle{
				VehicleID:     vehicleID,
				CrashUnitID:   crashUnitID,
				CrashRecordID: crashRecordID,
				UnitNo:        intCol(cols, "unit_no"),
				UnitType:      strCol(cols, "unit_type"),
				NumPassengers: intCol(cols, "num_passengers"),
				VehicleYear:   intCol(cols, "vehicle_year"),
				Make:          strCol(cols, "make"),
				Model:         strCol(cols, "model"),
				VehicleType:   strCol(cols, "vehicle_type"),
			}

			err = vehicles.CreateVehicle(vehicle)
			if !errors.Is(err, store.ErrAlreadyExists) {
				break
			}
		}
		if err != nil {
			respondWithDomainError(w, err)
			return
		}
		respondWithJSON(w, http.StatusCreated, vehicle)
	}
}

func handleUpdateVehicle(vehicles store.VehiclesStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseNumericID(w, mux.Vars(r)["id"])
		if !ok {
			return
		}

		body, ok := decodeBody(w, r)
		if !ok {
			return
		}

		cols, err := vehicleSchema.Normalize(body)
		if err != nil {
			respondWithDomainError(w, err)
			return
		}
		// Re-parenting a unit is not supported
		delete(cols, "crash_record_id")

		vehicle, err := vehicles.UpdateVehicle(id, cols)
		if err != nil {
			respondWithDomainError(w, err)
			return
		}
		respondWithJSON(w, http.StatusOK, vehicle)
	}
}

func handleDeleteVehicle(vehicles store.VehiclesStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseNumericID(w, mux.Vars(r)["id"])
		if !ok {
			return
		}

		if err := vehicles.DeleteVehicle(id); err != nil {
			respondWithDomainError(w, err)
			return
		}
		respondWithJSON(w, http.StatusOK, map[string]interface{}{"deleted": id})
	}
}
