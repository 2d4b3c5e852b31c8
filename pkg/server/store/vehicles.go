package store

import "github.com/viadata/crashdb/pkg/model"

// VehiclesStore abstracts storage for vehicles and their satellites, and
// generates the two sequential vehicle counters.
//
// NextVehicleID and NextCrashUnitID are max+1 over current committed state.
// They are safe to call concurrently only because the primary key constraint
// rejects the loser of a race with ErrAlreadyExists; callers retry the whole
// generate+insert sequence.
type VehiclesStore interface {
	ListVehicles(offset, limit int) ([]model.Vehicle, error)
	FetchVehicle(vehicleID int64) (*model.Vehicle, error)
	CreateVehicle(vehicle *model.Vehicle) error
	UpdateVehicle(vehicleID int64, columns map[string]interface{}) (*model.Vehicle, error)
	DeleteVehicle(vehicleID int64) error
	VehicleExists(vehicleID int64) (bool, error)

	// NextVehicleID returns max(vehicle_id)+1, or 1 for an empty table.
	NextVehicleID() (int64, error)

	// NextCrashUnitID returns max(crash_unit_id)+1, or 1 for an empty table.
	NextCrashUnitID() (int64, error)

	ListVehicleModels(offset, limit int) ([]model.VehicleModels, error)
	FetchVehicleModels(vehicleID int64) (*model.VehicleModels, error)
	CreateVehicleModels(models *model.VehicleModels) error
	UpdateVehicleModels(vehicleID int64, columns map[string]interface{}) (*model.VehicleModels, error)
	DeleteVehicleModels(vehicleID int64) error

	ListVehicleManeuvers(offset, limit int) ([]model.VehicleManeuvers, error)
	FetchVehicleManeuvers(vehicleID int64) (*model.VehicleManeuvers, error)
	CreateVehicleManeuvers(maneuvers *model.VehicleManeuvers) error
	UpdateVehicleManeuvers(vehicleID int64, columns map[string]interface{}) (*model.VehicleManeuvers, error)
	DeleteVehicleManeuvers(vehicleID int64) error

	ListVehicleViolations(offset, limit int) ([]model.VehicleViolations, error)
	FetchVehicleViolations(vehicleID int64) (*model.VehicleViolations, error)
	CreateVehicleViolations(violations *model.VehicleViolations) error
	UpdateVehicleViolations(vehicleID int64, columns map[string]interface{}) (*model.VehicleViolations, error)
	DeleteVehicleViolations(vehicleID int64) error
}
