package gorm

import (
	"gorm.io/gorm"

	"github.com/viadata/crashdb/pkg/model"
	"github.com/viadata/crashdb/pkg/server/store"
)

// Ensure VehiclesStore implements store.VehiclesStore
var _ store.VehiclesStore = (*VehiclesStore)(nil)

// VehiclesStore implements store.VehiclesStore using GORM
type VehiclesStore struct {
	db *gorm.DB
}

// NewVehiclesStore creates a new VehiclesStore
func NewVehiclesStore(db *gorm.DB) *VehiclesStore {
	return &VehiclesStore{db: db}
}

func (s *VehiclesStore) ListVehicles(offset, limit int) ([]model.Vehicle, error) {
	var vehicles []model.Vehicle
	if err := listPage(s.db, "vehicle_id", offset, limit, &vehicles); err != nil {
		return nil, err
	}
	return vehicles, nil
}

func (s *VehiclesStore) FetchVehicle(vehicleID int64) (*model.Vehicle, error) {
	var vehicle model.Vehicle
	if err := fetchByKey(s.db, "vehicle_id", vehicleID, &vehicle); err != nil {
		return nil, err
	}
	return &vehicle, nil
}

func (s *VehiclesStore) CreateVehicle(vehicle *model.Vehicle) error {
	return insertRow(s.db, vehicle)
}

func (s *VehiclesStore) UpdateVehicle(vehicleID int64, columns map[string]interface{}) (*model.Vehicle, error) {
	var vehicle model.Vehicle
	if err := updateByKey(s.db, "vehicle_id", vehicleID, columns, &vehicle); err != nil {
		return nil, err
	}
	return &vehicle, nil
}

func (s *VehiclesStore) DeleteVehicle(vehicleID int64) error {
	return deleteByKey(s.db, &model.Vehicle{}, "vehicle_id", vehicleID)
}

func (s *VehiclesStore) VehicleExists(vehicleID int64) (bool, error) {
	return existsByKey(s.db, "vehicle", "vehicle_id", vehicleID)
}

// NextVehicleID computes max+1 over committed rows. Dense but racy by
// itself; the primary key constraint rejects the loser of a concurrent
// create, which the endpoint retries.
func (s *VehiclesStore) NextVehicleID() (int64, error) {
	return s.nextCounter("SELECT COALESCE(MAX(vehicle_id), 0) + 1 FROM vehicle")
}

// NextCrashUnitID computes max+1 for the secondary unit counter.
func (s *VehiclesStore) NextCrashUnitID() (int64, error) {
	return s.nextCounter("SELECT COALESCE(MAX(crash_unit_id), 0) + 1 FROM vehicle")
}

func (s *VehiclesStore) nextCounter(query string) (int64, error) {
	var next int64
	tx := s.db.Raw(query).Scan(&next)
	if tx.Error != nil {
		return 0, translateError(tx.Error)
	}
	return next, nil
}

func (s *VehiclesStore) ListVehicleModels(offset, limit int) ([]model.VehicleModels, error) {
	var specs []model.VehicleModels
	if err := listPage(s.db, "vehicle_id", offset, limit, &specs); err != nil {
		return nil, err
	}
	return specs, nil
}

func (s *VehiclesStore) FetchVehicleModels(vehicleID int64) (*model.VehicleModels, error) {
	var specs model.VehicleModels
	if err := fetchByKey(s.db, "vehicle_id", vehicleID, &specs); err != nil {
		return nil, err
	}
	return &specs, nil
}

func (s *VehiclesStore) CreateVehicleModels(models *model.VehicleModels) error {
	return insertRow(s.db, models)
}

func (s *VehiclesStore) UpdateVehicleModels(vehicleID int64, columns map[string]interface{}) (*model.VehicleModels, error) {
	var specs model.VehicleModels
	if err := updateByKey(s.db, "vehicle_id", vehicleID, columns, &specs); err != nil {
		return nil, err
	}
	return &specs, nil
}

func (s *VehiclesStore) DeleteVehicleModels(vehicleID int64) error {
	return deleteByKey(s.db, &model.VehicleModels{}, "vehicle_id", vehicleID)
}

func (s *VehiclesStore) ListVehicleManeuvers(offset, limit int) ([]model.VehicleManeuvers, error) {
	var maneuvers []model.VehicleManeuvers
	if err := listPage(s.db, "vehicle_id", offset, limit, &maneuvers); err != nil {
		return nil, err
	}
	return maneuvers, nil
}

func (s *VehiclesStore) FetchVehicleManeuvers(vehicleID int64) (*model.VehicleManeuvers, error) {
	var maneuvers model.VehicleManeuvers
	if err := fetchByKey(s.db, "vehicle_id", vehicleID, &maneuvers); err != nil {
		return nil, err
	}
	return &maneuvers, nil
}

func (s *VehiclesStore) CreateVehicleManeuvers(maneuvers *model.VehicleManeuvers) error {
	return insertRow(s.db, maneuvers)
}

func (s *VehiclesStore) UpdateVehicleManeuvers(vehicleID int64, columns map[string]interface{}) (*model.VehicleManeuvers, error) {
	var maneuvers model.VehicleManeuvers
	if err := updateByKey(s.db, "vehicle_id", vehicleID, columns, &maneuvers); err != nil {
		return nil, err
	}
	return &maneuvers, nil
}

func (s *VehiclesStore) DeleteVehicleManeuvers(vehicleID int64) error {
	return deleteByKey(s.db, &model.VehicleManeuvers{}, "vehicle_id", vehicleID)
}

func (s *VehiclesStore) ListVehicleViolations(offset, limit int) ([]model.VehicleViolations, error) {
	var violations []model.VehicleViolations
	if err := listPage(s.db, "vehicle_id", offset, limit, &violations); err != nil {
		return nil, err
	}
	return violations, nil
}

func (s *VehiclesStore) FetchVehicleViolations(vehicleID int64) (*model.VehicleViolations, error) {
	var violations model.VehicleViolations
	if err := fetchByKey(s.db, "vehicle_id", vehicleID, &violations); err != nil {
		return nil, err
	}
	return &violations, nil
}

func (s *VehiclesStore) CreateVehicleViolations(violations *model.VehicleViolations) error {
	return insertRow(s.db, violations)
}

func (s *VehiclesStore) UpdateVehicleViolations(vehicleID int64, columns map[string]interface{}) (*model.VehicleViolations, error) {
	var violations model.VehicleViolations
	if err := updateByKey(s.db, "vehicle_id", vehicleID, columns, &violations); err != nil {
		return nil, err
	}
	return &violations, nil
}

func (s *VehiclesStore) DeleteVehicleViolations(vehicleID int64) error {
	return deleteByKey(s.db, &model.VehicleViolations{}, "vehicle_id", vehicleID)
}
