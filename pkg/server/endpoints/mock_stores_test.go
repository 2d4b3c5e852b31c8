package endpoints

import (
	"github.com/stretchr/testify/mock"

	"github.com/viadata/crashdb/pkg/model"
)

// MockCrashesStore implements store.CrashesStore for testing using testify/mock
type MockCrashesStore struct {
	mock.Mock
}

func NewMockCrashesStore() *MockCrashesStore {
	return &MockCrashesStore{}
}

func (m *MockCrashesStore) ListCrashes(offset, limit int) ([]model.Crash, error) {
	args := m.Called(offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Crash), args.Error(1)
}

func (m *MockCrashesStore) FetchCrash(crashRecordID string) (*model.Crash, error) {
	args := m.Called(crashRecordID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Crash), args.Error(1)
}

func (m *MockCrashesStore) CreateCrash(crash *model.Crash) error {
	args := m.Called(crash)
	return args.Error(0)
}

func (m *MockCrashesStore) UpdateCrash(crashRecordID string, columns map[string]interface{}) (*model.Crash, error) {
	args := m.Called(crashRecordID, columns)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Crash), args.Error(1)
}

func (m *MockCrashesStore) DeleteCrash(crashRecordID string) error {
	args := m.Called(crashRecordID)
	return args.Error(0)
}

func (m *MockCrashesStore) CrashExists(crashRecordID string) (bool, error) {
	args := m.Called(crashRecordID)
	return args.Bool(0), args.Error(1)
}

func (m *MockCrashesStore) ListCrashDates(offset, limit int) ([]model.CrashDate, error) {
	args := m.Called(offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.CrashDate), args.Error(1)
}

func (m *MockCrashesStore) FetchCrashDate(crashRecordID string) (*model.CrashDate, error) {
	args := m.Called(crashRecordID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CrashDate), args.Error(1)
}

func (m *MockCrashesStore) CreateCrashDate(date *model.CrashDate) error {
	args := m.Called(date)
	return args.Error(0)
}

func (m *MockCrashesStore) UpdateCrashDate(crashRecordID string, columns map[string]interface{}) (*model.CrashDate, error) {
	args := m.Called(crashRecordID, columns)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CrashDate), args.Error(1)
}

func (m *MockCrashesStore) DeleteCrashDate(crashRecordID string) error {
	args := m.Called(crashRecordID)
	return args.Error(0)
}

func (m *MockCrashesStore) ListCrashCircumstances(offset, limit int) ([]model.CrashCircumstances, error) {
	args := m.Called(offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.CrashCircumstances), args.Error(1)
}

func (m *MockCrashesStore) FetchCrashCircumstances(crashRecordID string) (*model.CrashCircumstances, error) {
	args := m.Called(crashRecordID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CrashCircumstances), args.Error(1)
}

func (m *MockCrashesStore) CreateCrashCircumstances(circumstances *model.CrashCircumstances) error {
	args := m.Called(circumstances)
	return args.Error(0)
}

func (m *MockCrashesStore) UpdateCrashCircumstances(crashRecordID string, columns map[string]interface{}) (*model.CrashCircumstances, error) {
	args := m.Called(crashRecordID, columns)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CrashCircumstances), args.Error(1)
}

func (m *MockCrashesStore) DeleteCrashCircumstances(crashRecordID string) error {
	args := m.Called(crashRecordID)
	return args.Error(0)
}

func (m *MockCrashesStore) ListCrashInjuries(offset, limit int) ([]model.CrashInjuries, error) {
	args := m.Called(offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.CrashInjuries), args.Error(1)
}

func (m *MockCrashesStore) FetchCrashInjuries(crashRecordID string) (*model.CrashInjuries, error) {
	args := m.Called(crashRecordID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CrashInjuries), args.Error(1)
}

func (m *MockCrashesStore) CreateCrashInjuries(injuries *model.CrashInjuries) error {
	args := m.Called(injuries)
	return args.Error(0)
}

func (m *MockCrashesStore) UpdateCrashInjuries(crashRecordID string, columns map[string]interface{}) (*model.CrashInjuries, error) {
	args := m.Called(crashRecordID, columns)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CrashInjuries), args.Error(1)
}

func (m *MockCrashesStore) DeleteCrashInjuries(crashRecordID string) error {
	args := m.Called(crashRecordID)
	return args.Error(0)
}

func (m *MockCrashesStore) ListCrashClassifications(offset, limit int) ([]model.CrashClassification, error) {
	args := m.Called(offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.CrashClassification), args.Error(1)
}

func (m *MockCrashesStore) FetchCrashClassification(crashRecordID string) (*model.CrashClassification, error) {
	args := m.Called(crashRecordID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CrashClassification), args.Error(1)
}

func (m *MockCrashesStore) CreateCrashClassification(classification *model.CrashClassification) error {
	args := m.Called(classification)
	return args.Error(0)
}

func (m *MockCrashesStore) UpdateCrashClassification(crashRecordID string, columns map[string]interface{}) (*model.CrashClassification, error) {
	args := m.Called(crashRecordID, columns)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CrashClassification), args.Error(1)
}

func (m *MockCrashesStore) DeleteCrashClassification(crashRecordID string) error {
	args := m.Called(crashRecordID)
	return args.Error(0)
}

// MockVehiclesStore implements store.VehiclesStore for testing using testify/mock
type MockVehiclesStore struct {
	mock.Mock
}

func NewMockVehiclesStore() *MockVehiclesStore {
	return &MockVehiclesStore{}
}

func (m *MockVehiclesStore) ListVehicles(offset, limit int) ([]model.Vehicle, error) {
	args := m.Called(offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Vehicle), args.Error(1)
}

func (m *MockVehiclesStore) FetchVehicle(vehicleID int64) (*model.Vehicle, error) {
	args := m.Called(vehicleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Vehicle), args.Error(1)
}

func (m *MockVehiclesStore) CreateVehicle(vehicle *model.Vehicle) error {
	args := m.Called(vehicle)
	return args.Error(0)
}

func (m *MockVehiclesStore) UpdateVehicle(vehicleID int64, columns map[string]interface{}) (*model.Vehicle, error) {
	args := m.Called(vehicleID, columns)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Vehicle), args.Error(1)
}

func (m *MockVehiclesStore) DeleteVehicle(vehicleID int64) error {
	args := m.Called(vehicleID)
	return args.Error(0)
}

func (m *MockVehiclesStore) VehicleExists(vehicleID int64) (bool, error) {
	args := m.Called(vehicleID)
	return args.Bool(0), args.Error(1)
}

func (m *MockVehiclesStore) NextVehicleID() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockVehiclesStore) NextCrashUnitID() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockVehiclesStore) ListVehicleModels(offset, limit int) ([]model.VehicleModels, error) {
	args := m.Called(offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.VehicleModels), args.Error(1)
}

func (m *MockVehiclesStore) FetchVehicleModels(vehicleID int64) (*model.VehicleModels, error) {
	args := m.Called(vehicleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.VehicleModels), args.Error(1)
}

func (m *MockVehiclesStore) CreateVehicleModels(models *model.VehicleModels) error {
	args := m.Called(models)
	return args.Error(0)
}

func (m *MockVehiclesStore) UpdateVehicleModels(vehicleID int64, columns map[string]interface{}) (*model.VehicleModels, error) {
	args := m.Called(vehicleID, columns)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.VehicleModels), args.Error(1)
}

func (m *MockVehiclesStore) DeleteVehicleModels(vehicleID int64) error {
	args := m.Called(vehicleID)
	return args.Error(0)
}

func (m *MockVehiclesStore) ListVehicleManeuvers(offset, limit int) ([]model.VehicleManeuvers, error) {
	args := m.Called(offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.VehicleManeuvers), args.Error(1)
}

func (m *MockVehiclesStore) FetchVehicleManeuvers(vehicleID int64) (*model.VehicleManeuvers, error) {
	args := m.Called(vehicleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.VehicleManeuvers), args.Error(1)
}

func (m *MockVehiclesStore) CreateVehicleManeuvers(maneuvers *model.VehicleManeuvers) error {
	args := m.Called(maneuvers)
	return args.Error(0)
}

func (m *MockVehiclesStore) UpdateVehicleManeuvers(vehicleID int64, columns map[string]interface{}) (*model.VehicleManeuvers, error) {
	args := m.Called(vehicleID, columns)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.VehicleManeuvers), args.Error(1)
}

func (m *MockVehiclesStore) DeleteVehicleManeuvers(vehicleID int64) error {
	args := m.Called(vehicleID)
	return args.Error(0)
}

func (m *MockVehiclesStore) ListVehicleViolations(offset, limit int) ([]model.VehicleViolations, error) {
	args := m.Called(offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.VehicleViolations), args.Error(1)
}

func (m *MockVehiclesStore) FetchVehicleViolations(vehicleID int64) (*model.VehicleViolations, error) {
	args := m.Called(vehicleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.VehicleViolations), args.Error(1)
}

func (m *MockVehiclesStore) CreateVehicleViolations(violations *model.VehicleViolations) error {
	args := m.Called(violations)
	return args.Error(0)
}

func (m *MockVehiclesStore) UpdateVehicleViolations(vehicleID int64, columns map[string]interface{}) (*model.VehicleViolations, error) {
	args := m.Called(vehicleID, columns)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.VehicleViolations), args.Error(1)
}

func (m *MockVehiclesStore) DeleteVehicleViolations(vehicleID int64) error {
	args := m.Called(vehicleID)
	return args.Error(0)
}

// MockPeopleStore implements store.PeopleStore for testing using testify/mock
type MockPeopleStore struct {
	mock.Mock
}

func NewMockPeopleStore() *MockPeopleStore {
	return &MockPeopleStore{}
}

func (m *MockPeopleStore) ListPeople(offset, limit int) ([]model.Person, error) {
	args := m.Called(offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Person), args.Error(1)
}

func (m *MockPeopleStore) FetchPerson(personID string) (*model.Person, error) {
	args := m.Called(personID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Person), args.Error(1)
}

func (m *MockPeopleStore) CreatePerson(person *model.Person) error {
	args := m.Called(person)
	return args.Error(0)
}

func (m *MockPeopleStore) UpdatePerson(personID string, columns map[string]interface{}) (*model.Person, error) {
	args := m.Called(personID, columns)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Person), args.Error(1)
}

func (m *MockPeopleStore) DeletePerson(personID string) error {
	args := m.Called(personID)
	return args.Error(0)
}

func (m *MockPeopleStore) PersonExists(personID string) (bool, error) {
	args := m.Called(personID)
	return args.Bool(0), args.Error(1)
}

func (m *MockPeopleStore) NextPersonID() (string, error) {
	args := m.Called()
	return args.String(0), args.Error(1)
}

func (m *MockPeopleStore) ListDriverInfo(offset, limit int) ([]model.DriverInfo, error) {
	args := m.Called(offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.DriverInfo), args.Error(1)
}

func (m *MockPeopleStore) FetchDriverInfo(personID string) (*model.DriverInfo, error) {
	args := m.Called(personID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.DriverInfo), args.Error(1)
}

func (m *MockPeopleStore) CreateDriverInfo(info *model.DriverInfo) error {
	args := m.Called(info)
	return args.Error(0)
}

func (m *MockPeopleStore) UpdateDriverInfo(personID string, columns map[string]interface{}) (*model.DriverInfo, error) {
	args := m.Called(personID, columns)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.DriverInfo), args.Error(1)
}

func (m *MockPeopleStore) DeleteDriverInfo(personID string) error {
	args := m.Called(personID)
	return args.Error(0)
}

// MockHealthStore implements store.HealthStore for testing using testify/mock
type MockHealthStore struct {
	mock.Mock
}

func NewMockHealthStore() *MockHealthStore {
	return &MockHealthStore{}
}

func (m *MockHealthStore) Ping() error {
	args := m.Called()
	return args.Error(0)
}
