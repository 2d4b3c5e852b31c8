package endpoints

import (
	"github.com/gorilla/mux"

	"github.com/viadata/crashdb/pkg/config"
	"github.com/viadata/crashdb/pkg/server"
)

// testStores bundles the mock stores wired into a test server.
type testStores struct {
	crashes  *MockCrashesStore
	vehicles *MockVehiclesStore
	people   *MockPeopleStore
	health   *MockHealthStore
}

// newTestServer builds a Server around mock stores, bypassing the database.
func newTestServer() (*server.Server, testStores) {
	stores := testStores{
		crashes:  NewMockCrashesStore(),
		vehicles: NewMockVehiclesStore(),
		people:   NewMockPeopleStore(),
		health:   NewMockHealthStore(),
	}

	srv := &server.Server{
		Router: mux.NewRouter().UseEncodedPath(),
		Config: &config.Config{
			PageLimitMax:        1000,
			CreateRetryAttempts: 3,
		},
		CrashesStore:  stores.crashes,
		VehiclesStore: stores.vehicles,
		PeopleStore:   stores.people,
		HealthStore:   stores.health,
	}

	return srv, stores
}
