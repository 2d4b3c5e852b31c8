package endpoints

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/viadata/crashdb/pkg/idgen"
	"github.com/viadata/crashdb/pkg/model"
	"github.com/viadata/crashdb/pkg/server/store"
)

func TestCreatePerson(t *testing.T) {
	srv, stores := newTestServer()
	RegisterPeopleEndpoints(srv)

	stores.people.On("NextPersonID").Return("Q0000044", nil).Once()

	var created *model.Person
	stores.people.On("CreatePerson", mock.AnythingOfType("*model.Person")).
		Run(func(args mock.Arguments) {
			created = args.Get(0).(*model.Person)
		}).
		Return(nil).Once()

	body := `{"person_type": "DRIVER", "sex": "F", "age": 34}`
	req := httptest.NewRequest("POST", "/people", strings.NewReader(body))
	w := httptest.NewRecorder()
	srv.Router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	require.NotNil(t, created)
	assert.Equal(t, "Q0000044", created.PersonID)
	require.NotNil(t, created.Age)
	assert.Equal(t, int64(34), *created.Age)
	stores.people.AssertExpectations(t)
}

func TestCreatePerson_OptionalReferences(t *testing.T) {
	srv, stores := newTestServer()
	RegisterPeopleEndpoints(srv)

	stores.crashes.On("CrashExists", "abc123").Return(true, nil)
	stores.vehicles.On("VehicleExists", int64(42)).Return(true, nil)
	stores.people.On("NextPersonID").Return("Q0000045", nil).Once()
	stores.people.On("CreatePerson", mock.AnythingOfType("*model.Person")).Return(nil).Once()

	body := `{"person_type": "PASSENGER", "crash_record_id": "abc123", "vehicle_id": 42}`
	req := httptest.NewRequest("POST", "/people", strings.NewReader(body))
	w := httptest.NewRecorder()
	srv.Router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	stores.crashes.AssertExpectations(t)
	stores.vehicles.AssertExpectations(t)
	stores.people.AssertExpectations(t)
}

func TestCreatePerson_MissingVehicle(t *testing.T) {
	srv, stores := newTestServer()
	RegisterPeopleEndpoints(srv)

	stores.vehicles.On("VehicleExists", int64(42)).Return(false, nil)

	body := `{"person_type": "PASSENGER", "vehicle_id": 42}`
	req := httptest.NewRequest("POST", "/people", strings.NewReader(body))
	w := httptest.NewRecorder()
	srv.Router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	stores.people.AssertNotCalled(t, "CreatePerson", mock.Anything)
}

func TestCreatePerson_RetriesOnCollision(t *testing.T) {
	srv, stores := newTestServer()
	RegisterPeopleEndpoints(srv)

	stores.people.On("NextPersonID").Return("Q0000044", nil).Once()
	stores.people.On("CreatePerson", mock.AnythingOfType("*model.Person")).
		Return(store.ErrAlreadyExists).Once()
	stores.people.On("NextPersonID").Return("Q0000045", nil).Once()
	stores.people.On("CreatePerson", mock.AnythingOfType("*model.Person")).
		Return(nil).Once()

	body := `{"person_type": "DRIVER"}`
	req := httptest.NewRequest("POST", "/people", strings.NewReader(body))
	w := httptest.NewRecorder()
	srv.Router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var person model.Person
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &person))
	assert.Equal(t, "Q0000045", person.PersonID)
	stores.people.AssertExpectations(t)
}

func TestCreatePerson_IdentifierSpaceExhausted(t *testing.T) {
	srv, stores := newTestServer()
	RegisterPeopleEndpoints(srv)

	stores.people.On("NextPersonID").Return("", idgen.ErrIdentifierSpaceExhausted).Once()

	body := `{"person_type": "DRIVER"}`
	req := httptest.NewRequest("POST", "/people", strings.NewReader(body))
	w := httptest.NewRecorder()
	srv.Router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	stores.people.AssertNotCalled(t, "CreatePerson", mock.Anything)
}

func TestCreatePerson_ValidationFailures(t *testing.T) {
	srv, _ := newTestServer()
	RegisterPeopleEndpoints(srv)

	tests := []struct {
		name string
		body string
	}{
		{"missing person_type", `{"age": 34}`},
		{"person_id not settable", `{"person_type": "DRIVER", "person_id": "Q0000001"}`},
		{"age out of range", `{"person_type": "DRIVER", "age": 121}`},
		{"sex too long", `{"person_type": "DRIVER", "sex": "unspecified"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/people", strings.NewReader(tt.body))
			w := httptest.NewRecorder()
			srv.Router.ServeHTTP(w, req)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestFetchPerson(t *testing.T) {
	srv, stores := newTestServer()
	RegisterPeopleEndpoints(srv)

	stores.people.On("FetchPerson", "Q0000044").
		Return(&model.Person{PersonID: "Q0000044"}, nil)

	req := httptest.NewRequest("GET", "/people/Q0000044", nil)
	w := httptest.NewRecorder()
	srv.Router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var person model.Person
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &person))
	assert.Equal(t, "Q0000044", person.PersonID)
	stores.people.AssertExpectations(t)
}

func TestUpdatePerson(t *testing.T) {
	srv, stores := newTestServer()
	RegisterPeopleEndpoints(srv)

	age := int64(35)
	stores.people.On("UpdatePerson", "Q0000044", map[string]interface{}{"age": int64(35)}).
		Return(&model.Person{PersonID: "Q0000044", Age: &age}, nil)

	req := httptest.NewRequest("PUT", "/people/Q0000044", strings.NewReader(`{"age": 35}`))
	w := httptest.NewRecorder()
	srv.Router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	stores.people.AssertExpectations(t)
}

func TestDeletePerson_NotFound(t *testing.T) {
	srv, stores := newTestServer()
	RegisterPeopleEndpoints(srv)

	stores.people.On("DeletePerson", "Q9999999").Return(store.ErrNotFound)

	req := httptest.NewRequest("DELETE", "/people/Q9999999", nil)
	w := httptest.NewRecorder()
	srv.Router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	stores.people.AssertExpectations(t)
}
