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

	"github.com/viadata/crashdb/pkg/model"
	"github.com/viadata/crashdb/pkg/server/store"
)

func TestCreateCrashDate(t *testing.T) {
	srv, stores := newTestServer()
	RegisterCrashDateEndpoints(srv)

	stores.crashes.On("CrashExists", "abc123").Return(true, nil)
	stores.crashes.On("FetchCrashDate", "abc123").Return(nil, store.ErrNotFound)

	var created *model.CrashDate
	stores.crashes.On("CreateCrashDate", mock.AnythingOfType("*model.CrashDate")).
		Run(func(args mock.Arguments) {
			created = args.Get(0).(*model.CrashDate)
		}).
		Return(nil)

	body := `{"crash_record_id": "abc123", "crash_day_of_week": 7, "crash_month": 5}`
	req := httptest.NewRequest("POST", "/crash-date", strings.NewReader(body))
	w := httptest.NewRecorder()
	srv.Router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	require.NotNil(t, created)
	assert.Equal(t, "abc123", created.CrashRecordID)
	require.NotNil(t, created.CrashDayOfWeek)
	assert.Equal(t, int64(7), *created.CrashDayOfWeek)
	stores.crashes.AssertExpectations(t)
}

func TestCreateCrashDate_MissingParent(t *testing.T) {
	srv, stores := newTestServer()
	RegisterCrashDateEndpoints(srv)

	stores.crashes.On("CrashExists", "missing").Return(false, nil)

	body := `{"crash_record_id": "missing", "crash_month": 5}`
	req := httptest.NewRequest("POST", "/crash-date", strings.NewReader(body))
	w := httptest.NewRecorder()
	srv.Router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	stores.crashes.AssertNotCalled(t, "CreateCrashDate", mock.Anything)
}

func TestCreateCrashDate_AlreadyExists(t *testing.T) {
	srv, stores := newTestServer()
	RegisterCrashDateEndpoints(srv)

	stores.crashes.On("CrashExists", "abc123").Return(true, nil)
	stores.crashes.On("FetchCrashDate", "abc123").
		Return(&model.CrashDate{CrashRecordID: "abc123"}, nil)

	body := `{"crash_record_id": "abc123", "crash_month": 5}`
	req := httptest.NewRequest("POST", "/crash-date", strings.NewReader(body))
	w := httptest.NewRecorder()
	srv.Router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	stores.crashes.AssertNotCalled(t, "CreateCrashDate", mock.Anything)
}

func TestCreateCrashDate_ValidationFailures(t *testing.T) {
	srv, _ := newTestServer()
	RegisterCrashDateEndpoints(srv)

	tests := []struct {
		name string
		body string
	}{
		{"missing crash_record_id", `{"crash_month": 5}`},
		{"day above seven", `{"crash_record_id": "abc123", "crash_day_of_week": 8}`},
		{"month zero", `{"crash_record_id": "abc123", "crash_month": 0}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/crash-date", strings.NewReader(tt.body))
			w := httptest.NewRecorder()
			srv.Router.ServeHTTP(w, req)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestUpdateCrashDate_StripsKey(t *testing.T) {
	srv, stores := newTestServer()
	RegisterCrashDateEndpoints(srv)

	// The key column never reaches the store even when the body carries it.
	stores.crashes.On("UpdateCrashDate", "abc123", map[string]interface{}{"crash_month": int64(6)}).
		Return(&model.CrashDate{CrashRecordID: "abc123"}, nil)

	body := `{"crash_record_id": "other", "crash_month": 6}`
	req := httptest.NewRequest("PUT", "/crash-date/abc123", strings.NewReader(body))
	w := httptest.NewRecorder()
	srv.Router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	stores.crashes.AssertExpectations(t)
}

func TestListCrashInjuries(t *testing.T) {
	srv, stores := newTestServer()
	RegisterCrashInjuriesEndpoints(srv)

	fatal := int64(1)
	stores.crashes.On("ListCrashInjuries", 0, 100).Return([]model.CrashInjuries{
		{CrashRecordID: "aaa", InjuriesFatal: &fatal},
	}, nil)

	req := httptest.NewRequest("GET", "/crash-injuries", nil)
	w := httptest.NewRecorder()
	srv.Router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var rows []model.CrashInjuries
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rows))
	require.Len(t, rows, 1)
	stores.crashes.AssertExpectations(t)
}

func TestFetchCrashClassification_NotFound(t *testing.T) {
	srv, stores := newTestServer()
	RegisterCrashClassificationEndpoints(srv)

	stores.crashes.On("FetchCrashClassification", "missing").Return(nil, store.ErrNotFound)

	req := httptest.NewRequest("GET", "/crash-classification/missing", nil)
	w := httptest.NewRecorder()
	srv.Router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	stores.crashes.AssertExpectations(t)
}

func TestDeleteCrashCircumstances(t *testing.T) {
	srv, stores := newTestServer()
	RegisterCrashCircumstancesEndpoints(srv)

	stores.crashes.On("DeleteCrashCircumstances", "abc123").Return(nil)

	req := httptest.NewRequest("DELETE", "/crash-circumstances/abc123", nil)
	w := httptest.NewRecorder()
	srv.Router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "abc123", resp["deleted"])
	stores.crashes.AssertExpectations(t)
}
