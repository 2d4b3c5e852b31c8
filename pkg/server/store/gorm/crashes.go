package gorm

import (
	"gorm.io/gorm"

	"github.com/viadata/crashdb/pkg/model"
	"github.com/viadata/crashdb/pkg/server/store"
)

// Ensure CrashesStore implements store.CrashesStore
var _ store.CrashesStore = (*CrashesStore)(nil)

// CrashesStore implements store.CrashesStore using GORM
type CrashesStore struct {
	db *gorm.DB
}

// NewCrashesStore creates a new CrashesStore
func NewCrashesStore(db *gorm.DB) *CrashesStore {
	return &CrashesStore{db: db}
}

func (s *CrashesStore) ListCrashes(offset, limit int) ([]model.Crash, error) {
	var crashes []model.Crash
	if err := listPage(s.db, "crash_record_id", offset, limit, &crashes); err != nil {
		return nil, err
	}
	return crashes, nil
}

func (s *CrashesStore) FetchCrash(crashRecordID string) (*model.Crash, error) {
	var crash model.Crash
	if err := fetchByKey(s.db, "crash_record_id", crashRecordID, &crash); err != nil {
		return nil, err
	}
	return &crash, nil
}

func (s *CrashesStore) CreateCrash(crash *model.Crash) error {
	return insertRow(s.db, crash)
}

func (s *CrashesStore) UpdateCrash(crashRecordID string, columns map[string]interface{}) (*model.Crash, error) {
	var crash model.Crash
	if err := updateByKey(s.db, "crash_record_id", crashRecordID, columns, &crash); err != nil {
		return nil, err
	}
	return &crash, nil
}

// DeleteCrash removes the crash row. The schema's ON DELETE CASCADE takes
// the satellites, vehicles, vehicle satellites, and driver rows in the same
// statement, so there is no window with orphaned children.
func (s *CrashesStore) DeleteCrash(crashRecordID string) error {
	return deleteByKey(s.db, &model.Crash{}, "crash_record_id", crashRecordID)
}

func (s *CrashesStore) CrashExists(crashRecordID string) (bool, error) {
	return existsByKey(s.db, "crashes", "crash_record_id", crashRecordID)
}

func (s *CrashesStore) ListCrashDates(offset, limit int) ([]model.CrashDate, error) {
	var dates []model.CrashDate
	if err := listPage(s.db, "crash_record_id", offset, limit, &dates); err != nil {
		return nil, err
	}
	return dates, nil
}

func (s *CrashesStore) FetchCrashDate(crashRecordID string) (*model.CrashDate, error) {
	var date model.CrashDate
	if err := fetchByKey(s.db, "crash_record_id", crashRecordID, &date); err != nil {
		return nil, err
	}
	return &date, nil
}

func (s *CrashesStore) CreateCrashDate(date *model.CrashDate) error {
	return insertRow(s.db, date)
}

func (s *CrashesStore) UpdateCrashDate(crashRecordID string, columns map[string]interface{}) (*model.CrashDate, error) {
	var date model.CrashDate
	if err := updateByKey(s.db, "crash_record_id", crashRecordID, columns, &date); err != nil {
		return nil, err
	}
	return &date, nil
}

func (s *CrashesStore) DeleteCrashDate(crashRecordID string) error {
	return deleteByKey(s.db, &model.CrashDate{}, "crash_record_id", crashRecordID)
}

func (s *CrashesStore) ListCrashCircumstances(offset, limit int) ([]model.CrashCircumstances, error) {
	var circumstances []model.CrashCircumstances
	if err := listPage(s.db, "crash_record_id", offset, limit, &circumstances); err != nil {
		return nil, err
	}
	return circumstances, nil
}

func (s *CrashesStore) FetchCrashCircumstances(crashRecordID string) (*model.CrashCircumstances, error) {
	var circumstances model.CrashCircumstances
	if err := fetchByKey(s.db, "crash_record_id", crashRecordID, &circumstances); err != nil {
		return nil, err
	}
	return &circumstances, nil
}

func (s *CrashesStore) CreateCrashCircumstances(circumstances *model.CrashCircumstances) error {
	return insertRow(s.db, circumstances)
}

func (s *CrashesStore) UpdateCrashCircumstances(crashRecordID string, columns map[string]interface{}) (*model.CrashCircumstances, error) {
	var circumstances model.CrashCircumstances
	if err := updateByKey(s.db, "crash_record_id", crashRecordID, columns, &circumstances); err != nil {
		return nil, err
	}
	return &circumstances, nil
}

func (s *CrashesStore) DeleteCrashCircumstances(crashRecordID string) error {
	return deleteByKey(s.db, &model.CrashCircumstances{}, "crash_record_id", crashRecordID)
}

func (s *CrashesStore) ListCrashInjuries(offset, limit int) ([]model.CrashInjuries, error) {
	var injuries []model.CrashInjuries
	if err := listPage(s.db, "crash_record_id", offset, limit, &injuries); err != nil {
		return nil, err
	}
	return injuries, nil
}

func (s *CrashesStore) FetchCrashInjuries(crashRecordID string) (*model.CrashInjuries, error) {
	var injuries model.CrashInjuries
	if err := fetchByKey(s.db, "crash_record_id", crashRecordID, &injuries); err != nil {
		return nil, err
	}
	return &injuries, nil
}

func (s *CrashesStore) CreateCrashInjuries(injuries *model.CrashInjuries) error {
	return insertRow(s.db, injuries)
}

func (s *CrashesStore) UpdateCrashInjuries(crashRecordID string, columns map[string]interface{}) (*model.CrashInjuries, error) {
	var injuries model.CrashInjuries
	if err := updateByKey(s.db, "crash_record_id", crashRecordID, columns, &injuries); err != nil {
		return nil, err
	}
	return &injuries, nil
}

func (s *CrashesStore) DeleteCrashInjuries(crashRecordID string) error {
	return deleteByKey(s.db, &model.CrashInjuries{}, "crash_record_id", crashRecordID)
}

func (s *CrashesStore) ListCrashClassifications(offset, limit int) ([]model.CrashClassification, error) {
	var classifications []model.CrashClassification
	if err := listPage(s.db, "crash_record_id", offset, limit, &classifications); err != nil {
		return nil, err
	}
	return classifications, nil
}

func (s *CrashesStore) FetchCrashClassification(crashRecordID string) (*model.CrashClassification, error) {
	var classification model.CrashClassification
	if err := fetchByKey(s.db, "crash_record_id", crashRecordID, &classification); err != nil {
		return nil, err
	}
	return &classification, nil
}

func (s *CrashesStore) CreateCrashClassification(classification *model.CrashClassification) error {
	return insertRow(s.db, classification)
}

func (s *CrashesStore) UpdateCrashClassification(crashRecordID string, columns map[string]interface{}) (*model.CrashClassification, error) {
	var classification model.CrashClassification
	if err := updateByKey(s.db, "crash_record_id", crashRecordID, columns, &classification); err != nil {
		return nil, err
	}
	return &classification, nil
}

func (s *CrashesStore) DeleteCrashClassification(crashRecordID string) error {
	return deleteByKey(s.db, &model.CrashClassification{}, "crash_record_id", crashRecordID)
}
