package store

import "github.com/viadata/crashdb/pkg/model"

// CrashesStore abstracts storage for crash root records and their four 1:1
// satellites.
//
// Updates take a column map so unspecified attributes stay untouched. Every
// update and delete returns ErrNotFound if the addressed row doesn't exist;
// creates return ErrAlreadyExists on a primary-key conflict.
type CrashesStore interface {
	// ListCrashes returns a page of crashes ordered by primary key.
	ListCrashes(offset, limit int) ([]model.Crash, error)

	// FetchCrash retrieves a crash by its record ID.
	FetchCrash(crashRecordID string) (*model.Crash, error)

	// CreateCrash inserts a new crash. The caller assigns the record ID.
	CreateCrash(crash *model.Crash) error

	// UpdateCrash applies a partial column update and returns the new row.
	UpdateCrash(crashRecordID string, columns map[string]interface{}) (*model.Crash, error)

	// DeleteCrash removes a crash; satellites, vehicles and their satellites
	// go with it in the same atomic cascade.
	DeleteCrash(crashRecordID string) error

	// CrashExists reports whether a crash record exists.
	CrashExists(crashRecordID string) (bool, error)

	ListCrashDates(offset, limit int) ([]model.CrashDate, error)
	FetchCrashDate(crashRecordID string) (*model.CrashDate, error)
	CreateCrashDate(date *model.CrashDate) error
	UpdateCrashDate(crashRecordID string, columns map[string]interface{}) (*model.CrashDate, error)
	DeleteCrashDate(crashRecordID string) error

	ListCrashCircumstances(offset, limit int) ([]model.CrashCircumstances, error)
	FetchCrashCircumstances(crashRecordID string) (*model.CrashCircumstances, error)
	CreateCrashCircumstances(circumstances *model.CrashCircumstances) error
	UpdateCrashCircumstances(crashRecordID string, columns map[string]interface{}) (*model.CrashCircumstances, error)
	DeleteCrashCircumstances(crashRecordID string) error

	ListCrashInjuries(offset, limit int) ([]model.CrashInjuries, error)
	FetchCrashInjuries(crashRecordID string) (*model.CrashInjuries, error)
	CreateCrashInjuries(injuries *model.CrashInjuries) error
	UpdateCrashInjuries(crashRecordID string, columns map[string]interface{}) (*model.CrashInjuries, error)
	DeleteCrashInjuries(crashRecordID string) error

	ListCrashClassifications(offset, limit int) ([]model.CrashClassification, error)
	FetchCrashClassification(crashRecordID string) (*model.CrashClassification, error)
	CreateCrashClassification(classification *model.CrashClassification) error
	UpdateCrashClassification(crashRecordID string, columns map[string]interface{}) (*model.CrashClassification, error)
	DeleteCrashClassification(crashRecordID string) error
}
