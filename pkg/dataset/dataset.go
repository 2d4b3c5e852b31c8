// Package dataset parses and bulk-loads crash record extracts. An extract is
// a single JSON document keyed by table name, with rows shaped like the API
// payloads. Rows already present in the database are left untouched.
package dataset

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/viadata/crashdb/pkg/model"
)

// Dataset is a parsed extract. Slices may be empty; load order follows the
// foreign-key graph regardless of document order.
type Dataset struct {
	Crashes              []model.Crash               `json:"crashes"`
	CrashDates           []model.CrashDate           `json:"crash_date"`
	CrashCircumstances   []model.CrashCircumstances  `json:"crash_circumstances"`
	CrashInjuries        []model.CrashInjuries       `json:"crash_injuries"`
	CrashClassifications []model.CrashClassification `json:"crash_classification"`
	Vehicles             []model.Vehicle             `json:"vehicle"`
	VehicleModels        []model.VehicleModels       `json:"vehicle_specs"`
	VehicleManeuvers     []model.VehicleManeuvers    `json:"vehicle_maneuvers"`
	VehicleViolations    []model.VehicleViolations   `json:"vehicle_violations"`
	People               []model.Person              `json:"people"`
	DriverInfo           []model.DriverInfo          `json:"driver_info"`
}

// Parse decodes an extract document. Unknown top-level keys are rejected so
// a misspelled table name fails loudly instead of silently dropping rows.
func Parse(r io.Reader) (*Dataset, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var ds Dataset
	if err := dec.Decode(&ds); err != nil {
		return nil, fmt.Errorf("failed to parse dataset: %w", err)
	}
	return &ds, nil
}

// Size returns the total number of rows across all tables.
func (ds *Dataset) Size() int {
	return len(ds.Crashes) + len(ds.CrashDates) + len(ds.CrashCircumstances) +
		len(ds.CrashInjuries) + len(ds.CrashClassifications) +
		len(ds.Vehicles) + len(ds.VehicleModels) + len(ds.VehicleManeuvers) +
		len(ds.VehicleViolations) + len(ds.People) + len(ds.DriverInfo)
}
