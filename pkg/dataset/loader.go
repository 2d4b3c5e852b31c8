package dataset

import (
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/viadata/crashdb/pkg/server/store"
)

// Result reports how many rows each table received.
type Result struct {
	Loaded map[store.Kind]int
}

// Total returns the number of rows inserted across all tables.
func (r *Result) Total() int {
	total := 0
	for _, n := range r.Loaded {
		total += n
	}
	return total
}

// Loader bulk-loads parsed datasets. The whole load runs in one transaction:
// a row that violates a constraint other than PK uniqueness rolls back the
// entire extract.
type Loader struct {
	db *gorm.DB
}

// NewLoader creates a Loader on the given connection.
func NewLoader(db *gorm.DB) *Loader {
	return &Loader{db: db}
}

// Load inserts the dataset in foreign-key order. Rows whose primary key is
// already present are skipped, so re-loading an extract is idempotent.
func (l *Loader) Load(ds *Dataset) (*Result, error) {
	result := &Result{Loaded: map[store.Kind]int{}}

	err := l.db.Transaction(func(tx *gorm.DB) error {
		steps := []struct {
			kind store.Kind
			rows interface{}
			n    int
		}{
			{store.KindCrash, ds.Crashes, len(ds.Crashes)},
			{store.KindCrashDate, ds.CrashDates, len(ds.CrashDates)},
			{store.KindCrashCircumstances, ds.CrashCircumstances, len(ds.CrashCircumstances)},
			{store.KindCrashInjuries, ds.CrashInjuries, len(ds.CrashInjuries)},
			{store.KindCrashClassification, ds.CrashClassifications, len(ds.CrashClassifications)},
			{store.KindVehicle, ds.Vehicles, len(ds.Vehicles)},
			{store.KindVehicleModels, ds.VehicleModels, len(ds.VehicleModels)},
			{store.KindVehicleManeuvers, ds.VehicleManeuvers, len(ds.VehicleManeuvers)},
			{store.KindVehicleViolations, ds.VehicleViolations, len(ds.VehicleViolations)},
			{store.KindPerson, ds.People, len(ds.People)},
			{store.KindDriverInfo, ds.DriverInfo, len(ds.DriverInfo)},
		}

		for _, step := range steps {
			if step.n == 0 {
				continue
			}
			res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(step.rows)
			if res.Error != nil {
				return fmt.Errorf("failed to load %s rows: %w", step.kind, res.Error)
			}
			result.Loaded[step.kind] = int(res.RowsAffected)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
