package store

//go:generate go run github.com/dmarkham/enumer -type Kind -transform snake -trimprefix Kind -output kind_enumer.go

// Kind identifies an entity type, mostly for reference errors and import
// tooling.
type Kind int

const (
	KindCrash Kind = iota
	KindCrashDate
	KindCrashCircumstances
	KindCrashInjuries
	KindCrashClassification
	KindVehicle
	KindVehicleModels
	KindVehicleManeuvers
	KindVehicleViolations
	KindPerson
	KindDriverInfo
)
