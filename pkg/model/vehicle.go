package model

// Vehicle is a unit involved in a crash. Both vehicle_id and crash_unit_id
// are assigned max+1 at create time and never reused.
type Vehicle struct {
	VehicleID     int64   `gorm:"column:vehicle_id;primaryKey" json:"vehicle_id"`
	CrashUnitID   int64   `gorm:"column:crash_unit_id" json:"crash_unit_id"`
	CrashRecordID string  `gorm:"column:crash_record_id" json:"crash_record_id"`
	UnitNo        *int64  `gorm:"column:unit_no" json:"unit_no"`
	UnitType      *string `gorm:"column:unit_type" json:"unit_type"`
	NumPassengers *int64  `gorm:"column:num_passengers" json:"num_passengers"`
	VehicleYear   *int64  `gorm:"column:vehicle_year" json:"vehicle_year"`
	Make          *string `gorm:"column:make" json:"make"`
	Model         *string `gorm:"column:model" json:"model"`
	VehicleType   *string `gorm:"column:vehicle_type" json:"vehicle_type"`
}

func (Vehicle) TableName() string {
	return "vehicle"
}

// VehicleModels holds use/configuration specs for a vehicle. The table name
// is vehicle_specs for historical reasons carried over from the source data.
type VehicleModels struct {
	VehicleID     int64   `gorm:"column:vehicle_id;primaryKey" json:"vehicle_id"`
	VehicleUse    *string `gorm:"column:vehicle_use" json:"vehicle_use"`
	VehicleConfig *string `gorm:"column:vehicle_config" json:"vehicle_config"`
	CargoBodyType *string `gorm:"column:cargo_body_type" json:"cargo_body_type"`
}

func (VehicleModels) TableName() string {
	return "vehicle_specs"
}

// VehicleManeuvers records the maneuver a vehicle was performing.
type VehicleManeuvers struct {
	VehicleID int64   `gorm:"column:vehicle_id;primaryKey" json:"vehicle_id"`
	Maneuver  *string `gorm:"column:maneuver" json:"maneuver"`
}

func (VehicleManeuvers) TableName() string {
	return "vehicle_maneuvers"
}

// VehicleViolations records violation indicators for a vehicle. At most one
// row per vehicle.
type VehicleViolations struct {
	VehicleID         int64   `gorm:"column:vehicle_id;primaryKey" json:"vehicle_id"`
	CmrcVehI          *bool   `gorm:"column:cmrc_veh_i" json:"cmrc_veh_i"`
	ExceedSpeedLimitI *bool   `gorm:"column:exceed_speed_limit_i" json:"exceed_speed_limit_i"`
	HazmatPresentI    *bool   `gorm:"column:hazmat_present_i" json:"hazmat_present_i"`
	VehicleDefect     *string `gorm:"column:vehicle_defect" json:"vehicle_defect"`
}

func (VehicleViolations) TableName() string {
	return "vehicle_violations"
}
