package model

// The four crash satellites share the parent crash's primary key and are
// cascade-deleted with it.

// CrashDate holds the derived temporal attributes of a crash.
type CrashDate struct {
	CrashRecordID  string `gorm:"column:crash_record_id;primaryKey" json:"crash_record_id"`
	CrashDayOfWeek *int64 `gorm:"column:crash_day_of_week" json:"crash_day_of_week"`
	CrashMonth     *int64 `gorm:"column:crash_month" json:"crash_month"`
}

func (CrashDate) TableName() string {
	return "crash_date"
}

// CrashCircumstances describes the environment and roadway at the scene.
type CrashCircumstances struct {
	CrashRecordID        string  `gorm:"column:crash_record_id;primaryKey" json:"crash_record_id"`
	TrafficControlDevice *string `gorm:"column:traffic_control_device" json:"traffic_control_device"`
	DeviceCondition      *string `gorm:"column:device_condition" json:"device_condition"`
	WeatherCondition     *string `gorm:"column:weather_condition" json:"weather_condition"`
	LightingCondition    *string `gorm:"column:lighting_condition" json:"lighting_condition"`
	LaneCnt              *int64  `gorm:"column:lane_cnt" json:"lane_cnt"`
	RoadwaySurfaceCond   *string `gorm:"column:roadway_surface_cond" json:"roadway_surface_cond"`
	RoadDefect           *string `gorm:"column:road_defect" json:"road_defect"`
	NumUnits             *int64  `gorm:"column:num_units" json:"num_units"`
	PostedSpeedLimit     *int64  `gorm:"column:posted_speed_limit" json:"posted_speed_limit"`
	IntersectionRelatedI *bool   `gorm:"column:intersection_related_i" json:"intersection_related_i"`
	NotRightOfWayI       *bool   `gorm:"column:not_right_of_way_i" json:"not_right_of_way_i"`
}

func (CrashCircumstances) TableName() string {
	return "crash_circumstances"
}

// CrashInjuries counts injuries by severity.
type CrashInjuries struct {
	CrashRecordID          string `gorm:"column:crash_record_id;primaryKey" json:"crash_record_id"`
	InjuriesFatal          *int64 `gorm:"column:injuries_fatal" json:"injuries_fatal"`
	InjuriesIncapacitating *int64 `gorm:"column:injuries_incapacitating" json:"injuries_incapacitating"`
	InjuriesOther          *int64 `gorm:"column:injuries_other" json:"injuries_other"`
}

func (CrashInjuries) TableName() string {
	return "crash_injuries"
}

// CrashClassification records crash type and contributory causes.
type CrashClassification struct {
	CrashRecordID         string  `gorm:"column:crash_record_id;primaryKey" json:"crash_record_id"`
	FirstCrashType        *string `gorm:"column:first_crash_type" json:"first_crash_type"`
	CrashType             *string `gorm:"column:crash_type" json:"crash_type"`
	PrimContributoryCause *string `gorm:"column:prim_contributory_cause" json:"prim_contributory_cause"`
	SecContributoryCause  *string `gorm:"column:sec_contributory_cause" json:"sec_contributory_cause"`
	Damage                *string `gorm:"column:damage" json:"damage"`
	HitAndRunI            *bool   `gorm:"column:hit_and_run_i" json:"hit_and_run_i"`
}

func (CrashClassification) TableName() string {
	return "crash_classification"
}
