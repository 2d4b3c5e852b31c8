package model

// Person is an involved person. The primary key is a sequential display ID
// (Q0000001 ... Q9999999). Both foreign keys are nullable: a pedestrian has
// no vehicle, and a person record may be loaded before its crash.
type Person struct {
	PersonID             string  `gorm:"column:person_id;primaryKey" json:"person_id"`
	PersonType           *string `gorm:"column:person_type" json:"person_type"`
	CrashRecordID        *string `gorm:"column:crash_record_id" json:"crash_record_id"`
	VehicleID            *int64  `gorm:"column:vehicle_id" json:"vehicle_id"`
	Sex                  *string `gorm:"column:sex" json:"sex"`
	Age                  *int64  `gorm:"column:age" json:"age"`
	SafetyEquipment      *string `gorm:"column:safety_equipment" json:"safety_equipment"`
	AirbagDeployed       *string `gorm:"column:airbag_deployed" json:"airbag_deployed"`
	InjuryClassification *string `gorm:"column:injury_classification" json:"injury_classification"`
}

func (Person) TableName() string {
	return "people"
}

// DriverInfo is the 1:1 driver satellite of a person, cascade-deleted with it.
type DriverInfo struct {
	PersonID            string   `gorm:"column:person_id;primaryKey" json:"person_id"`
	DriverAction        *string  `gorm:"column:driver_action" json:"driver_action"`
	DriverVision        *string  `gorm:"column:driver_vision" json:"driver_vision"`
	PhysicalCondition   *string  `gorm:"column:physical_condition" json:"physical_condition"`
	BacResultValue      *float64 `gorm:"column:bac_result_value" json:"bac_result_value"`
	CellPhoneUse        *bool    `gorm:"column:cell_phone_use" json:"cell_phone_use"`
	DriversLicenseClass *string  `gorm:"column:drivers_license_class" json:"drivers_license_class"`
}

func (DriverInfo) TableName() string {
	return "driver_info"
}
