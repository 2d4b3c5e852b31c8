package model

import "time"

// Crash is the root record. Its primary key is derived from the identifying
// attributes at create time (see pkg/idgen) and never reassigned.
type Crash struct {
	CrashRecordID string     `gorm:"column:crash_record_id;primaryKey" json:"crash_record_id"`
	IncidentDate  *time.Time `gorm:"column:incident_date" json:"incident_date"`
	Latitude      *float64   `gorm:"column:latitude" json:"latitude"`
	Longitude     *float64   `gorm:"column:longitude" json:"longitude"`
	StreetNo      *int64     `gorm:"column:street_no" json:"street_no"`
	StreetName    *string    `gorm:"column:street_name" json:"street_name"`
}

func (Crash) TableName() string {
	return "crashes"
}
