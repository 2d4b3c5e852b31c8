package endpoints

import (
	"math"
	"time"

	"github.com/viadata/crashdb/pkg/validate"
)

// Field domains per entity. Create and update both normalize through these,
// so a value rejected on create is rejected on update too. Generated
// identifiers (crash_record_id on crashes, vehicle_id/crash_unit_id on
// vehicles, person_id on people) are deliberately absent from their own
// entity's schema: clients can't set or change them.

var crashSchema = validate.Schema{
	"incident_date": validate.Timestamp(true),
	"latitude":      validate.FloatRange(-90, 90),
	"longitude":     validate.FloatRange(-180, 180),
	"street_no":     validate.IntRange(0, 9999999),
	"street_name":   validate.Str(255),
}

var crashDateSchema = validate.Schema{
	"crash_record_id":   validate.Str(128),
	"crash_day_of_week": validate.IntRange(1, 7),
	"crash_month":       validate.IntRange(1, 12),
}

var crashCircumstancesSchema = validate.Schema{
	"crash_record_id":        validate.Str(128),
	"traffic_control_device": validate.Str(100),
	"device_condition":       validate.Str(100),
	"weather_condition":      validate.Str(100),
	"lighting_condition":     validate.Str(100),
	"lane_cnt":               validate.IntRange(0, 25),
	"roadway_surface_cond":   validate.Str(100),
	"road_defect":            validate.Str(100),
	"num_units":              validate.IntRange(0, 100),
	"posted_speed_limit":     validate.IntRange(0, 500),
	"intersection_related_i": validate.Bool(),
	"not_right_of_way_i":     validate.Bool(),
}

var crashInjuriesSchema = validate.Schema{
	"crash_record_id":         validate.Str(128),
	"injuries_fatal":          validate.IntRange(0, 100),
	"injuries_incapacitating": validate.IntRange(0, 100),
	"injuries_other":          validate.IntRange(0, 100),
}

var crashClassificationSchema = validate.Schema{
	"crash_record_id":         validate.Str(128),
	"first_crash_type":        validate.Str(150),
	"crash_type":              validate.Str(150),
	"prim_contributory_cause": validate.Str(255),
	"sec_contributory_cause":  validate.Str(255),
	"damage":                  validate.Str(100),
	"hit_and_run_i":           validate.Bool(),
}

var vehicleSchema = validate.Schema{
	"crash_record_id": validate.Str(128),
	"unit_no":         validate.IntRange(0, math.MaxInt32),
	"unit_type":       validate.Str(30),
	"num_passengers":  validate.IntRange(0, math.MaxInt32),
	"vehicle_year":    validate.Year(1900),
	"make":            validate.Str(200),
	"model":           validate.Str(200),
	"vehicle_type":    validate.Str(200),
}

var vehicleModelsSchema = validate.Schema{
	"vehicle_id":      validate.IntRange(1, math.MaxInt32),
	"vehicle_use":     validate.Str(150),
	"vehicle_config":  validate.Str(150),
	"cargo_body_type": validate.Str(150),
}

var vehicleManeuversSchema = validate.Schema{
	"vehicle_id": validate.IntRange(1, math.MaxInt32),
	"maneuver":   validate.Str(150),
}

var vehicleViolationsSchema = validate.Schema{
	"vehicle_id":           validate.IntRange(1, math.MaxInt32),
	"cmrc_veh_i":           validate.Bool(),
	"exceed_speed_limit_i": validate.Bool(),
	"hazmat_present_i":     validate.Bool(),
	"vehicle_defect":       validate.Str(100),
}

var personSchema = validate.Schema{
	"person_type":           validate.Str(50),
	"crash_record_id":       validate.Str(128),
	"vehicle_id":            validate.IntRange(1, math.MaxInt32),
	"sex":                   validate.Str(10),
	"age":                   validate.IntRange(0, 120),
	"safety_equipment":      validate.Str(200),
	"airbag_deployed":       validate.Str(100),
	"injury_classification": validate.Str(100),
}

var driverInfoSchema = validate.Schema{
	"person_id":             validate.Str(50),
	"driver_action":         validate.Str(50),
	"driver_vision":         validate.Str(50),
	"physical_condition":    validate.Str(50),
	"bac_result_value":      validate.FloatRange(0, 1),
	"cell_phone_use":        validate.Bool(),
	"drivers_license_class": validate.Str(10),
}

// Typed accessors over Normalize output. A missing or null column yields nil,
// so absent fields stay absent in the model.

func strCol(cols map[string]interface{}, name string) *string {
	if v, ok := cols[name]; ok && v != nil {
		s := v.(string)
		return &s
	}
	return nil
}

func intCol(cols map[string]interface{}, name string) *int64 {
	if v, ok := cols[name]; ok && v != nil {
		i := v.(int64)
		return &i
	}
	return nil
}

func floatCol(cols map[string]interface{}, name string) *float64 {
	if v, ok := cols[name]; ok && v != nil {
		f := v.(float64)
		return &f
	}
	return nil
}

func boolCol(cols map[string]interface{}, name string) *bool {
	if v, ok := cols[name]; ok && v != nil {
		b := v.(bool)
		return &b
	}
	return nil
}

func timeCol(cols map[string]interface{}, name string) *time.Time {
	if v, ok := cols[name]; ok && v != nil {
		t := v.(time.Time)
		return &t
	}
	return nil
}
