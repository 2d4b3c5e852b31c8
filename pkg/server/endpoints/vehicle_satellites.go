package endpoints

import (
	"github.com/viadata/crashdb/pkg/model"
	"github.com/viadata/crashdb/pkg/server"
	"github.com/viadata/crashdb/pkg/server/store"
)

// Vehicle satellites are keyed by the numeric vehicle_id.

func RegisterVehicleModelsEndpoints(s *server.Server) {
	vehicles := s.VehiclesStore
	satelliteRoutes[int64, model.VehicleModels]{
		prefix:       "/vehicle-models",
		keyField:     "vehicle_id",
		kind:         store.KindVehicleModels,
		parentKind:   store.KindVehicle,
		parseKey:     parseNumericID,
		colKey:       intColKey,
		schema:       vehicleModelsSchema,
		parentExists: vehicles.VehicleExists,
		list:         vehicles.ListVehicleModels,
		fetch:        vehicles.FetchVehicleModels,
		build: func(key int64, cols map[string]interface{}) *model.VehicleModels {
			return &model.VehicleModels{
				VehicleID:     key,
				VehicleUse:    strCol(cols, "vehicle_use"),
				VehicleConfig: strCol(cols, "vehicle_config"),
				CargoBodyType: strCol(cols, "cargo_body_type"),
			}
		},
		create: vehicles.CreateVehicleModels,
		update: vehicles.UpdateVehicleModels,
		remove: vehicles.DeleteVehicleModels,
	}.register(s)
}

func RegisterVehicleManeuversEndpoints(s *server.Server) {
	vehicles := s.VehiclesStore
	satelliteRoutes[int64, model.VehicleManeuvers]{
		prefix:       "/vehicle-maneuvers",
		keyField:     "vehicle_id",
		kind:         store.KindVehicleManeuvers,
		parentKind:   store.KindVehicle,
		parseKey:     parseNumericID,
		colKey:       intColKey,
		schema:       vehicleManeuversSchema,
		parentExists: vehicles.VehicleExists,
		list:         vehicles.ListVehicleManeuvers,
		fetch:        vehicles.FetchVehicleManeuvers,
		build: func(key int64, cols map[string]interface{}) *model.VehicleManeuvers {
			return &model.VehicleManeuvers{
				VehicleID: key,
				Maneuver:  strCol(cols, "maneuver"),
			}
		},
		create: vehicles.CreateVehicleManeuvers,
		update: vehicles.UpdateVehicleManeuvers,
		remove: vehicles.DeleteVehicleManeuvers,
	}.register(s)
}

func RegisterVehicleViolationsEndpoints(s *server.Server) {
	vehicles := s.VehiclesStore
	satelliteRoutes[int64, model.VehicleViolations]{
		prefix:       "/vehicle-violations",
		keyField:     "vehicle_id",
		kind:         store.KindVehicleViolations,
		parentKind:   store.KindVehicle,
		parseKey:     parseNumericID,
		colKey:       intColKey,
		schema:       vehicleViolationsSchema,
		parentExists: vehicles.VehicleExists,
		list:         vehicles.ListVehicleViolations,
		fetch:        vehicles.FetchVehicleViolations,
		build: func(key int64, cols map[string]interface{}) *model.VehicleViolations {
			return &model.VehicleViolations{
				VehicleID:         key,
				CmrcVehI:          boolCol(cols, "cmrc_veh_i"),
				ExceedSpeedLimitI: boolCol(cols, "exceed_speed_limit_i"),
				HazmatPresentI:    boolCol(cols, "hazmat_present_i"),
				VehicleDefect:     strCol(cols, "vehicle_defect"),
			}
		},
		create: vehicles.CreateVehicleViolations,
		update: vehicles.UpdateVehicleViolations,
		remove: vehicles.DeleteVehicleViolations,
	}.register(s)
}
