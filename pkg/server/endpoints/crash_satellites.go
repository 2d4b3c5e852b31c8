package endpoints

import (
	"github.com/viadata/crashdb/pkg/model"
	"github.com/viadata/crashdb/pkg/server"
	"github.com/viadata/crashdb/pkg/server/store"
)

// The four crash satellites share routing and check order; only their
// schemas, models, and store methods differ.

func RegisterCrashDateEndpoints(s *server.Server) {
	crashes := s.CrashesStore
	satelliteRoutes[string, model.CrashDate]{
		prefix:       "/crash-date",
		keyField:     "crash_record_id",
		kind:         store.KindCrashDate,
		parentKind:   store.KindCrash,
		parseKey:     parseStringKey,
		colKey:       stringColKey,
		schema:       crashDateSchema,
		parentExists: crashes.CrashExists,
		list:         crashes.ListCrashDates,
		fetch:        crashes.FetchCrashDate,
		build: func(key string, cols map[string]interface{}) *model.CrashDate {
			return &model.CrashDate{
				CrashRecordID:  key,
				CrashDayOfWeek: intCol(cols, "crash_day_of_week"),
				CrashMonth:     intCol(cols, "crash_month"),
			}
		},
		create: crashes.CreateCrashDate,
		update: crashes.UpdateCrashDate,
		remove: crashes.DeleteCrashDate,
	}.register(s)
}

func RegisterCrashCircumstancesEndpoints(s *server.Server) {
	crashes := s.CrashesStore
	satelliteRoutes[string, model.CrashCircumstances]{
		prefix:       "/crash-circumstances",
		keyField:     "crash_record_id",
		kind:         store.KindCrashCircumstances,
		parentKind:   store.KindCrash,
		parseKey:     parseStringKey,
		colKey:       stringColKey,
		schema:       crashCircumstancesSchema,
		parentExists: crashes.CrashExists,
		list:         crashes.ListCrashCircumstances,
		fetch:        crashes.FetchCrashCircumstances,
		build: func(key string, cols map[string]interface{}) *model.CrashCircumstances {
			return &model.CrashCircumstances{
				CrashRecordID:        key,
				TrafficControlDevice: strCol(cols, "traffic_control_device"),
				DeviceCondition:      strCol(cols, "device_condition"),
				WeatherCondition:     strCol(cols, "weather_condition"),
				LightingCondition:    strCol(cols, "lighting_condition"),
				LaneCnt:              intCol(cols, "lane_cnt"),
				RoadwaySurfaceCond:   strCol(cols, "roadway_surface_cond"),
				RoadDefect:           strCol(cols, "road_defect"),
				NumUnits:             intCol(cols, "num_units"),
				PostedSpeedLimit:     intCol(cols, "posted_speed_limit"),
				IntersectionRelatedI: boolCol(cols, "intersection_related_i"),
				NotRightOfWayI:       boolCol(cols, "not_right_of_way_i"),
			}
		},
		create: crashes.CreateCrashCircumstances,
		update: crashes.UpdateCrashCircumstances,
		remove: crashes.DeleteCrashCircumstances,
	}.register(s)
}

func RegisterCrashInjuriesEndpoints(s *server.Server) {
	crashes := s.CrashesStore
	satelliteRoutes[string, model.CrashInjuries]{
		prefix:       "/crash-injuries",
		keyField:     "crash_record_id",
		kind:         store.KindCrashInjuries,
		parentKind:   store.KindCrash,
		parseKey:     parseStringKey,
		colKey:       stringColKey,
		schema:       crashInjuriesSchema,
		parentExists: crashes.CrashExists,
		list:         crashes.ListCrashInjuries,
		fetch:        crashes.FetchCrashInjuries,
		build: func(key string, cols map[string]interface{}) *model.CrashInjuries {
			return &model.CrashInjuries{
				CrashRecordID:          key,
				InjuriesFatal:          intCol(cols, "injuries_fatal"),
				InjuriesIncapacitating: intCol(cols, "injuries_incapacitating"),
				InjuriesOther:          intCol(cols, "injuries_other"),
			}
		},
		create: crashes.CreateCrashInjuries,
		update: crashes.UpdateCrashInjuries,
		remove: crashes.DeleteCrashInjuries,
	}.register(s)
}

func RegisterCrashClassificationEndpoints(s *server.Server) {
	crashes := s.CrashesStore
	satelliteRoutes[string, model.CrashClassification]{
		prefix:       "/crash-classification",
		keyField:     "crash_record_id",
		kind:         store.KindCrashClassification,
		parentKind:   store.KindCrash,
		parseKey:     parseStringKey,
		colKey:       stringColKey,
		schema:       crashClassificationSchema,
		parentExists: crashes.CrashExists,
		list:         crashes.ListCrashClassifications,
		fetch:        crashes.FetchCrashClassification,
		build: func(key string, cols map[string]interface{}) *model.CrashClassification {
			return &model.CrashClassification{
				CrashRecordID:         key,
				FirstCrashType:        strCol(cols, "first_crash_type"),
				CrashType:             strCol(cols, "crash_type"),
				PrimContributoryCause: strCol(cols, "prim_contributory_cause"),
				SecContributoryCause:  strCol(cols, "sec_contributory_cause"),
				Damage:                strCol(cols, "damage"),
				HitAndRunI:            boolCol(cols, "hit_and_run_i"),
			}
		},
		create: crashes.CreateCrashClassification,
		update: crashes.UpdateCrashClassification,
		remove: crashes.DeleteCrashClassification,
	}.register(s)
}
