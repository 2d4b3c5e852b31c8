package endpoints

import (
	"github.com/viadata/crashdb/pkg/model"
	"github.com/viadata/crashdb/pkg/server"
	"github.com/viadata/crashdb/pkg/server/store"
)

// RegisterDriverInfoEndpoints registers the 1:1 driver satellite of a person.
func RegisterDriverInfoEndpoints(s *server.Server) {
	people := s.PeopleStore
	satelliteRoutes[string, model.DriverInfo]{
		prefix:       "/driver-info",
		keyField:     "person_id",
		kind:         store.KindDriverInfo,
		parentKind:   store.KindPerson,
		parseKey:     parseStringKey,
		colKey:       stringColKey,
		schema:       driverInfoSchema,
		parentExists: people.PersonExists,
		list:         people.ListDriverInfo,
		fetch:        people.FetchDriverInfo,
		build: func(key string, cols map[string]interface{}) *model.DriverInfo {
			return &model.DriverInfo{
				PersonID:            key,
				DriverAction:        strCol(cols, "driver_action"),
				DriverVision:        strCol(cols, "driver_vision"),
				PhysicalCondition:   strCol(cols, "physical_condition"),
				BacResultValue:      floatCol(cols, "bac_result_value"),
				CellPhoneUse:        boolCol(cols, "cell_phone_use"),
				DriversLicenseClass: strCol(cols, "drivers_license_class"),
			}
		},
		create: people.CreateDriverInfo,
		update: people.UpdateDriverInfo,
		remove: people.DeleteDriverInfo,
	}.register(s)
}
