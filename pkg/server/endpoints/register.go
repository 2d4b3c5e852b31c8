package endpoints

import (
	"github.com/viadata/crashdb/pkg/server"
)

// RegisterAll registers all API endpoints on the server
func RegisterAll(srv *server.Server) {
	RegisterStatusEndpoints(srv)

	RegisterCrashesEndpoints(srv)
	RegisterCrashDateEndpoints(srv)
	RegisterCrashCircumstancesEndpoints(srv)
	RegisterCrashInjuriesEndpoints(srv)
	RegisterCrashClassificationEndpoints(srv)

	RegisterVehiclesEndpoints(srv)
	RegisterVehicleModelsEndpoints(srv)
	RegisterVehicleManeuversEndpoints(srv)
	RegisterVehicleViolationsEndpoints(srv)

	RegisterPeopleEndpoints(srv)
	RegisterDriverInfoEndpoints(srv)
}
