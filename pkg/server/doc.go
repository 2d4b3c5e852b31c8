// Package server provides the HTTP server for the crashdb API.
//
// This package implements the core HTTP server that handles all crashdb REST
// API requests. It uses gorilla/mux for routing and wires the GORM-backed
// stores into a single Server value.
//
// # Server Setup
//
//	srv := server.NewServer(db, cfg, "0.0.0.0", "8000")
//	endpoints.RegisterAll(srv)
//	if err := srv.Start(); err != nil {
//	    log.Fatal(err)
//	}
//
// # Components
//
// The Server struct holds:
//
//   - Router: HTTP request router
//   - DB: Database connection
//   - Config: Loaded server configuration
//   - CrashesStore / VehiclesStore / PeopleStore / HealthStore: record stores
//
// # Endpoints
//
// API endpoints are registered via the endpoints subpackage. Each resource
// prefix carries the same five operations: list, fetch, create, update,
// delete:
//
//   - /crashes, /crash-date, /crash-circumstances, /crash-injuries,
//     /crash-classification
//   - /vehicles, /vehicle-models, /vehicle-maneuvers, /vehicle-violations
//   - /people, /driver-info
package server
