// Package model defines the database models for the crash records schema.
//
// This package contains GORM models that map to the normalized PostgreSQL
// schema: a crashes root table, four 1:1 crash satellites sharing the crash
// primary key, vehicles and their three satellites, people, and driver_info.
//
// # Database Schema
//
//   - crashes: root records, content-addressed 128-hex primary key
//   - crash_date, crash_circumstances, crash_injuries, crash_classification:
//     1:1 satellites of crashes (PK = FK, ON DELETE CASCADE)
//   - vehicle: units involved in a crash (sequential vehicle_id/crash_unit_id)
//   - vehicle_specs, vehicle_maneuvers, vehicle_violations: 1:1 satellites
//     of vehicle
//   - people: involved persons, Q-prefixed sequential display IDs
//   - driver_info: 1:1 satellite of people
//
// Nullable columns are pointer fields so partial updates and absent
// attributes round-trip as SQL NULL.
package model
