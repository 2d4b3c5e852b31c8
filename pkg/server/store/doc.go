// Package store provides storage abstractions for the crash records server.
//
// This package defines interfaces for database operations, allowing the
// server endpoints to be decoupled from the specific database implementation.
// This enables easier testing with mocks and potential support for different
// storage backends.
//
// # Available Stores
//
//   - CrashesStore: crash root records and their four 1:1 satellites
//   - VehiclesStore: vehicles and their three satellites
//   - PeopleStore: people and driver_info
//   - HealthStore: connectivity probe
//
// All stores share a small error vocabulary: ErrNotFound for a missing
// addressed row, ErrAlreadyExists for a primary-key conflict, RefError
// (wrapping ErrReferenceNotFound) for a missing foreign-key target, and
// ErrStoreUnavailable for persistence failures that are not the caller's
// fault.
package store
