package store

// HealthStore abstracts database health check operations
type HealthStore interface {
	// Ping checks if the database is reachable
	Ping() error
}
