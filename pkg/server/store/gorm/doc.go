// Package gorm provides GORM-based implementations of the store interfaces.
//
// All implementations speak to PostgreSQL. Integrity enforcement is shared
// with the schema: primary-key uniqueness settles concurrent ID races and
// duplicate content hashes, and ON DELETE CASCADE makes parent deletes take
// their satellite rows atomically. SQLSTATE codes from the driver are
// translated to the store package's error vocabulary.
package gorm
