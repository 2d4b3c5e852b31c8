// Package idgen derives primary keys for the two identity regimes in the
// crash schema: content-addressed crash record IDs (a SHA-512 over the
// identifying attributes) and sequential human-readable person IDs
// (Q0000001 ... Q9999999).
//
// Crash IDs are a pure function of the record's attributes. Recomputing the
// ID from a stored row reproduces the stored key, which is what makes
// duplicate submissions detectable at the primary key.
package idgen
