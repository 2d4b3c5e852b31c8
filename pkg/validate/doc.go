// Package validate gates attribute values before they reach the record
// store. Each entity declares a Schema describing its fields (numeric
// domains, maximum string lengths, boolean columns, timestamp columns) and
// both the create and update paths run request bodies through the same
// Schema, so normalization cannot drift between the two.
//
// The checks are pure: foreign-key existence and satellite uniqueness are the
// store's business and live with the store interfaces.
package validate
