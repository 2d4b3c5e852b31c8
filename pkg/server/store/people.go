package store

import "github.com/viadata/crashdb/pkg/model"

// PeopleStore abstracts storage for people and driver_info, and generates
// the sequential person display ID.
type PeopleStore interface {
	ListPeople(offset, limit int) ([]model.Person, error)
	FetchPerson(personID string) (*model.Person, error)
	CreatePerson(person *model.Person) error
	UpdatePerson(personID string, columns map[string]interface{}) (*model.Person, error)
	DeletePerson(personID string) error
	PersonExists(personID string) (bool, error)

	// NextPersonID scans existing Q-prefixed IDs and returns the next one.
	// Returns idgen.ErrIdentifierSpaceExhausted past Q9999999. As with the
	// vehicle counters, the PK constraint settles concurrent races.
	NextPersonID() (string, error)

	ListDriverInfo(offset, limit int) ([]model.DriverInfo, error)
	FetchDriverInfo(personID string) (*model.DriverInfo, error)
	CreateDriverInfo(info *model.DriverInfo) error
	UpdateDriverInfo(personID string, columns map[string]interface{}) (*model.DriverInfo, error)
	DeleteDriverInfo(personID string) error
}
