package gorm

import (
	"gorm.io/gorm"

	"github.com/viadata/crashdb/pkg/idgen"
	"github.com/viadata/crashdb/pkg/model"
	"github.com/viadata/crashdb/pkg/server/store"
)

// Ensure PeopleStore implements store.PeopleStore
var _ store.PeopleStore = (*PeopleStore)(nil)

// PeopleStore implements store.PeopleStore using GORM
type PeopleStore struct {
	db *gorm.DB
}

// NewPeopleStore creates a new PeopleStore
func NewPeopleStore(db *gorm.DB) *PeopleStore {
	return &PeopleStore{db: db}
}

func (s *PeopleStore) ListPeople(offset, limit int) ([]model.Person, error) {
	var people []model.Person
	if err := listPage(s.db, "person_id", offset, limit, &people); err != nil {
		return nil, err
	}
	return people, nil
}

func (s *PeopleStore) FetchPerson(personID string) (*model.Person, error) {
	var person model.Person
	if err := fetchByKey(s.db, "person_id", personID, &person); err != nil {
		return nil, err
	}
	return &person, nil
}

func (s *PeopleStore) CreatePerson(person *model.Person) error {
	return insertRow(s.db, person)
}

func (s *PeopleStore) UpdatePerson(personID string, columns map[string]interface{}) (*model.Person, error) {
	var person model.Person
	if err := updateByKey(s.db, "person_id", personID, columns, &person); err != nil {
		return nil, err
	}
	return &person, nil
}

func (s *PeopleStore) DeletePerson(personID string) error {
	return deleteByKey(s.db, &model.Person{}, "person_id", personID)
}

func (s *PeopleStore) PersonExists(personID string) (bool, error) {
	return existsByKey(s.db, "people", "person_id", personID)
}

// NextPersonID extracts the numeric suffix of every well-formed person ID,
// takes the maximum, and formats max+1. Malformed IDs (legacy imports) are
// excluded by the regexp so they can't poison the counter.
func (s *PeopleStore) NextPersonID() (string, error) {
	var next int64
	tx := s.db.Raw(`
		SELECT COALESCE(MAX(CAST(SUBSTRING(person_id FROM 2) AS INTEGER)), 0) + 1
		FROM people
		WHERE person_id ~ '^Q[0-9]{7}$'
	`).Scan(&next)
	if tx.Error != nil {
		return "", translateError(tx.Error)
	}
	return idgen.FormatPersonID(next)
}

func (s *PeopleStore) ListDriverInfo(offset, limit int) ([]model.DriverInfo, error) {
	var infos []model.DriverInfo
	if err := listPage(s.db, "person_id", offset, limit, &infos); err != nil {
		return nil, err
	}
	return infos, nil
}

func (s *PeopleStore) FetchDriverInfo(personID string) (*model.DriverInfo, error) {
	var info model.DriverInfo
	if err := fetchByKey(s.db, "person_id", personID, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

func (s *PeopleStore) CreateDriverInfo(info *model.DriverInfo) error {
	return insertRow(s.db, info)
}

func (s *PeopleStore) UpdateDriverInfo(personID string, columns map[string]interface{}) (*model.DriverInfo, error) {
	var info model.DriverInfo
	if err := updateByKey(s.db, "person_id", personID, columns, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

func (s *PeopleStore) DeleteDriverInfo(personID string) error {
	return deleteByKey(s.db, &model.DriverInfo{}, "person_id", personID)
}
