package gorm

import (
	"gorm.io/gorm"
)

// The eleven tables share one CRUD shape: point lookup by a single key
// column, key-ordered pagination, insert, partial column update, delete.
// These helpers keep the per-entity methods down to their table/column
// specifics.

func listPage(db *gorm.DB, orderColumn string, offset, limit int, dest interface{}) error {
	tx := db.Order(orderColumn).Offset(offset).Limit(limit).Find(dest)
	return translateError(tx.Error)
}

func fetchByKey(db *gorm.DB, keyColumn string, key interface{}, dest interface{}) error {
	tx := db.Where(keyColumn+" = ?", key).First(dest)
	return translateError(tx.Error)
}

func insertRow(db *gorm.DB, row interface{}) error {
	return translateError(db.Create(row).Error)
}

// updateByKey applies a partial column update and re-reads the row into
// dest. An empty column map degenerates to a fetch, preserving
// partial-update semantics for bodies that name no fields.
func updateByKey(db *gorm.DB, keyColumn string, key interface{}, columns map[string]interface{}, dest interface{}) error {
	if err := fetchByKey(db, keyColumn, key, dest); err != nil {
		return err
	}
	if len(columns) == 0 {
		return nil
	}

	tx := db.Model(dest).Where(keyColumn+" = ?", key).Updates(columns)
	if tx.Error != nil {
		return translateError(tx.Error)
	}
	return fetchByKey(db, keyColumn, key, dest)
}

func deleteByKey(db *gorm.DB, model interface{}, keyColumn string, key interface{}) error {
	tx := db.Where(keyColumn+" = ?", key).Delete(model)
	if tx.Error != nil {
		return translateError(tx.Error)
	}
	if tx.RowsAffected == 0 {
		return translateError(gorm.ErrRecordNotFound)
	}
	return nil
}

func existsByKey(db *gorm.DB, table, keyColumn string, key interface{}) (bool, error) {
	var exists bool
	tx := db.Raw(
		"SELECT EXISTS(SELECT 1 FROM "+table+" WHERE "+keyColumn+" = ?)", key,
	).Scan(&exists)
	if tx.Error != nil {
		return false, translateError(tx.Error)
	}
	return exists, nil
}
