package store

import (
	"bookkeeping_system/internal/domain" // Importing domain models
	"context"                            // Request scoped operations
	"fmt"                                // Error wrapping

	"gorm.io/gorm" // GORM ORM library
)

// RecordStore reads and writes one record table (expenses or gains)
type RecordStore struct {
	db   *gorm.DB
	kind domain.Kind
}

// NewRecordStore creates a store for the given kind
func NewRecordStore(db *gorm.DB, kind domain.Kind) *RecordStore {
	return &RecordStore{db: db, kind: kind}
}

// Kind returns the record kind this store serves
func (s *RecordStore) Kind() domain.Kind {
	return s.kind
}

// table scopes a session to the kind's table
func (s *RecordStore) table(ctx context.Context, tx *gorm.DB) *gorm.DB {
	return tx.WithContext(ctx).Table(s.kind.Table)
}

// Create inserts a record. When SlNo is empty the next code is allocated in the
// same transaction as the insert; the unique index on sl_no rejects any duplicate
// a concurrent writer could still produce.
func (s *RecordStore) Create(ctx context.Context, rec domain.Record) (domain.Record, error) {
	rec.ID = 0 // Always generated
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if rec.SlNo == "" {
			next, err := s.nextSlNo(ctx, tx)
			if err != nil {
				return err
			}
			rec.SlNo = next
		}
		return s.table(ctx, tx).Create(&rec).Error
	})
	if err != nil {
		return domain.Record{}, translate("create "+s.kind.Name, err)
	}
	return rec, nil
}

// List returns every record, newest date first
func (s *RecordStore) List(ctx context.Context) ([]domain.Record, error) {
	records := []domain.Record{}
	if err := s.table(ctx, s.db).Order("date desc").Find(&records).Error; err != nil {
		return nil, translate("list "+s.kind.Name+"s", err)
	}
	return records, nil
}

// GetByID fetches one record, domain.ErrNotFound when absent
func (s *RecordStore) GetByID(ctx context.Context, id uint) (domain.Record, error) {
	var rec domain.Record
	err := s.table(ctx, s.db).Where("id = ?", id).First(&rec).Error
	return rec, translate("get "+s.kind.Name, err)
}

// Update applies the set fields of patch and returns the stored row.
// An empty patch returns the row unchanged; a missing id yields domain.ErrNotFound.
func (s *RecordStore) Update(ctx context.Context, id uint, patch domain.RecordPatch) (domain.Record, error) {
	var rec domain.Record
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.table(ctx, tx).Where("id = ?", id).First(&rec).Error; err != nil {
			return err
		}
		cols := patch.Columns()
		if len(cols) == 0 {
			return nil // Nothing to change
		}
		if err := s.table(ctx, tx).Where("id = ?", id).Updates(cols).Error; err != nil {
			return err
		}
		rec = domain.Record{}
		return s.table(ctx, tx).Where("id = ?", id).First(&rec).Error
	})
	if err != nil {
		return domain.Record{}, translate("update "+s.kind.Name, err)
	}
	return rec, nil
}

// Delete removes a record and reports whether a row was removed
func (s *RecordStore) Delete(ctx context.Context, id uint) (bool, error) {
	res := s.table(ctx, s.db).Where("id = ?", id).Delete(&domain.Record{})
	if res.Error != nil {
		return false, translate("delete "+s.kind.Name, res.Error)
	}
	return res.RowsAffected > 0, nil
}

// NextSlNo previews the code the next Create would allocate
func (s *RecordStore) NextSlNo(ctx context.Context) (string, error) {
	next, err := s.nextSlNo(ctx, s.db)
	if err != nil {
		return "", translate("next "+s.kind.Name+" slNo", err)
	}
	return next, nil
}

// nextSlNo scans the existing codes and returns max suffix + 1
func (s *RecordStore) nextSlNo(ctx context.Context, tx *gorm.DB) (string, error) {
	var codes []string
	err := s.table(ctx, tx).Where("sl_no LIKE ?", s.kind.Prefix+"%").Pluck("sl_no", &codes).Error
	if err != nil {
		return "", fmt.Errorf("scan sl_no: %w", err)
	}
	return s.kind.NextSlNo(codes), nil
}
