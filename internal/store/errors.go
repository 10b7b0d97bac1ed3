package store

import (
	"bookkeeping_system/internal/domain"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// translate maps GORM errors onto domain sentinels and wraps everything else
func translate(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return domain.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%s: %w", op, domain.ErrConflict)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}
