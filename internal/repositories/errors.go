package repositories

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// Error taxonomy for repository operations. Storage failures surface
// through these sentinels without local recovery or retries.
var (
	// ErrNotFound means no row matched the query, including the case
	// where the id exists under a different tenant.
	ErrNotFound = errors.New("not found")
	// ErrConflict means a uniqueness constraint was violated, e.g. a
	// duplicate email.
	ErrConflict = errors.New("conflict")
	// ErrPersistence covers all other storage failures.
	ErrPersistence = errors.New("persistence failure")
)

// translate maps database errors onto the repository error taxonomy.
func translate(err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: %v", ErrConflict, err)
	default:
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
}
