package postgres

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type violation int

const (
	noViolation violation = iota
	uniqueViolation
	foreignKeyViolation
)

// classifyViolation maps a write error to the constraint it broke. The SQLSTATE
// fallback covers drivers opened without gorm's error translation.
func classifyViolation(err error) violation {
	switch {
	case err == nil:
		return noViolation
	case errors.Is(err, gorm.ErrForeignKeyViolated), strings.Contains(err.Error(), "23503"):
		return foreignKeyViolation
	case errors.Is(err, gorm.ErrDuplicatedKey), strings.Contains(err.Error(), "23505"):
		return uniqueViolation
	default:
		return noViolation
	}
}
