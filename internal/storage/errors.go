package storage

import (
	"errors"

	"github.com/lib/pq"
)

// IsUniqueViolation reports whether err is a Postgres unique constraint
// violation (duplicate card or category name, invoice key collision).
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
