package company

import "errors"

var ErrNotFound = errors.New("company not found")

// Company rows are pre-seeded out of band and read-only from this service.
type Company struct {
	ID       int64
	Password string
	Name     string
	Domain   string
}
