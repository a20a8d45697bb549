package datastore

import (
	"time"
)

// BusinessRecord is one business name entry from the register.
// Registered is the zero time when the register had no parseable date.
type BusinessRecord struct {
	Name       string
	State      string
	Status     string
	Registered time.Time
}

func (r BusinessRecord) HasRegistrationDate() bool {
	return !r.Registered.IsZero()
}
