package datastore

import (
	"time"
)

type Config struct {
	CKAN *CKANConfig
}

// CKANConfig points at a CKAN datastore_search endpoint and the
// resource holding business name records.
type CKANConfig struct {
	BaseURL    string
	ResourceID string

	Timeout time.Duration
}
