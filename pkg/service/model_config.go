package service

import (
	"github.com/moov-io/base/telemetry"
	"github.com/ozdata/bizname-search/internal/datastore"
	"github.com/ozdata/bizname-search/internal/search"
)

type GlobalConfig struct {
	BiznameSearch Config
}

// Config defines all the configuration for the app
type Config struct {
	Telemetry telemetry.Config

	Datastore datastore.Config
	Search    search.Config
}
