package service

import (
	"github.com/moov-io/base/config"
	"github.com/moov-io/base/log"
	biznamesearch "github.com/ozdata/bizname-search"
)

func LoadConfig(logger log.Logger) (*Config, error) {
	configService := config.NewService(logger)

	global := &GlobalConfig{}
	if err := configService.LoadFromFS(global, biznamesearch.ConfigDefaults); err != nil {
		return nil, err
	}

	cfg := &global.BiznameSearch

	return cfg, nil
}
