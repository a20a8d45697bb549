package service

import (
	"context"

	"github.com/moov-io/base/log"
	"github.com/moov-io/base/telemetry"
	biznamesearch "github.com/ozdata/bizname-search"
)

// Environment holds the shared runtime pieces of the app.
type Environment struct {
	Logger log.Logger
	Config *Config

	shutdownFuncs []func()
}

// NewEnvironment fills in whatever pieces of env are missing. Fields
// already set (e.g. a Logger built in main) are kept.
func NewEnvironment(env *Environment) (*Environment, error) {
	if env == nil {
		env = &Environment{}
	}
	if env.Logger == nil {
		env.Logger = log.NewDefaultLogger()
	}

	if env.Config == nil {
		cfg, err := LoadConfig(env.Logger)
		if err != nil {
			return env, err
		}
		env.Config = cfg
	}

	shutdownTelemetry, err := telemetry.SetupTelemetry(context.Background(), env.Config.Telemetry, biznamesearch.Version)
	if err != nil {
		return env, err
	}
	env.shutdownFuncs = append(env.shutdownFuncs, func() {
		if err := shutdownTelemetry(); err != nil {
			env.Logger.Warn().LogErrorf("shutting down telemetry: %v", err)
		}
	})

	return env, nil
}

func (env *Environment) Shutdown() {
	for _, fn := range env.shutdownFuncs {
		fn()
	}
	env.shutdownFuncs = nil
}
