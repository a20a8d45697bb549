package main

import (
	"fmt"
	"os"

	"github.com/moov-io/base/log"
	biznamesearch "github.com/ozdata/bizname-search"
	"github.com/ozdata/bizname-search/internal/cli"
	"github.com/ozdata/bizname-search/pkg/service"
)

func main() {
	os.Exit(run())
}

func run() int {
	env := &service.Environment{
		Logger: log.NewDefaultLogger().Set("app", log.String("bizname-search")).Set("version", log.String(biznamesearch.Version)),
	}

	env, err := service.NewEnvironment(env)
	if err != nil {
		env.Logger.Fatal().LogErrorf("Error loading up environment: %v", err)
		return 1
	}
	defer env.Shutdown()

	cmd := cli.New(env)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR %v\n", err)
		return 1
	}
	return 0
}
