// Command expected runs the division scenarios, inspecting returned results.
package main

import (
	"flag"
	"log"
	"os"

	"go.uber.org/zap"

	"github.com/caffee/division/config"
	"github.com/caffee/division/demo"
	"github.com/caffee/division/logutil"
)

func main() {
	configFile := flag.String("config", "", "path of the TOML config file")
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		log.Fatalln("cannot load config:", err)
	}
	logger := logutil.SetupLogger(&cfg.Log)
	defer func() { _ = logger.Sync() }()

	err = demo.Expected{Out: os.Stdout, Logger: logger}.Run(demo.Scenarios())
	if err != nil {
		logger.Error("expected example failed", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
}
