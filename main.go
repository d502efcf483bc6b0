package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/joho/godotenv/autoload"
	"github.com/reusedev/pattern-hub/config"
	"github.com/reusedev/pattern-hub/internal/modules/logs"
	"github.com/reusedev/pattern-hub/internal/modules/metrics"
	"github.com/reusedev/pattern-hub/internal/service/demo"
)

var (
	configPath  string
	pattern     string
	dumpMetrics bool
)

func init() {
	flag.StringVar(&configPath, "config", "", "config file path, empty uses the built-in default")
	flag.StringVar(&pattern, "pattern", "", "pattern demo to run, or all (defaults to default_pattern from config)")
	flag.BoolVar(&dumpMetrics, "metrics", false, "print run metrics after the demos")
}

func main() {
	flag.Parse()
	config.Init(configPath)
	logs.InitLogger()
	if pattern == "" {
		pattern = config.GConfig.DefaultPattern
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	registry, err := demo.FromConfig(config.GConfig)
	if err != nil {
		fail(err)
	}
	if err := registry.Run(ctx, pattern, os.Stdout); err != nil {
		fail(err)
	}
	if dumpMetrics {
		fmt.Println()
		if err := metrics.Write(os.Stdout); err != nil {
			fail(err)
		}
	}
}

func fail(err error) {
	logs.Logger.Error().Err(err).Msg("run failed")
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
