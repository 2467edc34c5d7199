package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"

	"github.com/eaugeas/dstruct/config"
	"github.com/eaugeas/dstruct/demo"
	"github.com/eaugeas/dstruct/logs"
)

func main() {
	cfg := &demo.Config{}

	parser, err := config.Generate(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}

	if err := parser.Parse(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		_ = parser.Usage()
		os.Exit(2)
	}

	logger := logs.NewLogrus(logs.LogrusLoggerProperties{
		Level:  cfg.Options.LogLevel,
		Output: os.Stderr,
	})

	ctx := logs.WithTraceID(context.Background(), rand.Int63())
	if _, err := demo.Run(ctx, cfg.Options, logger, os.Stdout); err != nil {
		logger.Error(ctx, "demo failed", logs.MapFields{"err": err.Error()})
		os.Exit(1)
	}
}
