package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
)

type (
	loggerKey struct{}
	levelKey  struct{}
)

func main() {
	level := new(slog.LevelVar)

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))

	ctx := context.WithValue(context.Background(), loggerKey{}, log)
	ctx = context.WithValue(ctx, levelKey{}, level)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	if err := cmd().Run(ctx, os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "stopped app due to the error %q\n", err)
		stop()
		os.Exit(1)
	}
}
