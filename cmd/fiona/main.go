// Package main provides the entry point for Fiona, a personal task tracker.
//
// Usage:
//
//	fiona [flags]
//	fiona exec <command> [args...]
//	fiona init-config
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/darrenchooji/fiona/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := cli.Execute(ctx)
	stop()
	os.Exit(code)
}
