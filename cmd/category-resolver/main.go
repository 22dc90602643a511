// Package main provides the CLI entrypoint for category-resolver.
//
// category-resolver loads category schemas and:
//   - checks them for structural problems (check)
//   - prints C3 ancestor orders (linearize)
//   - prints fully inherited categories (effective)
//   - combines several categories into one attribute set (resolve)
//   - prints a parents-first order of every category (order)
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

// Exit codes.
const (
	exitOK       = 0
	exitFindings = 1
	exitError    = 2
)

// errFindings signals a completed run whose report contains errors.
var errFindings = errors.New("schema check found errors")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	os.Exit(run(ctx, os.Args[1:]))
}

func run(ctx context.Context, args []string) int {
	cmd := newRootCmd()
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(ctx)

	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, errFindings):
		return exitFindings
	default:
		fmt.Fprintln(cmd.ErrOrStderr(), "error:", err)
		return exitError
	}
}
