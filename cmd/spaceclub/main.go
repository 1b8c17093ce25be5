package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spaceclub/spaceclub/core"
)

func main() {
	os.Exit(run())
}

func run() (code int) {
	// Panic Recovery: restore the terminal even if the program crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	c := newCLI()
	defer c.close()

	if err := c.root().ExecuteContext(ctx); err != nil {
		return 1
	}
	return 0
}
