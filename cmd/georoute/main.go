// Command georoute searches for high-gain routes with a genetic algorithm.
//
//	georoute run    [--config f] [--pop N] [--gens N] [--seed S] [--log out.csv]
//	georoute grid   [--config f] [--runs N] [--workers N] [--metrics-out f]
//	georoute matrix [--source random] [--seed S]
//
// Settings come from defaults, the --config YAML file and GEOROUTE_*
// environment variables, in that order; flags override all three.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
