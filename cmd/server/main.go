// Command server runs the punctuation check HTTP service.
//
// Configuration is read from CONFIG_PATH (default ./config.yaml) and
// environment variables. SIGINT or SIGTERM triggers a graceful shutdown.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/punctcheck/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Printf("server: %v", err)
		stop()
		os.Exit(1)
	}
}
