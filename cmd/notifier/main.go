// Command notifier runs the notification dispatcher. It polls the pending
// queue, delivers through the configured channels and serves /metrics.
//
// Several notifier processes may run at once when Redis is configured; only
// the holder of the dispatcher lock runs a pass.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/heartmarshall/memorial-backend/internal/app"
)

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("load .env: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.RunNotifier(ctx); err != nil {
		log.Printf("notifier: %v", err)
		os.Exit(1)
	}
}
