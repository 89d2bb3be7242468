// Command requeue-failed moves failed notifications back to pending so the
// notifier delivers them again. Failed notifications are never retried
// automatically.
//
// Usage:
//
//	requeue-failed --actor=<admin uuid> --ids=<uuid>,<uuid>
//	requeue-failed --actor=<admin uuid> [--channel=email] [--limit=100]
//
// Without --ids the oldest failed notifications are selected.
// Exit codes: 0 = success, 1 = error, 2 = usage.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/heartmarshall/memorial-backend/internal/app"
)

func main() {
	actor := flag.String("actor", "", "id of the admin performing the requeue")
	ids := flag.String("ids", "", "comma-separated notification ids")
	channel := flag.String("channel", "", "only requeue failures of this channel")
	limit := flag.Int("limit", 100, "max notifications to select when --ids is empty")
	flag.Parse()

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("load .env: %v", err)
	}

	opts := app.RequeueOptions{Channel: *channel, Limit: *limit}

	var err error
	if opts.ActorID, err = uuid.Parse(*actor); err != nil {
		fmt.Fprintln(os.Stderr, "Usage: requeue-failed --actor=<admin uuid> [--ids=...] [--channel=...] [--limit=N]")
		os.Exit(2)
	}
	if opts.IDs, err = parseIDs(*ids); err != nil {
		fmt.Fprintf(os.Stderr, "invalid --ids: %v\n", err)
		os.Exit(2)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	requeued, err := app.RunRequeueFailed(ctx, opts)
	if err != nil {
		log.Printf("requeue failed notifications: %v", err)
		os.Exit(1)
	}

	fmt.Printf("Requeued %d notification(s).\n", len(requeued))
	for _, id := range requeued {
		fmt.Println(id)
	}
}

func parseIDs(raw string) ([]uuid.UUID, error) {
	var out []uuid.UUID
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := uuid.Parse(part)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", part, err)
		}
		out = append(out, id)
	}
	return out, nil
}
