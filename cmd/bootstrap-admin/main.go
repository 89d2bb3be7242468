// Command bootstrap-admin grants the superadmin role to a user. It is used
// to create the first admin, who can then assign roles through the API.
// The user row is created when missing.
//
// Usage:
//
//	bootstrap-admin --user-id=<uuid> --name="Jane Doe" [--email=jane@example.com]
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/heartmarshall/memorial-backend/internal/app"
)

func main() {
	userID := flag.String("user-id", "", "identity provider subject of the user")
	name := flag.String("name", "", "display name used when the user is created")
	email := flag.String("email", "", "email used when the user is created")
	flag.Parse()

	id, err := uuid.Parse(*userID)
	if err != nil || *name == "" {
		fmt.Fprintln(os.Stderr, `Usage: bootstrap-admin --user-id=<uuid> --name="Jane Doe" [--email=jane@example.com]`)
		os.Exit(2)
	}

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("load .env: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	u, err := app.RunBootstrapAdmin(ctx, app.BootstrapAdminOptions{
		UserID:      id,
		DisplayName: *name,
		Email:       *email,
	})
	if err != nil {
		log.Printf("bootstrap admin: %v", err)
		os.Exit(1)
	}

	fmt.Printf("User %s (%s) is %s.\n", u.ID, u.DisplayName, u.Role)
}
