// seed-admin creates or updates the dashboard admin user.
//
// Usage (from backend directory):
//   DB_USER=... DB_PASSWORD=... DB_HOST=... DB_PORT=... DB_NAME=... go run ./cmd/seed-admin
//
// Override the defaults with ADMIN_USERNAME / ADMIN_PASSWORD / ADMIN_NAME.
package main

import (
	"context"
	"fmt"
	"os"

	"bitbucket.org/kuhldata/merchdash_backend/config"
	"bitbucket.org/kuhldata/merchdash_backend/models"
	"bitbucket.org/kuhldata/merchdash_backend/utils"
)

const (
	defaultAdminUsername = "merchAdmin"
	defaultAdminPassword = "M3rch@dmin"
	defaultAdminName     = "MerchDash Admin"
)

func envOr(key string, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func main() {
	ctx := context.Background()
	config.ConnectDatabaseWithRetry()
	db := config.GetDB()
	if db == nil {
		fmt.Fprintln(os.Stderr, "database not initialized (config.GetDB returned nil). Set DB_* env vars.")
		os.Exit(1)
	}
	models.MigrateTable()

	username := envOr("ADMIN_USERNAME", defaultAdminUsername)
	password := envOr("ADMIN_PASSWORD", defaultAdminPassword)
	name := envOr("ADMIN_NAME", defaultAdminName)

	ctx = utils.SetUserNameInContext(ctx, "Seed")
	ctx = utils.SetUsernameInContext(ctx, username)
	ctx = utils.SetIsAdminInContext(ctx, true)

	user, err := models.UpsertUser(ctx, username, name, password, models.RoleAdmin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to seed admin user: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("admin user %q ready (id=%d)\n", user.Username, user.ID)
}
