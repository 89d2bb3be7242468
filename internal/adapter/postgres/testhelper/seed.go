package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/memorial-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// UserOption customizes a seeded user.
type UserOption func(*domain.User)

// WithRole sets the global role of a seeded user.
func WithRole(role domain.Role) UserOption {
	return func(u *domain.User) { u.Role = role }
}

// WithEmail opts the seeded user into email notifications.
func WithEmail() UserOption {
	return func(u *domain.User) {
		email := "notify-" + uniqueSuffix() + "@example.com"
		u.Email = &email
		u.EmailEnabled = true
	}
}

// WithTelegram opts the seeded user into telegram notifications.
func WithTelegram(chatID int64) UserOption {
	return func(u *domain.User) {
		u.TelegramChatID = &chatID
		u.TelegramEnabled = true
	}
}

// Deleted marks the seeded user as soft-deleted.
func Deleted() UserOption {
	return func(u *domain.User) {
		now := time.Now().UTC().Truncate(time.Microsecond)
		u.DeletedAt = &now
	}
}

// SeedUser inserts a user with role "user" and no channel opt-ins unless
// options say otherwise.
func SeedUser(t *testing.T, pool *pgxpool.Pool, opts ...UserOption) domain.User {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:          uuid.New(),
		Role:        domain.RoleUser,
		DisplayName: "Test User " + uniqueSuffix(),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	for _, opt := range opts {
		opt(&user)
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, role, display_name, email, email_enabled, telegram_chat_id, telegram_enabled, created_at, updated_at, deleted_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		user.ID, string(user.Role), user.DisplayName, user.Email, user.EmailEnabled,
		user.TelegramChatID, user.TelegramEnabled, user.CreatedAt, user.UpdatedAt, user.DeletedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	return user
}

// SeedProfile inserts an approved profile owned by ownerID with the given editors.
func SeedProfile(t *testing.T, pool *pgxpool.Pool, ownerID uuid.UUID, editors ...uuid.UUID) domain.Profile {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	profile := domain.Profile{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		Editors:   domain.NewEditorSet(editors...),
		CreatedAt: now,
	}

	if _, err := pool.Exec(ctx,
		`INSERT INTO profiles (id, owner_id, created_at) VALUES ($1, $2, $3)`,
		profile.ID, profile.OwnerID, profile.CreatedAt,
	); err != nil {
		t.Fatalf("testhelper: SeedProfile insert profile: %v", err)
	}

	if _, err := pool.Exec(ctx,
		`INSERT INTO content_items (id, kind, profile_id, author_id, status, payload, created_at, updated_at)
		 VALUES ($1, 'profile', $1, $2, 'approved', '{"title":"seed"}', $3, $3)`,
		profile.ID, ownerID, now,
	); err != nil {
		t.Fatalf("testhelper: SeedProfile insert profile item: %v", err)
	}

	for _, editorID := range editors {
		if _, err := pool.Exec(ctx,
			`INSERT INTO profile_editors (profile_id, user_id, added_by, added_at) VALUES ($1, $2, $3, $4)`,
			profile.ID, editorID, ownerID, now,
		); err != nil {
			t.Fatalf("testhelper: SeedProfile insert editor: %v", err)
		}
	}

	return profile
}

// SeedContentItem inserts an item of kind into profileID with the given status
// and creation time.
func SeedContentItem(t *testing.T, pool *pgxpool.Pool, profileID, authorID uuid.UUID, kind domain.ContentKind, status domain.ContentStatus, createdAt time.Time) domain.ContentItem {
	t.Helper()
	ctx := context.Background()

	createdAt = createdAt.UTC().Truncate(time.Microsecond)
	item := domain.ContentItem{
		ID:        uuid.New(),
		Kind:      kind,
		ProfileID: profileID,
		AuthorID:  authorID,
		Status:    status,
		Payload:   []byte(`{"title":"seeded ` + string(kind) + `"}`),
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}

	if _, err := pool.Exec(ctx,
		`INSERT INTO content_items (id, kind, profile_id, author_id, status, payload, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $7)`,
		item.ID, string(item.Kind), item.ProfileID, item.AuthorID, string(item.Status), item.Payload, item.CreatedAt,
	); err != nil {
		t.Fatalf("testhelper: SeedContentItem insert: %v", err)
	}

	return item
}
