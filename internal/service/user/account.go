package user

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/heartmarshall/memorial-backend/internal/domain"
	"github.com/heartmarshall/memorial-backend/pkg/ctxutil"
)

// Provision creates or refreshes the caller's account from the identity
// token. New accounts always start with role user; the role claim of the
// token is never trusted for this.
func (s *Service) Provision(ctx context.Context, input ProvisionInput) (*domain.User, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	user, err := s.users.Upsert(ctx, &domain.User{
		ID:          userID,
		Role:        domain.RoleUser,
		DisplayName: strings.TrimSpace(input.DisplayName),
		Email:       trimOrNil(input.Email),
		CreatedAt:   time.Now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("user.Provision: %w", err)
	}
	if user.IsDeleted() {
		return nil, domain.ErrUnauthorized
	}

	s.log.InfoContext(ctx, "user provisioned", slog.String("user_id", userID.String()))

	return user, nil
}

// Me returns the authenticated user's account.
func (s *Service) Me(ctx context.Context) (*domain.User, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("user.Me: %w", err)
	}
	if user.IsDeleted() {
		return nil, fmt.Errorf("user.Me: %w", domain.ErrNotFound)
	}

	return user, nil
}

// UpdateChannels replaces the caller's notification preferences.
func (s *Service) UpdateChannels(ctx context.Context, input UpdateChannelsInput) (*domain.User, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.UpdateChannels(ctx, userID, domain.ChannelSettings{
		Email:           trimOrNil(input.Email),
		EmailEnabled:    input.EmailEnabled,
		TelegramChatID:  input.TelegramChatID,
		TelegramEnabled: input.TelegramEnabled,
	}, time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("user.UpdateChannels: %w", err)
	}

	s.log.InfoContext(ctx, "notification channels updated",
		slog.String("user_id", userID.String()),
		slog.Bool("email", input.EmailEnabled),
		slog.Bool("telegram", input.TelegramEnabled),
	)

	return user, nil
}
