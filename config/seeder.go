package config

import (
	"context"
	"errors"
	"time"

	"storefront/internal/logging"
	"storefront/internal/shop"
	"storefront/internal/store"

	"github.com/google/uuid"
)

var demoUsers = []shop.Registration{
	{
		FullName:        "User One",
		Email:           "user1@example.com",
		Phone:           "081200000001",
		Password:        "password123",
		ConfirmPassword: "password123",
	},
	{
		FullName:        "User Two",
		Email:           "user2@example.com",
		Phone:           "081200000002",
		Password:        "password123",
		ConfirmPassword: "password123",
	},
}

// SeedUsers adds the demo accounts that are not registered yet.
func SeedUsers(ctx context.Context, st store.Store, now time.Time) error {
	log := logging.Component("seed")
	log.Info().Msg("🌱 Seeding users...")

	var directory shop.Directory
	if _, err := store.Load(ctx, st, store.KeyUsers, &directory); err != nil {
		return err
	}

	added := 0
	for _, r := range demoUsers {
		next, account, err := shop.Register(directory, r, uuid.NewString(), now)
		if errors.Is(err, shop.ErrEmailTaken) {
			log.Info().Str("email", r.Email).Msg("User already exists")
			continue
		}
		if err != nil {
			log.Error().Err(err).Str("email", r.Email).Msg("Failed to seed user")
			continue
		}
		directory = next
		added++
		log.Info().Str("email", account.Email).Str("id", account.ID).Msg("User seeded")
	}

	if added > 0 {
		if err := store.Save(ctx, st, store.KeyUsers, directory); err != nil {
			return err
		}
	}
	log.Info().Int("added", added).Msg("✅ Seeding complete.")
	return nil
}
