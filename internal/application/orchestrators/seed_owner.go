package orchestrators

import (
	"context"
	"errors"
	"log/slog"

	"lifeboard/internal/domain/account"
	"lifeboard/internal/domain/timestamp"
)

// AccountStoreForSeed defines the store interface needed by SeedOwner.
type AccountStoreForSeed interface {
	Count(ctx context.Context) (int, error)
	Save(ctx context.Context, a account.Account) error
}

// SeedOwnerInput carries the owner credentials to seed.
type SeedOwnerInput struct {
	Email    string
	Password string
}

// SeedOwnerDeps holds dependencies for SeedOwner.
type SeedOwnerDeps struct {
	AccountStore AccountStoreForSeed
	GenerateID   func() string
}

var ErrSeedIncomplete = errors.New("owner email and password are both required to seed")

// ExecuteSeedOwner creates the owner account on first startup. It is a no-op
// when any account already exists, so restarts never clobber credentials.
// PRE: GenerateID is non-nil
// POST: Exactly one owner account exists, or the store is left untouched
func ExecuteSeedOwner(ctx context.Context, input SeedOwnerInput, deps SeedOwnerDeps) error {
	n, err := deps.AccountStore.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	if input.Email == "" || input.Password == "" {
		return ErrSeedIncomplete
	}

	acct := account.Account{
		ID:        deps.GenerateID(),
		Email:     input.Email,
		Role:      account.RoleOwner,
		CreatedAt: timestamp.Now(),
	}
	if err := acct.Validate(); err != nil {
		return err
	}
	if err := acct.SetPassword(input.Password); err != nil {
		return err
	}
	if err := deps.AccountStore.Save(ctx, acct); err != nil {
		return err
	}

	slog.Info("seed_owner", "email", acct.Email)
	return nil
}
