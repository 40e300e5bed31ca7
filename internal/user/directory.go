package user

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"liveroom/backend/internal/errs"
	"liveroom/backend/pkg/jwt"
)

// Directory issues tokens and resolves them to profiles.
type Directory struct {
	store  Store
	issuer *jwt.Issuer
	cache  *Cache
	logger *zap.Logger
}

// NewDirectory creates a Directory. cache may be nil.
func NewDirectory(store Store, issuer *jwt.Issuer, cache *Cache, logger *zap.Logger) *Directory {
	return &Directory{store: store, issuer: issuer, cache: cache, logger: logger}
}

// CreateUser stores a new profile and returns its freshly minted token.
func (d *Directory) CreateUser(ctx context.Context, name string, leaderCardID int64) (string, error) {
	token, err := d.issuer.GenerateToken()
	if err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}

	id, err := d.store.CreateUser(ctx, name, leaderCardID, Digest(token))
	if err != nil {
		return "", fmt.Errorf("create user: %w", err)
	}

	d.logger.Info("user created", zap.Int64("user_id", id))
	return token, nil
}

// UserByToken resolves token to its owner. Unknown or malformed tokens yield
// errs.ErrNotFound, which callers treat as an authentication failure.
func (d *Directory) UserByToken(ctx context.Context, token string) (*User, error) {
	if err := d.issuer.Verify(token); err != nil {
		return nil, fmt.Errorf("resolve token: %w", errs.ErrNotFound)
	}

	digest := Digest(token)
	var gen int64
	cacheable := false
	if d.cache != nil {
		if u := d.cache.Get(ctx, digest); u != nil {
			return u, nil
		}
		// Read before the store so an update racing with us is detected
		gen, cacheable = d.cache.Generation(ctx, digest)
	}

	u, err := d.store.UserByTokenDigest(ctx, digest)
	if err != nil {
		return nil, fmt.Errorf("resolve token: %w", err)
	}

	if cacheable {
		d.cache.Set(ctx, digest, u, gen)
	}
	return u, nil
}

// UpdateUser changes the profile of the token's owner and nobody else.
func (d *Directory) UpdateUser(ctx context.Context, token, name string, leaderCardID int64) error {
	if err := d.issuer.Verify(token); err != nil {
		return fmt.Errorf("update user: %w", errs.ErrNotFound)
	}

	digest := Digest(token)
	if err := d.store.UpdateUser(ctx, digest, name, leaderCardID); err != nil {
		return fmt.Errorf("update user: %w", err)
	}

	if d.cache != nil {
		d.cache.Invalidate(ctx, digest)
	}
	return nil
}

// Profiles returns the profiles of ids. Missing ids are absent from the map.
func (d *Directory) Profiles(ctx context.Context, ids []int64) (map[int64]User, error) {
	if len(ids) == 0 {
		return map[int64]User{}, nil
	}
	users, err := d.store.UsersByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("load profiles: %w", err)
	}
	return users, nil
}

// Authenticate is UserByToken with the not-found case reported as
// errs.ErrNotAuthenticated.
func (d *Directory) Authenticate(ctx context.Context, token string) (*User, error) {
	u, err := d.UserByToken(ctx, token)
	if errors.Is(err, errs.ErrNotFound) {
		return nil, errs.ErrNotAuthenticated
	}
	return u, err
}
