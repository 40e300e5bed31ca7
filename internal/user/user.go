package user

import (
	"context"
	"encoding/hex"

	"golang.org/x/crypto/blake2b"
)

// User is a player profile. It never carries the token.
type User struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	LeaderCardID int64  `json:"leader_card_id"`
}

// Store persists profiles keyed by the digest of their token.
type Store interface {
	CreateUser(ctx context.Context, name string, leaderCardID int64, tokenDigest string) (int64, error)
	UserByTokenDigest(ctx context.Context, tokenDigest string) (*User, error)
	UpdateUser(ctx context.Context, tokenDigest, name string, leaderCardID int64) error
	UsersByIDs(ctx context.Context, ids []int64) (map[int64]User, error)
}

// Digest is the at-rest form of a token. Only the digest is stored and used
// as a cache key, so a leaked table or cache does not leak credentials.
func Digest(token string) string {
	sum := blake2b.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
