package actiontoken

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrExpired     = errors.New("action token expired")
	ErrAlreadyUsed = errors.New("action token already used")
)

// Token is a one-time capability to cancel or reschedule a single booking.
// Only the SHA-256 hash is ever persisted; the plaintext exists once, in the
// confirmation notification sent to the customer.
type Token struct {
	id        uuid.UUID
	bookingID uuid.UUID
	hash      string
	expiresAt time.Time
	usedAt    *time.Time
}

// Issue generates a fresh token, returning the entity and the plaintext.
func Issue(bookingID uuid.UUID, now time.Time, ttl time.Duration) (*Token, string, error) {
	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return nil, "", err
	}
	plaintext := hex.EncodeToString(raw)

	return &Token{
		id:        uuid.New(),
		bookingID: bookingID,
		hash:      Hash(plaintext),
		expiresAt: now.Add(ttl),
	}, plaintext, nil
}

func Reconstruct(id, bookingID uuid.UUID, hash string, expiresAt time.Time, usedAt *time.Time) *Token {
	return &Token{
		id:        id,
		bookingID: bookingID,
		hash:      hash,
		expiresAt: expiresAt,
		usedAt:    usedAt,
	}
}

func Hash(plaintext string) string {
	sum := sha256.Sum256([]byte(plaintext))
	return hex.EncodeToString(sum[:])
}

func (t *Token) ID() uuid.UUID        { return t.id }
func (t *Token) BookingID() uuid.UUID { return t.bookingID }
func (t *Token) HashValue() string    { return t.hash }
func (t *Token) ExpiresAt() time.Time { return t.expiresAt }
func (t *Token) UsedAt() *time.Time   { return t.usedAt }

func (t *Token) Matches(plaintext string) bool {
	return subtle.ConstantTimeCompare([]byte(t.hash), []byte(Hash(plaintext))) == 1
}

// Consume marks the token used. A replayed token fails here regardless of
// its expiry.
func (t *Token) Consume(now time.Time) error {
	if t.usedAt != nil {
		return ErrAlreadyUsed
	}
	if now.After(t.expiresAt) {
		return ErrExpired
	}
	used := now
	t.usedAt = &used
	return nil
}

// Validate checks usability without consuming, for the lookup endpoint.
func (t *Token) Validate(now time.Time) error {
	if t.usedAt != nil {
		return ErrAlreadyUsed
	}
	if now.After(t.expiresAt) {
		return ErrExpired
	}
	return nil
}
