package utils

import "github.com/google/uuid"

// IdempotencyKeys produces Idempotency-Key header values, so a retried
// status post is created only once by the instance.
type IdempotencyKeys struct {
	newV7 func() (uuid.UUID, error)
}

func NewIdempotencyKeys() *IdempotencyKeys {
	return &IdempotencyKeys{newV7: uuid.NewV7}
}

// Generate returns a time-ordered UUIDv7, or a random v4 when the clock
// source fails.
func (k *IdempotencyKeys) Generate() string {
	key, err := k.newV7()
	if err != nil {
		return uuid.NewString()
	}

	return key.String()
}
