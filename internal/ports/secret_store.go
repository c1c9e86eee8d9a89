package ports

import "context"

// SecretStore implementations return an error wrapping domain.ErrSecretNotFound
// from Get when the key has no value.
type SecretStore interface {
	Get(ctx context.Context, key string) (string, error)
	Put(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
}
