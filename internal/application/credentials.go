package application

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/bnema/merchant-cli/internal/domain"
	"github.com/bnema/merchant-cli/internal/ports"
)

// TokenSecretKey is where the backend bearer token lives in the secret store.
const TokenSecretKey = "backend/token"

var ErrEmptyToken = errors.New("token is empty")

type Credentials struct {
	store ports.SecretStore
}

func NewCredentials(store ports.SecretStore) Credentials {
	return Credentials{store: store}
}

func (c Credentials) SetToken(ctx context.Context, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return ErrEmptyToken
	}

	if err := c.store.Put(ctx, TokenSecretKey, token); err != nil {
		return fmt.Errorf("store backend token: %w", err)
	}

	return nil
}

func (c Credentials) ClearToken(ctx context.Context) error {
	if err := c.store.Delete(ctx, TokenSecretKey); err != nil {
		return fmt.Errorf("delete backend token: %w", err)
	}

	return nil
}

// Headers returns a copy of extra with the stored bearer token added. An
// Authorization header supplied by the caller is kept as is.
func (c Credentials) Headers(ctx context.Context, extra http.Header) (http.Header, error) {
	headers := extra.Clone()
	if headers == nil {
		headers = http.Header{}
	}

	if c.store == nil || headers.Get("Authorization") != "" {
		return headers, nil
	}

	token, err := c.store.Get(ctx, TokenSecretKey)
	if err != nil {
		if errors.Is(err, domain.ErrSecretNotFound) {
			return headers, nil
		}
		return nil, fmt.Errorf("load backend token: %w", err)
	}

	if token = strings.TrimSpace(token); token != "" {
		headers.Set("Authorization", "Bearer "+token)
	}

	return headers, nil
}
