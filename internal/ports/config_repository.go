package ports

import (
	"context"

	"github.com/bnema/merchant-cli/internal/config"
)

type ConfigRepository interface {
	Load(ctx context.Context) (config.Config, error)
	Save(ctx context.Context, cfg config.Config) error
	// Set validates and persists a single dotted key.
	Set(ctx context.Context, key, value string) error
	Path() string
}
