package cmd

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/bnema/merchant-cli/internal/adapters/backend/rest"
	"github.com/bnema/merchant-cli/internal/adapters/httpx"
	tomlrepo "github.com/bnema/merchant-cli/internal/adapters/repo/toml"
	filestore "github.com/bnema/merchant-cli/internal/adapters/secrets/file"
	"github.com/bnema/merchant-cli/internal/application"
	"github.com/bnema/merchant-cli/internal/config"
	"github.com/bnema/merchant-cli/internal/logging"
	"github.com/bnema/merchant-cli/internal/ports"
	"github.com/charmbracelet/log"
	"github.com/spf13/viper"
)

type app struct {
	cfg         config.Config
	configRepo  ports.ConfigRepository
	secretStore ports.SecretStore
	logger      *log.Logger
	httpClient  *http.Client
	now         func() time.Time
}

func wireApp(configPath string, debug bool, logOutput io.Writer) (*app, error) {
	if configPath == "" {
		defaultPath, err := config.DefaultPath()
		if err != nil {
			return nil, err
		}
		configPath = defaultPath
	}

	cfg, err := config.Load(viper.New(), configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	repo, err := tomlrepo.NewRepository(configPath)
	if err != nil {
		return nil, fmt.Errorf("wire config repository: %w", err)
	}

	level := cfg.Log.Level
	if debug {
		level = "debug"
	}
	logger, err := logging.New(logOutput, level)
	if err != nil {
		return nil, fmt.Errorf("wire logger: %w", err)
	}

	return &app{
		cfg:         cfg,
		configRepo:  repo,
		secretStore: filestore.NewStore(cfg.Secrets.Dir),
		logger:      logger,
		httpClient:  &http.Client{},
		now:         time.Now,
	}, nil
}

func (a *app) credentials() application.Credentials {
	return application.NewCredentials(a.secretStore)
}

// service builds the backend-facing service. It is only needed by commands
// that reach the backend, so config problems surface there and not on
// `config set`.
func (a *app) service() (*application.Service, error) {
	if err := a.cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w; set it with `merchant config set %s <url>` or MERCHANT_API_BASE_URI", err, config.KeyBaseURI)
	}

	fetcher := httpx.New(httpx.Options{
		Timeout:    a.cfg.API.Timeout,
		UserAgent:  a.cfg.API.UserAgent,
		HTTPClient: a.httpClient,
		Logger:     a.logger,
	})

	backend, err := rest.NewClient(a.cfg.API.BaseURI, fetcher)
	if err != nil {
		return nil, fmt.Errorf("wire backend client: %w", err)
	}

	return application.NewService(backend, a.credentials(), a.logger), nil
}
