package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"invertdeck/backend/internal/deck"
	"invertdeck/backend/internal/domain"
)

type Config struct {
	Server    ServerConfig
	Workspace WorkspaceConfig
	Layout    deck.Geometry
	Log       LogConfig
}

type ServerConfig struct {
	Addr          string
	AllowedOrigin string
	MaxUploadMB   int64
}

// MaxUploadBytes is the request body limit for uploads.
func (s ServerConfig) MaxUploadBytes() int64 {
	return s.MaxUploadMB << 20
}

type WorkspaceConfig struct {
	Root          string
	KeepArtifacts bool
}

type LogConfig struct {
	Debug  bool
	Format string
}

func Default() Config {
	return Config{
		Server: ServerConfig{
			Addr:          ":8085",
			AllowedOrigin: "*",
			MaxUploadMB:   64,
		},
		Workspace: WorkspaceConfig{
			Root: "uploads",
		},
		Layout: deck.DefaultGeometry(),
		Log: LogConfig{
			Format: "json",
		},
	}
}

// Load reads the YAML file at path on top of the defaults. An empty path or
// a missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, invalid(path, err)
	}

	var y yamlConfig
	if err := yaml.Unmarshal(b, &y); err != nil {
		return cfg, invalid(path, err)
	}

	apply(&cfg, y)

	if err := cfg.Validate(); err != nil {
		return cfg, invalid(path, err)
	}
	return cfg, nil
}

// Validate checks values that would make the server or the layout unusable.
func (c Config) Validate() error {
	var errs []error
	if c.Server.Addr == "" {
		errs = append(errs, errors.New("server.addr is required"))
	}
	if c.Server.MaxUploadMB <= 0 {
		errs = append(errs, fmt.Errorf("server.max_upload_mb must be positive, got %d", c.Server.MaxUploadMB))
	}
	if c.Workspace.Root == "" {
		errs = append(errs, errors.New("workspace.root is required"))
	}
	if err := c.Layout.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("layout: %w", err))
	}
	switch c.Log.Format {
	case "json", "text":
	default:
		errs = append(errs, fmt.Errorf("log.format must be json or text, got %q", c.Log.Format))
	}
	return errors.Join(errs...)
}

func invalid(path string, err error) error {
	return &domain.OpError{
		Op:   "config.load",
		Kind: domain.KindInvalidConfig,
		Doc:  path,
		Err:  err,
	}
}
