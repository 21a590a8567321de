package cmd

import (
	"fmt"
	"net/http"

	"github.com/abhisek/learnlab/internal/catalog"
	"github.com/abhisek/learnlab/internal/config"
	"github.com/abhisek/learnlab/internal/logging"
	"github.com/abhisek/learnlab/internal/profileapi"
	"github.com/spf13/cobra"
)

// deps are the collaborators a command needs, built from config.
type deps struct {
	cfg config.Config
	log *logging.Logger
}

// setup loads config and builds the logger. Callers must defer d.log.Sync().
func setup(cmd *cobra.Command) (*deps, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if lvl, _ := cmd.Flags().GetString("log-level"); lvl != "" {
		cfg.Log.Level = lvl
	}

	log, err := logging.New(logging.Options{
		Level:   cfg.Log.Level,
		File:    cfg.Log.File,
		Console: cmd.ErrOrStderr(),
	})
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	log = log.With("command", cmd.Name())
	log.Debug("config loaded", "config_file", path, "api", cfg.API.BaseURL)

	return &deps{cfg: cfg, log: log}, nil
}

// catalog returns the configured catalog, or the built-in one.
func (d *deps) catalog() (*catalog.Catalog, error) {
	if d.cfg.Catalog.Path == "" {
		return catalog.Default()
	}
	d.log.Debug("loading catalog", "path", d.cfg.Catalog.Path)
	return catalog.LoadFile(d.cfg.Catalog.Path)
}

// profiles returns a profile client and the configured credentials.
func (d *deps) profiles() (*profileapi.Client, profileapi.Credentials) {
	client := profileapi.New(
		profileapi.WithBaseURL(d.cfg.API.BaseURL),
		profileapi.WithHTTPClient(&http.Client{
			Transport: userAgent{base: http.DefaultTransport, agent: "learnlab/" + version},
		}),
		profileapi.WithTimeout(d.cfg.API.Timeout),
		profileapi.WithLogger(d.log),
	)
	return client, profileapi.Credentials{Token: d.cfg.API.Token}
}

// userAgent stamps every request with the CLI's name and version.
type userAgent struct {
	base  http.RoundTripper
	agent string
}

func (u userAgent) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	req.Header.Set("User-Agent", u.agent)
	return u.base.RoundTrip(req)
}
