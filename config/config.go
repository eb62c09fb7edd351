// Package config loads the settings of the nprofile tool from the environment
// and from a .env file in the user's configuration directory.
package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"go-simpler.org/env"

	"nprofile.mleku.dev/chk"
	"nprofile.mleku.dev/config/keyvalue"
	envfile "nprofile.mleku.dev/env"
	"nprofile.mleku.dev/errorf"
)

// C is the configuration. The environment overrides values from the .env file.
type C struct {
	AppName   string   `env:"APP_NAME" default:"nprofile" usage:"name used for the configuration directory"`
	ConfigDir string   `env:"CONFIG_DIR" usage:"directory holding the .env file (default $XDG_CONFIG_HOME/APP_NAME)"`
	LogLevel  string   `env:"LOG_LEVEL" default:"info" usage:"log level: off fatal error warn info debug trace"`
	Listen    string   `env:"LISTEN" default:"127.0.0.1" usage:"address the HTTP API listens on"`
	Port      int      `env:"PORT" default:"3335" usage:"port the HTTP API listens on"`
	APIPath   string   `env:"API_PATH" default:"/api" usage:"path prefix of the HTTP API"`
	URI       bool     `env:"URI" default:"false" usage:"print encoded profiles as nostr: URIs"`
	Relays    []string `env:"RELAYS" usage:"comma separated relays added when encoding a profile given none"`
}

const sliceSep = ","

// New loads the configuration from the environment, then again from the .env
// file if there is one, with the environment taking precedence.
func New() (cfg *C, err error) {
	cfg = &C{}
	if err = env.Load(cfg, &env.Options{SliceSep: sliceSep}); chk.E(err) {
		return
	}
	if cfg.ConfigDir == "" {
		cfg.ConfigDir = filepath.Join(xdg.ConfigHome, cfg.AppName)
	}
	path := cfg.EnvPath()
	if _, err = os.Stat(path); err != nil {
		// no file, the environment is all there is.
		return cfg, cfg.validate()
	}
	var e envfile.Env
	if e, err = envfile.GetEnv(path); chk.E(err) {
		return
	}
	dir := cfg.ConfigDir
	if err = env.Load(cfg, &env.Options{Source: envfile.OSFirst(e),
		SliceSep: sliceSep}); chk.E(err) {
		return
	}
	if cfg.ConfigDir == "" {
		cfg.ConfigDir = dir
	}
	err = cfg.validate()
	return
}

func (cfg *C) validate() (err error) {
	if cfg.Port < 1 || cfg.Port > 65535 {
		return errorf.E("PORT %d is not a valid port", cfg.Port)
	}
	return
}

// EnvPath is where the .env file is read from.
func (cfg *C) EnvPath() string { return filepath.Join(cfg.ConfigDir, ".env") }

// PrintEnv writes the configuration in .env format.
func PrintEnv(cfg *C, printer io.Writer) { keyvalue.PrintEnv(cfg, printer) }

// PrintHelp writes the list of environment variables and their defaults.
func PrintHelp(cfg *C, printer io.Writer) {
	_, _ = fmt.Fprintf(printer,
		"Environment variables that configure %s:\n\n", cfg.AppName)
	env.Usage(cfg, printer, &env.Options{SliceSep: sliceSep})
	_, _ = fmt.Fprintf(printer,
		"\n.env file found at %s is loaded automatically, the environment "+
			"overrides it.\n\nsave the current configuration with\n\n\t%s env >%s\n\n",
		cfg.EnvPath(), filepath.Base(os.Args[0]), cfg.EnvPath())
}
