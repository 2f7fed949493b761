package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	log "github.com/sirupsen/logrus"
)

type Application struct {
	// Command is the agenda tool to run, as a shell-quoted string; flags
	// baked into it become base arguments on every invocation.
	Command string `koanf:"command"`

	// Timezone is an IANA zone overriding the process-local one. Empty
	// means local.
	Timezone string `koanf:"timezone"`

	// Fallback is the placeholder line printed when no event could be
	// produced.
	Fallback string `koanf:"fallback"`

	// Diagnostics switches the fallback from the placeholder to the error
	// text, so the bar shows what went wrong.
	Diagnostics bool `koanf:"diagnostics"`

	// Color is the markup color for imminent events.
	Color string `koanf:"color"`
}

// DefaultPath resolves the config file location: BARCAL_CONFIG if set,
// otherwise ~/.config/barcal/config.yaml.
func DefaultPath() string {
	if path := os.Getenv("BARCAL_CONFIG"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "barcal", "config.yaml")
}

// Load layers configuration: struct defaults, then the optional YAML file,
// then BARCAL_-prefixed environment variables. A missing file is not an
// error; the tool must keep printing with zero setup.
func Load(path string) (Application, error) {
	var k = koanf.New(".")

	err := k.Load(structs.Provider(Application{
		Command:  "gcalcli",
		Fallback: "--",
		Color:    "#FF0000",
	}, "koanf"), nil)
	if err != nil {
		log.Errorf("error loading config from structs: %v", err)
		return Application{}, err
	}

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			if os.IsNotExist(err) {
				log.Debugf("Config file not found at %s, using defaults and environment variables", path)
			} else {
				log.Errorf("error loading config from YAML: %v", err)
				return Application{}, err
			}
		} else {
			log.Debugf("Loaded configuration from file: %s", path)
		}
	}

	err = k.Load(env.Provider(".", env.Opt{
		Prefix: "BARCAL_",
		TransformFunc: func(k, v string) (string, any) {
			return strings.ToLower(strings.TrimPrefix(k, "BARCAL_")), v
		},
	}), nil)
	if err != nil {
		log.Errorf("error loading config from envs: %v", err)
		return Application{}, err
	}

	var app Application
	if err := k.Unmarshal("", &app); err != nil {
		return Application{}, err
	}

	return app, nil
}
