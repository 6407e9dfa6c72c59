package main

import (
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/mauv0809/tennis-directory/internal/config"
)

// seederConfig is the subset of the server config the seeder needs.
type seederConfig struct {
	DBName         string `koanf:"db_name"`
	RosterFile     string `koanf:"roster_file"`
	TursoURL       string `koanf:"turso_primary_url"`
	TursoAuthToken string `koanf:"turso_auth_token"`
	DryRun         bool   `koanf:"dry_run"`
}

// loadConfig layers, lowest first: the server's environment config, an
// optional YAML file named by SEEDER_CONFIG, then SEEDER_* variables.
func loadConfig() (seederConfig, error) {
	base := config.Load()
	cfg := seederConfig{
		DBName:         base.DBName,
		RosterFile:     base.RosterFile,
		TursoURL:       base.Turso.PrimaryURL,
		TursoAuthToken: base.Turso.AuthToken,
	}

	k := koanf.New(".")
	if path := os.Getenv("SEEDER_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return seederConfig{}, err
		}
	}

	// SEEDER_ROSTER_FILE -> roster_file
	envProvider := env.Provider("SEEDER_", ".", func(s string) string {
		return strings.TrimPrefix(strings.ToLower(s), "seeder_")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return seederConfig{}, err
	}

	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return seederConfig{}, err
	}
	return cfg, nil
}
