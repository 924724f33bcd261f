package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net"
	"net/url"
	"os"
	"sort"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/hlop3z/modelgen/internal/alerr"
	"github.com/hlop3z/modelgen/internal/ast"
	"github.com/hlop3z/modelgen/internal/dialect"
	"github.com/hlop3z/modelgen/internal/generator"
	"github.com/hlop3z/modelgen/pkg/modelgen"
)

// Config represents the modelgen.yaml configuration file.
type Config struct {
	DatabaseURL    string                     `yaml:"database_url"`
	Dialect        string                     `yaml:"dialect"`
	Schema         string                     `yaml:"schema"`
	Path           string                     `yaml:"path"`
	Namespace      string                     `yaml:"namespace"`
	Relationships  bool                       `yaml:"relationships"`
	Force          bool                       `yaml:"force"`
	ExtraRelations map[string][]ExtraRelation `yaml:"extra_relations"`
}

// ExtraRelation is a relation declared by hand for one table.
type ExtraRelation struct {
	Kind       string `yaml:"kind"`
	Method     string `yaml:"method"`
	Related    string `yaml:"related"`
	ForeignKey string `yaml:"foreign_key"`
	LocalKey   string `yaml:"local_key"`
	Pivot      string `yaml:"pivot"`
	RelatedKey string `yaml:"related_key"`
}

// loadConfig loads configuration from the Laravel .env, the config file,
// env vars and CLI flags.
// Precedence: CLI flags > env vars > config file > .env > defaults
func loadConfig(flags *pflag.FlagSet) (*Config, error) {
	cfg := &Config{
		Path:      generator.DefaultOutputDir,
		Namespace: generator.DefaultNamespace,
	}

	// Laravel .env, never exported into the process environment
	env, err := godotenv.Read(envFile)
	switch {
	case err == nil:
		cfg.DatabaseURL, cfg.Dialect = laravelDatabaseURL(env)
	case errors.Is(err, fs.ErrNotExist) && !flags.Changed("env-file"):
	default:
		return nil, alerr.Wrap(alerr.ErrConfigInvalid, err, "failed to read env file").WithPath(envFile)
	}

	// Config file
	if data, err := os.ReadFile(configFile); err == nil {
		file := Config{}
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, alerr.Wrap(alerr.ErrConfigInvalid, err, "failed to parse config file").WithPath(configFile)
		}
		mergeFileConfig(cfg, &file)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, alerr.Wrap(alerr.ErrConfigInvalid, err, "failed to read config file").WithPath(configFile)
	} else if flags.Changed("config") {
		return nil, alerr.New(alerr.ErrConfigNotFound, "config file not found").WithPath(configFile)
	}

	// Env vars; a URL from a later layer drops the .env dialect.
	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.DatabaseURL, cfg.Dialect = v, ""
	}
	if v := os.Getenv("MODELGEN_PATH"); v != "" {
		cfg.Path = v
	}
	if v := os.Getenv("MODELGEN_NAMESPACE"); v != "" {
		cfg.Namespace = v
	}

	// CLI flags (highest priority)
	if databaseURL != "" {
		cfg.DatabaseURL, cfg.Dialect = databaseURL, ""
	}
	if dialectName != "" {
		cfg.Dialect = dialectName
	}
	if v, ok := changedString(flags, "path"); ok {
		cfg.Path = v
	}
	if v, ok := changedString(flags, "namespace"); ok {
		cfg.Namespace = v
	}
	if v, ok := changedBool(flags, "relationships"); ok {
		cfg.Relationships = v
	}
	if v, ok := changedBool(flags, "force"); ok {
		cfg.Force = v
	}

	return cfg, nil
}

func mergeFileConfig(cfg, file *Config) {
	// Handle env var interpolation in database_url
	if u := expandEnvVars(file.DatabaseURL); u != "" {
		cfg.DatabaseURL = u
		cfg.Dialect = ""
	}
	if file.Dialect != "" {
		cfg.Dialect = file.Dialect
	}
	if file.Schema != "" {
		cfg.Schema = file.Schema
	}
	if file.Path != "" {
		cfg.Path = expandEnvVars(file.Path)
	}
	if file.Namespace != "" {
		cfg.Namespace = file.Namespace
	}
	cfg.Relationships = file.Relationships
	cfg.Force = file.Force
	cfg.ExtraRelations = file.ExtraRelations
}

func changedString(flags *pflag.FlagSet, name string) (string, bool) {
	if f := flags.Lookup(name); f == nil || !f.Changed {
		return "", false
	}
	v, err := flags.GetString(name)
	return v, err == nil
}

func changedBool(flags *pflag.FlagSet, name string) (bool, bool) {
	if f := flags.Lookup(name); f == nil || !f.Changed {
		return false, false
	}
	v, err := flags.GetBool(name)
	return v, err == nil
}

// expandEnvVars expands ${VAR} patterns in a string.
func expandEnvVars(s string) string {
	return os.Expand(s, os.Getenv)
}

// laravelDatabaseURL builds a connection URL from Laravel's DB_* settings.
// It returns empty strings when DB_CONNECTION is unset or unknown.
func laravelDatabaseURL(env map[string]string) (string, string) {
	conn := env["DB_CONNECTION"]
	name := dialect.Normalize(conn)

	switch name {
	case "sqlite":
		path := env["DB_DATABASE"]
		if path == "" {
			path = DefaultSQLitePath
		}
		return path, name

	case "mysql", "postgres":
		scheme, port, host := "mysql", "3306", "127.0.0.1"
		if name == "postgres" {
			scheme, port = "postgres", "5432"
		}
		if v := env["DB_HOST"]; v != "" {
			host = v
		}
		if v := env["DB_PORT"]; v != "" {
			port = v
		}

		u := url.URL{
			Scheme: scheme,
			Host:   net.JoinHostPort(host, port),
			Path:   "/" + env["DB_DATABASE"],
		}
		if user := env["DB_USERNAME"]; user != "" {
			if pass := env["DB_PASSWORD"]; pass != "" {
				u.User = url.UserPassword(user, pass)
			} else {
				u.User = url.User(user)
			}
		}
		if name == "postgres" {
			sslmode := env["DB_SSLMODE"]
			if sslmode == "" {
				sslmode = "disable"
			}
			u.RawQuery = url.Values{"sslmode": {sslmode}}.Encode()
		}
		return u.String(), name
	}

	if conn != "" {
		slog.Warn("unsupported DB_CONNECTION in env file", "connection", conn, "file", envFile)
	}
	return "", ""
}

// extraRelations converts the configured relations, validating their kinds.
func (c *Config) extraRelations() (map[string][]modelgen.RelationDef, error) {
	if len(c.ExtraRelations) == 0 {
		return nil, nil
	}

	tables := make([]string, 0, len(c.ExtraRelations))
	for table := range c.ExtraRelations {
		tables = append(tables, table)
	}
	sort.Strings(tables)

	out := make(map[string][]modelgen.RelationDef, len(tables))
	for _, table := range tables {
		for i, r := range c.ExtraRelations[table] {
			entry := fmt.Sprintf("extra_relations.%s[%d]", table, i)
			kind, err := ast.ParseRelationKind(r.Kind)
			if err != nil {
				return nil, alerr.Wrap(alerr.ErrInvalidRelation, err, "invalid relation kind").
					With("entry", entry).
					WithHelp("use belongs_to, has_many, has_one or belongs_to_many")
			}
			if r.Method == "" || r.Related == "" {
				return nil, alerr.New(alerr.ErrInvalidRelation, "method and related are required").
					With("entry", entry)
			}
			if kind == ast.BelongsToMany && r.Pivot == "" {
				return nil, alerr.New(alerr.ErrInvalidRelation, "pivot is required for belongs_to_many").
					With("entry", entry)
			}
			out[table] = append(out[table], modelgen.RelationDef{
				Kind:       kind,
				Method:     r.Method,
				Related:    r.Related,
				ForeignKey: r.ForeignKey,
				LocalKey:   r.LocalKey,
				Pivot:      r.Pivot,
				RelatedKey: r.RelatedKey,
			})
		}
	}
	return out, nil
}

// newClient creates a modelgen client from config.
func newClient(cfg *Config) (*modelgen.Client, error) {
	extras, err := cfg.extraRelations()
	if err != nil {
		return nil, err
	}

	opts := []modelgen.Option{
		modelgen.WithDatabaseURL(cfg.DatabaseURL),
		modelgen.WithSchema(cfg.Schema),
		modelgen.WithOutputDir(cfg.Path),
		modelgen.WithNamespace(cfg.Namespace),
		modelgen.WithRelationships(cfg.Relationships),
		modelgen.WithForce(cfg.Force),
		modelgen.WithExtraRelations(extras),
		modelgen.WithLogger(slog.Default()),
	}
	if cfg.Dialect != "" {
		opts = append(opts, modelgen.WithDialect(cfg.Dialect))
	}

	return modelgen.New(opts...)
}
