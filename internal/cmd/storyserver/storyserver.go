// Package storyserver parses StoryServer command flags and wires the MCP
// server's dependencies.
package storyserver

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/storyforge/storyserver/internal/character"
	"github.com/storyforge/storyserver/internal/platform/config"
	"github.com/storyforge/storyserver/internal/platform/otel"
	"github.com/storyforge/storyserver/internal/services/storyserver/service"
	"github.com/storyforge/storyserver/internal/storage/sqlite"
	"github.com/storyforge/storyserver/internal/story"
	"github.com/storyforge/storyserver/internal/telemetry"
)

// Config holds StoryServer command configuration.
type Config struct {
	HTTPAddr       string `env:"STORY_SERVER_HTTP_ADDR"       envDefault:"localhost:8082"`
	Transport      string `env:"STORY_SERVER_TRANSPORT"       envDefault:"http"`
	StoryDir       string `env:"STORY_SERVER_STORY_DIR"       envDefault:"stories"`
	CharactersFile string `env:"STORY_SERVER_CHARACTERS_FILE"`
	AuditDB        string `env:"STORY_SERVER_AUDIT_DB"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP server address (for HTTP transport)")
	fs.StringVar(&cfg.Transport, "transport", cfg.Transport, "Transport type: stdio or http")
	fs.StringVar(&cfg.StoryDir, "story-dir", cfg.StoryDir, "directory where stories are written")
	fs.StringVar(&cfg.CharactersFile, "characters-file", cfg.CharactersFile, "optional YAML file replacing the built-in cast")
	fs.StringVar(&cfg.AuditDB, "audit-db", cfg.AuditDB, "optional SQLite path for tool audit events")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run wires the StoryServer dependencies and serves MCP until ctx ends.
func Run(ctx context.Context, cfg Config) error {
	shutdown, err := otel.Setup(ctx, "storyserver")
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			log.Printf("otel shutdown: %v", err)
		}
	}()

	registry := character.BuiltIn()
	if cfg.CharactersFile != "" {
		registry, err = character.Load(cfg.CharactersFile)
		if err != nil {
			return err
		}
	}

	stories, err := story.NewRepository(cfg.StoryDir)
	if err != nil {
		return err
	}

	var auditStore telemetry.Store
	if cfg.AuditDB != "" {
		store, err := sqlite.Open(cfg.AuditDB)
		if err != nil {
			return err
		}
		defer func() {
			if err := store.Close(); err != nil {
				log.Printf("close audit store: %v", err)
			}
		}()
		auditStore = store
	}

	return service.Run(ctx, service.Config{
		Transport: service.TransportKind(cfg.Transport),
		HTTPAddr:  cfg.HTTPAddr,
	}, service.Deps{
		Characters: registry,
		Stories:    stories,
		Audit:      telemetry.NewEmitter(auditStore),
	})
}
