package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	storycmd "github.com/storyforge/storyserver/internal/cmd/storyserver"
	"github.com/storyforge/storyserver/internal/platform/config"
)

// main starts the StoryServer MCP server on stdio or HTTP.
func main() {
	cfg, err := storycmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("parse flags: %v", err)
	}
	log.SetPrefix("[storyserver] ")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := storycmd.Run(ctx, cfg); err != nil {
		log.Fatalf("failed to serve StoryServer: %v", err)
	}
}
