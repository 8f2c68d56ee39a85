package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	// Packages
	kong "github.com/alecthomas/kong"
	anthropic "github.com/mutablelogic/go-claude/pkg/anthropic"
	transport "github.com/mutablelogic/go-claude/pkg/transport"
	client "github.com/mutablelogic/go-client"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type Globals struct {
	// Debugging
	Debug   bool `name:"debug" help:"Enable debug output"`
	Verbose bool `name:"verbose" help:"Enable verbose output"`

	// API
	APIKey   string        `name:"api-key" env:"ANTHROPIC_API_KEY" help:"Anthropic API key"`
	Endpoint string        `name:"endpoint" env:"ANTHROPIC_URL" default:"${ENDPOINT}" help:"API endpoint"`
	Timeout  time.Duration `name:"timeout" help:"Request timeout, zero for none"`

	// Context
	ctx    context.Context
	config *Config
	out    *Output
}

type CLI struct {
	Globals

	// Commands
	Message  MessageCmd  `cmd:"" help:"Send a message and print the response"`
	Complete CompleteCmd `cmd:"" help:"Complete a prompt with the legacy text completions API"`
	Embed    EmbedCmd    `cmd:"" help:"Return embeddings for one or more inputs"`
	Defaults DefaultsCmd `cmd:"" help:"Show or set the default models"`
	Version  VersionCmd  `cmd:"" help:"Print version information"`
}

////////////////////////////////////////////////////////////////////////////////
// MAIN

func main() {
	// Create a cli parser
	cli := CLI{}
	cmd := kong.Parse(&cli,
		kong.Name(execName()),
		kong.Description("Anthropic API command line interface"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
		kong.Vars{
			"ENDPOINT": transport.DefaultEndpoint,
		},
	)

	// Create a context
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	cli.Globals.ctx = ctx
	cli.Globals.out = NewOutput(os.Stdout)

	// Load the defaults
	config, err := NewConfig(execName())
	if err != nil {
		cmd.FatalIfErrorf(err)
		return
	}
	cli.Globals.config = config

	// Run the command, and print any error as JSON
	if err := cmd.Run(&cli.Globals); err != nil {
		cli.Globals.out.Error(err)
		os.Exit(1)
	}
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Client returns an API client configured from the global flags
func (g *Globals) Client() (*anthropic.Client, error) {
	return anthropic.New(g.APIKey, g.clientOpts()...)
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func (g *Globals) clientOpts() []client.ClientOpt {
	opts := []client.ClientOpt{}
	if g.Endpoint != "" {
		opts = append(opts, client.OptEndpoint(g.Endpoint))
	}
	if g.Debug || g.Verbose {
		opts = append(opts, client.OptTrace(os.Stderr, g.Verbose))
	}
	if g.Timeout > 0 {
		opts = append(opts, client.OptTimeout(g.Timeout))
	}
	return opts
}

func execName() string {
	// The name of the executable
	name, err := os.Executable()
	if err != nil {
		panic(err)
	} else {
		return filepath.Base(name)
	}
}
