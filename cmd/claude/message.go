package main

import (
	"fmt"

	// Packages
	anthropic "github.com/mutablelogic/go-claude/pkg/anthropic"
	opt "github.com/mutablelogic/go-claude/pkg/opt"
	schema "github.com/mutablelogic/go-claude/pkg/schema"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type MessageCmd struct {
	Text        []string `arg:"" optional:"" help:"Message text, appended to any text on stdin"`
	Model       string   `name:"model" short:"m" help:"Model name"`
	MaxTokens   uint64   `name:"max-tokens" default:"1024" help:"Maximum number of tokens to generate"`
	Temperature *float64 `name:"temperature" short:"t" help:"Temperature for sampling"`
	System      string   `name:"system" help:"Set the system prompt"`
	Stop        []string `name:"stop" help:"Stop sequences"`
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (cmd *MessageCmd) Run(globals *Globals) error {
	text, err := readInput(cmd.Text)
	if err != nil {
		return err
	} else if text == "" {
		return fmt.Errorf("missing message text")
	}

	client, err := globals.Client()
	if err != nil {
		return err
	}

	model := cmd.Model
	if model == "" {
		model = globals.config.Messages()
	}

	response, err := client.Messages(globals.ctx, model, []schema.Message{schema.UserMessage(text)}, cmd.opts()...)
	if err != nil {
		return err
	}
	return globals.out.Value(response)
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func (cmd *MessageCmd) opts() []opt.Opt {
	opts := []opt.Opt{
		anthropic.WithMaxTokens(cmd.MaxTokens),
	}
	if cmd.Temperature != nil {
		opts = append(opts, anthropic.WithTemperature(*cmd.Temperature))
	}
	if cmd.System != "" {
		opts = append(opts, anthropic.WithSystemPrompt(cmd.System))
	}
	if len(cmd.Stop) > 0 {
		opts = append(opts, anthropic.WithStopSequences(cmd.Stop...))
	}
	return opts
}
