package main

import (
	"fmt"

	// Packages
	anthropic "github.com/mutablelogic/go-claude/pkg/anthropic"
	opt "github.com/mutablelogic/go-claude/pkg/opt"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type CompleteCmd struct {
	Prompt      []string `arg:"" optional:"" help:"Prompt, appended to any text on stdin"`
	Model       string   `name:"model" short:"m" help:"Model name"`
	MaxTokens   uint64   `name:"max-tokens" default:"256" help:"Maximum number of tokens to sample"`
	Temperature *float64 `name:"temperature" short:"t" help:"Temperature for sampling"`
	Stop        []string `name:"stop" help:"Stop sequences"`
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (cmd *CompleteCmd) Run(globals *Globals) error {
	text, err := readInput(cmd.Prompt)
	if err != nil {
		return err
	} else if text == "" {
		return fmt.Errorf("missing prompt")
	}

	client, err := globals.Client()
	if err != nil {
		return err
	}

	model := cmd.Model
	if model == "" {
		model = globals.config.Completions()
	}

	response, err := client.Complete(globals.ctx, model, anthropic.Prompt(text), cmd.opts()...)
	if err != nil {
		return err
	}
	return globals.out.Value(response)
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func (cmd *CompleteCmd) opts() []opt.Opt {
	opts := []opt.Opt{
		anthropic.WithMaxTokensToSample(cmd.MaxTokens),
	}
	if cmd.Temperature != nil {
		opts = append(opts, anthropic.WithTemperature(*cmd.Temperature))
	}
	if len(cmd.Stop) > 0 {
		opts = append(opts, anthropic.WithStopSequences(cmd.Stop...))
	}
	return opts
}
