package main

import (
	"fmt"

	// Packages
	anthropic "github.com/mutablelogic/go-claude/pkg/anthropic"
	opt "github.com/mutablelogic/go-claude/pkg/opt"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type EmbedCmd struct {
	Input     []string `arg:"" help:"Text to embed, one embedding per argument"`
	Model     string   `name:"model" short:"m" help:"Model name"`
	InputType string   `name:"input-type" help:"Input type (query, document)"`
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (cmd *EmbedCmd) Run(globals *Globals) error {
	if len(cmd.Input) == 0 {
		return fmt.Errorf("missing input")
	}

	client, err := globals.Client()
	if err != nil {
		return err
	}

	model := cmd.Model
	if model == "" {
		model = globals.config.Embeddings()
	}

	opts := []opt.Opt{}
	if cmd.InputType != "" {
		opts = append(opts, anthropic.WithInputType(cmd.InputType))
	}

	response, err := client.Embed(globals.ctx, model, cmd.Input, opts...)
	if err != nil {
		return err
	}
	return globals.out.Value(response)
}
