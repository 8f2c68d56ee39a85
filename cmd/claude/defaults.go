package main

////////////////////////////////////////////////////////////////////////////////
// TYPES

type DefaultsCmd struct {
	MessageModel    string `name:"message-model" help:"Set the default model for messages"`
	CompletionModel string `name:"completion-model" help:"Set the default model for text completions"`
	EmbeddingModel  string `name:"embedding-model" help:"Set the default model for embeddings"`
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (cmd *DefaultsCmd) Run(globals *Globals) error {
	config := globals.config

	// Set any new defaults
	if cmd.MessageModel != "" || cmd.CompletionModel != "" || cmd.EmbeddingModel != "" {
		if cmd.MessageModel != "" {
			config.MessageModel = cmd.MessageModel
		}
		if cmd.CompletionModel != "" {
			config.CompletionModel = cmd.CompletionModel
		}
		if cmd.EmbeddingModel != "" {
			config.EmbeddingModel = cmd.EmbeddingModel
		}
		if err := config.Save(); err != nil {
			return err
		}
	}

	// Print the defaults in effect
	return globals.out.JSON(map[string]string{
		"message_model":    config.Messages(),
		"completion_model": config.Completions(),
		"embedding_model":  config.Embeddings(),
	})
}
