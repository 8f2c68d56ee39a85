/*
anthropic implements the Messages, Text Completions and Embeddings
endpoints of the Anthropic API.
https://docs.anthropic.com/en/api/getting-started
*/
package anthropic

import (
	// Packages
	transport "github.com/mutablelogic/go-claude/pkg/transport"
	client "github.com/mutablelogic/go-client"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type Client struct {
	*transport.Client
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

// Endpoint paths, relative to the client endpoint
const (
	messagesPath   = "messages"
	completionPath = "complete"
	embeddingPath  = "embeddings"
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New creates a new Anthropic API client with the given API key
func New(apiKey string, opts ...client.ClientOpt) (*Client, error) {
	if c, err := transport.New(apiKey, opts...); err != nil {
		return nil, err
	} else {
		return &Client{c}, nil
	}
}
