package main

import (
	"encoding/json"
	"os"
	"path/filepath"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Config holds the default model for each endpoint
type Config struct {
	MessageModel    string `json:"message_model,omitempty"`
	CompletionModel string `json:"completion_model,omitempty"`
	EmbeddingModel  string `json:"embedding_model,omitempty"`

	// Path to the config file
	path string
}

////////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	// The name of the config file
	configFile = "config.json"
)

const (
	defaultMessageModel    = "claude-3-5-sonnet-20240620"
	defaultCompletionModel = "claude-2.1"
	defaultEmbeddingModel  = "voyage-3"
)

////////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewConfig loads the config for the named application, or returns the
// built-in defaults if there is no config file yet
func NewConfig(name string) (*Config, error) {
	path, err := os.UserConfigDir()
	if err != nil {
		return nil, err
	}

	// Append the name of the application to the path
	if name != "" {
		path = filepath.Join(path, name)
	}

	// The config to return
	config := &Config{path: filepath.Join(path, configFile)}
	if err := config.Load(); err != nil {
		return nil, err
	}

	// Return success
	return config, nil
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (c *Config) Messages() string {
	return orDefault(c.MessageModel, defaultMessageModel)
}

func (c *Config) Completions() string {
	return orDefault(c.CompletionModel, defaultCompletionModel)
}

func (c *Config) Embeddings() string {
	return orDefault(c.EmbeddingModel, defaultEmbeddingModel)
}

// Load the config as JSON. A missing file is not an error.
func (c *Config) Load() error {
	file, err := os.Open(c.path)
	if os.IsNotExist(err) {
		return nil
	} else if err != nil {
		return err
	}
	defer file.Close()
	return json.NewDecoder(file).Decode(c)
}

// Save the config as JSON, creating the directory if needed
func (c *Config) Save() (err error) {
	if err := os.MkdirAll(filepath.Dir(c.path), 0700); err != nil {
		return err
	}
	file, err := os.Create(c.path)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := file.Close(); err == nil {
			err = closeErr
		}
	}()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	return enc.Encode(c)
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func orDefault(value, def string) string {
	if value != "" {
		return value
	}
	return def
}
