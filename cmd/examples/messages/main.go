package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	// Packages
	anthropic "github.com/mutablelogic/go-claude/pkg/anthropic"
	schema "github.com/mutablelogic/go-claude/pkg/schema"
)

func main() {
	// Create a client
	client, err := anthropic.New(os.Getenv("ANTHROPIC_API_KEY"))
	if err != nil {
		panic(err)
	}

	// Send a message
	response, err := client.Messages(context.TODO(), "claude-3-5-sonnet-20240620",
		[]schema.Message{schema.UserMessage("Hello, Claude")},
		anthropic.WithMaxTokens(1024),
		anthropic.WithTemperature(1.0),
	)
	if err != nil {
		data, _ := json.Marshal(map[string]string{"error": err.Error()})
		fmt.Println(string(data))
		os.Exit(1)
	}

	fmt.Println(response)
}
