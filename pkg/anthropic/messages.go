package anthropic

import (
	"context"
	"encoding/json"
	"slices"

	// Packages
	claude "github.com/mutablelogic/go-claude"
	opt "github.com/mutablelogic/go-claude/pkg/opt"
	schema "github.com/mutablelogic/go-claude/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// MessageRequest is a request to the messages endpoint. It cannot be
// changed once created; use With to derive a new request.
type MessageRequest struct {
	model    string
	messages []schema.Message
	opts     []opt.Opt
	body     messagesRequest
}

type messagesRequest struct {
	Model         string            `json:"model"`
	Messages      []schema.Message  `json:"messages"`
	MaxTokens     *uint64           `json:"max_tokens,omitempty"`
	Metadata      *requestMetadata  `json:"metadata,omitempty"`
	StopSequences []string          `json:"stop_sequences,omitempty"`
	System        string            `json:"system,omitempty"`
	Temperature   *float64          `json:"temperature,omitempty"`
	ToolChoice    *toolChoice       `json:"tool_choice,omitempty"`
	Tools         []json.RawMessage `json:"tools,omitempty"`
	TopK          *uint64           `json:"top_k,omitempty"`
	TopP          *float64          `json:"top_p,omitempty"`
}

type requestMetadata struct {
	UserId string `json:"user_id,omitempty"`
}

type toolChoice struct {
	Type string `json:"type"`
	Name string `json:"name,omitempty"`
}

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewMessageRequest returns a request for the model with the conversation
// so far. Optional fields are absent unless set with an option, and a later
// option overrides an earlier one for the same field.
func NewMessageRequest(model string, messages []schema.Message, opts ...opt.Opt) (*MessageRequest, error) {
	options, err := opt.Apply(opts...)
	if err != nil {
		return nil, err
	}
	if err := validate(options, opt.MaxTokensKey, opt.TemperatureKey, opt.TopKKey, opt.TopPKey, opt.ToolChoiceKey); err != nil {
		return nil, err
	}

	// Messages are copied so the caller can reuse the slice
	messages = slices.Clone(messages)
	if messages == nil {
		messages = []schema.Message{}
	}

	// Get tool choice if set
	var choice *toolChoice
	if tc := options.GetString(opt.ToolChoiceKey); tc != "" {
		choice = &toolChoice{Type: tc, Name: options.GetString(opt.ToolChoiceNameKey)}
	}

	// Get tools if set
	var tools []json.RawMessage
	for _, tool := range options.GetStringArray(opt.ToolsKey) {
		tools = append(tools, json.RawMessage(tool))
	}

	return &MessageRequest{
		model:    model,
		messages: messages,
		opts:     slices.Clone(opts),
		body: messagesRequest{
			Model:         model,
			Messages:      messages,
			MaxTokens:     optUint(options, opt.MaxTokensKey),
			Metadata:      optMetadata(options),
			StopSequences: options.GetStringArray(opt.StopSequencesKey),
			System:        options.GetString(opt.SystemPromptKey),
			Temperature:   optFloat64(options, opt.TemperatureKey),
			ToolChoice:    choice,
			Tools:         tools,
			TopK:          optUint(options, opt.TopKKey),
			TopP:          optFloat64(options, opt.TopPKey),
		},
	}, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// With returns a copy of the request with further options applied
func (r *MessageRequest) With(opts ...opt.Opt) (*MessageRequest, error) {
	return NewMessageRequest(r.model, r.messages, append(slices.Clone(r.opts), opts...)...)
}

// Model returns the model name
func (r *MessageRequest) Model() string {
	return r.model
}

// MarshalJSON returns the request body
func (r *MessageRequest) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.body)
}

// CreateMessage sends a request to the messages endpoint and returns the
// response unchanged
func (anthropic *Client) CreateMessage(ctx context.Context, req *MessageRequest) (schema.Value, error) {
	if req == nil {
		return nil, claude.ErrBadParameter.With("missing message request")
	}
	return anthropic.Post(ctx, messagesPath, req)
}

// Messages creates a request from the parameters and sends it
func (anthropic *Client) Messages(ctx context.Context, model string, messages []schema.Message, opts ...opt.Opt) (schema.Value, error) {
	req, err := NewMessageRequest(model, messages, opts...)
	if err != nil {
		return nil, err
	}
	return anthropic.CreateMessage(ctx, req)
}

///////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (r *MessageRequest) String() string {
	return schema.Stringify(r)
}
