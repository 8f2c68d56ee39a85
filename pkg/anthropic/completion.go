package anthropic

import (
	"context"
	"encoding/json"
	"slices"
	"strings"

	// Packages
	claude "github.com/mutablelogic/go-claude"
	opt "github.com/mutablelogic/go-claude/pkg/opt"
	schema "github.com/mutablelogic/go-claude/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// CompletionRequest is a request to the legacy text completions endpoint.
// It cannot be changed once created; use With to derive a new request.
type CompletionRequest struct {
	model  string
	prompt string
	opts   []opt.Opt
	body   completionRequest
}

type completionRequest struct {
	Model             string           `json:"model"`
	Prompt            string           `json:"prompt"`
	MaxTokensToSample *uint64          `json:"max_tokens_to_sample,omitempty"`
	Metadata          *requestMetadata `json:"metadata,omitempty"`
	StopSequences     []string         `json:"stop_sequences,omitempty"`
	Temperature       *float64         `json:"temperature,omitempty"`
	TopK              *uint64          `json:"top_k,omitempty"`
	TopP              *float64         `json:"top_p,omitempty"`
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

// Turn markers for text completion prompts
const (
	HumanPrompt     = "\n\nHuman:"
	AssistantPrompt = "\n\nAssistant:"
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewCompletionRequest returns a request for the model with the prompt,
// which is sent unchanged. Optional fields are absent unless set with an
// option, and a later option overrides an earlier one for the same field.
func NewCompletionRequest(model, prompt string, opts ...opt.Opt) (*CompletionRequest, error) {
	options, err := opt.Apply(opts...)
	if err != nil {
		return nil, err
	}
	if err := validate(options, opt.MaxTokensToSampleKey, opt.TemperatureKey, opt.TopKKey, opt.TopPKey); err != nil {
		return nil, err
	}
	return &CompletionRequest{
		model:  model,
		prompt: prompt,
		opts:   slices.Clone(opts),
		body: completionRequest{
			Model:             model,
			Prompt:            prompt,
			MaxTokensToSample: optUint(options, opt.MaxTokensToSampleKey),
			Metadata:          optMetadata(options),
			StopSequences:     options.GetStringArray(opt.StopSequencesKey),
			Temperature:       optFloat64(options, opt.TemperatureKey),
			TopK:              optUint(options, opt.TopKKey),
			TopP:              optFloat64(options, opt.TopPKey),
		},
	}, nil
}

// Prompt frames text as a single human turn followed by the assistant
// marker. Text which already starts with a human turn is returned as-is.
func Prompt(text string) string {
	if strings.HasPrefix(text, HumanPrompt) {
		return text
	}
	return HumanPrompt + " " + strings.TrimSpace(text) + AssistantPrompt
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// With returns a copy of the request with further options applied
func (r *CompletionRequest) With(opts ...opt.Opt) (*CompletionRequest, error) {
	return NewCompletionRequest(r.model, r.prompt, append(slices.Clone(r.opts), opts...)...)
}

// Model returns the model name
func (r *CompletionRequest) Model() string {
	return r.model
}

// MarshalJSON returns the request body
func (r *CompletionRequest) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.body)
}

// CreateCompletion sends a request to the text completions endpoint and
// returns the response unchanged
func (anthropic *Client) CreateCompletion(ctx context.Context, req *CompletionRequest) (schema.Value, error) {
	if req == nil {
		return nil, claude.ErrBadParameter.With("missing completion request")
	}
	return anthropic.Post(ctx, completionPath, req)
}

// Complete creates a request from the parameters and sends it
func (anthropic *Client) Complete(ctx context.Context, model, prompt string, opts ...opt.Opt) (schema.Value, error) {
	req, err := NewCompletionRequest(model, prompt, opts...)
	if err != nil {
		return nil, err
	}
	return anthropic.CreateCompletion(ctx, req)
}

///////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (r *CompletionRequest) String() string {
	return schema.Stringify(r)
}
