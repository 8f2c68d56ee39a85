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

// EmbeddingRequest is a request to the embeddings endpoint. It cannot be
// changed once created; use With to derive a new request.
type EmbeddingRequest struct {
	model string
	input []string
	opts  []opt.Opt
	body  embeddingRequest
}

type embeddingRequest struct {
	Model          string   `json:"model"`
	Input          []string `json:"input"`
	InputType      string   `json:"input_type,omitempty"`
	Truncation     *bool    `json:"truncation,omitempty"`
	EncodingFormat string   `json:"encoding_format,omitempty"`
}

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewEmbeddingRequest returns a request to embed each input string
func NewEmbeddingRequest(model string, input []string, opts ...opt.Opt) (*EmbeddingRequest, error) {
	options, err := opt.Apply(opts...)
	if err != nil {
		return nil, err
	}

	input = slices.Clone(input)
	if input == nil {
		input = []string{}
	}

	return &EmbeddingRequest{
		model: model,
		input: input,
		opts:  slices.Clone(opts),
		body: embeddingRequest{
			Model:          model,
			Input:          input,
			InputType:      options.GetString(opt.InputTypeKey),
			Truncation:     optBool(options, opt.TruncationKey),
			EncodingFormat: options.GetString(opt.EncodingFormatKey),
		},
	}, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// With returns a copy of the request with further options applied
func (r *EmbeddingRequest) With(opts ...opt.Opt) (*EmbeddingRequest, error) {
	return NewEmbeddingRequest(r.model, r.input, append(slices.Clone(r.opts), opts...)...)
}

// Model returns the model name
func (r *EmbeddingRequest) Model() string {
	return r.model
}

// MarshalJSON returns the request body
func (r *EmbeddingRequest) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.body)
}

// CreateEmbedding sends a request to the embeddings endpoint and returns
// the response unchanged
func (anthropic *Client) CreateEmbedding(ctx context.Context, req *EmbeddingRequest) (schema.Value, error) {
	if req == nil {
		return nil, claude.ErrBadParameter.With("missing embedding request")
	}
	return anthropic.Post(ctx, embeddingPath, req)
}

// Embed creates a request from the parameters and sends it
func (anthropic *Client) Embed(ctx context.Context, model string, input []string, opts ...opt.Opt) (schema.Value, error) {
	req, err := NewEmbeddingRequest(model, input, opts...)
	if err != nil {
		return nil, err
	}
	return anthropic.CreateEmbedding(ctx, req)
}

///////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (r *EmbeddingRequest) String() string {
	return schema.Stringify(r)
}
