package anthropic

import (
	"encoding/json"

	// Packages
	claude "github.com/mutablelogic/go-claude"
	opt "github.com/mutablelogic/go-claude/pkg/opt"
	schema "github.com/mutablelogic/go-claude/pkg/schema"
	types "github.com/mutablelogic/go-server/pkg/types"
)

////////////////////////////////////////////////////////////////////////////////
// SAMPLING OPTIONS

// WithMaxTokens sets the maximum number of tokens to generate for a
// message (minimum 1)
func WithMaxTokens(value uint64) opt.Opt {
	return opt.SetUint(opt.MaxTokensKey, value)
}

// WithMaxTokensToSample sets the maximum number of tokens to generate for
// a text completion (minimum 1)
func WithMaxTokensToSample(value uint64) opt.Opt {
	return opt.SetUint(opt.MaxTokensToSampleKey, value)
}

// WithTemperature sets the temperature for the request (0.0 to 1.0)
func WithTemperature(value float64) opt.Opt {
	return opt.SetFloat64(opt.TemperatureKey, value)
}

// WithTopK sets the top K sampling parameter (minimum 1)
func WithTopK(value uint64) opt.Opt {
	return opt.SetUint(opt.TopKKey, value)
}

// WithTopP sets the nucleus sampling parameter (0.0 to 1.0)
func WithTopP(value float64) opt.Opt {
	return opt.SetFloat64(opt.TopPKey, value)
}

// WithStopSequences sets custom stop sequences, replacing any set before.
// With no values, any earlier stop sequences are cleared.
func WithStopSequences(values ...string) opt.Opt {
	return opt.SetString(opt.StopSequencesKey, values...)
}

////////////////////////////////////////////////////////////////////////////////
// MESSAGE OPTIONS

// WithSystemPrompt sets the system prompt for a message
func WithSystemPrompt(value string) opt.Opt {
	return opt.SetString(opt.SystemPromptKey, value)
}

// WithUser sets the metadata.user_id for the request
func WithUser(value string) opt.Opt {
	return opt.SetString(opt.UserIdKey, value)
}

// WithTools sets the tools the model may use, replacing any set before
func WithTools(defs ...schema.ToolDefinition) opt.Opt {
	values := make([]string, 0, len(defs))
	for _, def := range defs {
		data, err := json.Marshal(def)
		if err != nil {
			return opt.Error(claude.ErrBadParameter.Withf("%s: %v", def.Name, err))
		}
		values = append(values, string(data))
	}
	return opt.SetString(opt.ToolsKey, values...)
}

// WithToolChoiceAuto lets the model decide whether to use tools
func WithToolChoiceAuto() opt.Opt {
	return opt.WithOpts(
		opt.SetString(opt.ToolChoiceKey, "auto"),
		opt.SetString(opt.ToolChoiceNameKey),
	)
}

// WithToolChoiceAny forces the model to use one of the available tools
func WithToolChoiceAny() opt.Opt {
	return opt.WithOpts(
		opt.SetString(opt.ToolChoiceKey, "any"),
		opt.SetString(opt.ToolChoiceNameKey),
	)
}

// WithToolChoiceNone prevents the model from using any tools
func WithToolChoiceNone() opt.Opt {
	return opt.WithOpts(
		opt.SetString(opt.ToolChoiceKey, "none"),
		opt.SetString(opt.ToolChoiceNameKey),
	)
}

// WithToolChoice forces the model to use a specific tool by name
func WithToolChoice(name string) opt.Opt {
	return opt.WithOpts(
		opt.SetString(opt.ToolChoiceKey, "tool"),
		opt.SetString(opt.ToolChoiceNameKey, name),
	)
}

////////////////////////////////////////////////////////////////////////////////
// EMBEDDING OPTIONS

// WithInputType sets the type of the embedding input, for example
// "query" or "document"
func WithInputType(value string) opt.Opt {
	return opt.SetString(opt.InputTypeKey, value)
}

// WithTruncation sets whether over-long embedding input is truncated
func WithTruncation(value bool) opt.Opt {
	return opt.SetBool(opt.TruncationKey, value)
}

// WithEncodingFormat sets the encoding of the returned embeddings, for
// example "base64"
func WithEncodingFormat(value string) opt.Opt {
	return opt.SetString(opt.EncodingFormatKey, value)
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// validate checks the final values of the option keys an endpoint sends,
// once all options have been applied
func validate(o *opt.Opts, keys ...string) error {
	for _, key := range keys {
		if !o.Has(key) {
			continue
		}
		switch key {
		case opt.MaxTokensKey, opt.MaxTokensToSampleKey, opt.TopKKey:
			if o.GetUint(key) < 1 {
				return claude.ErrBadParameter.Withf("%s must be at least 1", key)
			}
		case opt.TemperatureKey, opt.TopPKey:
			if value := o.GetFloat64(key); value < 0 || value > 1 {
				return claude.ErrBadParameter.Withf("%s must be between 0.0 and 1.0", key)
			}
		case opt.ToolChoiceKey:
			if o.GetString(key) == "tool" && o.GetString(opt.ToolChoiceNameKey) == "" {
				return claude.ErrBadParameter.With("tool name is required")
			}
		}
	}
	return nil
}

func optUint(o *opt.Opts, key string) *uint64 {
	if !o.Has(key) {
		return nil
	}
	return types.Ptr(o.GetUint(key))
}

func optFloat64(o *opt.Opts, key string) *float64 {
	if !o.Has(key) {
		return nil
	}
	return types.Ptr(o.GetFloat64(key))
}

func optBool(o *opt.Opts, key string) *bool {
	if !o.Has(key) {
		return nil
	}
	return types.Ptr(o.GetBool(key))
}

func optMetadata(o *opt.Opts) *requestMetadata {
	if userId := o.GetString(opt.UserIdKey); userId != "" {
		return &requestMetadata{UserId: userId}
	}
	return nil
}
