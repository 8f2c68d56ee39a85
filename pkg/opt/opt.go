package opt

import (
	"net/url"
	"strconv"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// A generic option type, which sets an optional request field
type Opt func(*Opts) error

// Opts is the set of applied options. Each key holds one or more string values.
type Opts struct {
	url.Values
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

// Option keys shared by the endpoints
const (
	MaxTokensKey         = "max_tokens"
	MaxTokensToSampleKey = "max_tokens_to_sample"
	TemperatureKey       = "temperature"
	TopKKey              = "top_k"
	TopPKey              = "top_p"
	StopSequencesKey     = "stop_sequences"
	SystemPromptKey      = "system"
	UserIdKey            = "user_id"
	ToolsKey             = "tools"
	ToolChoiceKey        = "tool_choice"
	ToolChoiceNameKey    = "tool_choice_name"
	InputTypeKey         = "input_type"
	TruncationKey        = "truncation"
	EncodingFormatKey    = "encoding_format"
)

////////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// Apply returns a structure of applied options, in order
func Apply(o ...Opt) (*Opts, error) {
	opts := &Opts{Values: make(url.Values)}
	for _, opt := range o {
		if opt == nil {
			continue
		}
		if err := opt(opts); err != nil {
			return nil, err
		}
	}
	return opts, nil
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Has returns true if the key exists
func (o *Opts) Has(key string) bool {
	_, ok := o.Values[key]
	return ok
}

// GetString returns the first value for key unchanged, or empty string if
// not set
func (o *Opts) GetString(key string) string {
	return o.Values.Get(key)
}

// GetStringArray returns all values for key, or nil if not set
func (o *Opts) GetStringArray(key string) []string {
	values, ok := o.Values[key]
	if !ok {
		return nil
	}
	result := make([]string, len(values))
	copy(result, values)
	return result
}

// GetBool returns the boolean value for key, or false if not set or invalid
func (o *Opts) GetBool(key string) bool {
	if v, err := strconv.ParseBool(o.GetString(key)); err == nil {
		return v
	}
	return false
}

// GetFloat64 returns the float64 value for key, or 0 if not set or invalid
func (o *Opts) GetFloat64(key string) float64 {
	if v, err := strconv.ParseFloat(o.GetString(key), 64); err == nil {
		return v
	}
	return 0
}

// GetUint returns the uint64 value for key, or 0 if not set or invalid
func (o *Opts) GetUint(key string) uint64 {
	if v, err := strconv.ParseUint(o.GetString(key), 10, 64); err == nil {
		return v
	}
	return 0
}

////////////////////////////////////////////////////////////////////////////////
// OPTIONS

// Error returns an option that always returns an error
func Error(err error) Opt {
	return func(*Opts) error {
		return err
	}
}

// WithOpts combines multiple options into a single option
func WithOpts(options ...Opt) Opt {
	return func(o *Opts) error {
		for _, opt := range options {
			if err := opt(o); err != nil {
				return err
			}
		}
		return nil
	}
}

// SetString replaces any values for key
func SetString(key string, value ...string) Opt {
	return func(o *Opts) error {
		o.Values.Del(key)
		for _, v := range value {
			o.Values.Add(key, v)
		}
		return nil
	}
}

// SetUint replaces any value for key
func SetUint(key string, value uint64) Opt {
	return func(o *Opts) error {
		o.Values.Set(key, strconv.FormatUint(value, 10))
		return nil
	}
}

// SetFloat64 replaces any value for key
func SetFloat64(key string, value float64) Opt {
	return func(o *Opts) error {
		o.Values.Set(key, strconv.FormatFloat(value, 'f', -1, 64))
		return nil
	}
}

// SetBool replaces any value for key
func SetBool(key string, value bool) Opt {
	return func(o *Opts) error {
		o.Values.Set(key, strconv.FormatBool(value))
		return nil
	}
}
