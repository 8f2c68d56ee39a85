/*
transport performs authenticated JSON requests against the Anthropic API.
https://docs.anthropic.com/en/api/getting-started
*/
package transport

import (
	"context"
	"errors"
	"strings"

	// Packages
	claude "github.com/mutablelogic/go-claude"
	schema "github.com/mutablelogic/go-claude/pkg/schema"
	version "github.com/mutablelogic/go-claude/pkg/version"
	client "github.com/mutablelogic/go-client"
	otel "github.com/mutablelogic/go-client/pkg/otel"
	httpresponse "github.com/mutablelogic/go-server/pkg/httpresponse"
	gootel "go.opentelemetry.io/otel"
	attribute "go.opentelemetry.io/otel/attribute"
	trace "go.opentelemetry.io/otel/trace"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Client holds the credential and endpoint, and has no other state.
// It is safe to use from many goroutines.
type Client struct {
	*client.Client
	tracer trace.Tracer
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	DefaultEndpoint = "https://api.anthropic.com/v1"
	APIVersion      = "2023-06-01"
	tracerName      = "github.com/mutablelogic/go-claude/pkg/transport"
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New creates a client with the given API key. The key is sent as-is, so an
// empty key results in an authentication error from the API on first use.
// Options are applied after the defaults, so OptEndpoint replaces the
// default endpoint.
func New(apiKey string, opts ...client.ClientOpt) (*Client, error) {
	defaults := []client.ClientOpt{
		client.OptEndpoint(DefaultEndpoint),
		client.OptUserAgent("go-claude/" + version.Version()),
	}
	opts = append(defaults, opts...)
	opts = append(opts,
		client.OptHeader("x-api-key", apiKey),
		client.OptHeader("anthropic-version", APIVersion),
	)
	if c, err := client.New(opts...); err != nil {
		return nil, err
	} else {
		return &Client{c, gootel.Tracer(tracerName)}, nil
	}
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Post sends body as JSON to the endpoint path and returns the parsed
// response. A non-2xx status, or a body which is not JSON, returns an error.
func (c *Client) Post(ctx context.Context, path string, body any) (_ schema.Value, err error) {
	path = strings.Trim(path, "/")

	// OTEL
	ctx, endSpan := otel.StartSpan(c.tracer, ctx, "POST "+path,
		attribute.String("path", path),
	)
	defer func() { endSpan(err) }()

	// Create the request
	req, err := client.NewJSONRequest(body)
	if err != nil {
		return nil, err
	}

	// Send the request
	var response schema.Value
	if err := c.DoWithContext(ctx, req, &response, client.OptPath(path)); err != nil {
		return nil, err
	}

	// Any 2xx response needs a JSON body
	if !response.Valid() {
		return nil, claude.ErrUnexpectedResponse.Withf("%s: response is not valid JSON", path)
	}

	// Return success
	return response, nil
}

// StatusCode returns the HTTP status carried by an error returned from
// Post, or zero if the error did not come from an HTTP response
func StatusCode(err error) int {
	var httpErr httpresponse.Err
	var httpResponse httpresponse.ErrResponse
	switch {
	case errors.As(err, &httpErr):
		return int(httpErr)
	case errors.As(err, &httpResponse):
		return httpResponse.Code
	default:
		return 0
	}
}
