// Copyright 2021 The apicall Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package apicall

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gogama/apicall/engine"
	"github.com/gogama/apicall/request"
)

const (
	bothVariantsMsg    = "apicall: specify either Config or Engine, not both"
	neitherVariantsMsg = "apicall: an engine Config or Engine instance is required"
	nilDescriptorMsg   = "apicall: nil descriptor"
)

// A Caller executes one HTTP request described by a Descriptor and
// returns the normalized Result.
//
// A Caller resolves with a Result only for responses whose status code
// lies in [200, 300). Any other status code produces a *StatusError.
// Transport failures from the engine, and JSON decode failures on a
// successful response, are returned unwrapped; the Caller itself never
// retries, logs, or suppresses an error.
//
// The ctx is passed through to the transport engine unmodified. A
// Caller implements no timeout or cancellation of its own; cancel or
// set deadlines on ctx (or configure the engine's HTTPDoer) and the
// resulting error propagates out of the Caller as-is.
//
// A Caller holds no mutable state. The engine instance and decode
// policy bound inside it are fixed at construction, so one Caller may
// be invoked concurrently from multiple goroutines, with concurrency
// limited only by the engine's own connection policy.
type Caller func(ctx context.Context, d *request.Descriptor) (*request.Result, error)

// Options configures the construction of a Caller.
//
// Exactly one of Config and Engine must be set. Config constructs a new
// HTTPEngine once, at factory time; Engine adopts a pre-built engine
// instance as-is. Either way the engine is shared by every invocation
// of the returned Caller.
type Options struct {
	// Config specifies the parameters for constructing a new transport
	// engine. Mutually exclusive with Engine.
	Config *engine.Config

	// Engine specifies a pre-built transport engine instance to adopt.
	// Mutually exclusive with Config.
	Engine engine.Engine

	// AllowProtoProperty controls the prototype-link guard applied
	// while decoding response bodies. When false (the default), any
	// object key literally named "__proto__" is dropped from the
	// decoded result, so an untrusted response body cannot smuggle a
	// prototype-pollution payload to downstream consumers that
	// re-serialize the tree. When true, the key passes through
	// unmodified.
	AllowProtoProperty bool
}

// New constructs a Caller from opts.
//
// A malformed base URL in opts.Config fails construction with the
// error raised by url.Parse, unwrapped. Setting both or neither of
// opts.Config and opts.Engine fails construction with a descriptive
// error.
func New(opts Options) (Caller, error) {
	eng, err := resolveEngine(opts)
	if err != nil {
		return nil, err
	}
	decode := newDecoder(opts.AllowProtoProperty)
	return func(ctx context.Context, d *request.Descriptor) (*request.Result, error) {
		return call(ctx, eng, decode, d)
	}, nil
}

// NewURL constructs a Caller from a bare base URL string. It is
// shorthand for New with a Config carrying only the base URL.
func NewURL(baseURL string) (Caller, error) {
	return New(Options{Config: &engine.Config{BaseURL: baseURL}})
}

func resolveEngine(opts Options) (engine.Engine, error) {
	switch {
	case opts.Config != nil && opts.Engine != nil:
		return nil, errors.New(bothVariantsMsg)
	case opts.Config != nil:
		return engine.New(*opts.Config)
	case opts.Engine != nil:
		return opts.Engine, nil
	default:
		return nil, errors.New(neitherVariantsMsg)
	}
}

// call runs the full per-request pipeline: sanitize the path, serialize
// headers, query, and body, send through the engine, gate on the status
// code, and normalize the response.
func call(ctx context.Context, eng engine.Engine, decode decoder, d *request.Descriptor) (*request.Result, error) {
	if d == nil {
		return nil, errors.New(nilDescriptorMsg)
	}
	header := request.CanonicalHeader(d.Header)
	var body []byte
	if d.Body != nil {
		var err error
		body, err = json.Marshal(d.Body)
		if err != nil {
			return nil, err
		}
		if header == nil {
			header = make(http.Header, 1)
		}
		if header.Get("Content-Type") == "" {
			header.Set("Content-Type", "application/json")
		}
	}
	resp, err := eng.Send(ctx, &engine.Request{
		Method: d.Method,
		URL:    request.SanitizePath(d.URL),
		Header: header,
		Params: request.EncodeQuery(d.Query),
		Body:   body,
	})
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &StatusError{StatusCode: resp.StatusCode}
	}
	decoded, err := decode(resp.Text)
	if err != nil {
		return nil, err
	}
	return &request.Result{
		Header: request.FilterHeader(resp.Header),
		Body:   decoded,
	}, nil
}
