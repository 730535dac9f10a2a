// Copyright 2021 The apicall Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package engine

import (
	"bytes"
	"context"
	"errors"
	"io"
	"io/ioutil"
	"net/http"
	"net/url"
	"strings"
)

const (
	nilCtxMsg     = "apicall/engine: nil context"
	noBaseURLMsg  = "apicall/engine: config requires a base URL"
	nilRequestMsg = "apicall/engine: nil request"
)

// An HTTPDoer implements a Do method in the same manner as the GoLang
// standard library http.Client from the net/http package.
type HTTPDoer interface {
	// Do sends an HTTP request and returns an HTTP response following
	// policy (such as redirects, cookies, auth) configured on the
	// HTTPDoer.
	//
	// The Do method must follow the contract documented on the GoLang
	// standard library http.Client from the net/http package.
	Do(r *http.Request) (*http.Response, error)
}

// A Request is the wire-ready form of one HTTP request, as handed to an
// Engine by a caller. All sanitization and serialization has already
// happened by the time a Request exists: URL is an escaped path
// relative to the engine's base URL, Params are fully encoded query
// values, and Body is the serialized payload.
type Request struct {
	// Method specifies the HTTP method (GET, POST, PUT, etc.).
	// An empty string means GET.
	Method string

	// URL is the request path, relative to the engine's base URL. It
	// must not contain a literal '?' or '#' (see request.SanitizePath).
	URL string

	// Header contains the request header fields to send, in canonical
	// form. May be nil.
	Header http.Header

	// Params contains the query parameters to append to the request
	// URL. May be nil for no query string.
	Params url.Values

	// Body is the pre-buffered request body. A nil or empty body means
	// no request body is sent.
	Body []byte
}

// A Response is the raw outcome of one request attempt: the status
// code, the response headers, and the entire response body buffered as
// text. An Engine never decodes the body; decoding (and the policy
// applied during it) belongs to the caller layer.
type Response struct {
	// StatusCode is the HTTP status code of the response, e.g. 200.
	StatusCode int

	// Header contains the response header fields.
	Header http.Header

	// Text is the entire response body. Empty if the response had no
	// body.
	Text string
}

// An Engine sends one wire-ready Request and returns the raw Response.
//
// HTTPEngine implements the Engine interface on top of an HTTPDoer,
// and any other Engine implementation must behave substantially the
// same: resolve the request path against its own configured base URL,
// buffer the whole response body, and report transport failures by
// returning an error. An Engine must not gate on the response status
// code; status policy belongs to the caller layer.
//
// Connection pooling, TLS, redirects, retries, and timeouts are all
// concerns of the Engine (or of the HTTPDoer underneath it), never of
// the caller layer above it. Cancellation flows through the context
// passed to Send.
type Engine interface {
	Send(ctx context.Context, r *Request) (*Response, error)
}

// A Config carries the parameters for constructing an HTTPEngine.
type Config struct {
	// BaseURL is the URL every request path is resolved against. It is
	// required, and it is parsed eagerly when the engine is
	// constructed: a malformed BaseURL fails construction with the
	// error raised by url.Parse.
	BaseURL string

	// HTTPDoer specifies the mechanics of sending HTTP requests and
	// receiving responses.
	//
	// If HTTPDoer is nil, http.DefaultClient from the standard
	// net/http package is used.
	HTTPDoer HTTPDoer

	// Header contains default header fields applied to every request
	// the engine sends. A per-request field of the same name replaces
	// the default. May be nil.
	Header http.Header
}

// An HTTPEngine is the default Engine implementation, backed by an
// HTTPDoer (typically the Go standard HTTP client). Its configuration
// is immutable after construction and it is safe for concurrent use by
// multiple goroutines, to the extent its HTTPDoer is.
type HTTPEngine struct {
	base   string
	doer   HTTPDoer
	header http.Header
}

// New constructs an HTTPEngine from config. The base URL is parsed
// immediately and a parse failure is returned as-is, unwrapped.
func New(config Config) (*HTTPEngine, error) {
	if config.BaseURL == "" {
		return nil, errors.New(noBaseURLMsg)
	}
	base, err := url.Parse(config.BaseURL)
	if err != nil {
		return nil, err
	}
	return &HTTPEngine{
		base:   strings.TrimRight(base.String(), "/"),
		doer:   config.HTTPDoer,
		header: config.Header,
	}, nil
}

// BaseURL returns the engine's base URL with any trailing slashes
// removed.
func (e *HTTPEngine) BaseURL() string {
	return e.base
}

// Send issues the request through the engine's HTTPDoer and buffers
// the whole response body. Transport errors from the HTTPDoer, and
// errors reading the response body, are returned unwrapped.
func (e *HTTPEngine) Send(ctx context.Context, r *Request) (*Response, error) {
	if ctx == nil {
		return nil, errors.New(nilCtxMsg)
	}
	if r == nil {
		return nil, errors.New(nilRequestMsg)
	}
	method := r.Method
	if method == "" {
		method = "GET"
	}
	var body io.Reader
	if len(r.Body) > 0 {
		body = bytes.NewReader(r.Body)
	}
	req, err := http.NewRequest(method, e.requestURL(r.URL, r.Params), body)
	if err != nil {
		return nil, err
	}
	req = req.WithContext(ctx)
	for name, values := range e.header {
		req.Header[name] = values
	}
	for name, values := range r.Header {
		req.Header[name] = values
	}
	resp, err := e.httpDoer().Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	text, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	return &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Text:       string(text),
	}, nil
}

// requestURL joins the engine base URL with the request path and
// appends the encoded query parameters. The join rule trims slashes
// from both sides of the seam, so "…/v1" + "hello" and "…/v1/" +
// "/hello" produce the same URL. Appending the query string after the
// path is safe because a sanitized path contains no literal '?'.
func (e *HTTPEngine) requestURL(path string, params url.Values) string {
	target := e.base
	if path != "" {
		target = target + "/" + strings.TrimLeft(path, "/")
	}
	if len(params) > 0 {
		target = target + "?" + params.Encode()
	}
	return target
}

func (e *HTTPEngine) httpDoer() HTTPDoer {
	if e.doer == nil {
		return http.DefaultClient
	}
	return e.doer
}
