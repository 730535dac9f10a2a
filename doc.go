// Copyright 2021 The apicall Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package apicall provides a typed HTTP invocation layer: a factory which
turns endpoint configuration into a single Caller function executing one
HTTP request and returning a normalized, JSON-decoded response.

Create a Caller to begin making requests.

	call, err := apicall.NewURL("https://api.example.com")
	...
	result, err := call(ctx, &request.Descriptor{
		Method: "POST",
		URL:    "/hello",
		Query:  request.Query{"x": "1"},
		Body:   map[string]string{"k": "v"},
	})
	...

For control over how requests are sent (connection pooling, TLS,
timeouts, redirects), construct the Caller from an explicit engine
configuration, or adopt a pre-built engine instance:

	call, err := apicall.New(apicall.Options{
		Config: &engine.Config{
			BaseURL:  "https://api.example.com",
			HTTPDoer: &http.Client{Timeout: 10 * time.Second},
		},
	})
	...
	call, err := apicall.New(apicall.Options{Engine: myEngine})

Exactly one of Config and Engine may be set; the engine is constructed
(or adopted) once and shared by every invocation of the Caller.

A Caller enforces a strict policy pipeline on every request. The
descriptor URL is sanitized so it always acts as a path under the
engine's base URL: an absolute-looking URL cannot redirect the request
to another host, and literal '?' and '#' characters are percent-escaped
so they cannot open a query string or fragment. Query parameters and
headers are normalized from loosely typed maps (see package request).
The response is accepted only for status codes in [200, 300); anything
else returns a *StatusError carrying the code. The response body is
decoded locally as JSON, with object keys named "__proto__" stripped
unless Options.AllowProtoProperty is set, and an empty body decodes to
a nil result body.

The package defines no retry, timeout, caching, or logging behavior.
Cancellation and deadlines flow through the context handed to the
Caller, and every failure (transport, status, decode) surfaces to the
invoker unwrapped.

For simple one-off requests, package-level helpers wrap descriptor
construction: Get, Delete, Post, Put, and Patch.
*/
package apicall
