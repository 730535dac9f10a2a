// Copyright 2021 The apicall Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package engine defines the transport engine collaborator: the component
which actually puts one wire-ready request on the network and hands back
the raw response.

The interface Engine is deliberately small. It consumes a Request whose
path, query parameters, headers, and body have all been sanitized and
serialized already, and it produces a Response carrying the status code,
the headers, and the whole response body buffered as text. Everything
below that line (connection pooling, TLS, redirects, timeouts) is the
engine's business; everything above it (status gating, JSON decoding,
response normalization) is the caller layer's business.

HTTPEngine is the default implementation, built on an HTTPDoer in the
same manner the Go standard library layers http.Client over its
Transport. The zero HTTPDoer is http.DefaultClient:

	eng, err := engine.New(engine.Config{BaseURL: "https://api.example.com"})
	...

Supply a custom HTTPDoer for control over low-level request mechanics,
including timeouts and cancellation:

	eng, err := engine.New(engine.Config{
		BaseURL:  "https://api.example.com",
		HTTPDoer: &http.Client{Timeout: 10 * time.Second},
	})
	...

Any Engine implementation may stand in for HTTPEngine; a pre-built
instance can be adopted directly by the caller factory in package
apicall.
*/
package engine
