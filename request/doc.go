// Copyright 2021 The apicall Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package request contains the core types Descriptor (describes one
logical HTTP request) and Result (the normalized outcome of a request),
together with the serialization routines which turn a loosely typed
descriptor into wire-safe parts.

The first core type is Descriptor, which describes one request to be
executed by a caller: method, path, query parameters, header fields, and
a JSON-serializable body. The query and header maps carry loosely typed
values because descriptors are typically assembled from generic endpoint
metadata; the functions EncodeQuery and CanonicalHeader define precisely
how each value kind is dropped, repeated, or coerced to a string.

Build a descriptor and hand it to a caller:

	result, err := call(ctx, &request.Descriptor{
		Method: "POST",
		URL:    "/hello",
		Query:  request.Query{"x": "1"},
		Body:   map[string]string{"k": "v"},
		Header: request.Fields{"h": []string{"a", "b"}},
	})
	...

The second core type is Result, the caller's output: the response
headers with empty entries removed, and the JSON-decoded response
payload as a generic tree (nil for an empty body).

The package also provides SanitizePath, the path-injection defense
applied to every descriptor URL before it reaches the transport engine:
absolute-looking URLs are demoted to literal path segments under the
engine's base URL, and '?' and '#' are percent-escaped so that no
caller-supplied path can smuggle in a query string or fragment.
*/
package request
