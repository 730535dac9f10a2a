// Copyright 2021 The apicall Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import (
	"net/http"
)

// A Result is the normalized outcome of a successful request: the
// filtered response headers and the JSON-decoded response payload.
//
// Body is a generic JSON tree (the types produced by encoding/json when
// unmarshalling into an untyped value). A response with an empty body
// yields a nil Body rather than a decode error.
type Result struct {
	// Header contains the response header fields, with empty entries
	// removed.
	Header http.Header

	// Body is the decoded response payload, or nil if the response
	// body was empty.
	Body interface{}
}

// FilterHeader returns h with entries holding no values removed.
// Engines built on net/http never produce such entries, but the engine
// is pluggable and the result contract promises their absence.
func FilterHeader(h http.Header) http.Header {
	if h == nil {
		return nil
	}
	filtered := make(http.Header, len(h))
	for name, values := range h {
		if len(values) == 0 {
			continue
		}
		filtered[name] = values
	}
	return filtered
}
