// Copyright 2021 The apicall Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import (
	"fmt"
	"net/http"
	"net/url"
)

// A Descriptor describes one logical HTTP request for execution by a
// caller.
//
// The URL field is always treated as a path relative to the base URL
// configured on the transport engine, even when it looks like an
// absolute URL (see SanitizePath). Query and Header carry loosely typed
// values so that callers assembling descriptors from generic endpoint
// metadata do not need to pre-convert every value; the serialization
// functions EncodeQuery and CanonicalHeader define the exact coercion
// rules.
//
// A nil map value stands for an absent entry and is dropped during
// serialization.
type Descriptor struct {
	// Method specifies the HTTP method (GET, POST, PUT, etc.).
	// An empty string means GET.
	Method string

	// URL specifies the path of the resource, relative to the engine's
	// base URL.
	URL string

	// Query contains the query parameters to serialize onto the
	// request URL. May be nil for no query string.
	Query Query

	// Body is the request payload. A nil Body means no payload; any
	// other value is serialized to JSON.
	Body interface{}

	// Header contains the request header fields to normalize and send.
	// May be nil for no extra headers.
	Header Fields
}

// Query maps a query parameter name to its value. A nil value drops
// the parameter. A slice value ([]string or []interface{}) emits one
// parameter occurrence per element, in element order, dropping nil
// elements. Any other value emits a single occurrence, converted to a
// string.
type Query map[string]interface{}

// Fields maps a header field name to its value. A nil value drops the
// field. Strings pass through unchanged. A slice value ([]string or
// []interface{}) is mapped to one field value per element, dropping nil
// elements. Any other value, numbers included, is converted to a
// string.
type Fields map[string]interface{}

// EncodeQuery serializes q into url.Values following the coercion
// rules documented on Query. A nil or empty q yields nil.
func EncodeQuery(q Query) url.Values {
	if len(q) == 0 {
		return nil
	}
	values := make(url.Values, len(q))
	for key, value := range q {
		switch x := value.(type) {
		case nil:
			// Dropped.
		case []string:
			for _, el := range x {
				values.Add(key, el)
			}
		case []interface{}:
			for _, el := range x {
				if el == nil {
					continue
				}
				values.Add(key, stringify(el))
			}
		default:
			values.Add(key, stringify(value))
		}
	}
	return values
}

// CanonicalHeader normalizes f into an http.Header following the
// coercion rules documented on Fields. A nil or empty f yields nil.
func CanonicalHeader(f Fields) http.Header {
	if len(f) == 0 {
		return nil
	}
	header := make(http.Header, len(f))
	for name, value := range f {
		switch x := value.(type) {
		case nil:
			// Dropped.
		case string:
			header.Add(name, x)
		case []string:
			for _, el := range x {
				header.Add(name, el)
			}
		case []interface{}:
			for _, el := range x {
				if el == nil {
					continue
				}
				header.Add(name, stringify(el))
			}
		default:
			header.Add(name, stringify(value))
		}
	}
	return header
}

func stringify(value interface{}) string {
	if s, ok := value.(string); ok {
		return s
	}
	return fmt.Sprint(value)
}
