// Copyright 2021 The apicall Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package apicall

import (
	"context"

	"github.com/gogama/apicall/request"
)

// Get uses the specified Caller to issue a GET for the specified path.
//
// To send query parameters or custom headers, build a
// request.Descriptor and invoke c directly.
func Get(ctx context.Context, c Caller, url string) (*request.Result, error) {
	return c(ctx, &request.Descriptor{Method: "GET", URL: url})
}

// Delete uses the specified Caller to issue a DELETE for the specified
// path.
//
// To send query parameters or custom headers, build a
// request.Descriptor and invoke c directly.
func Delete(ctx context.Context, c Caller, url string) (*request.Result, error) {
	return c(ctx, &request.Descriptor{Method: "DELETE", URL: url})
}

// Post uses the specified Caller to issue a POST for the specified
// path. The body parameter may be nil for an empty body, or may be any
// JSON-serializable value.
//
// To send query parameters or custom headers, build a
// request.Descriptor and invoke c directly.
func Post(ctx context.Context, c Caller, url string, body interface{}) (*request.Result, error) {
	return c(ctx, &request.Descriptor{Method: "POST", URL: url, Body: body})
}

// Put uses the specified Caller to issue a PUT for the specified path.
// The body parameter may be nil for an empty body, or may be any
// JSON-serializable value.
//
// To send query parameters or custom headers, build a
// request.Descriptor and invoke c directly.
func Put(ctx context.Context, c Caller, url string, body interface{}) (*request.Result, error) {
	return c(ctx, &request.Descriptor{Method: "PUT", URL: url, Body: body})
}

// Patch uses the specified Caller to issue a PATCH for the specified
// path. The body parameter may be nil for an empty body, or may be any
// JSON-serializable value.
//
// To send query parameters or custom headers, build a
// request.Descriptor and invoke c directly.
func Patch(ctx context.Context, c Caller, url string, body interface{}) (*request.Result, error) {
	return c(ctx, &request.Descriptor{Method: "PATCH", URL: url, Body: body})
}
