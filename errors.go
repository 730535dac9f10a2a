// Copyright 2021 The apicall Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package apicall

import (
	"fmt"
)

// A StatusError is returned by a Caller when the response status code
// falls outside the [200, 300) success range. It is the only error
// type this package defines and raises; configuration, transport, and
// decode errors all propagate from their source unwrapped.
type StatusError struct {
	// StatusCode is the HTTP status code of the failed response, e.g.
	// 404.
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("Status code %d was returned.", e.StatusCode)
}
