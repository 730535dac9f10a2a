// Copyright 2021 The apicall Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import (
	"net/url"
	"strings"
)

// The dummy origin exists only to classify caller-supplied URL strings
// as absolute or relative. Its scheme and host can never collide with a
// legitimate HTTP target.
const (
	dummyScheme = "ftp"
	dummyHost   = "__dummy__"
)

var dummyBase = &url.URL{Scheme: dummyScheme, Host: dummyHost}

// SanitizePath forces a caller-supplied URL string to act as a path
// relative to the transport engine's configured base URL, and escapes
// the characters which would otherwise start a query string or
// fragment.
//
// A string which resolves to an origin other than the dummy origin, or
// whose resolved absolute form is identical to the input (meaning the
// caller supplied a fully-qualified absolute URL rather than a path),
// is prefixed with a forward slash. The engine then treats it as a
// literal path segment under its own base URL, so an absolute URL can
// never silently redirect the request to another host.
//
// Every literal '?' and '#' in the result is replaced with its
// percent-encoded form ('%3F', '%23'), keeping the engine from
// interpreting path characters as the start of a query string or
// fragment.
func SanitizePath(raw string) string {
	if !provablyRelative(raw) {
		raw = "/" + raw
	}
	raw = strings.ReplaceAll(raw, "?", "%3F")
	return strings.ReplaceAll(raw, "#", "%23")
}

// provablyRelative reports whether raw is demonstrably a relative
// reference. The test is a heuristic: raw is resolved against the dummy
// origin and inspected. Strings the URL parser rejects are treated as
// not provably relative, which fails safe toward the base origin.
func provablyRelative(raw string) bool {
	ref, err := url.Parse(raw)
	if err != nil {
		return false
	}
	resolved := dummyBase.ResolveReference(ref)
	if resolved.Scheme != dummyScheme || resolved.Host != dummyHost {
		return false
	}
	return resolved.String() != raw
}
