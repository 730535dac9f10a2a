// Copyright 2021 The apicall Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeQuery(t *testing.T) {
	testCases := []struct {
		name     string
		query    Query
		expected url.Values
	}{
		{
			name:     "nil query",
			query:    nil,
			expected: nil,
		},
		{
			name:     "empty query",
			query:    Query{},
			expected: nil,
		},
		{
			name:     "scalar string",
			query:    Query{"a": "1"},
			expected: url.Values{"a": {"1"}},
		},
		{
			name:     "scalar number converted",
			query:    Query{"n": 42},
			expected: url.Values{"n": {"42"}},
		},
		{
			name:     "scalar bool converted",
			query:    Query{"b": true},
			expected: url.Values{"b": {"true"}},
		},
		{
			name:     "nil value dropped",
			query:    Query{"a": "1", "gone": nil},
			expected: url.Values{"a": {"1"}},
		},
		{
			name:     "string slice repeats the key in order",
			query:    Query{"b": []string{"2", "3"}},
			expected: url.Values{"b": {"2", "3"}},
		},
		{
			name:     "interface slice coerces and drops nil elements",
			query:    Query{"b": []interface{}{"x", nil, 7}},
			expected: url.Values{"b": {"x", "7"}},
		},
		{
			name:  "mixed",
			query: Query{"a": "1", "b": []string{"2", "3"}, "c": nil},
			expected: url.Values{
				"a": {"1"},
				"b": {"2", "3"},
			},
		},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.expected, EncodeQuery(testCase.query))
		})
	}
}

func TestEncodeQueryWire(t *testing.T) {
	// The encoded wire form must contain one occurrence per slice
	// element, in element order.
	values := EncodeQuery(Query{"a": "1", "b": []string{"2", "3"}})
	require.NotNil(t, values)
	assert.Equal(t, "a=1&b=2&b=3", values.Encode())
}

func TestCanonicalHeader(t *testing.T) {
	testCases := []struct {
		name     string
		fields   Fields
		expected http.Header
	}{
		{
			name:     "nil fields",
			fields:   nil,
			expected: nil,
		},
		{
			name:     "empty fields",
			fields:   Fields{},
			expected: nil,
		},
		{
			name:     "string passes through",
			fields:   Fields{"X-Ham": "eggs"},
			expected: http.Header{"X-Ham": {"eggs"}},
		},
		{
			name:     "number converted",
			fields:   Fields{"X-Count": 3},
			expected: http.Header{"X-Count": {"3"}},
		},
		{
			name:     "nil value dropped",
			fields:   Fields{"X-Ham": "eggs", "X-Gone": nil},
			expected: http.Header{"X-Ham": {"eggs"}},
		},
		{
			name:     "string slice maps to multiple values",
			fields:   Fields{"X-Multi": []string{"a", "b"}},
			expected: http.Header{"X-Multi": {"a", "b"}},
		},
		{
			name:     "interface slice coerces and drops nil elements",
			fields:   Fields{"X-Multi": []interface{}{"a", nil, 2}},
			expected: http.Header{"X-Multi": {"a", "2"}},
		},
		{
			name:     "other value string converted",
			fields:   Fields{"X-Odd": struct{ A int }{1}},
			expected: http.Header{"X-Odd": {"{1}"}},
		},
		{
			name:     "names canonicalized",
			fields:   Fields{"content-type": "application/json"},
			expected: http.Header{"Content-Type": {"application/json"}},
		},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.expected, CanonicalHeader(testCase.fields))
		})
	}
}
