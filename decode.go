// Copyright 2021 The apicall Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package apicall

import (
	"encoding/json"
)

// protoKey is the prototype-link property name guarded against during
// response decoding.
const protoKey = "__proto__"

// A decoder turns raw response body text into a generic JSON tree. An
// empty body yields nil rather than a decode error, matching how an
// absent body is represented. Decode errors from encoding/json are
// returned unwrapped.
type decoder func(text string) (interface{}, error)

// newDecoder derives the decoder for a Caller, once, at construction
// time. Unless allowProto is set, every object key named "__proto__" is
// stripped from the decoded tree. The standard JSON codec has no
// per-key decode hook, so the guard runs as a walk over the decoded
// tree.
func newDecoder(allowProto bool) decoder {
	return func(text string) (interface{}, error) {
		if text == "" {
			return nil, nil
		}
		var tree interface{}
		if err := json.Unmarshal([]byte(text), &tree); err != nil {
			return nil, err
		}
		if !allowProto {
			tree = stripProto(tree)
		}
		return tree, nil
	}
}

func stripProto(tree interface{}) interface{} {
	switch x := tree.(type) {
	case map[string]interface{}:
		for key, value := range x {
			if key == protoKey {
				delete(x, key)
				continue
			}
			x[key] = stripProto(value)
		}
	case []interface{}:
		for i, el := range x {
			x[i] = stripProto(el)
		}
	}
	return tree
}
