// Copyright 2021 The apicall Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package apicall

import (
	"context"
	"testing"

	"github.com/gogama/apicall/engine"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestGet(t *testing.T) {
	eng := newMockEngine(t)
	eng.On("Send", mock.Anything, mock.MatchedBy(func(r *engine.Request) bool {
		return r.Method == "GET" && r.URL == "/foo" && r.Body == nil
	})).Return(okResponse(""), nil).Once()
	c := newMockCaller(t, eng)
	result, err := Get(context.Background(), c, "/foo")
	assert.NotNil(t, result)
	assert.NoError(t, err)
	eng.AssertExpectations(t)
}

func TestDelete(t *testing.T) {
	eng := newMockEngine(t)
	eng.On("Send", mock.Anything, mock.MatchedBy(func(r *engine.Request) bool {
		return r.Method == "DELETE" && r.URL == "/foo" && r.Body == nil
	})).Return(okResponse(""), nil).Once()
	c := newMockCaller(t, eng)
	result, err := Delete(context.Background(), c, "/foo")
	assert.NotNil(t, result)
	assert.NoError(t, err)
	eng.AssertExpectations(t)
}

func TestPost(t *testing.T) {
	t.Run("with body", func(t *testing.T) {
		eng := newMockEngine(t)
		eng.On("Send", mock.Anything, mock.MatchedBy(func(r *engine.Request) bool {
			return r.Method == "POST" && r.URL == "/bar" && string(r.Body) == `{"k":"v"}`
		})).Return(okResponse(""), nil).Once()
		c := newMockCaller(t, eng)
		result, err := Post(context.Background(), c, "/bar", map[string]string{"k": "v"})
		assert.NotNil(t, result)
		assert.NoError(t, err)
		eng.AssertExpectations(t)
	})
	t.Run("nil body", func(t *testing.T) {
		eng := newMockEngine(t)
		eng.On("Send", mock.Anything, mock.MatchedBy(func(r *engine.Request) bool {
			return r.Method == "POST" && r.Body == nil
		})).Return(okResponse(""), nil).Once()
		c := newMockCaller(t, eng)
		result, err := Post(context.Background(), c, "/bar", nil)
		assert.NotNil(t, result)
		assert.NoError(t, err)
		eng.AssertExpectations(t)
	})
}

func TestPut(t *testing.T) {
	eng := newMockEngine(t)
	eng.On("Send", mock.Anything, mock.MatchedBy(func(r *engine.Request) bool {
		return r.Method == "PUT" && string(r.Body) == `[1,2]`
	})).Return(okResponse(""), nil).Once()
	c := newMockCaller(t, eng)
	result, err := Put(context.Background(), c, "/baz", []int{1, 2})
	assert.NotNil(t, result)
	assert.NoError(t, err)
	eng.AssertExpectations(t)
}

func TestPatch(t *testing.T) {
	eng := newMockEngine(t)
	eng.On("Send", mock.Anything, mock.MatchedBy(func(r *engine.Request) bool {
		return r.Method == "PATCH" && string(r.Body) == `{"op":"replace"}`
	})).Return(okResponse(""), nil).Once()
	c := newMockCaller(t, eng)
	result, err := Patch(context.Background(), c, "/baz", map[string]string{"op": "replace"})
	assert.NotNil(t, result)
	assert.NoError(t, err)
	eng.AssertExpectations(t)
}
