// Copyright 2026 The Kestrel Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrimitiveSerializerInt(t *testing.T) {
	s := PrimitiveSerializer[int]()
	text, err := s.Serialize(42)
	require.NoError(t, err)
	assert.Equal(t, "42", text)

	v, err := s.Deserialize("42")
	require.NoError(t, err)
	assert.Equal(t, 42, v)

	_, err = s.Deserialize("not-a-number")
	assert.Error(t, err)
}

func TestPrimitiveSerializerBool(t *testing.T) {
	s := PrimitiveSerializer[bool]()

	text, err := s.Serialize(true)
	require.NoError(t, err)
	assert.Equal(t, "true", text)

	v, err := s.Deserialize("1")
	require.NoError(t, err)
	assert.True(t, v)

	v, err = s.Deserialize("false")
	require.NoError(t, err)
	assert.False(t, v)
}

func TestPrimitiveSerializerString(t *testing.T) {
	s := PrimitiveSerializer[string]()
	text, err := s.Serialize("hello")
	require.NoError(t, err)
	assert.Equal(t, "hello", text)
}

type widget struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestJSONSerializer(t *testing.T) {
	s := NewJSON[widget]()

	text, err := s.Serialize(widget{Name: "bolt", Count: 3})
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"bolt","count":3}`, text)

	w, err := s.Deserialize(text)
	require.NoError(t, err)
	assert.Equal(t, widget{Name: "bolt", Count: 3}, w)
}

func TestUnitSerializer(t *testing.T) {
	s := UnitSerializer()
	text, err := s.Serialize(Unit{})
	require.NoError(t, err)
	assert.Equal(t, "", text)
}
