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

import "github.com/bytedance/sonic"

// JSON is the Serializer for user-defined body types: it marshals/unmarshals
// T as a JSON document via sonic.
type JSON[T any] struct{}

// NewJSON constructs the JSON serializer for T. T is typically a struct;
// using it for a Primitive works too but PrimitiveSerializer is cheaper and
// matches the non-JSON textual form expected for scalars.
func NewJSON[T any]() JSON[T] { return JSON[T]{} }

func (JSON[T]) Serialize(value T) (string, error) {
	b, err := sonic.Marshal(value)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (JSON[T]) Deserialize(text string) (T, error) {
	var value T
	if text == "" {
		return value, nil
	}
	if err := sonic.Unmarshal([]byte(text), &value); err != nil {
		return value, err
	}
	return value, nil
}
