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

// Package codec supplies the Serializer contract the rest of this module
// uses to turn typed handler bodies into wire text and back. It plays the
// role the source's compile-time template dispatch over T played: each
// handler adapter closes over the Serializer[T] for its own T at
// registration time, so there is never a runtime type switch over handler
// bodies.
package codec

import "errors"

// ErrUnsupportedType is returned by a Serializer that cannot represent a
// given Go type (for example, a primitive serializer handed a struct). The
// primitive serializer also returns it for text that is not a boolean.
var ErrUnsupportedType = errors.New("codec: unsupported type")

// Serializer converts values of type T to and from their textual wire
// representation. Implementations must be safe for concurrent use; the
// dispatcher calls them from arbitrary worker goroutines.
type Serializer[T any] interface {
	// Serialize renders value as wire text.
	Serialize(value T) (string, error)
	// Deserialize parses wire text back into a T.
	Deserialize(text string) (T, error)
}

// Unit is the body type for envelopes and handlers that carry no payload.
// It serializes to the empty string, matching spec's "T is unit" rule.
type Unit struct{}

// unitSerializer implements Serializer[Unit].
type unitSerializer struct{}

func (unitSerializer) Serialize(Unit) (string, error)        { return "", nil }
func (unitSerializer) Deserialize(string) (Unit, error)       { return Unit{}, nil }

// UnitSerializer returns the Serializer for the no-body marker type.
func UnitSerializer() Serializer[Unit] { return unitSerializer{} }
