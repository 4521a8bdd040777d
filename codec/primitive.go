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
	"fmt"
	"strconv"
)

// Primitive lists the scalar and string-like Go types the built-in
// serializer understands directly: numbers render base-10, booleans render
// true/false, strings render verbatim. Only the predeclared types themselves
// are handled: a named type whose underlying type is one of these satisfies
// the constraint, but the serializer returns ErrUnsupportedType for it.
type Primitive interface {
	~string | ~bool |
		~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// primitiveSerializer is the Serializer[T] for any Primitive T. Constructed
// via PrimitiveSerializer so handler registration never has to hand-write
// one of these per scalar type.
type primitiveSerializer[T Primitive] struct{}

// PrimitiveSerializer returns a Serializer for a primitive scalar or string
// type, dispatching on the dynamic type of the value at each call (the
// interface-based analogue of the source's compile-time template overloads).
func PrimitiveSerializer[T Primitive]() Serializer[T] {
	return primitiveSerializer[T]{}
}

func (primitiveSerializer[T]) Serialize(value T) (string, error) {
	switch v := any(value).(type) {
	case string:
		return v, nil
	case bool:
		if v {
			return "true", nil
		}
		return "false", nil
	case int:
		return strconv.Itoa(v), nil
	case int8:
		return strconv.FormatInt(int64(v), 10), nil
	case int16:
		return strconv.FormatInt(int64(v), 10), nil
	case int32:
		return strconv.FormatInt(int64(v), 10), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case uint:
		return strconv.FormatUint(uint64(v), 10), nil
	case uint8:
		return strconv.FormatUint(uint64(v), 10), nil
	case uint16:
		return strconv.FormatUint(uint64(v), 10), nil
	case uint32:
		return strconv.FormatUint(uint64(v), 10), nil
	case uint64:
		return strconv.FormatUint(v, 10), nil
	case float32:
		return strconv.FormatFloat(float64(v), 'g', -1, 32), nil
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64), nil
	default:
		return "", fmt.Errorf("%w: %T", ErrUnsupportedType, value)
	}
}

func (primitiveSerializer[T]) Deserialize(text string) (T, error) {
	var zero T
	switch any(zero).(type) {
	case string:
		return any(text).(T), nil
	case bool:
		b, err := parseBool(text)
		if err != nil {
			return zero, err
		}
		return any(b).(T), nil
	case int:
		n, err := strconv.Atoi(text)
		if err != nil {
			return zero, err
		}
		return any(n).(T), nil
	case int8:
		n, err := strconv.ParseInt(text, 10, 8)
		if err != nil {
			return zero, err
		}
		return any(int8(n)).(T), nil
	case int16:
		n, err := strconv.ParseInt(text, 10, 16)
		if err != nil {
			return zero, err
		}
		return any(int16(n)).(T), nil
	case int32:
		n, err := strconv.ParseInt(text, 10, 32)
		if err != nil {
			return zero, err
		}
		return any(int32(n)).(T), nil
	case int64:
		n, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return zero, err
		}
		return any(n).(T), nil
	case uint:
		n, err := strconv.ParseUint(text, 10, 64)
		if err != nil {
			return zero, err
		}
		return any(uint(n)).(T), nil
	case uint8:
		n, err := strconv.ParseUint(text, 10, 8)
		if err != nil {
			return zero, err
		}
		return any(uint8(n)).(T), nil
	case uint16:
		n, err := strconv.ParseUint(text, 10, 16)
		if err != nil {
			return zero, err
		}
		return any(uint16(n)).(T), nil
	case uint32:
		n, err := strconv.ParseUint(text, 10, 32)
		if err != nil {
			return zero, err
		}
		return any(uint32(n)).(T), nil
	case uint64:
		n, err := strconv.ParseUint(text, 10, 64)
		if err != nil {
			return zero, err
		}
		return any(n).(T), nil
	case float32:
		f, err := strconv.ParseFloat(text, 32)
		if err != nil {
			return zero, err
		}
		return any(float32(f)).(T), nil
	case float64:
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return zero, err
		}
		return any(f).(T), nil
	default:
		return zero, fmt.Errorf("%w: %T", ErrUnsupportedType, zero)
	}
}

func parseBool(text string) (bool, error) {
	switch text {
	case "true", "True", "TRUE", "1":
		return true, nil
	case "false", "False", "FALSE", "0":
		return false, nil
	default:
		return false, fmt.Errorf("%w: %q is not a boolean", ErrUnsupportedType, text)
	}
}
