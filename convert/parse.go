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

package convert

import (
	"fmt"
	"strconv"
)

type signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

type unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

type float interface {
	~float32 | ~float64
}

func bitSizeOf[T signed | unsigned | float]() int {
	var zero T
	switch any(zero).(type) {
	case int8, uint8:
		return 8
	case int16, uint16:
		return 16
	case int32, uint32, float32:
		return 32
	case int64, uint64, float64:
		return 64
	default: // int, uint: platform width, strconv accepts 0 for "int size"
		return 0
	}
}

func parseSigned[T signed](v *Vars, name string) (T, error) {
	text, err := v.lookup(name)
	if err != nil {
		var zero T
		return zero, err
	}
	return parseSignedText[T](text)
}

func parseSignedText[T signed](text string) (T, error) {
	n, err := strconv.ParseInt(text, 10, bitSizeOf[T]())
	if err != nil {
		var zero T
		return zero, fmt.Errorf("%w: %q: %w", ErrInvalidValue, text, err)
	}
	return T(n), nil
}

func parseUnsigned[T unsigned](v *Vars, name string) (T, error) {
	var zero T
	text, err := v.lookup(name)
	if err != nil {
		return zero, err
	}
	n, err := strconv.ParseUint(text, 10, bitSizeOf[T]())
	if err != nil {
		return zero, fmt.Errorf("%w: %s: %q: %w", ErrInvalidValue, name, text, err)
	}
	return T(n), nil
}

func parseFloat[T float](v *Vars, name string) (T, error) {
	var zero T
	text, err := v.lookup(name)
	if err != nil {
		return zero, err
	}
	n, err := strconv.ParseFloat(text, bitSizeOf[T]())
	if err != nil {
		return zero, fmt.Errorf("%w: %s: %q: %w", ErrInvalidValue, name, text, err)
	}
	return T(n), nil
}
