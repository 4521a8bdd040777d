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

// Package convert turns the raw strings a trie match captures into the
// types a handler actually declared. Rather than reflecting into an
// arbitrary handler signature, each handler reads its path variables
// through typed getters on *Vars — the same shape as
// router/params_typed.go's Context.ParamInt/ParamUUID/etc., just backed by
// the trie's captured bindings instead of a live *http.Request.
package convert

import (
	"errors"
	"fmt"

	"github.com/kestrel-edge/httpcore/codec"
)

// ErrVarMissing is returned when a handler asks for a path variable that
// was not bound by the match.
var ErrVarMissing = errors.New("convert: variable not bound")

// ErrInvalidValue is returned when a bound variable cannot be converted to
// the requested type.
var ErrInvalidValue = errors.New("convert: invalid value")

// Vars wraps the raw {name: text} bindings a trie match produced. String,
// Char and Custom pass the bound text through URLDecode first; the boolean
// and numeric getters parse the raw bound text without decoding it.
type Vars struct {
	raw map[string]string
}

// NewVars wraps a raw binding map (as produced by trie.MatchResult.Variables).
// A nil map is treated as empty.
func NewVars(raw map[string]string) *Vars {
	if raw == nil {
		raw = map[string]string{}
	}
	return &Vars{raw: raw}
}

func (v *Vars) lookup(name string) (string, error) {
	text, ok := v.raw[name]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrVarMissing, name)
	}
	return text, nil
}

// String returns the URL-decoded text of variable name; no other transform
// is applied.
func (v *Vars) String(name string) (string, error) {
	text, err := v.lookup(name)
	if err != nil {
		return "", err
	}
	return URLDecode(text), nil
}

// Bool parses variable name as a boolean: "true"/"1" (case-insensitive) is
// true, "false"/"0" is false, anything else is ErrInvalidValue.
func (v *Vars) Bool(name string) (bool, error) {
	text, err := v.lookup(name)
	if err != nil {
		return false, err
	}

	switch toLowerASCII(text) {
	case "true", "1":
		return true, nil
	case "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("%w: %s: %q is not a boolean", ErrInvalidValue, name, text)
	}
}

// Int parses variable name as an int, using the platform's natural base-10
// width. Overflow or trailing garbage is ErrInvalidValue.
func (v *Vars) Int(name string) (int, error) { return parseSigned[int](v, name) }

// Int8 parses variable name as an int8.
func (v *Vars) Int8(name string) (int8, error) { return parseSigned[int8](v, name) }

// Int16 parses variable name as an int16.
func (v *Vars) Int16(name string) (int16, error) { return parseSigned[int16](v, name) }

// Int32 parses variable name as an int32.
func (v *Vars) Int32(name string) (int32, error) { return parseSigned[int32](v, name) }

// Int64 parses variable name as an int64.
func (v *Vars) Int64(name string) (int64, error) { return parseSigned[int64](v, name) }

// Uint parses variable name as a uint.
func (v *Vars) Uint(name string) (uint, error) { return parseUnsigned[uint](v, name) }

// Uint64 parses variable name as a uint64.
func (v *Vars) Uint64(name string) (uint64, error) { return parseUnsigned[uint64](v, name) }

// Float32 parses variable name as a float32.
func (v *Vars) Float32(name string) (float32, error) { return parseFloat[float32](v, name) }

// Float64 parses variable name as a float64.
func (v *Vars) Float64(name string) (float64, error) { return parseFloat[float64](v, name) }

// Char returns the single code unit bound to name. Length 1 returns that
// byte; length 0 returns the zero byte; anything else is parsed as an
// integer and narrowed to a byte, failing with ErrInvalidValue if it
// doesn't fit.
func (v *Vars) Char(name string) (byte, error) {
	text, err := v.lookup(name)
	if err != nil {
		return 0, err
	}

	decoded := URLDecode(text)
	switch len(decoded) {
	case 0:
		return 0, nil
	case 1:
		return decoded[0], nil
	default:
		n, err := parseSignedText[int](decoded)
		if err != nil || n < 0 || n > 255 {
			return 0, fmt.Errorf("%w: %s: %q does not narrow to a single character", ErrInvalidValue, name, text)
		}
		return byte(n), nil
	}
}

// Custom deserializes variable name through ser, for handler-declared types
// that participate in the Serializer contract.
func Custom[T any](v *Vars, name string, ser codec.Serializer[T]) (T, error) {
	var zero T

	text, err := v.lookup(name)
	if err != nil {
		return zero, err
	}

	value, err := ser.Deserialize(URLDecode(text))
	if err != nil {
		return zero, fmt.Errorf("%w: %s: %w", ErrInvalidValue, name, err)
	}

	return value, nil
}

func toLowerASCII(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}
