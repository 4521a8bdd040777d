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

import "strings"

// URLDecode walks text byte by byte, substituting %XX hex escapes and '+'
// for space. A malformed '%' (not followed by two hex digits) is kept
// literally rather than rejected — net/url.QueryUnescape errors on that
// case, so this is a small hand-rolled scan instead of a stdlib call.
func URLDecode(text string) string {
	if !strings.ContainsAny(text, "%+") {
		return text
	}

	var b strings.Builder
	b.Grow(len(text))

	for i := 0; i < len(text); i++ {
		switch c := text[i]; c {
		case '+':
			b.WriteByte(' ')
		case '%':
			if i+2 < len(text) && isHex(text[i+1]) && isHex(text[i+2]) {
				b.WriteByte(hexByte(text[i+1], text[i+2]))
				i += 2
			} else {
				b.WriteByte('%')
			}
		default:
			b.WriteByte(c)
		}
	}

	return b.String()
}

func isHex(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

func hexDigit(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	default: // 'A'-'F'
		return c - 'A' + 10
	}
}

func hexByte(hi, lo byte) byte {
	return hexDigit(hi)<<4 | hexDigit(lo)
}
