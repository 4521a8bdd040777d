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

package transport

import "github.com/bytedance/sonic"

// jsonEnvelope is the shape ToJSONString renders: statusCode, statusMessage,
// headers, and body, where body is the parsed JSON value if Body is valid
// JSON, or the raw text otherwise.
type jsonEnvelope struct {
	StatusCode    uint              `json:"statusCode"`
	StatusMessage string            `json:"statusMessage"`
	Headers       map[string]string `json:"headers"`
	Body          any               `json:"body"`
}

// ToJSONString renders w as a single JSON document. If w.Body parses as
// JSON, the parsed value is embedded; otherwise the raw text is embedded as
// a JSON string. An empty body renders as {}.
func (w WireResponse) ToJSONString() string {
	env := jsonEnvelope{
		StatusCode:    w.StatusCode,
		StatusMessage: w.StatusMessage,
		Headers:       w.Headers,
	}

	switch {
	case w.Body == "":
		env.Body = map[string]any{}
	default:
		var parsed any
		if err := sonic.UnmarshalString(w.Body, &parsed); err == nil {
			env.Body = parsed
		} else {
			env.Body = w.Body
		}
	}

	out, _ := sonic.MarshalString(env)
	return out
}
