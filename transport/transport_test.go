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

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSourceString(t *testing.T) {
	assert.Equal(t, "LocalServer", LocalServer.String())
	assert.Equal(t, "CloudServer", CloudServer.String())
}

func TestToHTTPString(t *testing.T) {
	w := WireResponse{
		StatusCode:    200,
		StatusMessage: "OK",
		Headers:       map[string]string{"Content-Type": "application/json"},
		Body:          `{"ok":true}`,
	}

	s := w.ToHTTPString()
	assert.Contains(t, s, "HTTP/1.1 200 OK\r\n")
	assert.Contains(t, s, "Content-Type: application/json\r\n")
	assert.Contains(t, s, "\r\n\r\n{\"ok\":true}")
}

func TestToJSONStringParsesJSONBody(t *testing.T) {
	w := WireResponse{
		StatusCode:    404,
		StatusMessage: "Not Found",
		Headers:       map[string]string{},
		Body:          `{"error":"Not Found","message":"No pattern matched for URL: /x"}`,
	}

	s := w.ToJSONString()
	assert.JSONEq(t, `{"statusCode":404,"statusMessage":"Not Found","headers":{},"body":{"error":"Not Found","message":"No pattern matched for URL: /x"}}`, s)
}

func TestToJSONStringRawBody(t *testing.T) {
	w := WireResponse{StatusCode: 200, StatusMessage: "OK", Headers: map[string]string{}, Body: "plain text"}
	s := w.ToJSONString()
	assert.JSONEq(t, `{"statusCode":200,"statusMessage":"OK","headers":{},"body":"plain text"}`, s)
}

func TestToJSONStringEmptyBody(t *testing.T) {
	w := WireResponse{StatusCode: 204, StatusMessage: "No Content", Headers: map[string]string{}}
	s := w.ToJSONString()
	assert.JSONEq(t, `{"statusCode":204,"statusMessage":"No Content","headers":{},"body":{}}`, s)
}
