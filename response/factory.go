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

package response

import (
	"github.com/kestrel-edge/httpcore/codec"
	"github.com/kestrel-edge/httpcore/status"
)

// Ok builds a 200 OK envelope carrying body.
func Ok[T any](body T) Response[T] { return New(status.Ok, body) }

// Created builds a 201 Created envelope carrying body.
func Created[T any](body T) Response[T] { return New(status.Created, body) }

// Accepted builds a 202 Accepted envelope carrying body.
func Accepted[T any](body T) Response[T] { return New(status.Accepted, body) }

// BadRequest builds a 400 Bad Request envelope carrying body.
func BadRequest[T any](body T) Response[T] { return New(status.BadRequest, body) }

// Unauthorized builds a 401 Unauthorized envelope carrying body.
func Unauthorized[T any](body T) Response[T] { return New(status.Unauthorized, body) }

// Forbidden builds a 403 Forbidden envelope carrying body.
func Forbidden[T any](body T) Response[T] { return New(status.Forbidden, body) }

// NotFound builds a 404 Not Found envelope carrying body.
func NotFound[T any](body T) Response[T] { return New(status.NotFound, body) }

// MethodNotAllowed builds a 405 Method Not Allowed envelope carrying body.
func MethodNotAllowed[T any](body T) Response[T] { return New(status.MethodNotAllowed, body) }

// Conflict builds a 409 Conflict envelope carrying body.
func Conflict[T any](body T) Response[T] { return New(status.Conflict, body) }

// InternalServerError builds a 500 Internal Server Error envelope carrying body.
func InternalServerError[T any](body T) Response[T] { return New(status.InternalServerError, body) }

// ServiceUnavailable builds a 503 Service Unavailable envelope carrying body.
func ServiceUnavailable[T any](body T) Response[T] { return New(status.ServiceUnavailable, body) }

// NoContent builds a 204 No Content envelope with no body.
func NoContent() Response[codec.Unit] { return New(status.NoContent, codec.Unit{}) }

// OkEmpty builds a 200 OK envelope with no body, for handlers that signal
// success without returning data.
func OkEmpty() Response[codec.Unit] { return New(status.Ok, codec.Unit{}) }
