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

package dispatch

import "errors"

// ErrHandlerFailure wraps any error a handler adapter surfaces, typed or
// opaque, before it becomes an InternalServerError wire response.
var ErrHandlerFailure = errors.New("dispatch: handler failure")

// ErrDuplicateRoute is returned by Register when (method, pattern) was
// already registered.
var ErrDuplicateRoute = errors.New("dispatch: route already registered")
