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

// Package status enumerates the IANA HTTP status codes this module speaks
// and the class predicates (informational/success/redirect/client/server
// error) that the dispatcher and response envelope rely on.
package status

import "net/http"

// Status is an HTTP status code. Values line up 1:1 with net/http's status
// constants so conversion in either direction is a plain cast.
type Status int

// The codes used idiomatically across the envelope factories and dispatcher
// error paths. This is not every code in the IANA registry, but every one
// this module (or a handler built on it) can plausibly return.
const (
	Continue           Status = Status(http.StatusContinue)
	SwitchingProtocols Status = Status(http.StatusSwitchingProtocols)
	Processing         Status = Status(http.StatusProcessing)
	EarlyHints         Status = Status(http.StatusEarlyHints)

	Ok                   Status = Status(http.StatusOK)
	Created              Status = Status(http.StatusCreated)
	Accepted             Status = Status(http.StatusAccepted)
	NonAuthoritativeInfo Status = Status(http.StatusNonAuthoritativeInfo)
	NoContent            Status = Status(http.StatusNoContent)
	ResetContent         Status = Status(http.StatusResetContent)
	PartialContent       Status = Status(http.StatusPartialContent)
	MultiStatus          Status = Status(http.StatusMultiStatus)
	AlreadyReported      Status = Status(http.StatusAlreadyReported)
	IMUsed               Status = Status(http.StatusIMUsed)

	MultipleChoices   Status = Status(http.StatusMultipleChoices)
	MovedPermanently  Status = Status(http.StatusMovedPermanently)
	Found             Status = Status(http.StatusFound)
	SeeOther          Status = Status(http.StatusSeeOther)
	NotModified       Status = Status(http.StatusNotModified)
	UseProxy          Status = Status(http.StatusUseProxy)
	TemporaryRedirect Status = Status(http.StatusTemporaryRedirect)
	PermanentRedirect Status = Status(http.StatusPermanentRedirect)

	BadRequest                   Status = Status(http.StatusBadRequest)
	Unauthorized                 Status = Status(http.StatusUnauthorized)
	PaymentRequired              Status = Status(http.StatusPaymentRequired)
	Forbidden                    Status = Status(http.StatusForbidden)
	NotFound                     Status = Status(http.StatusNotFound)
	MethodNotAllowed             Status = Status(http.StatusMethodNotAllowed)
	NotAcceptable                Status = Status(http.StatusNotAcceptable)
	ProxyAuthRequired            Status = Status(http.StatusProxyAuthRequired)
	RequestTimeout               Status = Status(http.StatusRequestTimeout)
	Conflict                     Status = Status(http.StatusConflict)
	Gone                         Status = Status(http.StatusGone)
	LengthRequired               Status = Status(http.StatusLengthRequired)
	PreconditionFailed           Status = Status(http.StatusPreconditionFailed)
	RequestEntityTooLarge        Status = Status(http.StatusRequestEntityTooLarge)
	RequestURITooLong            Status = Status(http.StatusRequestURITooLong)
	UnsupportedMediaType         Status = Status(http.StatusUnsupportedMediaType)
	RequestedRangeNotSatisfiable Status = Status(http.StatusRequestedRangeNotSatisfiable)
	ExpectationFailed            Status = Status(http.StatusExpectationFailed)
	Teapot                       Status = Status(http.StatusTeapot)
	UnprocessableEntity          Status = Status(http.StatusUnprocessableEntity)
	Locked                       Status = Status(http.StatusLocked)
	FailedDependency             Status = Status(http.StatusFailedDependency)
	TooEarly                     Status = Status(http.StatusTooEarly)
	UpgradeRequired              Status = Status(http.StatusUpgradeRequired)
	PreconditionRequired         Status = Status(http.StatusPreconditionRequired)
	TooManyRequests              Status = Status(http.StatusTooManyRequests)
	RequestHeaderFieldsTooLarge  Status = Status(http.StatusRequestHeaderFieldsTooLarge)
	UnavailableForLegalReasons   Status = Status(http.StatusUnavailableForLegalReasons)

	InternalServerError           Status = Status(http.StatusInternalServerError)
	NotImplemented                Status = Status(http.StatusNotImplemented)
	BadGateway                    Status = Status(http.StatusBadGateway)
	ServiceUnavailable             Status = Status(http.StatusServiceUnavailable)
	GatewayTimeout                 Status = Status(http.StatusGatewayTimeout)
	HTTPVersionNotSupported         Status = Status(http.StatusHTTPVersionNotSupported)
	VariantAlsoNegotiates           Status = Status(http.StatusVariantAlsoNegotiates)
	InsufficientStorage             Status = Status(http.StatusInsufficientStorage)
	LoopDetected                    Status = Status(http.StatusLoopDetected)
	NotExtended                     Status = Status(http.StatusNotExtended)
	NetworkAuthenticationRequired   Status = Status(http.StatusNetworkAuthenticationRequired)
)

// IsInformational reports whether s is in the 1xx class.
func (s Status) IsInformational() bool { return s >= 100 && s < 200 }

// IsSuccess reports whether s is in the 2xx class.
func (s Status) IsSuccess() bool { return s >= 200 && s < 300 }

// IsRedirect reports whether s is in the 3xx class.
func (s Status) IsRedirect() bool { return s >= 300 && s < 400 }

// IsClientError reports whether s is in the 4xx class.
func (s Status) IsClientError() bool { return s >= 400 && s < 500 }

// IsServerError reports whether s is in the 5xx class.
func (s Status) IsServerError() bool { return s >= 500 && s < 600 }

// Int returns the status code as a plain int, for callers that need to hand
// it to net/http or a metrics label.
func (s Status) Int() int { return int(s) }

// ReasonPhrase returns the canonical IANA reason phrase for s, or "Unknown"
// if s is not a code this registry recognizes.
func ReasonPhrase(s Status) string {
	if text := http.StatusText(int(s)); text != "" {
		return text
	}
	return "Unknown"
}

// FromInt converts a raw status code into a Status. It never fails: any
// integer is a valid Status value, matching. ReasonPhrase simply reports
// "Unknown" for codes outside the registry above.
func FromInt(code int) Status { return Status(code) }
