// Package services contains the application services the Flicksy views
// are built on: authentication, the feed, discovery (search and
// trending), verification requests, and the admin dashboard. Each service
// performs the form-level validation the UI surfaces inline, then issues
// the request through the API client; it never touches the credential
// itself, the session manager injects it at the transport.
package services

import "errors"

// ErrValidation marks bad form input caught before any network call.
// The wrapped message is the inline text shown next to the field.
var ErrValidation = errors.New("validation error")
