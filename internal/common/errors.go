// Package common holds small helpers and sentinel errors shared across the
// storefront client. Callers should use errors.Is to match the sentinels.
package common

import "errors"

// ErrNotLoggedIn is returned by operations that require an active session.
var ErrNotLoggedIn = errors.New("not logged in")
