// Package auth issues and validates the HS256 bearer tokens that carry a
// caller's email address.
package auth
