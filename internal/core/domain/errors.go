package domain

import "errors"

// ErrUserNotFound is how the transport layer reports an absent user.
// Repositories signal absence with a nil *User instead.
var ErrUserNotFound = errors.New("user not found")

var ErrInvalidID = errors.New("invalid user id")
var ErrForbidden = errors.New("access forbidden")
