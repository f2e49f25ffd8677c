package domain

import "errors"

var (
	// ErrInvalidInput covers malformed or missing registration fields.
	ErrInvalidInput = errors.New("invalid input")
	// ErrUserExists is returned when the unique name or email constraint fires.
	ErrUserExists = errors.New("user already exists")
	// ErrUserNotFound is returned when a user lookup matches no record.
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidCredentials is returned for any login failure. Unknown email
	// and wrong password map to the same error on purpose.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidToken covers every token verification failure: malformed,
	// bad signature, expired. Callers must not learn which check failed.
	ErrInvalidToken = errors.New("invalid token")
	// ErrJobNotFound is returned when the upstream knows no job with that id.
	ErrJobNotFound = errors.New("job not found")
	// ErrUpstream wraps failures of the third-party jobs API.
	ErrUpstream = errors.New("upstream jobs api failure")
)
