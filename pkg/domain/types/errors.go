package types

import "github.com/m-mizutani/goerr/v2"

var (
	ErrInvalidOption    = goerr.New("invalid option")
	ErrValidationFailed = goerr.New("validation failed")
	ErrInvalidPayload   = goerr.New("invalid webhook payload")
	ErrBadSignature     = goerr.New("webhook signature mismatch")
)
