package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	// ErrWrongAccessCode is returned when a poll presents an access code
	// whose HMAC does not match the stored one.
	ErrWrongAccessCode = errors.New("wrong access code")

	// ErrAuthRequestAnswered is returned when answering a request that has
	// already left the pending state.
	ErrAuthRequestAnswered = errors.New("auth request already answered")

	// ErrAuthRequestExpired is returned when polling or answering a request
	// past its deadline.
	ErrAuthRequestExpired = errors.New("auth request expired")

	// ErrAuthRequestConsumed is returned when polling an approved request
	// whose payload was already collected.
	ErrAuthRequestConsumed = errors.New("auth request already consumed")
)
