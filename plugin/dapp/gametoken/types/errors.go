package types

import "errors"

var (
	// ErrTokenNotFound no token under the given id.
	ErrTokenNotFound = errors.New("ErrTokenNotFound")
	// ErrNotTokenOwner the caller does not hold the token.
	ErrNotTokenOwner = errors.New("ErrNotTokenOwner")
	// ErrGameStillActive receipts are locked while their source game
	// runs.
	ErrGameStillActive = errors.New("ErrGameStillActive")
	// ErrBadFactoryPayload the factory payload is not empty and not
	// three 32 byte words.
	ErrBadFactoryPayload = errors.New("ErrBadFactoryPayload")
	// ErrTokenValueOverflow a payload word exceeds int64.
	ErrTokenValueOverflow = errors.New("ErrTokenValueOverflow")
)
