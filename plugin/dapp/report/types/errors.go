package types

import "errors"

var (
	// ErrNoWriteAccess the caller was never granted reporting access.
	ErrNoWriteAccess = errors.New("ErrNoWriteAccess")
	// ErrNotReportOwner only the configured owner manages grants.
	ErrNotReportOwner = errors.New("ErrNotReportOwner")
	// ErrEmptyReportKey updates need a non empty key.
	ErrEmptyReportKey = errors.New("ErrEmptyReportKey")
)
