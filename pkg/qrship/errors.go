package qrship

import "github.com/bft-labs/qrship/internal/domain"

// Errors returned by this package. Check them with errors.Is.
var (
	ErrNotEncodable       = domain.ErrNotEncodable
	ErrEmptyPayload       = domain.ErrEmptyPayload
	ErrPayloadTooLarge    = domain.ErrPayloadTooLarge
	ErrTooManyParts       = domain.ErrTooManyParts
	ErrOddLength          = domain.ErrOddLength
	ErrInvalidHex         = domain.ErrInvalidHex
	ErrNoScannableSymbols = domain.ErrNoScannableSymbols
	ErrInvalidConfig      = domain.ErrInvalidConfig
	ErrMalformedFrame     = domain.ErrMalformedFrame
)
