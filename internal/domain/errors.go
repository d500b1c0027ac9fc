package domain

import (
	"errors"
	"fmt"
)

// Errors returned across the qrship API. Check them with errors.Is.
var (
	// ErrNotEncodable is the parent of every "payload cannot be turned into
	// symbols" condition. The caller must surface it and never truncate.
	ErrNotEncodable = errors.New("qrship: payload not encodable")

	// ErrEmptyPayload is returned for a zero-length payload. No symbol is
	// produced so nothing scannable-but-meaningless reaches the screen.
	ErrEmptyPayload = fmt.Errorf("%w: empty payload", ErrNotEncodable)

	// ErrPayloadTooLarge is returned when the payload exceeds the total size cap.
	ErrPayloadTooLarge = fmt.Errorf("%w: payload exceeds total size cap", ErrNotEncodable)

	// ErrTooManyParts is returned when chunking would need more than the part cap.
	ErrTooManyParts = fmt.Errorf("%w: payload needs too many parts", ErrNotEncodable)

	// ErrOddLength is returned by hex decoding when the digit count is odd.
	ErrOddLength = errors.New("qrship: odd length hex string")

	// ErrInvalidHex is returned by hex decoding for a non-hex character.
	ErrInvalidHex = errors.New("qrship: invalid hex character")

	// ErrNoScannableSymbols is returned alongside a sequence in which every
	// symbol is an encode-failure sentinel.
	ErrNoScannableSymbols = errors.New("qrship: no scannable symbols")

	// ErrInvalidConfig is returned when configuration validation fails.
	ErrInvalidConfig = errors.New("qrship: invalid configuration")

	// ErrMalformedFrame is returned when framed bytes do not carry a valid header.
	ErrMalformedFrame = errors.New("qrship: malformed frame")
)
