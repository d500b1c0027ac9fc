// Package domain contains the core value types and error conditions shared by
// every stage of the qrship pipeline.
//
// It has no dependencies on the QR encoder, the terminal, or logging. The
// pipeline stages (chunk planning, framing, matrix generation, rendering) live
// in pkg/ and depend on this package, never the other way round.
//
// # Contents
//
//   - [ECCLevel]: QR error-correction tier passed explicitly to the encoder
//   - Sentinel errors, checked with errors.Is
package domain
