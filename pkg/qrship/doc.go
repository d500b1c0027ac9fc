// Package qrship splits a payload into a sequence of QR codes that a phone
// camera can scan one after another, and renders them as terminal text.
//
// # Basic Usage
//
//	enc, err := qrship.New(qrship.DefaultConfig())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	symbols, err := enc.EncodeHex(signedTxHex)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, s := range symbols {
//	    fmt.Printf("Part %d of %d\n%s", s.Part(), s.TotalParts(), s.Robust())
//	}
//
// # Framing
//
// A payload of at most MaxChunkLen bytes becomes one symbol carrying the raw
// bytes. Larger payloads are cut into MaxChunkLen slices and every slice is
// prefixed with its position, "P<part>/<total>:" by default. A scanner
// collects all parts in any order, strips the headers, and joins the
// payloads in part order; a missing part means the payload cannot be
// rebuilt.
//
// # Failures
//
// Hex input is validated strictly ([ErrOddLength], [ErrInvalidHex]). Empty
// and oversized payloads yield no symbols and an error wrapping
// [ErrNotEncodable]. A chunk the QR encoder cannot represent becomes a
// sentinel symbol (Size 0) at its position, so the sequence length never
// shrinks; use [Failed] and [Scannable] to inspect the result.
//
// # Dependency Injection
//
//	enc, err := qrship.New(cfg,
//	    qrship.WithLogger(logger),
//	    qrship.WithSymbolEncoder(fake),
//	)
package qrship
