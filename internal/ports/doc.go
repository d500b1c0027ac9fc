// Package ports defines the interfaces that connect the qrship pipeline to
// the collaborators it does not implement itself.
//
// # Port Interfaces
//
//   - [SymbolEncoder]: turns framed bytes plus an error-correction level into
//     a square module grid (the QR symbol math)
//
// The pipeline (pkg/matrix, pkg/qrship) depends only on these interfaces.
// internal/adapters/qrcode provides the production implementation; tests
// substitute fakes that record their input or fail on demand.
package ports
