// Package matrix provides the dense float64 table used as a gain matrix.
//
// The package is intentionally small:
//
//   - Matrix: a minimal interface (Rows/Cols/At/Set/Clone) so callers can plug
//     their own storage.
//   - Dense: a row-major implementation with bounds-checked accessors and a
//     NaN/Inf guard on Set.
//   - Validators: shape and numeric-policy checks shared by consumers.
//
// No accessor panics on user input; all failures are sentinel errors from
// errors.go and can be matched with errors.Is.
package matrix
