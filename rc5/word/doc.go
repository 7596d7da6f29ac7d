// Package word provides the fixed-width unsigned word arithmetic RC5 is built on.
//
// RC5 is parametric in its word size w. This package captures everything the
// cipher needs to know about a word:
//   - Width in bits and bytes
//   - The magic constants P and Q (derived from e and the golden ratio)
//   - Wraparound addition and subtraction modulo 2^w
//   - Circular rotation with the amount reduced modulo w
//
// Supported widths are 8, 16, 32 and 64 bits.
package word
