// Package rc5 implements the RC5 parametric block cipher.
//
// RC5-w/r/b is parameterised by its word size w (8, 16, 32 or 64 bits), its
// round count r and its key length b. A block is a pair of words, so the block
// size is 2w bits.
//
// Design goals:
//   - Word size chosen at compile time via a type parameter
//   - All word arithmetic wraps modulo 2^w and never faults
//   - Pure functions: Encrypt, Decrypt and ExpandKey share no state
//   - A cached-schedule Cipher satisfying crypto/cipher.Block
//
// No padding, modes of operation or authentication are provided.
package rc5
