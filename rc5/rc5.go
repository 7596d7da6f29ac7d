package rc5

import (
	"github.com/TheusHen/rc5/rc5/schedule"
	"github.com/TheusHen/rc5/rc5/word"
)

// Block is one RC5 plaintext or ciphertext unit of two words.
type Block[W word.Word] struct {
	A, B W
}

// ExpandKey returns the 2*(rounds+1) word subkey table for key.
func ExpandKey[W word.Word](key []byte, rounds int) []W {
	return schedule.Expand[W](key, rounds)
}

// Encrypt expands key and encrypts one block.
// The schedule is rebuilt on every call; use New to reuse it.
func Encrypt[W word.Word](pt Block[W], key []byte, rounds int) Block[W] {
	return EncryptWith(schedule.Expand[W](key, rounds), pt)
}

// Decrypt expands key and decrypts one block. It inverts Encrypt.
func Decrypt[W word.Word](ct Block[W], key []byte, rounds int) Block[W] {
	return DecryptWith(schedule.Expand[W](key, rounds), ct)
}

// EncryptWith encrypts pt under an already expanded subkey table s.
// The round count is taken from len(s).
func EncryptWith[W word.Word](s []W, pt Block[W]) Block[W] {
	r := tableRounds(s)
	a := word.Add(pt.A, s[0])
	b := word.Add(pt.B, s[1])
	for i := 1; i <= r; i++ {
		a = word.Add(word.RotateLeft(a^b, b), s[2*i])
		b = word.Add(word.RotateLeft(b^a, a), s[2*i+1])
	}
	return Block[W]{A: a, B: b}
}

// DecryptWith decrypts ct under an already expanded subkey table s.
func DecryptWith[W word.Word](s []W, ct Block[W]) Block[W] {
	r := tableRounds(s)
	a, b := ct.A, ct.B
	for i := r; i >= 1; i-- {
		b = word.RotateRight(word.Sub(b, s[2*i+1]), a) ^ a
		a = word.RotateRight(word.Sub(a, s[2*i]), b) ^ b
	}
	b = word.Sub(b, s[1])
	a = word.Sub(a, s[0])
	return Block[W]{A: a, B: b}
}

func tableRounds[W word.Word](s []W) int {
	if len(s) < 2 || len(s)%2 != 0 {
		panic("rc5: invalid subkey table size")
	}
	return len(s)/2 - 1
}
