// Package schedule implements the RC5 key expansion.
//
// Expand turns a key of any length into the subkey table S consumed by the
// round function. S holds 2*(r+1) words and depends only on the key, the
// round count and the word width. The intermediate array L built from the
// key bytes never leaves Expand.
package schedule

import "github.com/TheusHen/rc5/rc5/word"

// mixPasses is the number of passes the mixing step makes over the larger of S and L.
const mixPasses = 3

// Size returns the subkey table size t = 2*(rounds+1).
func Size(rounds int) int { return 2 * (rounds + 1) }

// KeyWords returns c = max(1, ceil(8*keyLen/w)), the number of words needed to hold a key of keyLen bytes.
func KeyWords[W word.Word](keyLen int) int {
	u := word.Bytes[W]()
	c := (keyLen + u - 1) / u
	if c < 1 {
		c = 1
	}
	return c
}

// Expand derives the subkey table for key and rounds. Any key length,
// including zero, is accepted. Expand panics if rounds is negative.
func Expand[W word.Word](key []byte, rounds int) []W {
	if rounds < 0 {
		panic("schedule: negative round count")
	}
	l := pack[W](key)
	s := initTable[W](Size(rounds))
	mix(s, l)
	clear(l)
	return s
}

// pack loads key into little-endian words, last byte first.
func pack[W word.Word](key []byte) []W {
	u := word.Bytes[W]()
	l := make([]W, KeyWords[W](len(key)))
	for i := len(key) - 1; i >= 0; i-- {
		l[i/u] = word.Add(word.RotateLeft(l[i/u], 8), word.FromByte[W](key[i]))
	}
	return l
}

// initTable fills S with the arithmetic progression P, P+Q, P+2Q, ...
func initTable[W word.Word](t int) []W {
	p, q := word.Magic[W]()
	s := make([]W, t)
	s[0] = p
	for i := 1; i < t; i++ {
		s[i] = word.Add(s[i-1], q)
	}
	return s
}

// mix folds the key words in l into s. Both indices advance by one per step.
func mix[W word.Word](s, l []W) {
	t, c := len(s), len(l)
	n := mixPasses * max(t, c)

	var a, b W
	i, j := 0, 0
	for k := 0; k < n; k++ {
		a = word.RotateLeft(word.Add(word.Add(s[i], a), b), 3)
		s[i] = a
		b = word.RotateLeft(word.Add(word.Add(l[j], a), b), word.Add(a, b))
		l[j] = b
		i = (i + 1) % t
		j = (j + 1) % c
	}
}
