package rc5

import (
	"crypto/cipher"
	"strconv"

	"github.com/TheusHen/rc5/rc5/word"
)

const (
	// DefaultRounds is the nominal round count for RC5-32.
	DefaultRounds = 12

	// DefaultKeySize is the nominal key length in bytes for RC5-32/12.
	DefaultKeySize = 16

	// MaxKeySize bounds the key accepted by NewCipher.
	MaxKeySize = 255

	// BlockSize32 is the RC5-32 block size in bytes.
	BlockSize32 = 8
)

// RoundsError reports a negative round count.
type RoundsError int

func (r RoundsError) Error() string {
	return "rc5: invalid round count " + strconv.Itoa(int(r))
}

// KeySizeError reports a key NewCipher will not accept.
type KeySizeError int

func (k KeySizeError) Error() string {
	return "rc5: invalid key size " + strconv.Itoa(int(k))
}

// Cipher is RC5 with the subkey table expanded once for a fixed key and
// round count. It is immutable and safe for concurrent use.
//
// As a cipher.Block it works on little-endian blocks of 2*w/8 bytes, the
// byte order of the RC5 reference vectors.
type Cipher[W word.Word] struct {
	s      []W
	rounds int
}

// New expands key for the given round count.
func New[W word.Word](key []byte, rounds int) (*Cipher[W], error) {
	if rounds < 0 {
		return nil, RoundsError(rounds)
	}
	return &Cipher[W]{s: ExpandKey[W](key, rounds), rounds: rounds}, nil
}

// NewCipher returns RC5-32/12 keyed with key, which must be 1 to MaxKeySize bytes.
func NewCipher(key []byte) (cipher.Block, error) {
	if k := len(key); k == 0 || k > MaxKeySize {
		return nil, KeySizeError(k)
	}
	c, err := New[uint32](key, DefaultRounds)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Rounds returns the round count.
func (c *Cipher[W]) Rounds() int { return c.rounds }

// Subkeys returns a copy of the expanded table.
func (c *Cipher[W]) Subkeys() []W {
	s := make([]W, len(c.s))
	copy(s, c.s)
	return s
}

// EncryptBlock encrypts one word-level block.
func (c *Cipher[W]) EncryptBlock(pt Block[W]) Block[W] { return EncryptWith(c.s, pt) }

// DecryptBlock decrypts one word-level block.
func (c *Cipher[W]) DecryptBlock(ct Block[W]) Block[W] { return DecryptWith(c.s, ct) }

func (c *Cipher[W]) BlockSize() int { return 2 * word.Bytes[W]() }

func (c *Cipher[W]) Encrypt(dst, src []byte) {
	c.checkBuffers(dst, src)
	putBlock(dst, c.EncryptBlock(loadBlock[W](src)))
}

func (c *Cipher[W]) Decrypt(dst, src []byte) {
	c.checkBuffers(dst, src)
	putBlock(dst, c.DecryptBlock(loadBlock[W](src)))
}

func (c *Cipher[W]) checkBuffers(dst, src []byte) {
	n := c.BlockSize()
	if len(src) < n {
		panic("rc5: input not full block")
	}
	if len(dst) < n {
		panic("rc5: output not full block")
	}
}

// loadBlock reads A then B, each little-endian.
func loadBlock[W word.Word](src []byte) Block[W] {
	u := word.Bytes[W]()
	return Block[W]{A: loadWord[W](src[:u]), B: loadWord[W](src[u : 2*u])}
}

func putBlock[W word.Word](dst []byte, blk Block[W]) {
	u := word.Bytes[W]()
	putWord(dst[:u], blk.A)
	putWord(dst[u:2*u], blk.B)
}

func loadWord[W word.Word](b []byte) W {
	var v W
	for k := len(b) - 1; k >= 0; k-- {
		v = word.RotateLeft(v, 8) | word.FromByte[W](b[k])
	}
	return v
}

func putWord[W word.Word](b []byte, v W) {
	for k := range b {
		b[k] = byte(v)
		v = word.RotateRight(v, 8)
	}
}
