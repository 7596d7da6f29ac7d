package rc5

import (
	"crypto/sha256"
	"errors"
	"io"

	"golang.org/x/crypto/hkdf"

	"github.com/TheusHen/rc5/rc5/word"
)

var ErrInvalidKeyLength = errors.New("rc5: invalid derived key length")

// DeriveKey stretches a high-entropy secret into length bytes of RC5 key
// material using HKDF-SHA256. salt can be nil, info binds the key to a context.
// It is not a password hash; low-entropy secrets need a dedicated KDF.
func DeriveKey(secret, salt, info []byte, length int) ([]byte, error) {
	if length <= 0 || length > MaxKeySize {
		return nil, ErrInvalidKeyLength
	}
	hk := hkdf.New(sha256.New, secret, salt, info)
	key := make([]byte, length)
	if _, err := io.ReadFull(hk, key); err != nil {
		return nil, err
	}
	return key, nil
}

// DeriveCipher derives a key of keyLen bytes from secret and returns a Cipher for it.
func DeriveCipher[W word.Word](secret, info []byte, keyLen, rounds int) (*Cipher[W], error) {
	key, err := DeriveKey(secret, nil, info, keyLen)
	if err != nil {
		return nil, err
	}
	return New[W](key, rounds)
}
