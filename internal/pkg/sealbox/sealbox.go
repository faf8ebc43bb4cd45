package sealbox

import (
	"crypto/rand"
	"encoding/hex"
	"io"

	"resort-checkout/internal/pkg/errs"

	"golang.org/x/crypto/nacl/secretbox"
)

const (
	KeySize   = 32
	nonceSize = 24
)

var (
	ErrInvalidKey      = errs.New("sealbox key must be 32 bytes hex encoded")
	ErrOpenFailed      = errs.New("sealed payload could not be opened")
	ErrPayloadTooShort = errs.New("sealed payload too short")
)

// Box seals payloads with XSalsa20-Poly1305. The nonce is prepended to the output.
type Box struct {
	key [KeySize]byte
}

func New(key [KeySize]byte) *Box {
	return &Box{key: key}
}

func NewFromHex(hexKey string) (*Box, error) {
	raw, err := hex.DecodeString(hexKey)
	if err != nil || len(raw) != KeySize {
		return nil, ErrInvalidKey
	}
	var key [KeySize]byte
	copy(key[:], raw)
	return New(key), nil
}

func (b *Box) Seal(plain []byte) ([]byte, error) {
	var nonce [nonceSize]byte
	if _, err := io.ReadFull(rand.Reader, nonce[:]); err != nil {
		return nil, errs.Wrap(err, "failed to generate nonce")
	}
	return secretbox.Seal(nonce[:], plain, &nonce, &b.key), nil
}

func (b *Box) Open(sealed []byte) ([]byte, error) {
	if len(sealed) < nonceSize+secretbox.Overhead {
		return nil, ErrPayloadTooShort
	}
	var nonce [nonceSize]byte
	copy(nonce[:], sealed[:nonceSize])
	plain, ok := secretbox.Open(nil, sealed[nonceSize:], &nonce, &b.key)
	if !ok {
		return nil, ErrOpenFailed
	}
	return plain, nil
}
