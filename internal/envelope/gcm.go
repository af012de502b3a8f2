package envelope

import (
	"crypto/aes"
	"crypto/cipher"
	"encoding/base64"
	"fmt"
	"io"

	"github.com/dmitrijs2005/weekjournal/internal/common"
)

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}

func sealGCM(plaintext, key []byte, rnd io.Reader) (string, error) {
	aesgcm, err := newGCM(key)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, aesgcm.NonceSize())
	if _, err := io.ReadFull(rnd, nonce); err != nil {
		return "", fmt.Errorf("generating nonce: %w", err)
	}

	out := aesgcm.Seal(nonce, nonce, plaintext, nil)
	return base64.StdEncoding.EncodeToString(out), nil
}

func openGCM(encoded string, key []byte) ([]byte, error) {
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("%w: ciphertext is not base64", common.ErrMalformedEnvelope)
	}

	aesgcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}
	if len(raw) < aesgcm.NonceSize()+aesgcm.Overhead() {
		return nil, fmt.Errorf("%w: ciphertext too short", common.ErrMalformedEnvelope)
	}

	nonce, ct := raw[:aesgcm.NonceSize()], raw[aesgcm.NonceSize():]
	plaintext, err := aesgcm.Open(nil, nonce, ct, nil)
	if err != nil {
		return nil, common.ErrInvalidPassphrase
	}
	return plaintext, nil
}
