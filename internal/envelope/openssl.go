package envelope

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/md5"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/dmitrijs2005/weekjournal/internal/common"
)

// OpenSSL "enc" container as produced by CryptoJS.AES.encrypt with a
// passphrase: "Salted__" || salt[8] || AES-256-CBC(PKCS7(plaintext)).
const opensslSaltSize = 8

var (
	opensslMagic = []byte("Salted__")
	errPadding   = errors.New("bad padding")
)

func opensslEncrypt(plaintext, pass []byte, rnd io.Reader) (string, error) {
	salt := make([]byte, opensslSaltSize)
	if _, err := io.ReadFull(rnd, salt); err != nil {
		return "", fmt.Errorf("generating cipher salt: %w", err)
	}

	key, iv := evpBytesToKey(pass, salt, KeySize, aes.BlockSize)
	defer common.WipeByteArray(key)

	block, err := aes.NewCipher(key)
	if err != nil {
		return "", err
	}

	padded := pkcs7Pad(plaintext, aes.BlockSize)
	out := make([]byte, 0, len(opensslMagic)+len(salt)+len(padded))
	out = append(out, opensslMagic...)
	out = append(out, salt...)
	ct := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(ct, padded)
	out = append(out, ct...)

	return base64.StdEncoding.EncodeToString(out), nil
}

func opensslDecrypt(encoded string, pass []byte) ([]byte, error) {
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("%w: ciphertext is not base64", common.ErrMalformedEnvelope)
	}

	header := len(opensslMagic) + opensslSaltSize
	if len(raw) <= header || !bytes.Equal(raw[:len(opensslMagic)], opensslMagic) {
		return nil, fmt.Errorf("%w: missing cipher header", common.ErrMalformedEnvelope)
	}
	salt, ct := raw[len(opensslMagic):header], raw[header:]
	if len(ct)%aes.BlockSize != 0 {
		return nil, fmt.Errorf("%w: ciphertext is not block aligned", common.ErrMalformedEnvelope)
	}

	key, iv := evpBytesToKey(pass, salt, KeySize, aes.BlockSize)
	defer common.WipeByteArray(key)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}

	pt := make([]byte, len(ct))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(pt, ct)

	pt, err = pkcs7Unpad(pt, aes.BlockSize)
	if err != nil || len(pt) == 0 || !utf8.Valid(pt) {
		return nil, common.ErrInvalidPassphrase
	}
	return pt, nil
}

// evpBytesToKey is OpenSSL's EVP_BytesToKey with MD5 and one iteration.
func evpBytesToKey(pass, salt []byte, keyLen, ivLen int) ([]byte, []byte) {
	var derived, prev []byte
	for len(derived) < keyLen+ivLen {
		h := md5.New()
		h.Write(prev)
		h.Write(pass)
		h.Write(salt)
		prev = h.Sum(nil)
		derived = append(derived, prev...)
	}
	return derived[:keyLen], derived[keyLen : keyLen+ivLen]
}

func pkcs7Pad(b []byte, blockSize int) []byte {
	n := blockSize - len(b)%blockSize
	return append(append(make([]byte, 0, len(b)+n), b...), bytes.Repeat([]byte{byte(n)}, n)...)
}

func pkcs7Unpad(b []byte, blockSize int) ([]byte, error) {
	if len(b) == 0 || len(b)%blockSize != 0 {
		return nil, errPadding
	}
	n := int(b[len(b)-1])
	if n == 0 || n > blockSize || n > len(b) {
		return nil, errPadding
	}
	for _, c := range b[len(b)-n:] {
		if int(c) != n {
			return nil, errPadding
		}
	}
	return b[:len(b)-n], nil
}
