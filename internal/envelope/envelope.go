package envelope

import (
	"bytes"
	"crypto/rand"
	"crypto/sha1"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"hash"
	"io"

	"github.com/dmitrijs2005/weekjournal/internal/common"
	"golang.org/x/crypto/pbkdf2"
)

const (
	// SaltSize is the number of random bytes behind the hex encoded salt.
	SaltSize = 16
	// KeySize is the derived key length (AES-256).
	KeySize = 32
	// LegacyIterations is fixed by the legacy format, which has no field to
	// record it.
	LegacyIterations = 10000
	// MaxIterations caps the count a stored envelope may ask for.
	MaxIterations = 10_000_000

	versionAEAD = 2
)

// Format selects the wire format written by a Sealer.
type Format string

const (
	FormatLegacy Format = "legacy"
	FormatAEAD   Format = "aead"
)

// ParseFormat converts a config value into a Format.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatLegacy, FormatAEAD:
		return Format(s), nil
	case "":
		return FormatLegacy, nil
	default:
		return "", fmt.Errorf("unknown envelope format %q", s)
	}
}

// wire is the serialized envelope. Version and Iterations are omitted for
// the legacy format so it stays a two-field object.
type wire struct {
	Version    int    `json:"v,omitempty"`
	Salt       string `json:"salt"`
	Iterations int    `json:"iter,omitempty"`
	Encrypted  string `json:"encrypted"`
}

// Sealer encrypts and decrypts envelopes. The zero value is not usable;
// construct with New. A Sealer holds no secrets and is safe for concurrent use.
type Sealer struct {
	format     Format
	iterations int
	rand       io.Reader
}

// Option configures a Sealer.
type Option func(*Sealer)

// WithFormat selects the format written by Seal.
func WithFormat(f Format) Option {
	return func(s *Sealer) { s.format = f }
}

// WithIterations sets the PBKDF2 iteration count for the AEAD format.
// Values are clamped to [LegacyIterations, MaxIterations].
func WithIterations(n int) Option {
	return func(s *Sealer) {
		s.iterations = min(max(n, LegacyIterations), MaxIterations)
	}
}

// WithRand replaces the randomness source. Tests only.
func WithRand(r io.Reader) Option {
	return func(s *Sealer) { s.rand = r }
}

// New returns a Sealer writing the legacy format unless configured otherwise.
func New(opts ...Option) *Sealer {
	s := &Sealer{format: FormatLegacy, iterations: LegacyIterations, rand: rand.Reader}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var defaultSealer = New()

// Encrypt seals v with the default (legacy) Sealer.
func Encrypt(v any, passphrase string) (string, error) {
	return defaultSealer.Seal(v, passphrase)
}

// Decrypt opens blob with the default Sealer into v.
func Decrypt(blob string, passphrase string, v any) error {
	return defaultSealer.Open(blob, passphrase, v)
}

// Seal serializes v to JSON and encrypts it under a key derived from
// passphrase and a salt generated for this call only.
func (s *Sealer) Seal(v any, passphrase string) (string, error) {
	plaintext, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("serializing plaintext: %w", err)
	}

	saltBytes := make([]byte, SaltSize)
	if _, err := io.ReadFull(s.rand, saltBytes); err != nil {
		return "", fmt.Errorf("generating salt: %w", err)
	}
	salt := hex.EncodeToString(saltBytes)

	var w wire
	switch s.format {
	case FormatAEAD:
		key := deriveKey(passphrase, salt, s.iterations, sha256.New)
		defer common.WipeByteArray(key)

		encrypted, err := sealGCM(plaintext, key, s.rand)
		if err != nil {
			return "", err
		}
		w = wire{Version: versionAEAD, Salt: salt, Iterations: s.iterations, Encrypted: encrypted}
	default:
		keyText := legacyKeyText(passphrase, salt, sha256.New)
		defer common.WipeByteArray(keyText)

		encrypted, err := opensslEncrypt(plaintext, keyText, s.rand)
		if err != nil {
			return "", err
		}
		w = wire{Salt: salt, Encrypted: encrypted}
	}

	out, err := json.Marshal(w)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// Open parses blob, re-derives the key from passphrase and the stored salt,
// decrypts, and unmarshals the plaintext JSON into v.
//
// It returns an error matching common.ErrMalformedEnvelope when blob is not a
// valid envelope, and common.ErrInvalidPassphrase when decryption yields no
// usable plaintext.
func (s *Sealer) Open(blob string, passphrase string, v any) error {
	w, err := parse(blob)
	if err != nil {
		return err
	}

	var plaintext []byte
	switch w.Version {
	case versionAEAD:
		plaintext, err = openAEAD(w, passphrase)
	default:
		plaintext, err = openLegacy(w, passphrase)
	}
	if err != nil {
		return err
	}

	if err := json.Unmarshal(plaintext, v); err != nil {
		return common.ErrInvalidPassphrase
	}
	return nil
}

// Inspect checks that blob is a structurally valid envelope and reports its
// format. It does not decrypt; ciphertext framing is only checked by Open.
func Inspect(blob string) (Format, error) {
	w, err := parse(blob)
	if err != nil {
		return "", err
	}
	if w.Version == versionAEAD {
		return FormatAEAD, nil
	}
	return FormatLegacy, nil
}

func parse(blob string) (*wire, error) {
	dec := json.NewDecoder(bytes.NewReader([]byte(blob)))
	dec.DisallowUnknownFields()

	var w wire
	if err := dec.Decode(&w); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrMalformedEnvelope, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: trailing data", common.ErrMalformedEnvelope)
	}
	if w.Salt == "" || w.Encrypted == "" {
		return nil, fmt.Errorf("%w: salt and encrypted are required", common.ErrMalformedEnvelope)
	}

	switch w.Version {
	case 0:
		if w.Iterations != 0 {
			return nil, fmt.Errorf("%w: iterations are not part of the legacy format", common.ErrMalformedEnvelope)
		}
	case versionAEAD:
		if w.Iterations < LegacyIterations || w.Iterations > MaxIterations {
			return nil, fmt.Errorf("%w: bad iteration count %d", common.ErrMalformedEnvelope, w.Iterations)
		}
	default:
		return nil, fmt.Errorf("%w: unsupported version %d", common.ErrMalformedEnvelope, w.Version)
	}
	return &w, nil
}

// legacyPRFs lists the PBKDF2 PRFs tried when opening a legacy envelope:
// CryptoJS switched its default from SHA1 to SHA256 in 4.2.
var legacyPRFs = []func() hash.Hash{sha256.New, sha1.New}

func openLegacy(w *wire, passphrase string) ([]byte, error) {
	for _, prf := range legacyPRFs {
		keyText := legacyKeyText(passphrase, w.Salt, prf)
		plaintext, err := opensslDecrypt(w.Encrypted, keyText)
		common.WipeByteArray(keyText)

		if errors.Is(err, common.ErrMalformedEnvelope) {
			return nil, err
		}
		if err == nil && json.Valid(plaintext) {
			return plaintext, nil
		}
	}
	return nil, common.ErrInvalidPassphrase
}

func openAEAD(w *wire, passphrase string) ([]byte, error) {
	key := deriveKey(passphrase, w.Salt, w.Iterations, sha256.New)
	defer common.WipeByteArray(key)
	return openGCM(w.Encrypted, key)
}

func deriveKey(passphrase, salt string, iterations int, prf func() hash.Hash) []byte {
	return pbkdf2.Key([]byte(passphrase), []byte(salt), iterations, KeySize, prf)
}

// legacyKeyText returns the hex form of the derived key; the legacy format
// feeds that text, not the raw bytes, to the OpenSSL key schedule.
func legacyKeyText(passphrase, salt string, prf func() hash.Hash) []byte {
	key := deriveKey(passphrase, salt, LegacyIterations, prf)
	defer common.WipeByteArray(key)

	out := make([]byte, hex.EncodedLen(len(key)))
	hex.Encode(out, key)
	return out
}
