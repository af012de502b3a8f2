// Package envelope seals structured records under a user passphrase and
// serializes the result as a small JSON text envelope.
//
// Two wire formats exist. The legacy format is exactly
//
//	{"salt": "<32 hex chars>", "encrypted": "<base64>"}
//
// where the key is hex(PBKDF2(passphrase, salt, 10000 iterations, 32 bytes))
// used as an OpenSSL passphrase, and "encrypted" is the OpenSSL/CryptoJS
// "Salted__" AES-256-CBC container. It carries no integrity tag, so a wrong
// passphrase is only detected when the plaintext fails to parse.
//
// The AEAD format adds a version marker and the iteration count, and
// encrypts with AES-256-GCM under the raw PBKDF2 key:
//
//	{"v": 2, "salt": "...", "iter": 10000, "encrypted": "<base64 nonce||ciphertext>"}
//
// Open accepts both formats regardless of which one the Sealer writes.
package envelope
