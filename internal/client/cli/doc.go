// Package cli is the interactive journal client.
//
// The REPL reads one command per line. Account commands (register, login,
// logout) work against the server, falling back to the offline verifier
// when it cannot be reached. Journal commands need the journal passphrase,
// which is asked once per session with "unlock" (or on first use), held in
// memory only and passed explicitly to every encrypt and decrypt call.
// "lock" forgets it.
package cli
