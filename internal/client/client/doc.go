// Package client talks to the journal server and opens the local cache.
//
// GRPCClient implements Client over the JSON-coded gRPC service. It keeps
// the session tokens, attaches the access token to every call and refreshes
// it once when the server answers "token expired". Status codes are mapped
// back to the sentinels in internal/common, so callers can use errors.Is
// the same way on both sides of the wire. A server that cannot be reached
// yields ErrUnavailable.
//
// OpenDatabase creates (if needed) and migrates the SQLite file that holds
// offline account metadata and the cached envelopes.
package client
