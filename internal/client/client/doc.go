// Package client talks to the gophauth server over gRPC.
//
// GRPCClient wraps the authrpc stub, attaches the bearer token to protected
// calls and maps gRPC status codes back onto sentinel errors that callers can
// match with errors.Is: the server's domain errors from internal/common plus
// ErrUnavailable and ErrUnauthorized.
package client
