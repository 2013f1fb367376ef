// Package crypto seals the bearer token before it is written to the local
// session database.
package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/token_sealer_mock.go -package=mock

// TokenSealer protects a bearer token at rest.
//
// Seal and Open are inverse operations; Open fails on tampered or foreign
// input with [ErrTokenTampered].
type TokenSealer interface {
	// Seal returns a printable sealed form of token.
	Seal(token string) (string, error)

	// Open recovers the token produced by Seal.
	Open(sealed string) (string, error)
}
