package auth

import (
	"github.com/google/uuid"
)

// NonceGenerator is the source of the anti-replay value included in every
// signed payload. Implementations may be stateful; a generator that exhausts
// itself must not be shared across concurrent authentication attempts.
type NonceGenerator interface {
	Next() string
}

// GuidNonceGenerator emits a fresh random uuid on every draw. This is the
// generator production settings use.
type GuidNonceGenerator struct{}

func (GuidNonceGenerator) Next() string {
	return uuid.NewString()
}

// SingleUseNonceGenerator holds one fixed value and hands it out exactly
// once. Further draws yield an empty nonce, which the signer rejects.
type SingleUseNonceGenerator struct {
	value string
	used  bool
}

func NewSingleUseNonceGenerator(value string) *SingleUseNonceGenerator {
	return &SingleUseNonceGenerator{value: value}
}

func (g *SingleUseNonceGenerator) Next() string {
	if g.used {
		return ""
	}
	g.used = true
	return g.value
}

// NullEmptyNonceGenerator always emits the configured blank value. Useful
// only for fault injection in tests.
type NullEmptyNonceGenerator struct {
	value string
}

func NewNullEmptyNonceGenerator(value string) *NullEmptyNonceGenerator {
	return &NullEmptyNonceGenerator{value: value}
}

func (g *NullEmptyNonceGenerator) Next() string {
	return g.value
}
