package auth

// Settings aggregates the value sources a signed request draws from and the
// scope the session is requested for. Owned by one client instance and
// swappable only before authentication.
type Settings interface {
	NonceGenerator() NonceGenerator
	EpochGenerator() EpochGenerator
	Scope() Scope
}

type settings struct {
	nonce NonceGenerator
	epoch EpochGenerator
	scope Scope
}

func (s *settings) NonceGenerator() NonceGenerator { return s.nonce }
func (s *settings) EpochGenerator() EpochGenerator { return s.epoch }
func (s *settings) Scope() Scope                   { return s.scope }

// DefaultSettings uses secure-random nonces and the current unix time.
func DefaultSettings(scope Scope) Settings {
	return &settings{nonce: GuidNonceGenerator{}, epoch: UnixEpochGenerator{}, scope: scope}
}

// HardCodedSettings pins the generators, mostly for reproducible tests and
// fault injection.
func HardCodedSettings(nonce NonceGenerator, epoch EpochGenerator, scope Scope) Settings {
	return &settings{nonce: nonce, epoch: epoch, scope: scope}
}
