package auth

import "time"

// EpochGenerator is the time source for the freshness claim of a signed
// payload. Skew rejection, if any, happens server side; the signer accepts
// whatever the generator yields.
type EpochGenerator interface {
	Next() int64
}

// UnixEpochGenerator emits the current unix time. Production default.
type UnixEpochGenerator struct{}

func (UnixEpochGenerator) Next() int64 {
	return time.Now().Unix()
}

// FutureEpochGenerator emits a timestamp shifted forward by Skew, used to
// probe the server's clock-skew handling.
type FutureEpochGenerator struct {
	Skew time.Duration
}

func (g FutureEpochGenerator) Next() int64 {
	skew := g.Skew
	if skew == 0 {
		skew = 10 * time.Minute
	}
	return time.Now().Add(skew).Unix()
}

// FixedEpochGenerator emits the same instant on every draw.
type FixedEpochGenerator struct {
	Value int64
}

func (g FixedEpochGenerator) Next() int64 {
	return g.Value
}
