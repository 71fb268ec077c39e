package booking

import "math/rand/v2"

// TokenSource generates opaque booking identifiers. Only uniqueness within
// a run matters; tests substitute a deterministic implementation.
type TokenSource interface {
	BookingID() string
}

// RandomTokens produces identifiers of the form "BK" followed by nine
// uppercase base-36 characters.
type RandomTokens struct{}

const tokenAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

func (RandomTokens) BookingID() string {
	buf := make([]byte, 9)
	for i := range buf {
		buf[i] = tokenAlphabet[rand.IntN(len(tokenAlphabet))]
	}
	return "BK" + string(buf)
}
