package helpers

import (
	"math/rand"
	"strings"
)

const idAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

const idFragmentLen = 13

func idFragment() string {
	var b strings.Builder
	b.Grow(idFragmentLen)
	for i := 0; i < idFragmentLen; i++ {
		b.WriteByte(idAlphabet[rand.Intn(len(idAlphabet))])
	}
	return b.String()
}

// NewEntityID returns an opaque identifier built from two independent random
// base-36 fragments. Collision-resistant within a process lifetime, not
// cryptographically secure; identifiers are never used as access tokens.
func NewEntityID() string {
	return idFragment() + idFragment()
}
