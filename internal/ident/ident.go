// Package ident generates human-facing patient identifiers.
package ident

import (
	"crypto/rand"
	"encoding/binary"
	"strconv"
	"strings"
)

// pidLength is the number of base-36 characters after the "P" prefix.
const pidLength = 6

// NewPID returns a patient identifier: "P" followed by six uppercase
// base-36 characters drawn from a random source. Uniqueness is
// probabilistic; the token space (36^6, about 2.2 billion) makes a
// collision within a single clinic's records vanishingly unlikely, and
// the store does not verify it.
func NewPID() string {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// crypto/rand never fails on supported platforms; Read panics
		// internally on broken ones before this can return.
		panic(err)
	}

	const space = 36 * 36 * 36 * 36 * 36 * 36
	n := binary.BigEndian.Uint64(buf[:]) % space

	token := strings.ToUpper(strconv.FormatUint(n, 36))
	if pad := pidLength - len(token); pad > 0 {
		token = strings.Repeat("0", pad) + token
	}
	return "P" + token
}
