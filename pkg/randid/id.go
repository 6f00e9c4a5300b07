// Package randid generates short base-36 identifiers.
package randid

import (
	"crypto/rand"
	"math/big"
	"strconv"
	"sync"
	"time"
)

const alphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// randomLength is the number of random characters New prefixes to the clock part.
const randomLength = 9

var clock = &monotonicClock{now: time.Now}

// Generate returns a random string of n characters drawn from [a-z0-9].
func Generate(n int) string {
	if n <= 0 {
		return ""
	}

	limit := big.NewInt(int64(len(alphabet)))
	buf := make([]byte, n)
	for i := range buf {
		v, err := rand.Int(rand.Reader, limit)
		if err != nil {
			// crypto/rand does not fail on supported platforms
			panic("randid: " + err.Error())
		}
		buf[i] = alphabet[v.Int64()]
	}
	return string(buf)
}

// New returns an identifier made of 9 random characters followed by the
// base-36 encoding of a strictly increasing millisecond clock. Ids from one
// process never share a clock part, so collisions need a clash of both parts.
func New() string {
	return Generate(randomLength) + strconv.FormatInt(clock.next(), 36)
}

// monotonicClock hands out Unix milliseconds that never repeat or go backwards.
type monotonicClock struct {
	mu   sync.Mutex
	now  func() time.Time
	last int64
}

func (c *monotonicClock) next() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	ms := c.now().UnixMilli()
	if ms <= c.last {
		ms = c.last + 1
	}
	c.last = ms
	return ms
}
