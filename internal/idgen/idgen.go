package idgen

import (
	"fmt"
	"math/rand/v2"
	"sync/atomic"
)

// JoinCodeAlphabet excludes the visually ambiguous I, O, 0 and 1.
const JoinCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

const joinCodeLength = 6

// Generator hands out opaque sequential ids, unique within a single
// process lifetime. A durable backend would need database-generated
// ids or UUIDs instead.
type Generator struct {
	counter atomic.Uint64
}

// New returns a generator whose counter starts at seeded, so the first
// generated id lands just above the seeded fixture records.
func New(seeded int) *Generator {
	g := &Generator{}
	if seeded > 0 {
		g.counter.Store(uint64(seeded))
	}
	return g
}

// NextID returns "<prefix>-<counter>" with the counter zero-padded to
// three digits.
func (g *Generator) NextID(prefix string) string {
	return fmt.Sprintf("%s-%03d", prefix, g.counter.Add(1))
}

// JoinCode draws six independent random characters from the join-code
// alphabet. Uniqueness against existing codes is the caller's job.
func JoinCode() string {
	b := make([]byte, joinCodeLength)
	for i := range b {
		b[i] = JoinCodeAlphabet[rand.IntN(len(JoinCodeAlphabet))]
	}
	return string(b)
}
