package resolve

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestSession_LastRequestWins(t *testing.T) {
	s := NewSession()

	t.Run("single request accepted once", func(t *testing.T) {
		tok := s.Begin()
		assert.True(t, s.Busy())
		assert.True(t, s.Accept(tok))
		assert.False(t, s.Busy())
		assert.False(t, s.Accept(tok), "double accept must be a no-op")
	})

	t.Run("stale response discarded", func(t *testing.T) {
		// Request A issued, then B before A resolves. A's late result must
		// be dropped; B's must be displayed.
		tokA := s.Begin()
		tokB := s.Begin()

		assert.False(t, s.Accept(tokA), "superseded request must not be displayed")
		assert.True(t, s.Accept(tokB))
	})

	t.Run("stale response after current settled is a no-op", func(t *testing.T) {
		tokA := s.Begin()
		tokB := s.Begin()

		assert.True(t, s.Accept(tokB))
		assert.False(t, s.Accept(tokA))
	})

	t.Run("cancel abandons outstanding request", func(t *testing.T) {
		tok := s.Begin()
		s.Cancel()
		assert.False(t, s.Busy())
		assert.False(t, s.Accept(tok))
	})
}

func TestSession_TokensMonotonic(t *testing.T) {
	s := NewSession()
	prev := s.Begin()
	for i := 0; i < 100; i++ {
		tok := s.Begin()
		assert.Greater(t, tok, prev)
		prev = tok
	}
}

func TestSession_ConcurrentBegins(t *testing.T) {
	// Hammer one session from many goroutines; exactly one completion may be
	// accepted afterwards and it must be the newest token.
	s := NewSession()

	const n = 64
	tokens := make([]uint64, n)
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func(i int) {
			defer wg.Done()
			tokens[i] = s.Begin()
		}(i)
	}
	wg.Wait()

	var newest uint64
	for _, tok := range tokens {
		if tok > newest {
			newest = tok
		}
	}

	accepted := 0
	for _, tok := range tokens {
		if s.Accept(tok) {
			accepted++
			assert.Equal(t, newest, tok)
		}
	}
	assert.Equal(t, 1, accepted)
}

func TestSessions_Independent(t *testing.T) {
	// Two consumer surfaces resolve concurrently without coordination.
	a, b := NewSession(), NewSession()

	tokA := a.Begin()
	tokB := b.Begin()

	assert.True(t, a.Busy())
	assert.True(t, b.Busy())
	assert.True(t, b.Accept(tokB))
	assert.True(t, a.Accept(tokA))
}
