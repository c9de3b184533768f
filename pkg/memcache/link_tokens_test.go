package mem

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestStore() (*LinkTokens, *fakeClock) {
	clock := &fakeClock{t: time.Date(2026, 10, 14, 9, 0, 0, 0, time.UTC)}
	s := NewLinkTokens()
	s.now = clock.now
	return s, clock
}

func TestLinkTokens_PeekUntilExpiry(t *testing.T) {
	s, clock := newTestStore()
	s.Set("tok", "routines/lead.html", time.Hour)

	v, ok := s.Peek("tok")
	assert.True(t, ok)
	assert.Equal(t, "routines/lead.html", v)

	v, ok = s.Peek("tok")
	assert.True(t, ok)
	assert.Equal(t, "routines/lead.html", v)

	clock.advance(time.Hour + time.Second)
	_, ok = s.Peek("tok")
	assert.False(t, ok)
}

func TestLinkTokens_Consume(t *testing.T) {
	s, clock := newTestStore()
	s.Set("a", "one", time.Minute)
	s.Set("b", "two", time.Minute)

	assert.Equal(t, "one", s.Consume("a"))
	assert.Equal(t, "", s.Consume("a"))

	clock.advance(2 * time.Minute)
	assert.Equal(t, "", s.Consume("b"))
	assert.Equal(t, 0, s.Len())
}

func TestLinkTokens_Sweep(t *testing.T) {
	s, clock := newTestStore()
	s.Set("short", "x", time.Minute)
	s.Set("long", "y", time.Hour)

	clock.advance(10 * time.Minute)
	assert.Equal(t, 1, s.Sweep())
	assert.Equal(t, 1, s.Len())
	_, ok := s.Peek("long")
	assert.True(t, ok)
}

func TestLinkTokens_Concurrent(t *testing.T) {
	s := NewLinkTokens()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			tok := fmt.Sprintf("t%d", i)
			s.Set(tok, tok, time.Minute)
			s.Peek(tok)
			s.Sweep()
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 50, s.Len())
}
