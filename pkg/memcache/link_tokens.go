package mem

import (
	"sync"
	"time"
)

// LinkTokenStore maps short-lived download tokens to a stored value.
type LinkTokenStore interface {
	Set(token string, value string, ttl time.Duration)

	// Peek returns the value for token if not expired. Links can be
	// opened any number of times until they expire.
	Peek(token string) (string, bool)

	// Consume returns the value and removes the token. Returns "" if
	// missing or expired.
	Consume(token string) string

	// Sweep drops expired tokens and reports how many were removed.
	Sweep() int
}

type entry struct {
	value     string
	expiresAt time.Time
}

type LinkTokens struct {
	mu   sync.RWMutex
	data map[string]entry
	now  func() time.Time
}

func NewLinkTokens() *LinkTokens {
	return &LinkTokens{
		data: make(map[string]entry),
		now:  time.Now,
	}
}

func (s *LinkTokens) Set(token string, value string, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[token] = entry{
		value:     value,
		expiresAt: s.now().Add(ttl),
	}
}

func (s *LinkTokens) Peek(token string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.data[token]
	if !ok || s.now().After(e.expiresAt) {
		return "", false
	}
	return e.value, true
}

func (s *LinkTokens) Consume(token string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.data[token]
	if !ok {
		return ""
	}
	delete(s.data, token)
	if s.now().After(e.expiresAt) {
		return ""
	}
	return e.value
}

func (s *LinkTokens) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	removed := 0
	for token, e := range s.data {
		if now.After(e.expiresAt) {
			delete(s.data, token)
			removed++
		}
	}
	return removed
}

func (s *LinkTokens) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}
