package ai

import (
	"crypto/sha256"
	"encoding/hex"
	"sync"
	"time"
)

// ttsCache is a content-addressed synthesis cache. The same question text is
// synthesized once per TTL regardless of how many sessions ask for it.
type ttsCache struct {
	mu      sync.Mutex
	entries map[string]ttsEntry
	ttl     time.Duration
	now     func() time.Time
}

type ttsEntry struct {
	audio    []byte
	storedAt time.Time
}

func newTTSCache(ttl time.Duration) *ttsCache {
	return &ttsCache{
		entries: make(map[string]ttsEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// cacheKey addresses an entry by everything that changes the audio.
func ttsCacheKey(model, voice, text string) string {
	h := sha256.Sum256([]byte(model + "|" + voice + "|" + text))
	return hex.EncodeToString(h[:])
}

// Get returns the cached audio and whether it was present and fresh.
func (c *ttsCache) Get(key string) ([]byte, bool) {
	if c == nil || c.ttl <= 0 {
		return nil, false
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if c.now().Sub(entry.storedAt) > c.ttl {
		delete(c.entries, key)
		return nil, false
	}
	return entry.audio, true
}

// Put stores audio under key, lazily evicting anything expired.
func (c *ttsCache) Put(key string, audio []byte) {
	if c == nil || c.ttl <= 0 || len(audio) == 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	for k, e := range c.entries {
		if now.Sub(e.storedAt) > c.ttl {
			delete(c.entries, k)
		}
	}
	c.entries[key] = ttsEntry{audio: audio, storedAt: now}
}
