package subject

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/Lestat2Lioncourt/discord-bot/internal/domain"
)

// subjectCache caches per-owner subject lists. Lists are small and read on
// every validation session, so a short TTL keeps prompts snappy without
// serving stale names for long after a rename.
type subjectCache struct {
	lru *expirable.LRU[string, []*domain.Subject]
}

func newSubjectCache(size int, ttl time.Duration) *subjectCache {
	return &subjectCache{
		lru: expirable.NewLRU[string, []*domain.Subject](size, nil, ttl),
	}
}

func (c *subjectCache) Get(ownerID string) ([]*domain.Subject, bool) {
	return c.lru.Get(ownerID)
}

func (c *subjectCache) Set(ownerID string, subjects []*domain.Subject) {
	c.lru.Add(ownerID, subjects)
}

func (c *subjectCache) Invalidate(ownerID string) {
	c.lru.Remove(ownerID)
}
