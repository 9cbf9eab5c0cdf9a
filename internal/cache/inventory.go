package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	// FeedKey is the single cache slot for the global feed. It deliberately
	// does not vary with the page parameter: while the slot is warm every
	// page of the global feed serves the cached first render.
	FeedKey = "feed:index"

	GroupKeyPrefix = "group:%s"
	UserKeyPrefix  = "user:%s"
)

const (
	// FeedTTL is the lifetime of the cached global feed page.
	FeedTTL = 20 * time.Second

	GroupTTL = 10 * time.Minute
	UserTTL  = 5 * time.Minute
)

// GroupKey returns the cache key for a group looked up by slug.
func GroupKey(slug string) string {
	return fmt.Sprintf(GroupKeyPrefix, slug)
}

// UserKey returns the cache key for a user looked up by username.
func UserKey(username string) string {
	return fmt.Sprintf(UserKeyPrefix, username)
}

// InvalidateFeed clears the global feed slot. Production invalidation is
// purely time-based; this exists for administrative and test tooling.
func InvalidateFeed(ctx context.Context, store Store) error {
	if store == nil {
		return nil
	}
	return store.Delete(ctx, FeedKey)
}
