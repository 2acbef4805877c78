// Package analytics records page views in Redis and aggregates the
// counters shown on the admin dashboard. Tracking is fire and forget:
// callers never see an error.
package analytics

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
)

const (
	keyTotalViews   = "analytics:views:total"
	keyVisitors     = "analytics:visitors"
	keyPageIndex    = "analytics:pages"
	keyActive       = "analytics:active"
	prefixPageViews = "analytics:views:page:"
	prefixPostViews = "analytics:views:post:"
	prefixDaily     = "analytics:visitors:day:"

	dailyTTL     = 48 * time.Hour
	activeWindow = 5 * time.Minute
)

// Tracker is the Redis-backed analytics sink.
type Tracker struct {
	client *redis.Client
}

// NewTracker connects to Redis and verifies the connection.
func NewTracker(redisURL string) (*Tracker, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis URL: %w", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	return &Tracker{client: client}, nil
}

// Close releases the Redis connection.
func (t *Tracker) Close() error {
	return t.client.Close()
}

// Track records one page view. Failures are logged and swallowed so a
// Redis outage never surfaces to visitors.
func (t *Tracker) Track(ctx context.Context, page, postID, sessionID string) {
	sessionID = sessionOrNew(sessionID)
	now := time.Now()

	pipe := t.client.Pipeline()
	pipe.Incr(ctx, keyTotalViews)
	pipe.SAdd(ctx, keyVisitors, sessionID)
	pipe.SAdd(ctx, dayKey(now), sessionID)
	pipe.Expire(ctx, dayKey(now), dailyTTL)
	if page != "" {
		pipe.SAdd(ctx, keyPageIndex, page)
		pipe.Incr(ctx, prefixPageViews+page)
	}
	if postID != "" {
		pipe.Incr(ctx, prefixPostViews+postID)
	}
	pipe.ZAdd(ctx, keyActive, redis.Z{Score: float64(now.Unix()), Member: sessionID})

	if _, err := pipe.Exec(ctx); err != nil {
		log.Printf("[analytics] track failed: %v", err)
	}
}

// Stats is the dashboard aggregate.
type Stats struct {
	TotalViews     int64            `json:"totalViews"`
	UniqueVisitors int64            `json:"uniqueVisitors"`
	VisitorsToday  int64            `json:"visitorsToday"`
	ActiveSessions int64            `json:"activeSessions"`
	PageViews      map[string]int64 `json:"pageViews"`
	PostViews      map[string]int64 `json:"postViews"`
}

// CollectStats reads the independent counters concurrently.
func (t *Tracker) CollectStats(ctx context.Context) (*Stats, error) {
	stats := &Stats{
		PageViews: map[string]int64{},
		PostViews: map[string]int64{},
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		n, err := t.counter(ctx, keyTotalViews)
		stats.TotalViews = n
		return err
	})

	g.Go(func() error {
		n, err := t.client.SCard(ctx, keyVisitors).Result()
		stats.UniqueVisitors = n
		return err
	})

	g.Go(func() error {
		n, err := t.client.SCard(ctx, dayKey(time.Now())).Result()
		stats.VisitorsToday = n
		return err
	})

	g.Go(func() error {
		cutoff := time.Now().Add(-activeWindow).Unix()
		if err := t.client.ZRemRangeByScore(ctx, keyActive, "0", strconv.FormatInt(cutoff, 10)).Err(); err != nil {
			return err
		}
		n, err := t.client.ZCard(ctx, keyActive).Result()
		stats.ActiveSessions = n
		return err
	})

	g.Go(func() error {
		pages, err := t.client.SMembers(ctx, keyPageIndex).Result()
		if err != nil {
			return err
		}
		for _, page := range pages {
			n, err := t.counter(ctx, prefixPageViews+page)
			if err != nil {
				return err
			}
			stats.PageViews[page] = n
		}
		return nil
	})

	g.Go(func() error {
		iter := t.client.Scan(ctx, 0, prefixPostViews+"*", 0).Iterator()
		for iter.Next(ctx) {
			key := iter.Val()
			n, err := t.counter(ctx, key)
			if err != nil {
				return err
			}
			stats.PostViews[strings.TrimPrefix(key, prefixPostViews)] = n
		}
		return iter.Err()
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to collect stats: %w", err)
	}
	return stats, nil
}

func (t *Tracker) counter(ctx context.Context, key string) (int64, error) {
	val, err := t.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("corrupt counter %s: %w", key, err)
	}
	return n, nil
}

func sessionOrNew(sessionID string) string {
	if strings.TrimSpace(sessionID) == "" {
		return uuid.NewString()
	}
	return sessionID
}

func dayKey(now time.Time) string {
	return prefixDaily + now.UTC().Format("2006-01-02")
}
