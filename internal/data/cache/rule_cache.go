package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	types "github.com/yungbote/carryhelper-backend/internal/domain"
	"github.com/yungbote/carryhelper-backend/internal/platform/logger"
	"github.com/yungbote/carryhelper-backend/internal/recommend"
)

const (
	keyPrefix  = "carry:rules"
	genKey     = keyPrefix + ":gen"
	defaultTTL = 5 * time.Minute
)

// RuleCache is a read-through cache in front of a RuleStore. Writes to the
// rule tables bump a generation counter, which orphans every cached entry.
// With a nil client every call goes straight to the inner store.
type RuleCache struct {
	log   *logger.Logger
	rdb   *goredis.Client
	inner recommend.RuleStore
	ttl   time.Duration
}

func NewRuleCache(baseLog *logger.Logger, rdb *goredis.Client, inner recommend.RuleStore, ttl time.Duration) *RuleCache {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &RuleCache{
		log:   baseLog.With("cache", "RuleCache"),
		rdb:   rdb,
		inner: inner,
		ttl:   ttl,
	}
}

func (c *RuleCache) Rules(ctx context.Context, activity string) ([]*types.ActivityItemRule, error) {
	if c.rdb == nil {
		return c.inner.Rules(ctx, activity)
	}
	var out []*types.ActivityItemRule
	err := c.readThrough(ctx, "act:"+activity, &out, func() (any, error) {
		return c.inner.Rules(ctx, activity)
	})
	return out, err
}

// RulesForShoe filters the cached activity rules so only one entry per
// activity is stored.
func (c *RuleCache) RulesForShoe(ctx context.Context, activity, shoe string) ([]*types.ActivityItemRule, error) {
	if c.rdb == nil {
		return c.inner.RulesForShoe(ctx, activity, shoe)
	}
	all, err := c.Rules(ctx, activity)
	if err != nil {
		return nil, err
	}
	out := make([]*types.ActivityItemRule, 0, len(all))
	for _, r := range all {
		if r.AppliesTo(shoe) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (c *RuleCache) ShoeCommonItems(ctx context.Context, shoe recommend.ShoeRef) ([]string, error) {
	if c.rdb == nil {
		return c.inner.ShoeCommonItems(ctx, shoe)
	}
	key := "shoe:type:" + shoe.Type
	if shoe.ID != nil {
		key = fmt.Sprintf("shoe:id:%d:%s", *shoe.ID, shoe.Type)
	}
	var out []string
	err := c.readThrough(ctx, key, &out, func() (any, error) {
		return c.inner.ShoeCommonItems(ctx, shoe)
	})
	return out, err
}

// Invalidate drops every cached rule entry.
func (c *RuleCache) Invalidate(ctx context.Context) {
	if c.rdb == nil {
		return
	}
	if err := c.rdb.Incr(ctx, genKey).Err(); err != nil {
		c.log.Warn("rule cache invalidate failed", "error", err)
	}
}

// readThrough decodes the cached value into dst or loads, stores and decodes
// it. Redis failures degrade to a direct load.
func (c *RuleCache) readThrough(ctx context.Context, key string, dst any, load func() (any, error)) error {
	gen, err := c.rdb.Get(ctx, genKey).Int64()
	if err != nil && !errors.Is(err, goredis.Nil) {
		c.log.Warn("rule cache generation read failed", "error", err)
		_, err := loadInto(load, dst)
		return err
	}
	full := fmt.Sprintf("%s:%d:%s", keyPrefix, gen, key)

	raw, err := c.rdb.Get(ctx, full).Bytes()
	switch {
	case err == nil:
		if jerr := json.Unmarshal(raw, dst); jerr == nil {
			return nil
		}
		c.log.Warn("rule cache entry corrupt, reloading", "key", full)
	case !errors.Is(err, goredis.Nil):
		c.log.Warn("rule cache read failed", "key", full, "error", err)
	}

	raw, err = loadInto(load, dst)
	if err != nil {
		return err
	}
	if err := c.rdb.Set(ctx, full, raw, c.ttl).Err(); err != nil {
		c.log.Warn("rule cache write failed", "key", full, "error", err)
	}
	return nil
}

// loadInto runs load and copies the result into dst through its JSON form,
// which it also returns for storing.
func loadInto(load func() (any, error), dst any) ([]byte, error) {
	v, err := load()
	if err != nil {
		return nil, err
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return raw, json.Unmarshal(raw, dst)
}
