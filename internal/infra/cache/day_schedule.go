package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/kirienkoandrew/HairCut-1/internal/dto"
)

// DayScheduleCache keeps rendered day schedules in redis. The cache is
// strictly optional: a nil receiver or client degrades to pass-through,
// and any redis error is logged and treated as a miss.
type DayScheduleCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewDayScheduleCache(rdb *redis.Client, ttl time.Duration) *DayScheduleCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &DayScheduleCache{rdb: rdb, ttl: ttl}
}

func key(masterID uint, date string) string {
	return fmt.Sprintf("dayslots:%d:%s", masterID, date)
}

func (c *DayScheduleCache) Get(ctx context.Context, masterID uint, date string) ([]dto.DaySlotDTO, bool) {
	if c == nil || c.rdb == nil {
		return nil, false
	}

	raw, err := c.rdb.Get(ctx, key(masterID, date)).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Println("day schedule cache read error:", err)
		}
		return nil, false
	}

	var slots []dto.DaySlotDTO
	if err := json.Unmarshal(raw, &slots); err != nil {
		return nil, false
	}
	return slots, true
}

func (c *DayScheduleCache) Set(ctx context.Context, masterID uint, date string, slots []dto.DaySlotDTO) {
	if c == nil || c.rdb == nil {
		return
	}

	raw, err := json.Marshal(slots)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, key(masterID, date), raw, c.ttl).Err(); err != nil {
		log.Println("day schedule cache write error:", err)
	}
}

// Invalidate drops the cached schedule after a commit changed the day.
func (c *DayScheduleCache) Invalidate(ctx context.Context, masterID uint, date string) {
	if c == nil || c.rdb == nil {
		return
	}
	if err := c.rdb.Del(ctx, key(masterID, date)).Err(); err != nil {
		log.Println("day schedule cache invalidate error:", err)
	}
}
