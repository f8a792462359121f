package calendarprovider

import (
	"context"
	"time"

	"go.uber.org/zap"

	"itam/providers"
	"itam/utils"
)

const holidaySetKey = "itam:holidays"

type SystemClock struct{}

func NewSystemClock() providers.Clock { return SystemClock{} }

func (SystemClock) Now() time.Time { return time.Now() }

// RedisHolidayCalendar checks dates against a redis set so the holiday list
// can be updated out of band. When redis is unreachable or the set is empty
// it falls back to the configured static list.
type RedisHolidayCalendar struct {
	redis    providers.RedisProvider
	fallback map[string]bool
}

func NewHolidayCalendar(redis providers.RedisProvider, seedDates []string) providers.HolidayCalendar {
	fallback := make(map[string]bool, len(seedDates))
	for _, d := range seedDates {
		fallback[d] = true
	}

	cal := &RedisHolidayCalendar{redis: redis, fallback: fallback}
	cal.seed(seedDates)
	return cal
}

func (c *RedisHolidayCalendar) seed(dates []string) {
	if c.redis == nil || len(dates) == 0 {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	members := make([]interface{}, 0, len(dates))
	for _, d := range dates {
		members = append(members, d)
	}
	if err := c.redis.SAdd(ctx, holidaySetKey, members...); err != nil {
		utils.Logger.Warn("failed to seed holiday set, static fallback remains", zap.Error(err))
	}
}

func (c *RedisHolidayCalendar) IsHoliday(ctx context.Context, date time.Time) (bool, error) {
	key := date.Format("2006-01-02")

	if c.redis != nil {
		isMember, err := c.redis.SIsMember(ctx, holidaySetKey, key)
		if err == nil {
			return isMember, nil
		}
		utils.Logger.Warn("holiday lookup fell back to static list", zap.Error(err))
	}
	return c.fallback[key], nil
}

// StaticHolidayCalendar serves a fixed date list; used in tests and when no
// redis address is configured.
type StaticHolidayCalendar struct {
	dates map[string]bool
}

func NewStaticHolidayCalendar(dates []string) providers.HolidayCalendar {
	m := make(map[string]bool, len(dates))
	for _, d := range dates {
		m[d] = true
	}
	return &StaticHolidayCalendar{dates: m}
}

func (c *StaticHolidayCalendar) IsHoliday(_ context.Context, date time.Time) (bool, error) {
	return c.dates[date.Format("2006-01-02")], nil
}
