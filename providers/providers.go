package providers

import (
	"context"
	"net/http"
	"time"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"itam/models"
)

type AuthMiddlewareService interface {
	JWTAuthMiddleware() func(http.Handler) http.Handler
	RequireRole(roles ...models.Role) func(http.Handler) http.Handler
	GetCallerFromContext(r *http.Request) (string, models.Role, error)
}

type ConfigProvider interface {
	LoadEnv() error
	GetDatabaseString() string
	GetServerPort() string
	GetRedisAddr() string
	GetHolidayDates() []string
}

type DBProvider interface {
	DB() *sqlx.DB
	Close() error
}

type RedisProvider interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	SAdd(ctx context.Context, key string, members ...interface{}) error
	SIsMember(ctx context.Context, key string, member interface{}) (bool, error)
	Ping(ctx context.Context) error
	Close() error
}

type ZapLoggerProvider interface {
	InitLogger()
	SyncLogger()
	GetLogger() *zap.Logger
}

// Clock is the engine's view of "now". Externalized so date-rule tests can
// pin the current day.
type Clock interface {
	Now() time.Time
}

// HolidayCalendar answers whether a calendar date is a public holiday. The
// backing list is updatable without touching the allocation engine.
type HolidayCalendar interface {
	IsHoliday(ctx context.Context, date time.Time) (bool, error)
}
