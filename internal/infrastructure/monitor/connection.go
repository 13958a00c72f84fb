package monitor

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	redislib "github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Monitor keeps a periodic snapshot of dependency health for the /health
// endpoint.
type Monitor struct {
	pg    *pgxpool.Pool
	redis *redislib.Client

	status Status
	mu     sync.RWMutex
	cron   *cron.Cron
	logger *zap.Logger
}

func New(pg *pgxpool.Pool, redis *redislib.Client, interval time.Duration, logger *zap.Logger) *Monitor {
	if interval <= 0 {
		interval = 10 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	m := &Monitor{
		pg:     pg,
		redis:  redis,
		cron:   cron.New(cron.WithSeconds()),
		logger: logger,
	}

	schedule := fmt.Sprintf("@every %ds", int(interval.Seconds()))
	_, _ = m.cron.AddFunc(schedule, m.refresh)

	return m
}

func (m *Monitor) Start() {
	m.refresh()
	m.cron.Start()
}

func (m *Monitor) Stop() {
	<-m.cron.Stop().Done()
}

func (m *Monitor) IsOnline() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.status.PostgreSQL && m.status.Redis
}

func (m *Monitor) GetStatus() Status {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.status
}

func (m *Monitor) refresh() {
	status := Status{
		PostgreSQL: m.checkPostgres(),
		Redis:      m.checkRedis(),
		LastCheck:  time.Now(),
	}

	m.mu.Lock()
	m.status = status
	m.mu.Unlock()
}

func (m *Monitor) checkPostgres() bool {
	if m.pg == nil {
		return false
	}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	return m.pg.Ping(ctx) == nil
}

func (m *Monitor) checkRedis() bool {
	if m.redis == nil {
		return false
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return m.redis.Ping(ctx).Err() == nil
}
