// Package dbtest provides a db.Gateway backed by pgxmock for tests.
package dbtest

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/require"
	"github.com/yigit/studentroster/internal/db"
	"github.com/yigit/studentroster/internal/pkg/apperrors"
)

// Gateway hands out connections that share a single pgxmock connection and
// counts acquisitions and releases.
type Gateway struct {
	Mock pgxmock.PgxConnIface

	// AcquireErr, when set, makes Acquire fail the way the pool does.
	AcquireErr error
	// PingErr, when set, makes Ping fail after a successful acquire.
	PingErr error

	mu       sync.Mutex
	acquired int
	released int
}

// New creates a Gateway and closes its mock when the test ends.
func New(t testing.TB) *Gateway {
	t.Helper()
	mock, err := pgxmock.NewConn()
	require.NoError(t, err)
	t.Cleanup(func() { _ = mock.Close(context.Background()) })
	return &Gateway{Mock: mock}
}

// Acquire implements db.Gateway.
func (g *Gateway) Acquire(ctx context.Context) (db.Conn, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.AcquireErr != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrConnectionFailed, g.AcquireErr)
	}
	g.acquired++
	return &conn{PgxConnIface: g.Mock, gateway: g}, nil
}

// Ping implements db.Gateway.
func (g *Gateway) Ping(ctx context.Context) error {
	c, err := g.Acquire(ctx)
	if err != nil {
		return err
	}
	defer c.Release()

	if g.PingErr != nil {
		return fmt.Errorf("%w: %w", apperrors.ErrConnectionFailed, g.PingErr)
	}
	return nil
}

// Acquired returns how many connections were handed out.
func (g *Gateway) Acquired() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.acquired
}

// Outstanding returns how many handed out connections were not released.
func (g *Gateway) Outstanding() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.acquired - g.released
}

type conn struct {
	pgxmock.PgxConnIface
	gateway *Gateway
	once    sync.Once
}

func (c *conn) Release() {
	c.once.Do(func() {
		c.gateway.mu.Lock()
		c.gateway.released++
		c.gateway.mu.Unlock()
	})
}
