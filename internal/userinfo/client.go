// Package userinfo is the client for the remote user service that owns
// author display identities. The service is the system of record; nothing
// here is cached, so results can be stale or missing per request without
// affecting stored posts.
package userinfo

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/keepalive"
	"google.golang.org/grpc/status"

	"Inkwell/internal/userinfo/userinfopb"
)

// ErrUnavailable is what every failed lookup collapses to. Timeout,
// unreachable channel and remote not-found are distinguished in logs for
// diagnostics, but callers only need one signal: no display identity.
var ErrUnavailable = errors.New("user info unavailable")

// healthProbeID is syntactically a valid UUID that no user can have, so a
// healthy server answers NOT_FOUND. Anything else means the server is down.
const healthProbeID = "00000000-0000-0000-0000-000000000000"

const (
	// DefaultLookupTimeout bounds each resolve call
	DefaultLookupTimeout = 5 * time.Second

	healthProbeTimeout = 2 * time.Second
)

// UserInfo is an author display identity resolved at read time.
type UserInfo struct {
	Name   string
	Avatar string
}

// Client wraps one long-lived connection to the user service. It is safe
// for concurrent use by any number of feed requests; the connection is
// established once at startup and released once at shutdown.
type Client struct {
	conn    *grpc.ClientConn
	stub    userinfopb.UserInfoServiceClient
	timeout time.Duration
	logger  *slog.Logger
}

// Dial creates the shared channel to the user service. Keepalives mirror
// the server contract: probe every 30s, 5s grace, even while idle. A dial
// error here should abort startup; the client is useless without it.
func Dial(addr string, timeout time.Duration, logger *slog.Logger) (*Client, error) {
	if timeout <= 0 {
		timeout = DefaultLookupTimeout
	}
	if logger == nil {
		logger = slog.Default()
	}

	conn, err := grpc.NewClient(addr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithKeepaliveParams(keepalive.ClientParameters{
			Time:                30 * time.Second,
			Timeout:             5 * time.Second,
			PermitWithoutStream: true,
		}),
	)
	if err != nil {
		return nil, err
	}

	logger.Info("user info channel created", "addr", addr, "timeout", timeout)
	return &Client{
		conn:    conn,
		stub:    userinfopb.NewUserInfoServiceClient(conn),
		timeout: timeout,
		logger:  logger,
	}, nil
}

// NewClient builds a Client over an existing connection. Used by tests to
// run against an in-process server.
func NewClient(conn *grpc.ClientConn, timeout time.Duration, logger *slog.Logger) *Client {
	if timeout <= 0 {
		timeout = DefaultLookupTimeout
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		conn:    conn,
		stub:    userinfopb.NewUserInfoServiceClient(conn),
		timeout: timeout,
		logger:  logger,
	}
}

// Close releases the shared channel. Call exactly once at shutdown.
func (c *Client) Close() error {
	return c.conn.Close()
}

// Lookup resolves one user id to its display identity with a bounded
// deadline. Malformed ids are logged and forwarded anyway; the remote is
// the authority on validity.
func (c *Client) Lookup(ctx context.Context, userID string) (*UserInfo, error) {
	id := strings.TrimSpace(userID)
	if id == "" {
		return nil, ErrUnavailable
	}
	if _, err := uuid.Parse(id); err != nil {
		c.logger.Warn("user id is not a UUID, forwarding to remote", "userId", id)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.stub.BlogUserInfo(ctx, &userinfopb.UserInfoRequest{Id: id})
	if err != nil {
		switch status.Code(err) {
		case codes.DeadlineExceeded:
			c.logger.Error("user info lookup timed out", "userId", id, "timeout", c.timeout)
		case codes.Unavailable:
			c.logger.Error("user info service unreachable", "userId", id)
		case codes.NotFound:
			c.logger.Warn("user not found", "userId", id)
		default:
			c.logger.Error("user info lookup failed", "userId", id, "code", status.Code(err), "err", err)
		}
		return nil, ErrUnavailable
	}

	return &UserInfo{Name: resp.Name, Avatar: resp.Avatar}, nil
}

// LookupAll resolves a page worth of user ids in one boundary call. Each id
// still gets its own bounded-deadline RPC, but they run concurrently, so a
// page costs roughly one deadline rather than size times it. Ids that could
// not be resolved are simply absent from the result; callers substitute
// their fallback. Cancelling ctx cancels every in-flight call.
func (c *Client) LookupAll(ctx context.Context, userIDs []string) map[string]UserInfo {
	unique := make([]string, 0, len(userIDs))
	seen := make(map[string]bool, len(userIDs))
	for _, id := range userIDs {
		id = strings.TrimSpace(id)
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		unique = append(unique, id)
	}

	results := make(map[string]UserInfo, len(unique))
	var mu sync.Mutex
	var wg sync.WaitGroup
	for _, id := range unique {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			info, err := c.Lookup(ctx, id)
			if err != nil {
				return
			}
			mu.Lock()
			results[id] = *info
			mu.Unlock()
		}(id)
	}
	wg.Wait()

	return results
}

// Healthy reports whether the user service is reachable. It looks up a
// sentinel id that can never exist: NOT_FOUND proves the server answered,
// anything else counts as down. Health reporting only; ordinary lookups
// are never gated on this.
func (c *Client) Healthy(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, healthProbeTimeout)
	defer cancel()

	_, err := c.stub.BlogUserInfo(ctx, &userinfopb.UserInfoRequest{Id: healthProbeID})
	if err == nil {
		return true
	}
	switch status.Code(err) {
	case codes.NotFound:
		return true
	case codes.Unavailable:
		c.logger.Warn("health probe: user info service unreachable")
	case codes.DeadlineExceeded:
		c.logger.Warn("health probe: user info service not responding")
	default:
		c.logger.Warn("health probe failed", "code", status.Code(err), "err", err)
	}
	return false
}
