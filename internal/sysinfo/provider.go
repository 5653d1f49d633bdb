package sysinfo

import (
	"context"
	"os"
	"runtime"
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/host"

	"devops-info/service/internal/common"
	"devops-info/service/internal/logging"
	"devops-info/service/internal/models/dtos"
)

const (
	DefaultCacheTTL = 30 * time.Second

	cacheKey = "SYSTEM_INFO"
)

// Fallbacks used when a lookup fails.
const (
	DefaultHostname  = ""
	DefaultPlatform  = ""
	DefaultCPUCount  = 1
	DefaultGoVersion = "unknown"
)

// Platform is the OS name and release reported by the host.
type Platform struct {
	Name    string
	Version string
}

// Lookups are the host queries behind SystemInfo. Any of them may fail; the
// Provider substitutes the matching default.
type Lookups struct {
	Hostname  func(ctx context.Context) (string, error)
	Platform  func(ctx context.Context) (Platform, error)
	CPUCount  func(ctx context.Context) (int, error)
	GoVersion func(ctx context.Context) (string, error)
}

// HostLookups queries the running host through gopsutil and the Go runtime.
func HostLookups() Lookups {
	return Lookups{
		Hostname: func(ctx context.Context) (string, error) {
			return os.Hostname()
		},
		Platform: func(ctx context.Context) (Platform, error) {
			info, err := host.InfoWithContext(ctx)
			if err != nil {
				return Platform{}, err
			}
			return Platform{Name: info.OS, Version: info.KernelVersion}, nil
		},
		CPUCount: func(ctx context.Context) (int, error) {
			return cpu.CountsWithContext(ctx, true)
		},
		GoVersion: func(ctx context.Context) (string, error) {
			return runtime.Version(), nil
		},
	}
}

type Provider struct {
	lookups Lookups
	arch    string
	cache   common.CacheInterface
	ttl     time.Duration
}

type Option func(*Provider)

// WithLookups replaces the host queries, mainly for tests.
func WithLookups(l Lookups) Option {
	return func(p *Provider) { p.lookups = l }
}

// WithCache memoises collected facts for ttl. A ttl of 0 disables the memo.
func WithCache(c common.CacheInterface, ttl time.Duration) Option {
	return func(p *Provider) {
		p.cache = c
		p.ttl = ttl
	}
}

func NewProvider(opts ...Option) *Provider {
	p := &Provider{
		lookups: HostLookups(),
		arch:    runtime.GOARCH,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Collect returns the host facts. It never fails.
func (p *Provider) Collect(ctx context.Context) dtos.SystemInfo {
	if p.cache == nil || p.ttl <= 0 {
		return p.collect(ctx)
	}

	val, _ := p.cache.GetOrSet(cacheKey, p.ttl, func() (any, error) {
		return p.collect(ctx), nil
	})
	return val.(dtos.SystemInfo)
}

func (p *Provider) collect(ctx context.Context) dtos.SystemInfo {
	info := dtos.SystemInfo{
		Hostname:        DefaultHostname,
		Platform:        DefaultPlatform,
		PlatformVersion: DefaultPlatform,
		Architecture:    p.arch,
		CPUCount:        DefaultCPUCount,
		GoVersion:       DefaultGoVersion,
	}

	if p.lookups.Hostname != nil {
		if name, err := p.lookups.Hostname(ctx); err != nil {
			logging.Debug("hostname lookup failed", "error", err.Error())
		} else {
			info.Hostname = name
		}
	}

	if p.lookups.Platform != nil {
		if plat, err := p.lookups.Platform(ctx); err != nil {
			logging.Debug("platform lookup failed", "error", err.Error())
		} else {
			info.Platform = plat.Name
			info.PlatformVersion = plat.Version
		}
	}

	if p.lookups.CPUCount != nil {
		if n, err := p.lookups.CPUCount(ctx); err != nil {
			logging.Debug("cpu count lookup failed", "error", err.Error())
		} else if n > 0 {
			info.CPUCount = n
		}
	}

	if p.lookups.GoVersion != nil {
		if v, err := p.lookups.GoVersion(ctx); err != nil {
			logging.Debug("go version lookup failed", "error", err.Error())
		} else if v != "" {
			info.GoVersion = v
		}
	}

	return info
}
