package api

import (
	"devops-info/service/internal/common"
	"devops-info/service/internal/services"
	"devops-info/service/internal/sysinfo"
	"devops-info/service/internal/uptime"
)

type Services struct {
	Cache *common.CacheService
	Facts *sysinfo.Provider
	Info  *services.InfoService
}

type Dependencies struct {
	Tracker  *uptime.Tracker
	Services *Services
}

// InitDependencies wires the services around the process start tracker.
func InitDependencies(tracker *uptime.Tracker) *Dependencies {
	cacheSvc := common.NewCacheService(sysinfo.DefaultCacheTTL, 2*sysinfo.DefaultCacheTTL)
	facts := sysinfo.NewProvider(sysinfo.WithCache(cacheSvc, sysinfo.DefaultCacheTTL))

	return &Dependencies{
		Tracker: tracker,
		Services: &Services{
			Cache: cacheSvc,
			Facts: facts,
			Info:  services.NewInfoService(tracker, facts),
		},
	}
}
