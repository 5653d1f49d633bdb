package services

import (
	"context"
	"time"

	"devops-info/service/internal/constants"
	"devops-info/service/internal/models/dtos"
	"devops-info/service/internal/uptime"
)

// SystemFactsProvider supplies host facts. Implementations never fail; a
// lookup that cannot be answered is reported with its default value.
type SystemFactsProvider interface {
	Collect(ctx context.Context) dtos.SystemInfo
}

// InfoService assembles the payloads for the root and health endpoints.
type InfoService struct {
	tracker   *uptime.Tracker
	facts     SystemFactsProvider
	service   dtos.ServiceInfo
	endpoints []dtos.EndpointDescriptor
	now       func() time.Time
}

func NewInfoService(tracker *uptime.Tracker, facts SystemFactsProvider) *InfoService {
	return &InfoService{
		tracker:   tracker,
		facts:     facts,
		service:   DefaultServiceInfo(),
		endpoints: constants.Endpoints(),
		now:       time.Now,
	}
}

// WithClock overrides the time source. Used by tests to pin uptime.
func (s *InfoService) WithClock(now func() time.Time) *InfoService {
	s.now = now
	return s
}

func DefaultServiceInfo() dtos.ServiceInfo {
	return dtos.ServiceInfo{
		Name:        constants.ServiceName,
		Version:     constants.Version,
		Description: constants.ServiceDescription,
		Framework:   constants.ServiceFramework,
	}
}

func (s *InfoService) Root(ctx context.Context, req dtos.RequestInfo) dtos.RootResponse {
	return BuildRootResponse(
		NormalizeRequestInfo(req),
		s.service,
		s.facts.Collect(ctx),
		s.tracker.Compute(s.now()),
		s.endpoints,
	)
}

func (s *InfoService) Health() dtos.HealthResponse {
	return BuildHealthResponse(s.tracker.Compute(s.now()))
}

// NormalizeRequestInfo replaces empty fields with "unknown".
func NormalizeRequestInfo(req dtos.RequestInfo) dtos.RequestInfo {
	orUnknown := func(v string) string {
		if v == "" {
			return constants.Unknown
		}
		return v
	}
	return dtos.RequestInfo{
		ClientIP:  orUnknown(req.ClientIP),
		UserAgent: orUnknown(req.UserAgent),
		Method:    orUnknown(req.Method),
		Path:      orUnknown(req.Path),
	}
}

func BuildRootResponse(
	req dtos.RequestInfo,
	svc dtos.ServiceInfo,
	sys dtos.SystemInfo,
	rt dtos.RuntimeInfo,
	endpoints []dtos.EndpointDescriptor,
) dtos.RootResponse {
	eps := make([]dtos.EndpointDescriptor, len(endpoints))
	copy(eps, endpoints)

	return dtos.RootResponse{
		Service:   svc,
		System:    sys,
		Runtime:   rt,
		Request:   req,
		Endpoints: eps,
	}
}

func BuildHealthResponse(rt dtos.RuntimeInfo) dtos.HealthResponse {
	return dtos.HealthResponse{
		Status:        string(constants.HealthStatusHealthy),
		Timestamp:     rt.CurrentTime,
		UptimeSeconds: rt.UptimeSeconds,
	}
}
