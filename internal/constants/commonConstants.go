package constants

type (
	APIStatus    string
	HealthStatus string
)

const (
	APIStatusOk    APIStatus = "ok"
	APIStatusError APIStatus = "error"

	HealthStatusHealthy HealthStatus = "healthy"
)

const (
	ServiceName        = "devops-info-service"
	ServiceDescription = "DevOps course info service"
	ServiceFramework   = "chi"

	// Timestamps in payloads are rendered in UTC with this layout.
	TimeLayout = "2006-01-02 15:04:05"
	Timezone   = "UTC"

	// Unknown replaces request fields the client did not supply.
	Unknown = "unknown"
)

// Version is overridden at build time with -ldflags "-X devops-info/service/internal/constants.Version=..."
var Version = "1.0.0"

const (
	RootPath   = "/"
	HealthPath = "/health"
)
