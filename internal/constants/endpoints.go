package constants

import (
	"net/http"

	"devops-info/service/internal/models/dtos"
)

// Endpoints lists the routes served by the API, in registration order.
func Endpoints() []dtos.EndpointDescriptor {
	return []dtos.EndpointDescriptor{
		{Path: RootPath, Method: http.MethodGet, Description: "System and service info about the server"},
		{Path: HealthPath, Method: http.MethodGet, Description: "Health check"},
	}
}
