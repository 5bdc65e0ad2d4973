package rest

const (
	// action-dispatch endpoints, one POST per concern
	RouteFunctions = "/functions"
	RouteFnAuth    = RouteFunctions + "/auth"
	RouteFnFiles   = RouteFunctions + "/files"
	RouteFnUpload  = RouteFunctions + "/upload"

	// ops
	RouteApiV1   = "/api/v1"
	RouteHealth  = RouteApiV1 + "/healthz"
	RouteMetrics = RouteApiV1 + "/metrics"
)
