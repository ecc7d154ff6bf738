package signpost

type Key string

const (
	// IpAddrKey stashes the IP address of an HTTP request being handled by signpost.
	IpAddrKey Key = "IpAddrKey"

	// RequestIDKey stashes a unique UUID for each HTTP request.
	RequestIDKey Key = "RequestIDKey"

	// RouteKey stashes the *logger.LogRoute of the route matching an HTTP request.
	RouteKey Key = "RouteKey"
)

// String formats the stringified key with additional contextual information
func (k Key) String() string {
	return "signpost context key: " + string(k)
}
