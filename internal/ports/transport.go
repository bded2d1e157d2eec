package ports

// Transport defines the interface for a request-serving frontend,
// such as the HTTP server
type Transport interface {
	// Start starts serving requests
	Start() error

	// Stop stops serving requests and releases resources
	Stop() error
}
