package server

import "context"

// Server is the lifecycle contract of the transport servers of this package.
type Server interface {
	// RunServer serves until SIGTERM, SIGINT or SIGQUIT, then shuts down.
	RunServer()

	// Run serves until ctx is done or the listener fails. A shutdown
	// triggered by ctx returns nil.
	Run(ctx context.Context) error

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
