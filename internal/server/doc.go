// Package server runs the HTTP read API: startup, signal handling and
// graceful shutdown.
package server
