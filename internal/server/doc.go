// Package server wires and runs the application's HTTP server.
//
// It owns the server lifecycle: startup, signal handling, graceful shutdown
// and the release of resources such as the database connection pool once
// the last request has finished.
package server
