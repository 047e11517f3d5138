package server

// Server is the lifecycle contract of the application server.
//
// RunServer blocks until a stop signal arrives and the server has shut
// down. Shutdown drains in-flight requests and then releases the resources
// handed to NewServer.
type Server interface {
	RunServer()
	Shutdown()
}
