package ports

// Frontend is a long-running intake surface (HTTP API) in front of the triage service
type Frontend interface {
	// Start starts serving in the background
	Start() error

	// Stop stops the frontend
	Stop() error
}
