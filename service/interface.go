package service

// Service defines the lifecycle interface for infrastructure subsystems
// Services manage long-lived resources: audio output, loaded content
//
// Lifecycle:
//  1. Construction (configured by the caller)
//  2. Init() - acquire resources, in dependency order
//  3. Start() - begin operation
//  4. [runtime operation]
//  5. Stop() - release resources, in reverse order
type Service interface {
	// Name returns the unique identifier for this service
	Name() string

	// Dependencies returns names of services that must Init before this one
	Dependencies() []string

	Init() error
	Start() error

	// Stop must be idempotent
	Stop() error
}
