package model

// Environment names.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)

// Scope carries the per-request identity resolved by the auth middleware.
// Every use case method receives it; repositories filter by its UserID.
type Scope struct {
	UserID string
}
