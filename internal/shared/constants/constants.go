package constants

// Environment constants
const (
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"
)
