package model

// Environment names the deployment the service runs in.
type Environment string

const EnvironmentProduction Environment = "production"

// IsProduction reports whether name is the production environment.
func IsProduction(name string) bool {
	return Environment(name) == EnvironmentProduction
}
