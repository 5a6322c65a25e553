package model

// Environment is the deployment environment name.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentStaging     Environment = "staging"
	EnvironmentProduction  Environment = "production"
)

// IsProduction reports whether name refers to the production environment.
func IsProduction(name string) bool {
	return Environment(name) == EnvironmentProduction
}
