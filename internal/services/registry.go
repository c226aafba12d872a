package services

// ServiceContainer holds all application services.
type ServiceContainer struct {
	RecommendationService RecommendationService
}
