package offweb

import "go.uber.org/zap"

const IntegrationName = "openfoodfacts_web"

type OpenFoodFactsWebIntegration struct {
	logger *zap.Logger
}

func NewOpenFoodFactsWebIntegration(logger *zap.Logger) *OpenFoodFactsWebIntegration {
	return &OpenFoodFactsWebIntegration{logger: logger}
}
