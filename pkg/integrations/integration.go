package integrations

import (
	"go.uber.org/zap"

	offweb "github.com/ikormushev/manjabook/pkg/integrations/openfoodfacts-web"
	"github.com/ikormushev/manjabook/pkg/model"
)

type Integration interface {
	FindProduct(name string) ([]model.Product, error)
}

func GetIntegration(name string, logger *zap.Logger) Integration {
	if name == offweb.IntegrationName {
		return offweb.NewOpenFoodFactsWebIntegration(logger)
	}

	return nil
}
