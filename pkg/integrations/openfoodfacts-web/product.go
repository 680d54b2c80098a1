package offweb

import (
	"encoding/json"
	"strings"

	"github.com/gocolly/colly/v2"
	"github.com/shopspring/decimal"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/ikormushev/manjabook/pkg/model"
)

type ProductJSON struct {
	Name  string `json:"name"`
	Brand struct {
		Name string `json:"name"`
	} `json:"brand"`
	Nutrition struct {
		ServingSize         string `json:"servingSize"`
		Calories            string `json:"calories"`
		ProteinContent      string `json:"proteinContent"`
		CarbohydrateContent string `json:"carbohydrateContent"`
		SugarContent        string `json:"sugarContent"`
		FatContent          string `json:"fatContent"`
		SaturatedFatContent string `json:"saturatedFatContent"`
		SodiumContent       string `json:"sodiumContent"`
		FiberContent        string `json:"fiberContent"`
	} `json:"nutrition"`
}

type ProductScraped struct {
	IDLink string `attr:"href"                   selector:"a.list_product_a"`
	Name   string `selector:".list_product_name"`
	Brand  string `selector:".list_product_brands"`
}

type scrapeResults struct {
	products []model.Product
	err      error
}

func (o *OpenFoodFactsWebIntegration) FindProduct(name string) ([]model.Product, error) {
	collector := colly.NewCollector(
		colly.AllowedDomains("world.openfoodfacts.org"),
		colly.UserAgent("Mozilla/5.0 (X11; Ubuntu; Linux x86_64; rv:15.0) Gecko/20100101 Firefox/15.0.1"),
	)

	var (
		errs         error
		results      []model.Product
		scrapedPages []ProductScraped
	)

	collector.OnHTML("ul.products li", func(element *colly.HTMLElement) {
		scraped := ProductScraped{}

		err := element.Unmarshal(&scraped)
		if multierr.AppendInto(&errs, err) {
			o.logger.Error("failed to unmarshal scraped product", zap.Error(err))

			return
		}

		o.logger.Info("successfully scraped item from results", zap.String("link", scraped.IDLink), zap.String("name", scraped.Name))

		scrapedPages = append(scrapedPages, scraped)
	})

	collector.OnError(func(response *colly.Response, err error) {
		o.logger.Error("error while scraping product search results", zap.String("url", response.Request.URL.String()), zap.Error(err))
	})

	o.logger.Info("scraping query results", zap.String("query", name))
	multierr.AppendInto(&errs, collector.Visit("https://world.openfoodfacts.org/cgi/search.pl?search_simple=1&action=process&search_terms="+name))

	productChan := make(chan scrapeResults, len(scrapedPages))

	for _, scraped := range scrapedPages {
		go o.getProductData(collector.Clone(), scraped, productChan)
	}

	// single receiver so results and errs are only touched from this goroutine
	for range scrapedPages {
		scraped := <-productChan
		results = append(results, scraped.products...)
		multierr.AppendInto(&errs, scraped.err)
	}

	o.logger.Info("finished scraping query results", zap.Int("count", len(results)), zap.Error(errs))

	return results, errs
}

func (o *OpenFoodFactsWebIntegration) getProductData(detailCollector *colly.Collector, scraped ProductScraped, productChan chan scrapeResults) {
	product := model.Product{
		Name:         scraped.Name,
		Brand:        firstBrand(scraped.Brand),
		NutritionPer: model.BasisGrams,
	}

	detailCollector.OnHTML("head script[type='application/ld+json']", func(element *colly.HTMLElement) {
		var productJSON ProductJSON
		_ = json.Unmarshal([]byte(element.Text), &productJSON)

		o.logger.Info("successfully scraped product from JSON data", zap.String("name", productJSON.Name))

		if len(product.Name) == 0 {
			product.Name = productJSON.Name
		}

		if len(product.Brand) == 0 {
			product.Brand = productJSON.Brand.Name
		}

		product.NutritionPer = basisFromServingSize(productJSON.Nutrition.ServingSize)
		product.Calories = parseAmount(productJSON.Nutrition.Calories)
		product.Protein = parseAmount(productJSON.Nutrition.ProteinContent)
		product.Carbohydrates = parseAmount(productJSON.Nutrition.CarbohydrateContent)
		product.Sugars = parseAmount(productJSON.Nutrition.SugarContent)
		product.Fats = parseAmount(productJSON.Nutrition.FatContent)
		product.SaturatedFats = parseAmount(productJSON.Nutrition.SaturatedFatContent)
		product.Salt = saltFromSodium(parseAmount(productJSON.Nutrition.SodiumContent))
		product.Fibre = parseAmount(productJSON.Nutrition.FiberContent)
	})

	o.logger.Info("scraping product page", zap.String("link", scraped.IDLink))

	err := detailCollector.Visit("https://world.openfoodfacts.org" + scraped.IDLink)

	productChan <- scrapeResults{products: []model.Product{product}, err: err}
}

// parseAmount reads the leading number out of values like "14.5 g" or
// "539 kcal". Anything unparseable becomes zero.
func parseAmount(value string) decimal.Decimal {
	fields := strings.Fields(value)
	if len(fields) == 0 {
		return decimal.Zero
	}

	amount, err := decimal.NewFromString(strings.ReplaceAll(fields[0], ",", "."))
	if err != nil {
		return decimal.Zero
	}

	return amount.Round(2)
}

// Labels report sodium; salt is sodium times 2.5.
func saltFromSodium(sodium decimal.Decimal) decimal.Decimal {
	return sodium.Mul(decimal.RequireFromString("2.5")).Round(3)
}

func basisFromServingSize(servingSize string) model.MeasurementBasis {
	if strings.Contains(strings.ToLower(servingSize), "ml") {
		return model.BasisMilliliters
	}

	return model.BasisGrams
}

func firstBrand(brands string) string {
	brand, _, _ := strings.Cut(brands, ",")

	return strings.TrimSpace(brand)
}
