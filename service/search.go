package service

import (
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"time"

	"github.com/sanyokkme/fiyouai/data"
	"github.com/sanyokkme/fiyouai/types"
)

const openFoodFactsSearchURL = "https://world.openfoodfacts.org/cgi/search.pl"

// SearchService finds food products by name, merging the user-contributed
// food_products table with the OpenFoodFacts catalog. Either source
// failing degrades to its absence, never to a failed search.
type SearchService struct {
	store     data.Store
	client    *http.Client
	searchURL string
}

func NewSearchService(store data.Store) *SearchService {
	return &SearchService{
		store:     store,
		client:    &http.Client{Timeout: 6 * time.Second},
		searchURL: openFoodFactsSearchURL,
	}
}

// SearchFood returns local matches first, then global catalog matches
func (s *SearchService) SearchFood(query string) []types.FoodProduct {
	results := s.searchLocal(query)
	return append(results, s.searchGlobal(query)...)
}

func (s *SearchService) searchLocal(query string) []types.FoodProduct {
	rows, err := s.store.FetchRows(data.Query{
		Table:   "food_products",
		Filters: []data.Filter{data.ILike("name", "%" + query + "%")},
		Limit:   5,
	})
	if err != nil {
		fmt.Printf("Local food search failed: %v\n", err)
		return []types.FoodProduct{}
	}

	results := make([]types.FoodProduct, 0, len(rows))
	for _, row := range rows {
		results = append(results, types.FoodProduct{
			Name:     stringField(row, "name"),
			Calories: CleanToInt(row["calories"]),
			Protein:  CleanToFloat(row["protein"]),
			Fat:      CleanToFloat(row["fat"]),
			Carbs:    CleanToFloat(row["carbs"]),
			Source:   "local",
		})
	}
	return results
}

type foodFactsSearchResponse struct {
	Products []struct {
		ProductName   string `json:"product_name"`
		ProductNameUK string `json:"product_name_uk"`
		ProductNamePL string `json:"product_name_pl"`
		Brands        string `json:"brands"`
		Nutriments    struct {
			EnergyKcal100g    any `json:"energy-kcal_100g"`
			Proteins100g      any `json:"proteins_100g"`
			Fat100g           any `json:"fat_100g"`
			Carbohydrates100g any `json:"carbohydrates_100g"`
		} `json:"nutriments"`
	} `json:"products"`
}

func (s *SearchService) searchGlobal(query string) []types.FoodProduct {
	params := url.Values{}
	params.Set("search_terms", query)
	params.Set("search_simple", "1")
	params.Set("action", "process")
	params.Set("json", "1")
	params.Set("page_size", "10")
	params.Set("fields", "product_name,product_name_uk,product_name_pl,nutriments,brands")

	resp, err := s.client.Get(s.searchURL + "?" + params.Encode())
	if err != nil {
		fmt.Printf("Global food search failed: %v\n", err)
		return []types.FoodProduct{}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return []types.FoodProduct{}
	}

	var searchResp foodFactsSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&searchResp); err != nil {
		fmt.Printf("Failed to parse food search response: %v\n", err)
		return []types.FoodProduct{}
	}

	results := make([]types.FoodProduct, 0, len(searchResp.Products))
	for _, p := range searchResp.Products {
		name := p.ProductNameUK
		if name == "" {
			name = p.ProductNamePL
		}
		if name == "" {
			name = p.ProductName
		}
		if name == "" {
			continue
		}

		calories := CleanToInt(p.Nutriments.EnergyKcal100g)
		if calories == 0 && !isWater(name) {
			continue
		}

		if p.Brands != "" {
			name = fmt.Sprintf("%s (%s)", name, p.Brands)
		}

		results = append(results, types.FoodProduct{
			Name:     name,
			Calories: calories,
			Protein:  round1(CleanToFloat(p.Nutriments.Proteins100g)),
			Fat:      round1(CleanToFloat(p.Nutriments.Fat100g)),
			Carbs:    round1(CleanToFloat(p.Nutriments.Carbohydrates100g)),
			Source:   "global",
		})
	}
	return results
}

func isWater(name string) bool {
	switch name {
	case "water", "Water", "вода", "Вода", "woda", "Woda":
		return true
	}
	return false
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
