package product

import (
	"math"
	"sort"
	"strings"
)

// Supported values for the sort query parameter.
const (
	SortPriceLow  = "price-low"
	SortPriceHigh = "price-high"
	SortRating    = "rating"
)

const defaultLimit = 12

// ListQuery captures the catalog query parameters.
type ListQuery struct {
	Category string
	Search   string
	Sort     string
	Page     int
	Limit    int
}

// Pagination describes the page window of a catalog query result.
type Pagination struct {
	CurrentPage   int  `json:"currentPage"`
	TotalPages    int  `json:"totalPages"`
	TotalProducts int  `json:"totalProducts"`
	HasNext       bool `json:"hasNext"`
	HasPrev       bool `json:"hasPrev"`
}

// Page is the payload of a catalog listing.
type Page struct {
	Products   []Product  `json:"products"`
	Pagination Pagination `json:"pagination"`
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Query filters, searches, sorts and paginates the catalog, in that order.
func (s *Service) Query(q ListQuery) Page {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = defaultLimit
	}

	filtered := s.repo.List()

	if q.Category != "" {
		kept := filtered[:0]
		for _, p := range filtered {
			if strings.EqualFold(p.Category, q.Category) {
				kept = append(kept, p)
			}
		}
		filtered = kept
	}

	if q.Search != "" {
		needle := strings.ToLower(q.Search)
		kept := filtered[:0]
		for _, p := range filtered {
			if strings.Contains(strings.ToLower(p.Name), needle) ||
				strings.Contains(strings.ToLower(p.Description), needle) {
				kept = append(kept, p)
			}
		}
		filtered = kept
	}

	switch q.Sort {
	case SortPriceLow:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Price.LessThan(filtered[j].Price)
		})
	case SortPriceHigh:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Price.GreaterThan(filtered[j].Price)
		})
	case SortRating:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Rating > filtered[j].Rating
		})
	}

	total := len(filtered)
	start := (q.Page - 1) * q.Limit
	end := start + q.Limit

	pageItems := []Product{}
	if start < total {
		if end > total {
			end = total
		}
		pageItems = filtered[start:end]
	}

	return Page{
		Products: pageItems,
		Pagination: Pagination{
			CurrentPage:   q.Page,
			TotalPages:    int(math.Ceil(float64(total) / float64(q.Limit))),
			TotalProducts: total,
			HasNext:       start+q.Limit < total,
			HasPrev:       q.Page > 1,
		},
	}
}

func (s *Service) GetByID(id int) (Product, error) {
	return s.repo.GetByID(id)
}

func (s *Service) GetByCategory(category string) []Product {
	return s.repo.GetByCategory(category)
}
