package services

import (
	"math"
	"strconv"
	"strings"

	"bookstore/internal/repositories"
)

// BookQueryParams are the raw query-string parameters of the book listing.
type BookQueryParams struct {
	Author   string `query:"author"`
	Title    string `query:"title"`
	MinPrice string `query:"minPrice"`
	MaxPrice string `query:"maxPrice"`
	Order    string `query:"order"`
}

// ResolveBookFilter picks exactly one listing mode from params. Modes are
// tried in order: price range, title, author, all. The price range applies
// only when both bounds are numbers with 0 <= min < max and max >= 2, and
// its results are always sorted by ascending price.
func ResolveBookFilter(params BookQueryParams) repositories.BookFilter {
	filter := repositories.BookFilter{Order: parseSortOrder(params.Order)}

	minPrice, minOK := parsePrice(params.MinPrice)
	maxPrice, maxOK := parsePrice(params.MaxPrice)
	title := strings.TrimSpace(params.Title)
	author := strings.TrimSpace(params.Author)

	switch {
	case minOK && maxOK && minPrice >= 0 && minPrice < maxPrice && maxPrice >= 2:
		filter.Kind = repositories.FilterPriceRange
		filter.MinPrice = minPrice
		filter.MaxPrice = maxPrice
		filter.Order = repositories.SortAsc
	case title != "":
		filter.Kind = repositories.FilterTitle
		filter.Term = title
	case author != "":
		filter.Kind = repositories.FilterAuthor
		filter.Term = author
	default:
		filter.Kind = repositories.FilterAll
	}
	return filter
}

func parsePrice(raw string) (float64, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

func parseSortOrder(raw string) repositories.SortOrder {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "asc":
		return repositories.SortAsc
	case "desc":
		return repositories.SortDesc
	default:
		return repositories.SortNone
	}
}
