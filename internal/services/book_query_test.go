package services_test

import (
	"testing"

	"bookstore/internal/repositories"
	"bookstore/internal/services"

	"github.com/stretchr/testify/assert"
)

func TestResolveBookFilter(t *testing.T) {
	tests := []struct {
		name   string
		params services.BookQueryParams
		want   repositories.BookFilter
	}{
		{
			name:   "no parameters lists everything",
			params: services.BookQueryParams{},
			want:   repositories.BookFilter{Kind: repositories.FilterAll},
		},
		{
			name:   "valid price range",
			params: services.BookQueryParams{MinPrice: "5", MaxPrice: "20"},
			want:   repositories.BookFilter{Kind: repositories.FilterPriceRange, MinPrice: 5, MaxPrice: 20, Order: repositories.SortAsc},
		},
		{
			name:   "price range wins over title and author",
			params: services.BookQueryParams{MinPrice: "0", MaxPrice: "2", Title: "hobbit", Author: "tolkien"},
			want:   repositories.BookFilter{Kind: repositories.FilterPriceRange, MinPrice: 0, MaxPrice: 2, Order: repositories.SortAsc},
		},
		{
			name:   "max below two falls through to title",
			params: services.BookQueryParams{MinPrice: "0", MaxPrice: "1.5", Title: "hobbit"},
			want:   repositories.BookFilter{Kind: repositories.FilterTitle, Term: "hobbit"},
		},
		{
			name:   "min equal to max is not a range",
			params: services.BookQueryParams{MinPrice: "10", MaxPrice: "10"},
			want:   repositories.BookFilter{Kind: repositories.FilterAll},
		},
		{
			name:   "negative min is not a range",
			params: services.BookQueryParams{MinPrice: "-1", MaxPrice: "10", Author: "Le Guin"},
			want:   repositories.BookFilter{Kind: repositories.FilterAuthor, Term: "Le Guin"},
		},
		{
			name:   "bounds compare numerically",
			params: services.BookQueryParams{MinPrice: "9", MaxPrice: "10"},
			want:   repositories.BookFilter{Kind: repositories.FilterPriceRange, MinPrice: 9, MaxPrice: 10, Order: repositories.SortAsc},
		},
		{
			name:   "non numeric bound disables range",
			params: services.BookQueryParams{MinPrice: "cheap", MaxPrice: "10"},
			want:   repositories.BookFilter{Kind: repositories.FilterAll},
		},
		{
			name:   "only one bound disables range",
			params: services.BookQueryParams{MaxPrice: "10"},
			want:   repositories.BookFilter{Kind: repositories.FilterAll},
		},
		{
			name:   "infinite bound disables range",
			params: services.BookQueryParams{MinPrice: "0", MaxPrice: "Inf"},
			want:   repositories.BookFilter{Kind: repositories.FilterAll},
		},
		{
			name:   "title wins over author",
			params: services.BookQueryParams{Title: " Hobbit ", Author: "Tolkien"},
			want:   repositories.BookFilter{Kind: repositories.FilterTitle, Term: "Hobbit"},
		},
		{
			name:   "blank title is ignored",
			params: services.BookQueryParams{Title: "   ", Author: "Tolkien"},
			want:   repositories.BookFilter{Kind: repositories.FilterAuthor, Term: "Tolkien"},
		},
		{
			name:   "order is parsed case-insensitively",
			params: services.BookQueryParams{Order: "DESC"},
			want:   repositories.BookFilter{Kind: repositories.FilterAll, Order: repositories.SortDesc},
		},
		{
			name:   "price range ignores a descending order",
			params: services.BookQueryParams{MinPrice: "5", MaxPrice: "20", Order: "desc"},
			want:   repositories.BookFilter{Kind: repositories.FilterPriceRange, MinPrice: 5, MaxPrice: 20, Order: repositories.SortAsc},
		},
		{
			name:   "unknown order is ignored",
			params: services.BookQueryParams{Order: "sideways"},
			want:   repositories.BookFilter{Kind: repositories.FilterAll},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, services.ResolveBookFilter(tt.params))
		})
	}
}
