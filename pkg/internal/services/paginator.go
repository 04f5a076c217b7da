package services

import (
	"github.com/emberlight/chronicle/pkg/internal/models"
	"gorm.io/gorm"
)

// NumberOfPosts is the fixed feed page size.
const NumberOfPosts = 10

type Page[T any] struct {
	Items       []T   `json:"items"`
	Count       int64 `json:"count"`
	CurrentPage int   `json:"current_page"`
	TotalPages  int   `json:"total_pages"`
	HasNext     bool  `json:"has_next"`
	HasPrevious bool  `json:"has_previous"`
}

// ClampPage folds out-of-range page numbers back onto the nearest valid
// page: zero, negative or unparsable input lands on the first page, numbers
// past the end land on the last one.
func ClampPage(page int, totalPages int) int {
	if page < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}

func TotalPages(count int64, pageSize int) int {
	pages := int((count + int64(pageSize) - 1) / int64(pageSize))
	if pages < 1 {
		pages = 1
	}
	return pages
}

// PaginatePost slices the filtered, ordered post query into a fixed-size
// page. Identical filters and page number always yield the identical page.
func PaginatePost(tx *gorm.DB, page int) (Page[models.Post], error) {
	var out Page[models.Post]

	count, err := CountPost(tx.Session(&gorm.Session{}))
	if err != nil {
		return out, err
	}

	totalPages := TotalPages(count, NumberOfPosts)
	page = ClampPage(page, totalPages)

	items, err := ListPost(tx, NumberOfPosts, (page-1)*NumberOfPosts, "created_at DESC, id DESC")
	if err != nil {
		return out, err
	}

	out = Page[models.Post]{
		Items:       items,
		Count:       count,
		CurrentPage: page,
		TotalPages:  totalPages,
		HasNext:     page < totalPages,
		HasPrevious: page > 1,
	}
	return out, nil
}
