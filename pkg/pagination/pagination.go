package pagination

import (
	"fmt"
	"strconv"

	"github.com/labstack/echo/v4"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// Params holds page-number pagination parameters extracted from a request.
type Params struct {
	Page     int
	PageSize int
}

// FromContextWithLimits extracts pagination parameters from the echo context.
// Missing or non-numeric values fall back to page 1 and defaultSize; sizes
// above maxSize are capped.
func FromContextWithLimits(c echo.Context, defaultSize, maxSize int) Params {
	size, _ := strconv.Atoi(c.QueryParam("page_size"))
	if size <= 0 {
		size, _ = strconv.Atoi(c.QueryParam("limit"))
	}
	if size <= 0 {
		size = defaultSize
	}
	if maxSize > 0 && size > maxSize {
		size = maxSize
	}

	page, _ := strconv.Atoi(c.QueryParam("page"))
	if page <= 0 {
		page = 1
	}

	return Params{Page: page, PageSize: size}
}

// TotalPages returns ceil(total/pageSize), never less than 1.
func TotalPages(total, pageSize int) int {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if total <= 0 {
		return 1
	}
	return (total + pageSize - 1) / pageSize
}

// Clamp returns page limited to [1, totalPages].
func Clamp(page, totalPages int) int {
	if page < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}

// Page is one slice of a larger sequence.
type Page[T any] struct {
	Items      []T
	Page       int
	PageSize   int
	Total      int
	TotalPages int
	HasNext    bool
	HasPrev    bool
}

// Paginate slices items into fixed-size pages and returns the requested one.
// Out-of-range page numbers are clamped to the nearest valid page.
func Paginate[T any](items []T, pageSize, page int) Page[T] {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	total := len(items)
	totalPages := TotalPages(total, pageSize)
	page = Clamp(page, totalPages)

	start := (page - 1) * pageSize
	end := start + pageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	out := make([]T, end-start)
	copy(out, items[start:end])

	return Page[T]{
		Items:      out,
		Page:       page,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
	}
}

// Response wraps a paginated API response.
type Response struct {
	Data       interface{} `json:"data"`
	Total      int         `json:"total"`
	Page       int         `json:"page"`
	PageSize   int         `json:"page_size"`
	TotalPages int         `json:"total_pages"`
	HasNext    bool        `json:"has_next"`
	HasPrev    bool        `json:"has_prev"`
	Links      []Link      `json:"links,omitempty"`
}

func NewResponse[T any](p Page[T]) *Response {
	return &Response{
		Data:       p.Items,
		Total:      p.Total,
		Page:       p.Page,
		PageSize:   p.PageSize,
		TotalPages: p.TotalPages,
		HasNext:    p.HasNext,
		HasPrev:    p.HasPrev,
	}
}

// WithLinks attaches the navigation links of r under basePath.
func (r *Response) WithLinks(basePath string) *Response {
	r.Links = Links(basePath, r.Page, r.PageSize, r.TotalPages)
	return r
}

// Links generates navigation links for a page of results.
// basePath should be the request path (e.g., "/api/v1/doctors").
func Links(basePath string, page, pageSize, totalPages int) []Link {
	page = Clamp(page, totalPages)
	links := []Link{
		{
			Relation: "self",
			URL:      fmt.Sprintf("%s?page=%d&page_size=%d", basePath, page, pageSize),
		},
	}

	if page < totalPages {
		links = append(links, Link{
			Relation: "next",
			URL:      fmt.Sprintf("%s?page=%d&page_size=%d", basePath, page+1, pageSize),
		})
	}

	if page > 1 {
		links = append(links, Link{
			Relation: "previous",
			URL:      fmt.Sprintf("%s?page=%d&page_size=%d", basePath, page-1, pageSize),
		})
	}

	return links
}

// Link represents a single navigation link.
type Link struct {
	Relation string `json:"relation"`
	URL      string `json:"url"`
}
