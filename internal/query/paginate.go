package query

// Pagination limits for list views.
const (
	DefaultPageSize = 12
	MaxPageSize     = 50
)

// Page is one page of a list view.
type Page[T any] struct {
	Data        []T `json:"data"`
	TotalPages  int `json:"totalPages"`
	CurrentPage int `json:"currentPage"`
	TotalItems  int `json:"totalItems"`
}

// Paginate slices one page out of items. Pages are 1-indexed; a page past
// the end yields empty data rather than an error, and the page size is
// defaulted and capped so a client cannot request unbounded pages.
func Paginate[T any](items []T, page, pageSize int) Page[T] {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}

	totalItems := len(items)
	totalPages := (totalItems + pageSize - 1) / pageSize

	start := (page - 1) * pageSize
	if start > totalItems {
		start = totalItems
	}
	end := start + pageSize
	if end > totalItems {
		end = totalItems
	}

	data := make([]T, end-start)
	copy(data, items[start:end])

	return Page[T]{
		Data:        data,
		TotalPages:  totalPages,
		CurrentPage: page,
		TotalItems:  totalItems,
	}
}
