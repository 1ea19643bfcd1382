package jobsearch

// DefaultPageSize размер страницы выдачи.
const DefaultPageSize = 15

// Page is one slice of a paginated result.
type Page[T any] struct {
	Items     []T `json:"items"`
	Page      int `json:"page"`
	PageCount int `json:"page_count"`
	PageSize  int `json:"page_size"`
	Total     int `json:"total"`
}

// PageCount возвращает ceil(total / size).
func PageCount(total, size int) int {
	if size <= 0 || total <= 0 {
		return 0
	}
	return (total + size - 1) / size
}

// ClampPage приводит номер страницы к диапазону [1, max(1, pageCount)].
func ClampPage(page, pageCount int) int {
	if page < 1 {
		return 1
	}
	if pageCount < 1 {
		pageCount = 1
	}
	if page > pageCount {
		return pageCount
	}
	return page
}

// Paginate вырезает страницу page из items. Номер страницы ограничивается
// допустимым диапазоном.
func Paginate[T any](items []T, page, size int) Page[T] {
	if size <= 0 {
		size = DefaultPageSize
	}
	total := len(items)
	count := PageCount(total, size)
	page = ClampPage(page, count)

	start := (page - 1) * size
	end := start + size
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	out := make([]T, end-start)
	copy(out, items[start:end])
	return Page[T]{
		Items:     out,
		Page:      page,
		PageCount: count,
		PageSize:  size,
		Total:     total,
	}
}
