package common

// FindByID - универсальный поиск сущности по ID в срезе фикстур.
// Возвращает копию, чтобы вызывающий не мог изменить общие данные.
func FindByID[T any](items []T, id int, idOf func(T) int, notFoundErr error) (*T, error) {
	for i := range items {
		if idOf(items[i]) == id {
			entity := items[i]
			return &entity, nil
		}
	}
	return nil, notFoundErr
}

// FilterBy возвращает элементы, удовлетворяющие предикату, в исходном порядке.
func FilterBy[T any](items []T, keep func(T) bool) []T {
	out := make([]T, 0)
	for _, item := range items {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}

// Clone возвращает копию среза.
func Clone[T any](items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	return out
}
