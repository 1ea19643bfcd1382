package common

import "errors"

// ErrNotFound общая ошибка для всех репозиториев, конкретные оборачивают её.
var ErrNotFound = errors.New("entity not found")
