package service

import "errors"

var (
	// ErrNotFound возвращается репозиторием, когда записи нет
	ErrNotFound = errors.New("not found")
	// ErrNoFieldsToUpdate - в запросе на обновление нет ни одного поля
	ErrNoFieldsToUpdate = errors.New("no valid fields to update")
	// ErrUnknownLayer - запрошен неизвестный слой GeoJSON
	ErrUnknownLayer = errors.New("unknown layer")
)
