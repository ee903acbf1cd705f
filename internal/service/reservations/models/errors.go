package models

import "errors"

// ErrInvalidStatus возвращается при неизвестном статусе в фильтре
var ErrInvalidStatus = errors.New("models: invalid reservation status")
