package catalog

import "errors"

var (
	ErrBodyTypeNotFound = errors.New("body type not found")
	ErrBlendNotFound    = errors.New("blend not found")
	ErrMenuItemNotFound = errors.New("menu item not found")
)
