package domain

import "errors"

// ErrProductNotFound is returned when a product name is not in the similarity table.
var ErrProductNotFound = errors.New("product not found")
