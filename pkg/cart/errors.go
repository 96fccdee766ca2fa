package cart

import (
	"fmt"

	"github.com/dmitrymomot/cartkit/pkg/validator"
)

// ErrItemNotFound is returned by Remove when the trimmed name is absent.
// It wraps validator.ErrNotFound.
var ErrItemNotFound = fmt.Errorf("cart item %w", validator.ErrNotFound)
