package cart

import "errors"

var ErrCartEmpty = errors.New("cart is empty")
