// internal/domain/pricing/errors.go
package pricing

import "errors"

// ErrInvalidConfiguration is returned for a non-positive free-shipping
// threshold or a negative fee or tax rate.
var ErrInvalidConfiguration = errors.New("invalid pricing configuration")
