package slider

import "errors"

var (
	// ErrConfiguration is returned when the slider cannot be built from its
	// configuration or host. The slider stays inert.
	ErrConfiguration = errors.New("slider configuration")

	// ErrInvalidGeometry is returned when measured extents would produce a
	// zero, negative or NaN offset.
	ErrInvalidGeometry = errors.New("invalid slider geometry")
)
