package units

import (
	"errors"
	"fmt"
)

// Base error kinds. Every precondition violation wraps ErrInvalidArgument;
// a catalog table that disagrees with itself (a member present in one
// table and missing from another) wraps ErrCatalogInconsistent. The two
// kinds stay distinguishable so callers can tell bad input from a
// maintenance bug.
var (
	ErrInvalidArgument     = errors.New("invalid argument")
	ErrCatalogInconsistent = errors.New("catalog inconsistency")
)

// Specific invalid-argument sentinels. All satisfy
// errors.Is(err, ErrInvalidArgument).
var (
	ErrUnknownUnit            = fmt.Errorf("%w: unknown unit", ErrInvalidArgument)
	ErrUnknownProperty        = fmt.Errorf("%w: unknown base property", ErrInvalidArgument)
	ErrUnknownPolicy          = fmt.Errorf("%w: unknown auto-range policy", ErrInvalidArgument)
	ErrIncompatibleProperties = fmt.Errorf("%w: incompatible base properties", ErrInvalidArgument)
	ErrMagnitudeNaN           = fmt.Errorf("%w: magnitude is NaN", ErrInvalidArgument)
)
