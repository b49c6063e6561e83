// Copyright 2020 Aleksandr Demakin. All rights reserved.

package fraction

import "errors"

// Errors returned or panicked with by functions in this package.
var (
	ErrZeroDenominator = errors.New("zero denominator")
	ErrDenOverflow     = errors.New("denominator overflow")
	ErrOverflow        = errors.New("integer overflow")
	ErrDivByZero       = errors.New("division by zero")
	ErrBadFloat        = errors.New("bad float number")
)
