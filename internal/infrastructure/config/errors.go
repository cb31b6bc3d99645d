package config

import "errors"

// ErrInvalidCommission is returned when EXCHANGE_COMMISSION is outside [0, 1).
var ErrInvalidCommission = errors.New("exchange commission must be in [0, 1)")
