package services

import "errors"

var ErrInvalidMovement = errors.New("invalid stock movement")
