package domain

import "errors"

var ErrRequestNotFound = errors.New("request not found")
