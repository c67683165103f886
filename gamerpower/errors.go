package gamerpower

import "errors"

var (
	ErrNetwork = errors.New("gamerpower: network error")
	ErrDecode  = errors.New("gamerpower: decode error")
	ErrFilter  = errors.New("gamerpower: invalid filter")
)
