package main

import (
	"errors"
	"strings"
)

// RepeatableString is a flag.Value accepting comma-separated values and
// repeated use of the flag; all values accumulate in order.
type RepeatableString struct {
	xs *[]string
}

func NewRepeatableString(xs *[]string) *RepeatableString {
	return &RepeatableString{xs}
}

func (rs *RepeatableString) String() string {
	if rs == nil || rs.xs == nil {
		return ""
	}
	return strings.Join(*rs.xs, ",")
}

func (rs *RepeatableString) Set(s string) error {
	ys := strings.Split(s, ",")
	for _, y := range ys {
		if y == "" {
			return errors.New("Empty string is an invalid argument")
		}
	}
	*rs.xs = append(*rs.xs, ys...)
	return nil
}
