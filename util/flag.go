package util

import (
	"strings"
)

// ArrayFlags collects a flag given more than once
type ArrayFlags []string

func (r *ArrayFlags) String() string {
	return strings.Join(*r, ",")
}

func (r *ArrayFlags) Set(value string) error {
	*r = append(*r, value)
	return nil
}
