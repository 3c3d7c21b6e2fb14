//go:build !tinygo

package strconvx

import "strconv"

// Delegate straight through on host builds.

func Itoa(i int) string          { return strconv.Itoa(i) }
func Atoi(s string) (int, error) { return strconv.Atoi(s) }
