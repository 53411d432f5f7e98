//go:build debug

// internal/entity/invariant_debug.go
package entity

import "fmt"

func Invariant(format string, args ...interface{}) {
	panic(fmt.Sprintf("invariant violated: "+format, args...))
}
