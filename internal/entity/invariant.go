//go:build !debug

// internal/entity/invariant.go
package entity

import "log"

// Invariant reports a broken game-logic invariant. Release builds log and
// carry on; build with -tags debug to panic instead.
func Invariant(format string, args ...interface{}) {
	log.Printf("invariant violated: "+format, args...)
}
