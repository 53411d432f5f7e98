// internal/interfaces/game_context.go
package interfaces

// GameContext is what systems need from the owning session besides the ECS.
type GameContext interface {
	// WarnOnce logs a soft failure the first time key is seen in the session.
	WarnOnce(key, format string, args ...interface{})
}
