// internal/state/state.go
package state

import "github.com/hajimehoshi/ebiten/v2"

// State: интерфейс для всех экранов
type State interface {
	Enter()
	Update(deltaTime float64)
	Draw(screen *ebiten.Image)
	Exit()
}

// StateMachine: структура для управления экранами
type StateMachine struct {
	current State
	exiting bool
}

// NewStateMachine создаёт новую машину состояний без начального состояния
func NewStateMachine() *StateMachine {
	return &StateMachine{}
}

// SetState switches screens. Exit of the old one runs before Enter of the
// new one; a state may be entered again after it was left (pause, restart).
func (sm *StateMachine) SetState(next State) {
	if sm.exiting {
		return
	}
	if sm.current != nil {
		sm.current.Exit()
	}
	sm.current = next
	if next != nil {
		next.Enter()
	}
}

// Current returns the active state, nil before the first SetState.
func (sm *StateMachine) Current() State {
	return sm.current
}

// RequestExit asks the application loop to terminate after this frame.
func (sm *StateMachine) RequestExit() {
	if sm.current != nil {
		sm.current.Exit()
		sm.current = nil
	}
	sm.exiting = true
}

func (sm *StateMachine) Exiting() bool {
	return sm.exiting
}

// Update обновляет текущий экран
func (sm *StateMachine) Update(deltaTime float64) {
	if sm.current != nil && !sm.exiting {
		sm.current.Update(deltaTime)
	}
}

// Draw отрисовывает текущее состояние
func (sm *StateMachine) Draw(screen *ebiten.Image) {
	if sm.current != nil {
		sm.current.Draw(screen)
	}
}
