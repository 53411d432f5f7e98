// internal/state/sampler.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-porcle/internal/config"
	"go-porcle/internal/input"
	"go-porcle/internal/vfx"
	"go-porcle/pkg/geom"
)

const stickDeadzone = 0.25

// Sampler reads keyboard, mouse and the first standard gamepad into one
// input.State per frame. Aim follows whichever device moved last.
type Sampler struct {
	aim      *input.AimSmoother
	camera   *vfx.Camera
	gamepads []ebiten.GamepadID

	lastX, lastY int
	useStick     bool
}

func NewSampler(camera *vfx.Camera) *Sampler {
	return &Sampler{
		aim:    input.NewAimSmoother(config.AimDeadzone),
		camera: camera,
	}
}

type padState struct {
	stick   geom.Vec2
	shoot   bool
	toggle  bool
	restart bool
	quit    bool
}

func (s *Sampler) gamepad() (padState, bool) {
	s.gamepads = ebiten.AppendGamepadIDs(s.gamepads[:0])
	for _, id := range s.gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		// Ось Y стика направлена вниз, в мире y вверх.
		stick := geom.V(
			ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal),
			-ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical),
		)
		if stick.Len() < stickDeadzone {
			stick = geom.Zero
		}
		return padState{
			stick: stick,
			shoot: ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonFrontBottomRight),
			toggle: inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightBottom) ||
				inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonFrontBottomLeft),
			restart: inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonCenterRight),
			quit:    inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonCenterLeft),
		}, true
	}
	return padState{}, false
}

// Sample reads every device once.
func (s *Sampler) Sample(deltaTime float64) input.State {
	pad, hasPad := s.gamepad()

	cx, cy := ebiten.CursorPosition()
	if cx != s.lastX || cy != s.lastY {
		s.lastX, s.lastY = cx, cy
		s.useStick = false
	}
	if hasPad && !pad.stick.IsZero() {
		s.useStick = true
	}

	var in input.State
	if s.useStick {
		in.Aim = s.aim.FromStick(pad.stick)
	} else {
		cursor := s.camera.ToWorld(float64(cx), float64(cy))
		in.Aim = s.aim.FromCursor(cursor, deltaTime)
	}

	in.Shoot = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) ||
		ebiten.IsKeyPressed(ebiten.KeySpace) || pad.shoot
	in.ToggleMode = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) ||
		inpututil.IsKeyJustPressed(ebiten.KeyE) ||
		inpututil.IsKeyJustPressed(ebiten.KeyShiftLeft) || pad.toggle
	in.Restart = inpututil.IsKeyJustPressed(ebiten.KeyR) || pad.restart
	in.Quit = inpututil.IsKeyJustPressed(ebiten.KeyEscape) || pad.quit
	return in
}
