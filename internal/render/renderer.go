// internal/render/renderer.go
package render

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-porcle/internal/component"
	"go-porcle/internal/config"
	"go-porcle/internal/defs"
	"go-porcle/internal/effects"
	"go-porcle/internal/entity"
	"go-porcle/internal/event"
	"go-porcle/internal/system"
	"go-porcle/internal/vfx"
	"go-porcle/pkg/geom"
)

var _ effects.Sink = (*Renderer)(nil)

// Renderer рисует мир векторной графикой и принимает визуальные эффекты
// симуляции (частицы, тряска камеры).
type Renderer struct {
	Camera    *vfx.Camera
	Particles *vfx.ParticlePool
	tuning    *config.Tuning
	// speedFactor is the session's smoothed ball speed factor, for the glow.
	speedFactor float64

	fillImg *ebiten.Image
	fillVs  []ebiten.Vertex
	fillIs  []uint16
}

func NewRenderer(tuning *config.Tuning, seed int64) *Renderer {
	if tuning == nil {
		tuning = config.DefaultTuning()
	}
	return &Renderer{
		Camera:    vfx.NewCamera(config.ScreenWidth, config.ScreenHeight, seed),
		Particles: vfx.NewParticlePool(config.ParticleCap, seed+1),
		tuning:    tuning,
	}
}

// PlaySfx is not visible.
func (r *Renderer) PlaySfx(effects.Sfx) {}

func (r *Renderer) SpawnParticles(kind effects.Particle, pos geom.Vec2, rot float64) {
	r.Particles.Spawn(kind, pos, rot)
}

func (r *Renderer) AddTrauma(amount float64) {
	r.Camera.AddTrauma(amount)
}

// Update advances presentation-only state; it runs once per rendered
// frame, not per simulation tick.
func (r *Renderer) Update(deltaTime, speedFactor float64) {
	r.speedFactor = speedFactor
	r.Camera.Update(deltaTime, speedFactor)
	r.Particles.Update(deltaTime)
}

// Reset drops particles and shake, for a new session.
func (r *Renderer) Reset() {
	r.Particles.Clear()
	r.speedFactor = 0
	r.Camera.Trauma = 0
	r.Camera.Offset = geom.Zero
}

func (r *Renderer) Draw(screen *ebiten.Image, ecs *entity.ECS) {
	screen.Fill(config.BackgroundColor)

	for _, id := range entity.SortedIDs(ecs.Walls) {
		w := ecs.Walls[id]
		r.line(screen, w.A, w.B, 4, config.WallColor)
	}

	for _, id := range entity.SortedIDs(ecs.ClearFlashes) {
		flash := ecs.ClearFlashes[id]
		t, ok := ecs.Transforms[id]
		if !ok || flash.Duration <= 0 {
			continue
		}
		k := flash.Timer / flash.Duration
		x, y := r.Camera.ToScreen(t.Pos)
		// Кольцо расширяется до радиуса очистки и гаснет.
		radius := flash.Radius * (1 - k*k)
		vector.StrokeCircle(screen, x, y, r.Camera.Length(radius), 6, vfx.WithAlpha(config.CoreColor, k), true)
	}

	r.drawCore(screen, ecs)
	r.drawEnemies(screen, ecs)
	r.drawProjectiles(screen, ecs)
	r.drawBalls(screen, ecs)
	r.drawPaddle(screen, ecs)

	r.Particles.Each(func(pos geom.Vec2, size float64, c color.RGBA) {
		r.circle(screen, pos, size, c)
	})
}

func (r *Renderer) drawCore(screen *ebiten.Image, ecs *entity.ECS) {
	coreID, core, ok := ecs.FirstCore()
	if !ok {
		return
	}
	if t, ok := ecs.Transforms[coreID]; ok {
		r.circle(screen, t.Pos, core.Radius*0.55, config.CoreColor)
	}
	for _, g := range core.Gears {
		t, ok := ecs.Transforms[g.Entity]
		gear, isGear := ecs.Gears[g.Entity]
		if !ok || !isGear {
			continue
		}
		c := config.GearActiveColor
		if !g.Active {
			c = config.GearDisableColor
		}
		r.circle(screen, t.Pos, gear.Radius, c)
		// Зубец показывает поворот шестерёнки.
		tooth := t.Pos.Add(geom.FromAngle(t.Rot).Scale(gear.Radius))
		r.line(screen, t.Pos, tooth, 3, vfx.DarkenColor(c))
	}
}

func (r *Renderer) drawEnemies(screen *ebiten.Image, ecs *entity.ECS) {
	for _, id := range entity.SortedIDs(ecs.Enemies) {
		enemy := ecs.Enemies[id]
		t, ok := ecs.Transforms[id]
		if !ok {
			continue
		}
		// Враги смотрят на ядро.
		facing := t.Pos.Neg().Angle()
		if debris, ok := ecs.Debris[id]; ok {
			r.shape(screen, enemy.Shape, t.Pos, enemy.Radius*debris.Scale(), facing, config.DebrisColor)
			continue
		}

		c := config.EnemyColor
		if flash, ok := ecs.DamageFlashes[id]; ok && flash.Timer > 0 {
			c = config.EnemyFlashColor
		}
		r.shape(screen, enemy.Shape, t.Pos, enemy.Radius, facing, c)

		if barrel, ok := ecs.GunBarrels[id]; ok {
			muzzle := t.Pos.Add(t.Pos.Neg().NormalizeOr(geom.V(1, 0)).Scale(enemy.Radius + 8))
			bc := vfx.DarkenColor(config.EnemyColor)
			if barrel.Active {
				bc = config.EnemyBulletColor
			}
			r.line(screen, t.Pos, muzzle, 8, bc)
		}
		if shield, ok := ecs.Shields[id]; ok && shield.Hits > 0 {
			x, y := r.Camera.ToScreen(t.Pos)
			vector.StrokeCircle(screen, x, y, r.Camera.Length(enemy.Radius+6), 3, config.ShieldColor, true)
		}
	}
}

func (r *Renderer) drawProjectiles(screen *ebiten.Image, ecs *entity.ECS) {
	for _, id := range entity.SortedIDs(ecs.Projectiles) {
		proj := ecs.Projectiles[id]
		t, ok := ecs.Transforms[id]
		if !ok {
			continue
		}
		if proj.Target == event.TargetCore {
			r.circle(screen, t.Pos, proj.Radius(), config.EnemyBulletColor)
			continue
		}
		// Пуля игрока вытянута вдоль направления полёта.
		dir := geom.FromAngle(t.Rot)
		if md, ok := ecs.MoveDirections[id]; ok {
			dir = md.Dir.NormalizeOr(dir)
		}
		half := dir.Scale(proj.Size.Y / 2)
		r.line(screen, t.Pos.Sub(half), t.Pos.Add(half), r.Camera.Length(proj.Size.X)/2, config.BulletColor)
	}
}

func (r *Renderer) drawBalls(screen *ebiten.Image, ecs *entity.ECS) {
	maxSpeed := r.tuning.BallMaxSpeed()
	glow := vfx.WithAlpha(config.BallFastColor, vfx.BloomIntensity(r.speedFactor))
	for _, id := range entity.SortedIDs(ecs.Balls) {
		ball := ecs.Balls[id]
		t, ok := ecs.Transforms[id]
		if !ok {
			continue
		}
		factor := 0.0
		if sp, ok := ecs.Speeds[id]; ok {
			factor = sp.Factor(r.tuning.Ball.BaseSpeed, maxSpeed)
		}
		r.circle(screen, t.Pos, ball.Radius*(1.4+0.6*r.speedFactor), glow)
		r.circle(screen, t.Pos, ball.Radius, vfx.LerpColor(config.BallSlowColor, config.BallFastColor, factor))
	}
}

func (r *Renderer) drawPaddle(screen *ebiten.Image, ecs *entity.ECS) {
	paddleID, ok := ecs.FirstPaddle()
	if !ok {
		return
	}
	t, ok := ecs.Transforms[paddleID]
	if !ok {
		return
	}
	p := r.tuning.Paddle

	c := config.PaddleColor
	mode, hasMode := ecs.PaddleModes[paddleID]
	if hasMode {
		switch mode.State {
		case component.ModeCapture:
			c = config.CaptureColor
		case component.ModeCaptured:
			c = config.CapturedColor
		}
	}

	a, b := system.PaddleSegment(t, p.CapsuleLength, p.CapsuleRadius)
	r.line(screen, a, b, r.Camera.Length(p.CapsuleRadius)*2, c)
	r.circle(screen, a, p.CapsuleRadius, c)
	r.circle(screen, b, p.CapsuleRadius, c)

	if hasMode && mode.State == component.ModeCaptured {
		if bt, ok := ecs.Transforms[mode.Ball]; ok {
			outward := t.Right().Neg()
			dir := outward.Rotate(mode.ShootRotation).NormalizeOr(outward)
			r.dashed(screen, bt.Pos, dir, 160, config.CapturedColor)
		}
	}
}

func (r *Renderer) circle(screen *ebiten.Image, pos geom.Vec2, radius float64, c color.Color) {
	if radius <= 0 {
		return
	}
	x, y := r.Camera.ToScreen(pos)
	vector.DrawFilledCircle(screen, x, y, r.Camera.Length(radius), c, true)
}

// shape fills an enemy outline; shapes without vertices fall back to a circle.
func (r *Renderer) shape(screen *ebiten.Image, shape defs.Shape, pos geom.Vec2, radius, rot float64, c color.RGBA) {
	pts := vfx.ShapeVertices(shape, pos, radius, rot)
	if len(pts) == 0 {
		r.circle(screen, pos, radius, c)
		return
	}
	if r.fillImg == nil {
		r.fillImg = ebiten.NewImage(3, 3)
		r.fillImg.Fill(color.White)
	}

	var path vector.Path
	for i, p := range pts {
		x, y := r.Camera.ToScreen(p)
		if i == 0 {
			path.MoveTo(x, y)
		} else {
			path.LineTo(x, y)
		}
	}
	path.Close()

	r.fillVs, r.fillIs = path.AppendVerticesAndIndicesForFilling(r.fillVs[:0], r.fillIs[:0])
	cr, cg, cb, ca := float32(c.R)/255, float32(c.G)/255, float32(c.B)/255, float32(c.A)/255
	for i := range r.fillVs {
		r.fillVs[i].SrcX, r.fillVs[i].SrcY = 1, 1
		r.fillVs[i].ColorR, r.fillVs[i].ColorG, r.fillVs[i].ColorB, r.fillVs[i].ColorA = cr, cg, cb, ca
	}
	screen.DrawTriangles(r.fillVs, r.fillIs, r.fillImg, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

func (r *Renderer) line(screen *ebiten.Image, a, b geom.Vec2, width float32, c color.Color) {
	x0, y0 := r.Camera.ToScreen(a)
	x1, y1 := r.Camera.ToScreen(b)
	vector.StrokeLine(screen, x0, y0, x1, y1, width, c, true)
}

// dashed draws an aim guide of the given length from origin along dir.
func (r *Renderer) dashed(screen *ebiten.Image, origin, dir geom.Vec2, length float64, c color.RGBA) {
	const dash = 12.0
	steps := int(math.Ceil(length / (2 * dash)))
	for i := 0; i < steps; i++ {
		from := origin.Add(dir.Scale(float64(i) * 2 * dash))
		to := from.Add(dir.Scale(dash))
		fade := 1 - float64(i)/float64(steps)
		r.line(screen, from, to, 2, vfx.WithAlpha(c, fade))
	}
}
