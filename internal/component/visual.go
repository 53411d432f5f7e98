// internal/component/visual.go
package component

// DamageFlash указывает, что сущность должна быть отрисована цветом урона.
type DamageFlash struct {
	Timer    float64
	Duration float64
}

// ClearFlash is the radial flash drawn around the core after it takes damage.
type ClearFlash struct {
	Timer    float64
	Duration float64
	Radius   float64
}
