// internal/component/city.go
package component

// Building — статичное здание городского силуэта.
type Building struct {
	X, Y          float64 // Левый верхний угол
	Width, Height float64
}

// Roof возвращает точку в центре крыши.
func (b Building) Roof() (float64, float64) {
	return b.X + b.Width/2, b.Y
}
