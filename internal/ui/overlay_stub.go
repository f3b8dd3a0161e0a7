//go:build !ebiten

package ui

// Inspector is a no-op placeholder used when the ebiten build tag is absent.
type Inspector struct{}

// NewInspector constructs a stub inspector.
func NewInspector(any, int) *Inspector { return &Inspector{} }

// Update is a no-op in headless builds.
func (o *Inspector) Update() {}

// Draw is a no-op placeholder.
func (o *Inspector) Draw(any) {}
