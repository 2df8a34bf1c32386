package scene

import (
	"github.com/hamedsabri/RayTracingInOneWeekend/pkg/core"
	"github.com/hamedsabri/RayTracingInOneWeekend/pkg/renderer"
)

// Scene holds the camera, the flat object collection, and the
// background gradient colors. Objects and materials are immutable
// once the scene is built, so a scene is safe to share across
// render workers.
type Scene struct {
	Camera      *renderer.Camera
	Shapes      []core.Hittable
	TopColor    core.Vec3 // Sky color at gradient weight 1
	BottomColor core.Vec3 // Color at gradient weight 0
}

// GetCamera returns the scene's camera
func (s *Scene) GetCamera() *renderer.Camera {
	return s.Camera
}

// Objects returns the flat collection of scene objects
func (s *Scene) Objects() []core.Hittable {
	return s.Shapes
}

// BackgroundColors returns the gradient colors, top then bottom
func (s *Scene) BackgroundColors() (core.Vec3, core.Vec3) {
	return s.TopColor, s.BottomColor
}
