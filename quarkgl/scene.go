package quarkgl

// Camera describes a perspective viewing transform.
type Camera struct {
	Position Vec3
	Target   Vec3
	Up       Vec3

	FOVYRad float32
	Near    float32
	Far     float32
}

// View returns the camera view matrix.
func (c Camera) View() Mat4 {
	up := c.Up
	if up == (Vec3{}) {
		up = V3(0, 1, 0)
	}
	return Mat4LookAt(c.Position, c.Target, up)
}

// Projection returns the projection matrix for a target aspect.
func (c Camera) Projection(aspect float32) Mat4 {
	fov := c.FOVYRad
	if fov == 0 {
		fov = Radians(45)
	}
	return Mat4Perspective(fov, aspect, c.Near, c.Far)
}

// Instance is one draw of the scene's shared mesh.
type Instance struct {
	Enabled   bool
	Transform Mat4
	Color     Color
}

// Scene is a shared mesh plus the instances that draw it.
type Scene struct {
	Camera Camera
	Mesh   *Mesh

	instances []Instance
}

// CreateScene returns a scene drawing mesh, with room for capacity instances
// before the instance slice grows.
func CreateScene(mesh *Mesh, capacity int) *Scene {
	if capacity < 0 {
		capacity = 0
	}
	return &Scene{
		Camera: Camera{
			Position: V3(0, 0, 30),
			Target:   V3(0, 0, 0),
			Up:       V3(0, 1, 0),
			FOVYRad:  Radians(45),
			Near:     0.1,
			Far:      100,
		},
		Mesh:      mesh,
		instances: make([]Instance, 0, capacity),
	}
}

// AddInstance adds an instance and returns its id.
func (s *Scene) AddInstance(transform Mat4, c Color) int {
	if transform == (Mat4{}) {
		transform = Mat4Identity()
	}
	s.instances = append(s.instances, Instance{Enabled: true, Transform: transform, Color: c})
	return len(s.instances) - 1
}

// Len returns the number of instances.
func (s *Scene) Len() int { return len(s.instances) }

// Instance returns a copy of instance id.
func (s *Scene) Instance(id int) (Instance, bool) {
	if id < 0 || id >= len(s.instances) {
		return Instance{}, false
	}
	return s.instances[id], true
}

// SetInstanceEnabled enables/disables an instance by id.
func (s *Scene) SetInstanceEnabled(id int, enabled bool) {
	if id < 0 || id >= len(s.instances) {
		return
	}
	s.instances[id].Enabled = enabled
}

// UpdateInstanceTransform updates an instance transform by id.
func (s *Scene) UpdateInstanceTransform(id int, m Mat4) {
	if id < 0 || id >= len(s.instances) {
		return
	}
	s.instances[id].Transform = m
}

func (s *Scene) eachInstance(fn func(in *Instance)) {
	for i := range s.instances {
		if !s.instances[i].Enabled {
			continue
		}
		fn(&s.instances[i])
	}
}
