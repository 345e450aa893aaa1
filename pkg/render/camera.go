package render

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Camera implements a first-person fly camera.
// Angles are in degrees. Yaw 0 looks along -Z and grows to the left;
// pitch grows upwards and is clamped short of straight up/down.
type Camera struct {
	// Position and orientation
	position mgl32.Vec3
	worldUp  mgl32.Vec3
	front    mgl32.Vec3
	up       mgl32.Vec3
	right    mgl32.Vec3

	// Euler angles
	yaw   float32
	pitch float32

	// Camera options
	fov              float32
	speed            float32
	keySensitivity   float32
	mouseSensitivity float32

	// Projection
	projection mgl32.Mat4
	width      int
	height     int
}

// NewCamera creates a new camera with sensible defaults
func NewCamera(position mgl32.Vec3, width, height int) *Camera {
	camera := &Camera{
		position:         position,
		worldUp:          mgl32.Vec3{0, 1, 0}, // Y-up coordinate system
		yaw:              DefaultYaw,
		pitch:            DefaultPitch,
		fov:              DefaultFOV,
		speed:            DefaultMoveSpeed,
		keySensitivity:   DefaultKeySensitivity,
		mouseSensitivity: DefaultMouseSensitivity,
		width:            width,
		height:           height,
	}

	camera.updateCameraVectors()
	camera.updateProjectionMatrix()

	return camera
}

// updateCameraVectors recalculates camera vectors based on Euler angles
func (c *Camera) updateCameraVectors() {
	yaw := mgl32.DegToRad(c.yaw)
	pitch := mgl32.DegToRad(c.pitch)

	front := mgl32.Vec3{
		-math32.Sin(yaw) * math32.Cos(pitch),
		math32.Sin(pitch),
		-math32.Cos(yaw) * math32.Cos(pitch),
	}
	c.front = front.Normalize()

	// Pitch never reaches ±90, so front is never parallel to worldUp
	c.right = c.front.Cross(c.worldUp).Normalize()
	c.up = c.right.Cross(c.front).Normalize()
}

func (c *Camera) updateProjectionMatrix() {
	width, height := c.width, c.height
	if width <= 0 || height <= 0 {
		width, height = 1, 1
	}
	aspect := float32(width) / float32(height)
	c.projection = mgl32.Perspective(mgl32.DegToRad(c.fov), aspect, NearPlane, FarPlane)
}

// UpdateProjectionMatrix updates the projection matrix with new dimensions
func (c *Camera) UpdateProjectionMatrix(width, height int) {
	c.width = width
	c.height = height
	c.updateProjectionMatrix()
}

// ViewMatrix returns the current view matrix
func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.position, c.position.Add(c.front), c.up)
}

// ProjectionMatrix returns the current projection matrix
func (c *Camera) ProjectionMatrix() mgl32.Mat4 {
	return c.projection
}

// Position returns the current camera position
func (c *Camera) Position() mgl32.Vec3 {
	return c.position
}

// SetPosition sets the camera position
func (c *Camera) SetPosition(pos mgl32.Vec3) {
	c.position = pos
}

// Orientation returns the current camera orientation (yaw, pitch)
func (c *Camera) Orientation() (yaw, pitch float32) {
	return c.yaw, c.pitch
}

// SetRotation sets the camera rotation angles
func (c *Camera) SetRotation(yaw, pitch float32) {
	c.yaw = wrapYaw(yaw)
	c.pitch = clampPitch(pitch)
	c.updateCameraVectors()
}

// AddYawPitch rotates the camera by the given angle deltas
func (c *Camera) AddYawPitch(yaw, pitch float32) {
	c.SetRotation(c.yaw+yaw, c.pitch+pitch)
}

// LookAt makes the camera look at a specific point
func (c *Camera) LookAt(target mgl32.Vec3) {
	direction := target.Sub(c.position)
	if direction.Len() == 0 {
		return
	}
	direction = direction.Normalize()

	yaw := mgl32.RadToDeg(math32.Atan2(-direction.X(), -direction.Z()))
	pitch := mgl32.RadToDeg(math32.Asin(direction.Y()))
	c.SetRotation(yaw, pitch)
}

// Forward returns the camera's front direction vector
func (c *Camera) Forward() mgl32.Vec3 {
	return c.front
}

// Right returns the camera's right direction vector
func (c *Camera) Right() mgl32.Vec3 {
	return c.right
}

// Up returns the camera's up direction vector
func (c *Camera) Up() mgl32.Vec3 {
	return c.up
}

// Speed returns the movement speed used by keyboard movement
func (c *Camera) Speed() float32 {
	return c.speed
}

// SetSpeed sets the keyboard movement speed
func (c *Camera) SetSpeed(speed float32) {
	c.speed = speed
}

// KeySensitivity returns the rotation speed used by the arrow keys
func (c *Camera) KeySensitivity() float32 {
	return c.keySensitivity
}

// SetKeySensitivity sets the arrow-key rotation speed
func (c *Camera) SetKeySensitivity(sensitivity float32) {
	c.keySensitivity = sensitivity
}

// MouseSensitivity returns degrees of rotation per pixel of pointer movement
func (c *Camera) MouseSensitivity() float32 {
	return c.mouseSensitivity
}

// SetMouseSensitivity sets degrees of rotation per pixel of pointer movement
func (c *Camera) SetMouseSensitivity(sensitivity float32) {
	c.mouseSensitivity = sensitivity
}

// FOV returns the vertical field of view in degrees
func (c *Camera) FOV() float32 {
	return c.fov
}

// SetFOV sets the vertical field of view, clamped to [MinFOV, MaxFOV]
func (c *Camera) SetFOV(fov float32) {
	c.fov = mgl32.Clamp(fov, MinFOV, MaxFOV)
	c.updateProjectionMatrix()
}

// wrapYaw keeps yaw in [0, 360) so float32 precision does not drift with turning
func wrapYaw(yaw float32) float32 {
	yaw = math32.Mod(yaw, 360)
	if yaw < 0 {
		yaw += 360
	}
	return yaw
}

func clampPitch(pitch float32) float32 {
	return mgl32.Clamp(pitch, MinPitch, MaxPitch)
}
