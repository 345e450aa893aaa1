package render

// Camera constants
const (
	// Movement speeds
	DefaultMoveSpeed        = 0.05
	DefaultKeySensitivity   = 1.0
	DefaultMouseSensitivity = 0.1

	// Default orientation, facing -Z
	DefaultYaw   = 0.0
	DefaultPitch = 0.0

	// Field of view
	DefaultFOV = 60.0
	MinFOV     = 1.0
	MaxFOV     = 179.0

	// Clip planes
	NearPlane = 0.1
	FarPlane  = 100.0

	// Constraints
	MaxPitch = 89.0
	MinPitch = -89.0
)
