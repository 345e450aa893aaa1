// Package config holds the tunable application settings and loads them from TOML.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
)

// EnvPath names the environment variable holding the config file path
const EnvPath = "PGR_CONFIG"

// DefaultPath is used when EnvPath is not set. A missing file there is not an error.
const DefaultPath = "~/.config/pgr-skeleton/skeleton.toml"

// ErrInvalid is returned for a config that parses but cannot be used
var ErrInvalid = errors.New("invalid config")

// Config is the full application configuration. It is handed to every object's Draw.
type Config struct {
	Camera CameraConfig `toml:"camera"`
	Render RenderConfig `toml:"render"`
	Scene  SceneConfig  `toml:"scene"`
}

// CameraConfig sets the initial camera placement and its control tuning
type CameraConfig struct {
	Position         [3]float32 `toml:"position"`
	Target           [3]float32 `toml:"target"`
	Speed            float32    `toml:"speed"`
	KeySensitivity   float32    `toml:"key_sensitivity"`
	MouseSensitivity float32    `toml:"mouse_sensitivity"`
	FOV              float32    `toml:"fov"`
}

// RenderConfig controls how frames are drawn
type RenderConfig struct {
	ClearColor     [4]float32 `toml:"clear_color"`
	Wireframe      bool       `toml:"wireframe"`
	VSync          bool       `toml:"vsync"`
	VertexShader   string     `toml:"vertex_shader"`
	FragmentShader string     `toml:"fragment_shader"`
}

// SceneConfig selects which objects are created at startup
type SceneConfig struct {
	Triangle bool   `toml:"triangle"`
	Mesh     string `toml:"mesh"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Camera: CameraConfig{
			Position:         [3]float32{0, 0, 3},
			Target:           [3]float32{0, 0, 0},
			Speed:            0.05,
			KeySensitivity:   1.0,
			MouseSensitivity: 0.1,
			FOV:              60,
		},
		Render: RenderConfig{
			ClearColor: [4]float32{0.0, 0.0, 0.0, 1.0},
		},
		Scene: SceneConfig{
			Triangle: true,
		},
	}
}

// Parse decodes TOML on top of the defaults and validates the result.
// Unknown keys are rejected.
func Parse(data []byte) (*Config, error) {
	cfg := Default()

	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return nil, fmt.Errorf("unknown config keys:\n%s", strict.String())
		}
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Load reads and parses the config file at path. A leading ~ is expanded.
func Load(path string) (*Config, error) {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return nil, fmt.Errorf("failed to expand config path %q: %w", path, err)
	}

	data, err := os.ReadFile(expanded)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", expanded, err)
	}
	return cfg, nil
}

// Resolve returns the config file path to use and whether it was set explicitly
func Resolve() (path string, explicit bool) {
	if p := os.Getenv(EnvPath); p != "" {
		return p, true
	}
	return DefaultPath, false
}

// LoadOrDefault loads the resolved config file. The defaults are returned
// when no path was set explicitly and the default file does not exist.
func LoadOrDefault() (*Config, string, error) {
	path, explicit := Resolve()

	expanded, err := homedir.Expand(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to expand config path %q: %w", path, err)
	}

	if !explicit {
		if _, err := os.Stat(expanded); errors.Is(err, os.ErrNotExist) {
			return Default(), "", nil
		}
	}

	cfg, err := Load(expanded)
	if err != nil {
		return nil, "", err
	}
	return cfg, expanded, nil
}

// Validate reports values the application cannot run with
func (c *Config) Validate() error {
	cam := c.Camera
	if err := checkFinite("camera.position", cam.Position[:]...); err != nil {
		return err
	}
	if err := checkFinite("camera.target", cam.Target[:]...); err != nil {
		return err
	}
	if err := checkFinite("camera.speed", cam.Speed); err != nil {
		return err
	}
	if err := checkFinite("camera.key_sensitivity", cam.KeySensitivity); err != nil {
		return err
	}
	if err := checkFinite("camera.mouse_sensitivity", cam.MouseSensitivity); err != nil {
		return err
	}
	if err := checkFinite("camera.fov", cam.FOV); err != nil {
		return err
	}
	if err := checkFinite("render.clear_color", c.Render.ClearColor[:]...); err != nil {
		return err
	}

	if cam.Speed < 0 {
		return fmt.Errorf("%w: camera.speed must not be negative", ErrInvalid)
	}
	if cam.KeySensitivity < 0 {
		return fmt.Errorf("%w: camera.key_sensitivity must not be negative", ErrInvalid)
	}
	if cam.MouseSensitivity < 0 {
		return fmt.Errorf("%w: camera.mouse_sensitivity must not be negative", ErrInvalid)
	}
	if cam.FOV <= 0 || cam.FOV >= 180 {
		return fmt.Errorf("%w: camera.fov must be in (0, 180), got %v", ErrInvalid, cam.FOV)
	}
	if c.CameraPosition().Sub(c.CameraTarget()).Len() == 0 {
		return fmt.Errorf("%w: camera.position and camera.target must differ", ErrInvalid)
	}

	for i, v := range c.Render.ClearColor {
		if v < 0 || v > 1 {
			return fmt.Errorf("%w: render.clear_color[%d] must be in [0, 1]", ErrInvalid, i)
		}
	}

	if (c.Render.VertexShader == "") != (c.Render.FragmentShader == "") {
		return fmt.Errorf("%w: render.vertex_shader and render.fragment_shader must be set together", ErrInvalid)
	}

	return nil
}

// checkFinite rejects NaN and infinite values
func checkFinite(key string, values ...float32) error {
	for _, v := range values {
		if math32.IsNaN(v) || math32.IsInf(v, 0) {
			return fmt.Errorf("%w: %s must be finite, got %v", ErrInvalid, key, v)
		}
	}
	return nil
}

// CameraPosition returns the initial camera position as a vector
func (c *Config) CameraPosition() mgl32.Vec3 {
	return mgl32.Vec3(c.Camera.Position)
}

// CameraTarget returns the initial look-at point as a vector
func (c *Config) CameraTarget() mgl32.Vec3 {
	return mgl32.Vec3(c.Camera.Target)
}

// ClearColor returns the framebuffer clear colour
func (c *Config) ClearColor() mgl32.Vec4 {
	return mgl32.Vec4(c.Render.ClearColor)
}
