package app

import (
	"context"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/leterax/pgr-skeleton/pkg/config"
	"github.com/leterax/pgr-skeleton/pkg/input"
	"github.com/leterax/pgr-skeleton/pkg/render"
	"github.com/leterax/pgr-skeleton/pkg/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSurface struct {
	now      float64
	width    int
	height   int
	clears   []mgl32.Vec4
	swaps    int
	warps    [][2]float64
	viewport [2]int
}

func newFakeSurface() *fakeSurface {
	return &fakeSurface{width: WindowWidth, height: WindowHeight}
}

func (s *fakeSurface) Clear(color mgl32.Vec4)     { s.clears = append(s.clears, color) }
func (s *fakeSurface) SwapBuffers()               { s.swaps++ }
func (s *fakeSurface) Viewport(width, height int) { s.viewport = [2]int{width, height} }
func (s *fakeSurface) Size() (int, int)           { return s.width, s.height }
func (s *fakeSurface) WarpPointer(x, y float64)   { s.warps = append(s.warps, [2]float64{x, y}) }
func (s *fakeSurface) Time() float64              { return s.now }

// scriptedSource hands out one batch per wait and advances the fake clock by
// the requested timeout. Once the script is exhausted it closes the window.
type scriptedSource struct {
	surface *fakeSurface
	batches [][]Event
	waits   []time.Duration
}

func (s *scriptedSource) WaitEvents(timeout time.Duration) []Event {
	s.waits = append(s.waits, timeout)
	s.surface.now += timeout.Seconds() + 0.001

	if len(s.batches) == 0 {
		return []Event{{Kind: EventClose}}
	}
	batch := s.batches[0]
	s.batches = s.batches[1:]
	return batch
}

type recordingObject struct {
	name    string
	log     *[]string
	updates []float32
	parents []mgl32.Mat4
	views   []mgl32.Mat4
	deleted bool
}

func (o *recordingObject) Update(elapsedTime float32, parentModelMatrix *mgl32.Mat4) {
	o.updates = append(o.updates, elapsedTime)
	o.parents = append(o.parents, *parentModelMatrix)
}

func (o *recordingObject) Draw(viewMatrix, _ mgl32.Mat4, _ *render.Camera, _ *config.Config) {
	o.views = append(o.views, viewMatrix)
	if o.log != nil {
		*o.log = append(*o.log, o.name)
	}
}

func (o *recordingObject) Delete() {
	o.deleted = true
}

func newTestApp(t *testing.T, cfg *config.Config, objects ...scene.ObjectInstance) (*Application, *fakeSurface) {
	t.Helper()
	surface := newFakeSurface()
	return New(surface, cfg, objects), surface
}

func assertVec3InDelta(t *testing.T, want, got mgl32.Vec3) {
	t.Helper()
	for i := range want {
		assert.InDelta(t, want[i], got[i], 1e-5, "component %d of %v", i, got)
	}
}

func TestTickWithoutKeysLeavesCameraUnchanged(t *testing.T) {
	a, surface := newTestApp(t, nil)
	surface.now = 12.5

	position := a.Camera().Position()
	yaw, pitch := a.Camera().Orientation()

	a.Dispatch(Event{Kind: EventTimer})

	assert.Equal(t, position, a.Camera().Position())
	gotYaw, gotPitch := a.Camera().Orientation()
	assert.Equal(t, yaw, gotYaw)
	assert.Equal(t, pitch, gotPitch)
}

func TestTickMovesForwardBySpeed(t *testing.T) {
	cfg := config.Default()
	cfg.Camera.Speed = 2.5
	a, surface := newTestApp(t, cfg)
	surface.now = 1.0

	initial := a.Camera().Position()
	forward := a.Camera().Forward()

	a.Dispatch(Event{Kind: EventKeyDown, Key: 'w'})
	a.Dispatch(Event{Kind: EventTimer})

	assert.Equal(t, initial.Add(forward.Mul(2.5)), a.Camera().Position())
}

func TestMovementScalesWithTotalElapsedTime(t *testing.T) {
	cfg := config.Default()
	cfg.Camera.Speed = 1
	a, surface := newTestApp(t, cfg)
	surface.now = 3.0

	initial := a.Camera().Position()
	right := a.Camera().Right()

	a.Dispatch(Event{Kind: EventKeyDown, Key: 'd'})
	a.Dispatch(Event{Kind: EventTimer})

	assertVec3InDelta(t, initial.Add(right.Mul(3)), a.Camera().Position())
}

func TestForwardBeatsBackward(t *testing.T) {
	state := input.NewState()
	state.OnKeyDown(KeyForward)
	state.OnKeyDown(KeyBackward)

	forward := mgl32.Vec3{0, 0, -1}
	right := mgl32.Vec3{1, 0, 0}

	assert.Equal(t, forward, MovementVector(state, forward, right))

	state.OnKeyUp(KeyForward)
	assert.Equal(t, forward.Mul(-1), MovementVector(state, forward, right))
}

func TestLeftBeatsRight(t *testing.T) {
	state := input.NewState()
	state.OnKeyDown(KeyLeft)
	state.OnKeyDown(KeyRight)

	forward := mgl32.Vec3{0, 0, -1}
	right := mgl32.Vec3{1, 0, 0}

	assert.Equal(t, mgl32.Vec3{-1, 0, 0}, MovementVector(state, forward, right))
}

func TestMovementVectorWithoutKeysIsZero(t *testing.T) {
	assert.Equal(t, mgl32.Vec3{}, MovementVector(input.NewState(), mgl32.Vec3{0, 0, -1}, mgl32.Vec3{1, 0, 0}))
}

func TestRotationDelta(t *testing.T) {
	state := input.NewState()

	yaw, pitch := RotationDelta(state)
	assert.Zero(t, yaw)
	assert.Zero(t, pitch)

	state.OnSpecialDown(input.SpecialUp)
	state.OnSpecialDown(input.SpecialDown)
	state.OnSpecialDown(input.SpecialRight)
	yaw, pitch = RotationDelta(state)
	assert.Equal(t, float32(-1), yaw)
	assert.Equal(t, float32(1), pitch)

	state.OnSpecialDown(input.SpecialLeft)
	yaw, _ = RotationDelta(state)
	assert.Equal(t, float32(1), yaw)
}

func TestTickRotatesFromArrowKeys(t *testing.T) {
	cfg := config.Default()
	cfg.Camera.KeySensitivity = 4
	a, surface := newTestApp(t, cfg)
	surface.now = 0.5

	yaw, pitch := a.Camera().Orientation()

	a.Dispatch(Event{Kind: EventSpecialDown, Special: input.SpecialLeft})
	a.Dispatch(Event{Kind: EventSpecialDown, Special: input.SpecialDown})
	a.Dispatch(Event{Kind: EventTimer})

	gotYaw, gotPitch := a.Camera().Orientation()
	assert.InDelta(t, yaw+2, gotYaw, 1e-5)
	assert.InDelta(t, pitch-2, gotPitch, 1e-5)
}

func TestTickUpdatesObjectsAndRequestsRedraw(t *testing.T) {
	obj := &recordingObject{}
	a, surface := newTestApp(t, nil, obj, nil)
	a.redisplay = false
	surface.now = 2

	a.Dispatch(Event{Kind: EventTimer})

	assert.Equal(t, []float32{2}, obj.updates)
	assert.Equal(t, []mgl32.Mat4{mgl32.Ident4()}, obj.parents)
	assert.True(t, a.RedisplayPending())
	assert.True(t, a.timerArmed)
	assert.InDelta(t, 2+TickInterval.Seconds(), a.timerDue, 1e-9)
}

func TestDisplaySkipsNilObjects(t *testing.T) {
	var order []string
	first := &recordingObject{name: "first", log: &order}
	third := &recordingObject{name: "third", log: &order}

	cfg := config.Default()
	cfg.Render.ClearColor = [4]float32{0.1, 0.2, 0.3, 1}
	a, surface := newTestApp(t, cfg, first, nil, third)

	require.NotPanics(t, func() {
		a.Dispatch(Event{Kind: EventDisplay})
	})

	assert.Equal(t, []string{"first", "third"}, order)
	assert.Equal(t, []mgl32.Mat4{a.Camera().ViewMatrix()}, first.views)
	assert.Equal(t, []mgl32.Vec4{{0.1, 0.2, 0.3, 1}}, surface.clears)
	assert.Equal(t, 1, surface.swaps)
}

func TestPassiveMotionTurnsCameraAndRecentres(t *testing.T) {
	cfg := config.Default()
	cfg.Camera.MouseSensitivity = 0.5
	a, surface := newTestApp(t, cfg)

	x, y := a.PreviousPointer()
	require.Equal(t, WindowWidth/2, x)
	require.Equal(t, WindowHeight/2, y)

	yaw, pitch := a.Camera().Orientation()

	// previous - current = (10, 4)
	a.Dispatch(Event{Kind: EventPassiveMotion, X: x - 10, Y: y - 4})

	gotYaw, gotPitch := a.Camera().Orientation()
	assert.InDelta(t, yaw+5, gotYaw, 1e-5)
	assert.InDelta(t, pitch+2, gotPitch, 1e-5)

	x, y = a.PreviousPointer()
	assert.Equal(t, WindowWidth/2, x)
	assert.Equal(t, WindowHeight/2, y)
	assert.Equal(t, [][2]float64{{WindowWidth / 2, WindowHeight / 2}}, surface.warps)
}

func TestPassiveMotionAtCentreIsNoop(t *testing.T) {
	a, _ := newTestApp(t, nil)
	yaw, pitch := a.Camera().Orientation()

	a.Dispatch(Event{Kind: EventPassiveMotion, X: WindowWidth / 2, Y: WindowHeight / 2})

	gotYaw, gotPitch := a.Camera().Orientation()
	assert.Equal(t, yaw, gotYaw)
	assert.Equal(t, pitch, gotPitch)
}

func TestDragDoesNotTurnCamera(t *testing.T) {
	a, surface := newTestApp(t, nil)
	yaw, pitch := a.Camera().Orientation()

	a.Dispatch(Event{Kind: EventMouseButton, Button: 0, Pressed: true})
	a.Dispatch(Event{Kind: EventMotion, X: 0, Y: 0})

	gotYaw, gotPitch := a.Camera().Orientation()
	assert.Equal(t, yaw, gotYaw)
	assert.Equal(t, pitch, gotPitch)
	assert.Empty(t, surface.warps)
}

func TestMouseButtonsAreRecorded(t *testing.T) {
	a, _ := newTestApp(t, nil)
	assert.False(t, a.ButtonHeld(0))

	a.Dispatch(Event{Kind: EventMouseButton, Button: 0, Pressed: true})
	a.Dispatch(Event{Kind: EventMouseButton, Button: 1, Pressed: true})
	assert.True(t, a.ButtonHeld(0))
	assert.True(t, a.ButtonHeld(1))

	a.Dispatch(Event{Kind: EventMouseButton, Button: 0, Pressed: false})
	assert.False(t, a.ButtonHeld(0))
	assert.True(t, a.ButtonHeld(1))

	a.Dispatch(Event{Kind: EventFocusLost})
	assert.False(t, a.ButtonHeld(1))
}

func TestKeysAreCaseInsensitive(t *testing.T) {
	a, _ := newTestApp(t, nil)

	a.Dispatch(Event{Kind: EventKeyDown, Key: 'W'})
	assert.True(t, a.Input().IsHeld('w'))

	a.Dispatch(Event{Kind: EventKeyUp, Key: 'W'})
	assert.False(t, a.Input().IsHeld('w'))
}

func TestFocusLostReleasesKeys(t *testing.T) {
	a, _ := newTestApp(t, nil)
	a.Dispatch(Event{Kind: EventKeyDown, Key: 'a'})
	a.Dispatch(Event{Kind: EventSpecialDown, Special: input.SpecialUp})

	a.Dispatch(Event{Kind: EventFocusLost})

	assert.False(t, a.Input().IsHeld('a'))
	assert.False(t, a.Input().IsSpecialHeld(input.SpecialUp))
}

func TestReshapeUpdatesViewportAndProjection(t *testing.T) {
	a, surface := newTestApp(t, nil)

	a.Dispatch(Event{Kind: EventReshape, Width: 800, Height: 600})

	assert.Equal(t, [2]int{800, 600}, surface.viewport)
	want := render.NewCamera(mgl32.Vec3{}, 800, 600)
	want.SetFOV(a.Config().Camera.FOV)
	assert.Equal(t, want.ProjectionMatrix(), a.Camera().ProjectionMatrix())
}

func TestEscapeStopsLaterEvents(t *testing.T) {
	obj := &recordingObject{}
	a, surface := newTestApp(t, nil, obj)

	closed := 0
	a.SetCloseHandler(func() { closed++ })

	source := &scriptedSource{surface: surface, batches: [][]Event{{
		{Kind: EventKeyDown, Key: 'w'},
		{Kind: EventKeyDown, Key: input.KeyEscape},
		{Kind: EventKeyDown, Key: 's'},
	}}}

	a.Run(context.Background(), source, nil)

	assert.True(t, a.Done())
	assert.True(t, a.Input().IsHeld('w'))
	assert.False(t, a.Input().IsHeld('s'))
	assert.Equal(t, 1, closed)
	assert.True(t, obj.deleted)
	assert.Empty(t, obj.updates)
	assert.Zero(t, surface.swaps)

	// Nothing is handled after quitting.
	a.Dispatch(Event{Kind: EventKeyDown, Key: 'd'})
	assert.False(t, a.Input().IsHeld('d'))
}

func TestRunFiresTimerAndRepaints(t *testing.T) {
	obj := &recordingObject{}
	a, surface := newTestApp(t, nil, obj)

	closed := 0
	a.SetCloseHandler(func() { closed++ })

	source := &scriptedSource{surface: surface, batches: [][]Event{{}, {}}}
	a.Run(context.Background(), source, nil)

	// Initial repaint, then one tick followed by its repaint.
	require.Len(t, obj.updates, 1)
	assert.GreaterOrEqual(t, float64(obj.updates[0]), TickInterval.Seconds())
	assert.Equal(t, 2, surface.swaps)
	assert.Equal(t, 1, closed)

	// The first wait only polls because a repaint is pending.
	assert.Equal(t, time.Duration(0), source.waits[0])
	assert.Greater(t, source.waits[1], time.Duration(0))
	assert.LessOrEqual(t, source.waits[1], TickInterval)
}

func TestRunAppliesConfigReloads(t *testing.T) {
	a, surface := newTestApp(t, nil)

	reloaded := config.Default()
	reloaded.Camera.Speed = 9
	reloaded.Render.Wireframe = true

	reloads := make(chan *config.Config, 1)
	reloads <- reloaded
	close(reloads)

	source := &scriptedSource{surface: surface, batches: [][]Event{{}}}
	a.Run(context.Background(), source, reloads)

	assert.Equal(t, float32(9), a.Camera().Speed())
	assert.Same(t, reloaded, a.Config())
}

func TestRunStopsWhenContextCancelled(t *testing.T) {
	a, surface := newTestApp(t, nil)
	closed := false
	a.SetCloseHandler(func() { closed = true })

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	source := &scriptedSource{surface: surface}
	a.Run(ctx, source, nil)

	assert.True(t, a.Done())
	assert.True(t, closed)
	assert.Empty(t, source.waits)
}

func TestEventKindString(t *testing.T) {
	assert.Equal(t, "passive-motion", EventPassiveMotion.String())
	assert.Equal(t, "EventKind(99)", EventKind(99).String())
}
