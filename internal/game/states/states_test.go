package states

import (
	"errors"
	gomath "math"
	"os"
	"path/filepath"
	"testing"

	"github.com/Faultbox/neonmaze/internal/assets"
	"github.com/Faultbox/neonmaze/internal/collision"
	"github.com/Faultbox/neonmaze/internal/config"
	"github.com/Faultbox/neonmaze/internal/engine/camera"
	"github.com/Faultbox/neonmaze/internal/engine/input"
	"github.com/Faultbox/neonmaze/internal/engine/scene"
	"github.com/Faultbox/neonmaze/pkg/formats"
	"github.com/Faultbox/neonmaze/pkg/math"
)

// wallOBJ is a single triangle spanning x [2,3], y [0,2], z [-1,1].
const wallOBJ = `v 2 0 -1
v 3 0 1
v 2 2 1
f 1 2 3
`

const bodyOBJ = `v -0.5 0 -0.5
v 0.5 0 -0.5
v 0 1 0.5
f 1 2 3
`

type fakeSounds struct {
	loaded []string
	played []string
}

func (f *fakeSounds) Load(name string, _ []byte) error {
	f.loaded = append(f.loaded, name)
	return nil
}

func (f *fakeSounds) Play(name string) error {
	f.played = append(f.played, name)
	return nil
}

type fakeShots struct{ n int }

func (f *fakeShots) Capture() (string, error) {
	f.n++
	return "shot.png", nil
}

type harness struct {
	env    *Env
	rec    *scene.Recorder
	sounds *fakeSounds
	shots  *fakeShots
	quits  int
}

func writeAsset(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, filepath.FromSlash(name))
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

// testConfig has one hazard ghost away from the player and a small pickup count.
func testConfig() *config.Config {
	cfg := config.Default()
	cfg.Maze.Mesh = "maze.obj"
	cfg.Player.Mesh = "body.obj"
	cfg.Player.Position = [3]float32{0, 0, 0}
	cfg.Enemies = []config.CharacterConfig{cfg.Enemies[0]}
	cfg.Enemies[0].Mesh = "body.obj"
	cfg.Enemies[0].Position = [3]float32{-4, 0, -4}
	cfg.Pickups.Count = 5
	return cfg
}

func newHarness(t *testing.T, cfg *config.Config) *harness {
	t.Helper()
	dir := t.TempDir()
	writeAsset(t, dir, "maze.obj", wallOBJ)
	writeAsset(t, dir, "body.obj", bodyOBJ)
	writeAsset(t, dir, "sfx/pickup.wav", "RIFF")

	am := assets.NewManager(assets.Options{})
	if err := am.AddRoot(dir); err != nil {
		t.Fatal(err)
	}
	cfg.Assets.Roots = []string{dir}

	h := &harness{
		rec:    scene.NewRecorder(),
		sounds: &fakeSounds{},
		shots:  &fakeShots{},
	}
	h.env = &Env{
		Config: cfg,
		Assets: am,
		Scene:  scene.New(h.rec, nil),
		Camera: camera.NewFollowCamera(),
		Input:  input.New(),
		States: NewManager(),
		Sounds: h.sounds,
		Shots:  h.shots,
		Quit:   func() { h.quits++ },
	}
	return h
}

func parse(t *testing.T, src string) *formats.OBJ {
	t.Helper()
	return formats.ParseOBJ([]byte(src))
}

func TestMeshNames(t *testing.T) {
	cfg := config.Default()
	cfg.Enemies = append(cfg.Enemies[:1], config.CharacterConfig{Name: "blank"})

	names := MeshNames(cfg)
	want := []string{cfg.Maze.Mesh, cfg.Player.Mesh, cfg.Enemies[0].Mesh}
	if len(names) != len(want) {
		t.Fatalf("names = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("names[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}

func TestBuildLevel(t *testing.T) {
	cfg := testConfig()
	cfg.Enemies[0].Behavior = "path"
	cfg.Player.Collider = "mesh"
	meshes := map[string]*formats.OBJ{
		"maze.obj": parse(t, wallOBJ),
		"body.obj": parse(t, bodyOBJ),
	}

	lvl := BuildLevel(cfg, meshes, nil)

	if len(lvl.Boxes) != 1 {
		t.Fatalf("boxes = %d, want 1", len(lvl.Boxes))
	}
	if got := lvl.Boxes[0].Min.Y; got != cfg.Maze.VerticalOffset {
		t.Errorf("box min y = %v, want vertical offset %v", got, cfg.Maze.VerticalOffset)
	}
	if lvl.Grid == nil {
		t.Error("expected a grid for the path enemy")
	}

	w := lvl.World
	p := w.Player()
	if p == nil {
		t.Fatal("no player")
	}
	if d := gomath.Abs(gomath.Abs(float64(p.Facing)) - gomath.Pi); d > 1e-5 {
		t.Errorf("player facing = %v, want pi", p.Facing)
	}
	if _, ok := p.Shape.(collision.BoxSet); !ok {
		t.Errorf("mesh collider shape = %T, want collision.BoxSet", p.Shape)
	}
	if len(w.Enemies()) != 1 || !w.Enemies()[0].Hazard {
		t.Errorf("enemies = %+v", w.Enemies())
	}
	if p.ID == w.Enemies()[0].ID {
		t.Error("player and enemy share an ID")
	}
	if got := len(w.LivePickups()); got != cfg.Pickups.Count {
		t.Errorf("pickups = %d, want %d", got, cfg.Pickups.Count)
	}
	for _, pk := range w.LivePickups() {
		if pk.Position.HorizontalDistance(p.Spawn) < cfg.Pickups.SpawnClearance {
			t.Errorf("pickup %v too close to spawn", pk.Position)
		}
	}
}

func TestBuildLevel_MissingMeshes(t *testing.T) {
	cfg := testConfig()
	cfg.Player.Collider = "mesh"

	lvl := BuildLevel(cfg, map[string]*formats.OBJ{}, nil)

	if len(lvl.Boxes) != 0 {
		t.Errorf("boxes = %d, want none without a maze", len(lvl.Boxes))
	}
	if lvl.World.Player().Shape != nil {
		t.Error("missing mesh should fall back to the circle collider")
	}
	if lvl.Grid != nil {
		t.Error("no path enemy, no grid")
	}
}

func TestBuildLevel_Settings(t *testing.T) {
	cfg := testConfig()
	cfg.World.Scheme = "tank"
	cfg.Pickups.Policy = "reappear"
	cfg.Hazards.Policy = "lose_life"
	cfg.Hazards.Lives = 2

	lvl := BuildLevel(cfg, nil, nil)
	s := lvl.World.Settings()
	if s.Limit != cfg.World.Limit || s.Seed != cfg.World.Seed || s.Lives != 2 {
		t.Errorf("settings = %+v", s)
	}
	if lvl.World.Lives() != 2 {
		t.Errorf("lives = %d, want 2", lvl.World.Lives())
	}
}

func TestLoadingState(t *testing.T) {
	h := newHarness(t, testConfig())
	env := h.env

	ls := NewLoadingState(env)
	env.States.Change(ls)
	if err := env.States.Update(0); err != nil {
		t.Fatal(err)
	}
	ls.Wait()
	if err := env.States.Render(); err != nil {
		t.Fatal(err)
	}
	if h.rec.Frames != 1 {
		t.Errorf("loading should clear one frame, got %d", h.rec.Frames)
	}

	// Collects the result and schedules Playing.
	if err := env.States.Update(16); err != nil {
		t.Fatal(err)
	}
	if ls.Level() == nil {
		t.Fatal("level not built")
	}
	for _, name := range []string{GroundMesh, PickupMesh, "maze.obj", "body.obj"} {
		if _, ok := h.rec.Uploads[name]; !ok {
			t.Errorf("mesh %q not uploaded", name)
		}
	}
	if len(h.sounds.loaded) != 1 || h.sounds.loaded[0] != "sfx/pickup.wav" {
		t.Errorf("sounds loaded = %v, want only the pickup sound", h.sounds.loaded)
	}

	if err := env.States.Update(32); err != nil {
		t.Fatal(err)
	}
	ps, ok := env.States.Current().(*PlayingState)
	if !ok {
		t.Fatalf("current = %T, want *PlayingState", env.States.Current())
	}
	if ps.Level() != ls.Level() {
		t.Error("playing state got a different level")
	}
}

func TestLoadingState_ExitCancels(t *testing.T) {
	h := newHarness(t, testConfig())
	ls := NewLoadingState(h.env)
	if err := ls.Enter(); err != nil {
		t.Fatal(err)
	}
	if err := ls.Exit(); err != nil {
		t.Fatal(err)
	}
	ls.Wait()
}

func startPlaying(t *testing.T, h *harness) *PlayingState {
	t.Helper()
	meshes := map[string]*formats.OBJ{
		"maze.obj": parse(t, wallOBJ),
		"body.obj": parse(t, bodyOBJ),
	}
	for name, m := range meshes {
		if err := h.env.Scene.Upload(name, m.VertexData); err != nil {
			t.Fatal(err)
		}
	}
	if err := h.env.Scene.Upload(GroundMesh, scene.Ground(10, -1)); err != nil {
		t.Fatal(err)
	}
	if err := h.env.Scene.Upload(PickupMesh, scene.Cube(0.25)); err != nil {
		t.Fatal(err)
	}

	ps := NewPlayingState(h.env, BuildLevel(h.env.Config, meshes, nil))
	h.env.States.Change(ps)
	if err := h.env.States.Update(1000); err != nil {
		t.Fatal(err)
	}
	return ps
}

func TestPlayingState_Moves(t *testing.T) {
	h := newHarness(t, testConfig())
	ps := startPlaying(t, h)
	player := ps.Level().World.Player()
	start := player.Position

	h.env.Input.Press(input.KeyUp)
	for now := 1016.0; now <= 1160; now += 16 {
		if err := h.env.States.Update(now); err != nil {
			t.Fatal(err)
		}
	}
	if player.Position.Z >= start.Z {
		t.Errorf("up should move toward -Z, z %v -> %v", start.Z, player.Position.Z)
	}
}

func TestPlayingState_Render(t *testing.T) {
	h := newHarness(t, testConfig())
	ps := startPlaying(t, h)
	w := ps.Level().World

	if err := h.env.States.Render(); err != nil {
		t.Fatal(err)
	}

	if n := len(h.rec.DrawsOf(GroundMesh)); n != 1 {
		t.Errorf("ground draws = %d, want 1", n)
	}
	maze := h.rec.DrawsOf("maze.obj")
	if len(maze) != 1 {
		t.Fatalf("maze draws = %d, want 1", len(maze))
	}
	if want := math.Translate(0, h.env.Config.Maze.VerticalOffset, 0); maze[0].World != want {
		t.Errorf("maze transform = %v, want %v", maze[0].World, want)
	}
	if n := len(h.rec.DrawsOf("body.obj")); n != 2 {
		t.Errorf("character draws = %d, want player and ghost", n)
	}
	if n := len(h.rec.DrawsOf(PickupMesh)); n != len(w.LivePickups()) {
		t.Errorf("pickup draws = %d, want %d", n, len(w.LivePickups()))
	}
	if h.rec.Frame.Eye != h.env.Camera.Eye {
		t.Errorf("frame eye %v, camera eye %v", h.rec.Frame.Eye, h.env.Camera.Eye)
	}
	if len(h.rec.Lines) != 0 {
		t.Error("boxes drawn while hidden")
	}
}

func TestPlayingState_Keys(t *testing.T) {
	h := newHarness(t, testConfig())
	startPlaying(t, h)
	env := h.env

	env.Input.Press(input.KeyDebug)
	env.Input.Press(input.KeyScreenshot)
	if err := env.States.Update(1016); err != nil {
		t.Fatal(err)
	}
	if !env.Scene.Debug.ShowBoxes {
		t.Error("debug key should show boxes")
	}
	if h.shots.n != 0 {
		t.Error("screenshot must wait for the frame to be drawn")
	}
	if err := env.States.Render(); err != nil {
		t.Fatal(err)
	}
	if h.shots.n != 1 {
		t.Errorf("screenshots = %d, want 1", h.shots.n)
	}
	if len(h.rec.Lines) == 0 {
		t.Error("expected box wireframe")
	}

	env.Input.Press(input.KeyQuit)
	if err := env.States.Update(1032); err != nil {
		t.Fatal(err)
	}
	if h.quits != 1 {
		t.Errorf("quits = %d, want 1", h.quits)
	}
}

func TestPlayingState_GameOverAndRestart(t *testing.T) {
	cfg := testConfig()
	cfg.Hazards.Policy = "lose_life"
	cfg.Hazards.Lives = 1
	cfg.Enemies[0].Position = [3]float32{0.2, 0, 0}
	h := newHarness(t, cfg)
	ps := startPlaying(t, h)
	env := h.env

	if err := env.States.Update(1016); err != nil {
		t.Fatal(err)
	}
	if !ps.Level().World.GameOver() {
		t.Fatal("touching the ghost with one life should end the game")
	}
	if len(h.sounds.played) == 0 || h.sounds.played[0] != cfg.Audio.HazardSound {
		t.Errorf("played = %v, want hazard sound", h.sounds.played)
	}

	if err := env.States.Update(1032); err != nil {
		t.Fatal(err)
	}
	if _, ok := env.States.Current().(*GameOverState); !ok {
		t.Fatalf("current = %T, want *GameOverState", env.States.Current())
	}

	// The frozen level still renders.
	if err := env.States.Render(); err != nil {
		t.Fatal(err)
	}
	if len(h.rec.DrawsOf("maze.obj")) != 1 {
		t.Error("game over should keep drawing the maze")
	}

	env.Input.Press(input.KeyConfirm)
	if err := env.States.Update(1048); err != nil {
		t.Fatal(err)
	}
	if err := env.States.Update(1064); err != nil {
		t.Fatal(err)
	}
	next, ok := env.States.Current().(*PlayingState)
	if !ok {
		t.Fatalf("current = %T, want *PlayingState after confirm", env.States.Current())
	}
	if next.Level() == ps.Level() {
		t.Error("restart should rebuild the level")
	}
	nw := next.Level().World
	if nw.GameOver() || nw.Lives() != 1 || nw.Collected() != 0 {
		t.Errorf("rebuilt world not fresh: over=%v lives=%d collected=%d", nw.GameOver(), nw.Lives(), nw.Collected())
	}
	if len(nw.LivePickups()) != cfg.Pickups.Count {
		t.Errorf("pickups = %d, want %d", len(nw.LivePickups()), cfg.Pickups.Count)
	}
}

func TestManager_Close(t *testing.T) {
	m := NewManager()
	if err := m.Close(); err != nil {
		t.Fatal(err)
	}

	s := &recordingState{}
	m.Change(s)
	if err := m.Update(0); err != nil {
		t.Fatal(err)
	}
	if !s.entered {
		t.Error("state not entered")
	}
	if err := m.Close(); err != nil {
		t.Fatal(err)
	}
	if !s.exited || m.Current() != nil {
		t.Error("close should exit the current state")
	}
}

func TestManager_EnterError(t *testing.T) {
	m := NewManager()
	m.Change(&recordingState{enterErr: errors.New("boom")})
	if err := m.Update(0); err == nil {
		t.Error("expected enter error")
	}
}

type recordingState struct {
	entered, exited bool
	enterErr        error
}

func (s *recordingState) Enter() error           { s.entered = true; return s.enterErr }
func (s *recordingState) Exit() error            { s.exited = true; return nil }
func (s *recordingState) Update(_ float64) error { return nil }
func (s *recordingState) Render() error          { return nil }
