package world

import (
	gomath "math"
	"testing"

	"github.com/Faultbox/neonmaze/internal/collision"
	"github.com/Faultbox/neonmaze/internal/engine/input"
	"github.com/Faultbox/neonmaze/internal/game/entity"
	"github.com/Faultbox/neonmaze/pkg/math"
)

func newTestWorld(r *collision.Resolver) (*World, *entity.Character) {
	w := New(r, DefaultSettings(), nil)
	p := newPlayer(math.Vec3{})
	w.SetPlayer(p)
	return w, p
}

func newHazard(id uint32, name string, pos math.Vec3) *entity.Character {
	e := entity.NewCharacter(id, entity.TypeEnemy, name, pos)
	e.Radius = 0.4
	e.Speed = 0
	e.Hazard = true
	return e
}

func TestClock_Step(t *testing.T) {
	var c Clock

	if dt := c.Step(1000); dt != 0 {
		t.Errorf("first step = %v, want 0", dt)
	}
	if dt := c.Step(1016); !near(dt, 0.016) {
		t.Errorf("16ms step = %v, want 0.016", dt)
	}
	if dt := c.Step(3000); dt != DefaultMaxStep {
		t.Errorf("stalled step = %v, want clamp %v", dt, DefaultMaxStep)
	}
	if dt := c.Step(2000); dt != 0 {
		t.Errorf("backwards step = %v, want 0", dt)
	}
	if dt := c.Step(2010); !near(dt, 0.01) {
		t.Errorf("step after backwards jump = %v, want 0.01", dt)
	}

	c.Reset()
	if dt := c.Step(9000); dt != 0 {
		t.Errorf("step after reset = %v, want 0", dt)
	}

	custom := Clock{MaxStep: 0.1}
	custom.Step(0)
	if dt := custom.Step(500); !near(dt, 0.1) {
		t.Errorf("custom clamp = %v, want 0.1", dt)
	}
}

func TestUpdate_PickupCollectionDeterminism(t *testing.T) {
	w, _ := newTestWorld(nil)
	// Reach is 0.4 + 0.25 + 0.1 = 0.75.
	a := w.AddPickup(math.Vec3{X: 0.5})
	b := w.AddPickup(math.Vec3{Z: -0.6})
	far := w.AddPickup(math.Vec3{X: 3})

	report := w.Update(0.016, input.Intent{}, 16)
	if report.Collected != 2 || w.Collected() != 2 {
		t.Fatalf("expected 2 collected, got report=%d total=%d", report.Collected, w.Collected())
	}
	if a.Live() || b.Live() || !far.Live() {
		t.Errorf("wrong pickups collected: a=%v b=%v far=%v", a.Live(), b.Live(), far.Live())
	}
	if len(report.Events) != 2 || report.Events[0].Kind != EventPickup {
		t.Errorf("expected 2 pickup events, got %+v", report.Events)
	}
	if len(w.Pickups()) != 1 || w.Pickups()[0] != far {
		t.Errorf("collected pickups should be removed, have %d", len(w.Pickups()))
	}

	report = w.Update(0.016, input.Intent{}, 32)
	if report.Collected != 0 || w.Collected() != 2 {
		t.Errorf("pickups counted twice: report=%d total=%d", report.Collected, w.Collected())
	}
}

func TestUpdate_PickupOutOfReach(t *testing.T) {
	w, _ := newTestWorld(nil)
	w.AddPickup(math.Vec3{X: 0.8})

	if r := w.Update(0.016, input.Intent{}, 16); r.Collected != 0 {
		t.Error("pickup beyond the reach distance must not be collected")
	}
}

func TestUpdate_ReappearPolicy(t *testing.T) {
	w, _ := newTestWorld(nil)
	w.SetPickupPolicy(ReappearPickups{Delay: 1000})
	p := w.AddPickup(math.Vec3{X: 0.5})

	w.Update(0.016, input.Intent{}, 100)
	if p.Live() {
		t.Fatal("pickup should be hidden after collection")
	}
	if len(w.Pickups()) != 1 {
		t.Fatal("reappearing pickups must stay tracked")
	}

	w.Update(0.016, input.Intent{}, 500)
	if p.Live() {
		t.Error("pickup reappeared before the delay")
	}

	w.Update(0.016, input.Intent{}, 1200)
	if !p.Live() {
		t.Fatal("pickup should reappear after the delay")
	}
	if d := p.Position.HorizontalDistance(math.Vec3{}); d < w.Settings().SpawnClearance {
		t.Errorf("reappeared %v from spawn, want >= %v", d, w.Settings().SpawnClearance)
	}
	if w.Collected() != 1 {
		t.Errorf("expected 1 collected, got %d", w.Collected())
	}
}

func TestUpdate_HazardRespawn(t *testing.T) {
	w, p := newTestWorld(nil)
	p.SetPosition(math.Vec3{X: 3})
	w.AddEnemy(newHazard(2, "red", math.Vec3{X: 3.5}), nil)
	w.AddEnemy(newHazard(3, "pink", math.Vec3{X: 3, Z: 0.5}), nil)

	report := w.Update(0.016, input.Intent{}, 16)
	if report.Hits != 1 {
		t.Fatalf("expected exactly 1 hit, got %d", report.Hits)
	}
	if len(report.Events) != 1 || report.Events[0].Name != "red" {
		t.Errorf("expected the first hazard only, got %+v", report.Events)
	}
	if p.Position != (math.Vec3{}) {
		t.Errorf("player should respawn at origin, got %+v", p.Position)
	}
	if w.GameOver() {
		t.Error("respawn policy never ends the game")
	}
}

func TestUpdate_NonHazardEnemyIgnored(t *testing.T) {
	w, p := newTestWorld(nil)
	p.SetPosition(math.Vec3{X: 3})
	e := newHazard(2, "friend", math.Vec3{X: 3.2})
	e.Hazard = false
	w.AddEnemy(e, nil)

	if r := w.Update(0.016, input.Intent{}, 16); r.Hits != 0 {
		t.Error("non-hazard contact applied a penalty")
	}
}

func TestUpdate_LoseLifeGameOver(t *testing.T) {
	settings := DefaultSettings()
	settings.Lives = 2
	w := New(nil, settings, nil)
	p := newPlayer(math.Vec3{})
	w.SetPlayer(p)
	w.SetHazardPolicy(LoseLife{})
	w.AddEnemy(newHazard(2, "red", math.Vec3{X: 5.5}), nil)

	p.SetPosition(math.Vec3{X: 5})
	w.Update(0.016, input.Intent{}, 16)
	if w.Lives() != 1 || w.GameOver() {
		t.Fatalf("after first hit lives=%d over=%v", w.Lives(), w.GameOver())
	}

	p.SetPosition(math.Vec3{X: 5})
	report := w.Update(0.016, input.Intent{}, 32)
	if !w.GameOver() || w.Lives() != 0 {
		t.Fatalf("expected game over, lives=%d", w.Lives())
	}
	last := report.Events[len(report.Events)-1]
	if last.Kind != EventGameOver {
		t.Errorf("expected a game over event, got %+v", report.Events)
	}

	p.SetPosition(math.Vec3{X: 1})
	report = w.Update(0.016, input.Intent{MoveX: 1}, 48)
	if len(report.Events) != 0 || p.Position.X != 1 {
		t.Error("updates after game over must do nothing")
	}

	w.Reset()
	if w.GameOver() || w.Lives() != 2 || w.Collected() != 0 {
		t.Error("Reset should restore scoring state")
	}
}

func TestUpdate_EnemySeeks(t *testing.T) {
	w, p := newTestWorld(nil)
	p.SetPosition(math.Vec3{X: 5})
	e := entity.NewCharacter(2, entity.TypeEnemy, "blue", math.Vec3{X: -5})
	e.Speed = 2
	w.AddEnemy(e, Seek{})

	w.Update(0.5, input.Intent{}, 500)
	if !near(e.Position.X, -4) {
		t.Errorf("enemy x = %v, want -4", e.Position.X)
	}
	if !near(e.Facing, gomath.Pi/2) {
		t.Errorf("enemy should face +X, got %v", e.Facing)
	}
}

func TestUpdate_IdleEnemyStays(t *testing.T) {
	w, _ := newTestWorld(nil)
	e := entity.NewCharacter(2, entity.TypeEnemy, "yellow", math.Vec3{X: 2, Z: -5})
	w.AddEnemy(e, Idle{})

	w.Update(0.05, input.Intent{}, 50)
	if e.Position != (math.Vec3{X: 2, Z: -5}) {
		t.Errorf("idle enemy moved to %+v", e.Position)
	}
}

func TestUpdate_EnemyIgnoreWalls(t *testing.T) {
	w, p := newTestWorld(wallResolver(-1, -1, 1, 1))
	p.SetPosition(math.Vec3{X: 5})
	ghost := entity.NewCharacter(2, entity.TypeEnemy, "ghost", math.Vec3{X: -2})
	ghost.Speed = 2
	ghost.IgnoreWalls = true
	w.AddEnemy(ghost, Seek{})

	w.Update(1, input.Intent{}, 1000)
	if !near(ghost.Position.X, 0) {
		t.Errorf("wall-ignoring enemy should pass into the wall, x = %v", ghost.Position.X)
	}
}

func TestUpdate_PlayerMoves(t *testing.T) {
	w, p := newTestWorld(nil)
	p.Speed = 4

	w.Update(0.05, input.Intent{MoveZ: -1}, 50)
	if !near(p.Position.Z, -0.2) {
		t.Errorf("z = %v, want -0.2", p.Position.Z)
	}
	if w.Update(0, input.Intent{MoveZ: -1}, 50).Dt != 0 || !near(p.Position.Z, -0.2) {
		t.Error("zero dt must not move the player")
	}
}

func TestSpawnPickups(t *testing.T) {
	// Wall covering the left half of the play area.
	r := wallResolver(-9, -9, 0, 9)
	w, _ := newTestWorld(r)

	if placed := w.SpawnPickups(20); placed != 20 {
		t.Fatalf("expected 20 pickups, got %d", placed)
	}
	s := w.Settings()
	for _, p := range w.Pickups() {
		if r.QueryPoint(p.Position, s.PickupRadius).Hit {
			t.Errorf("pickup %d overlaps a wall at %+v", p.ID, p.Position)
		}
		if p.Position.HorizontalDistance(math.Vec3{}) < s.SpawnClearance {
			t.Errorf("pickup %d too close to spawn: %+v", p.ID, p.Position)
		}
		if p.Position.X < -s.Limit || p.Position.X > s.Limit || p.Position.Z < -s.Limit || p.Position.Z > s.Limit {
			t.Errorf("pickup %d outside world: %+v", p.ID, p.Position)
		}
	}
}

func TestSpawnPickups_Deterministic(t *testing.T) {
	w1, _ := newTestWorld(nil)
	w2, _ := newTestWorld(nil)
	w1.SpawnPickups(5)
	w2.SpawnPickups(5)

	for i := range w1.Pickups() {
		if w1.Pickups()[i].Position != w2.Pickups()[i].Position {
			t.Errorf("pickup %d differs between equal seeds", i)
		}
	}
}

func TestSpawnPickups_NoRoom(t *testing.T) {
	w, _ := newTestWorld(wallResolver(-20, -20, 20, 20))

	if placed := w.SpawnPickups(3); placed != 0 {
		t.Errorf("expected no pickups in a solid world, got %d", placed)
	}
	if len(w.LivePickups()) != 0 {
		t.Error("no pickups should be tracked")
	}
}

func TestPolicyByName(t *testing.T) {
	if _, ok := PickupPolicyByName("reappear", 10).(ReappearPickups); !ok {
		t.Error("expected ReappearPickups")
	}
	if _, ok := PickupPolicyByName("remove", 0).(RemovePickups); !ok {
		t.Error("expected RemovePickups")
	}
	if _, ok := HazardPolicyByName("lose_life").(LoseLife); !ok {
		t.Error("expected LoseLife")
	}
	if _, ok := HazardPolicyByName("").(Respawn); !ok {
		t.Error("expected Respawn default")
	}
}
