package runner

import (
	"reflect"
	"testing"
	"time"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// runUntilOver drives frames without jumping until the game halts or limit frames pass.
func runUntilOver(t *testing.T, g *Game, start time.Time, limit int) time.Time {
	t.Helper()
	now := start
	for i := 0; i < limit; i++ {
		now = now.Add(frame)
		if !g.Frame(now, Input{}) {
			return now
		}
	}
	t.Fatalf("game still running after %d frames", limit)
	return now
}

func TestNewGameIsIdle(t *testing.T) {
	g := New(testConfig(), 1)
	if g.State() != Idle {
		t.Errorf("new game state = %v, expected Idle", g.State())
	}
	if g.Running() {
		t.Error("clock should not run before Start")
	}
	if g.Frame(epoch, Input{}) {
		t.Error("Frame should not schedule while Idle")
	}

	g.Step(Input{Jump: true}, frame)
	if g.Player() != NewPlayer(testConfig()) || len(g.Obstacles()) != 0 {
		t.Error("Step must not simulate while Idle")
	}
}

func TestStartOnlyFromIdle(t *testing.T) {
	audio := &recordingAudio{}
	g := New(testConfig(), 1, WithAudio(audio))

	if g.Retry(epoch) {
		t.Error("Retry should be ignored while Idle")
	}
	if !g.Start(epoch) {
		t.Fatal("Start should succeed from Idle")
	}
	if g.State() != Running || !g.Running() {
		t.Errorf("after Start: state %v, running %v", g.State(), g.Running())
	}
	if g.Start(epoch) {
		t.Error("second Start should be ignored")
	}
	if g.Retry(epoch) {
		t.Error("Retry should be ignored while Running")
	}
	if !reflect.DeepEqual(audio.calls, []string{"ambient"}) {
		t.Errorf("audio calls = %v", audio.calls)
	}
	if g.clock.Starts() != 1 {
		t.Errorf("clock started %d times", g.clock.Starts())
	}
}

func TestCollisionEndsRunOnce(t *testing.T) {
	audio := &recordingAudio{}
	reporter := &recordingReporter{}
	g := New(testConfig(), 1, WithAudio(audio), WithReporter(reporter))
	g.Start(epoch)

	now := runUntilOver(t, g, epoch, 200)

	if g.State() != GameOver {
		t.Fatalf("state = %v, expected GameOver", g.State())
	}
	if g.Running() {
		t.Error("clock should be stopped")
	}

	frozen := g.Player()
	obstacles := append([]Obstacle(nil), g.Obstacles()...)
	for i := 0; i < 10; i++ {
		now = now.Add(frame)
		if g.Frame(now, Input{Jump: true}) {
			t.Fatal("Frame should not schedule after game over")
		}
		g.Step(Input{Jump: true}, frame)
	}
	if g.Player() != frozen || !reflect.DeepEqual(g.Obstacles(), obstacles) {
		t.Error("simulation advanced after game over")
	}

	if want := []string{"ambient", "fail", "pause"}; !reflect.DeepEqual(audio.calls, want) {
		t.Errorf("audio calls = %v, want %v", audio.calls, want)
	}
	if !reflect.DeepEqual(reporter.scores, []int{0}) {
		t.Errorf("reported scores = %v, expected one report of 0", reporter.scores)
	}
	if g.clock.Stops() != 1 {
		t.Errorf("clock stopped %d times", g.clock.Stops())
	}
}

func TestCollisionWithPlacedObstacle(t *testing.T) {
	cfg := testConfig()
	cfg.Player.X, cfg.Player.Y = 100, 100
	cfg.Player.Width, cfg.Player.Height = 100, 100
	reporter := &recordingReporter{}
	g := New(cfg, 1, WithReporter(reporter))
	g.Start(epoch)

	// Keep the player airborne at y=100 for this frame
	g.player.DY = -g.player.Gravity
	g.spawner.queue = append(g.spawner.queue, Obstacle{X: 170, Y: 100, Width: 100, Height: 100, Margin: 20})
	g.spawner.nextID = 1
	g.spawner.sinceSpawn = 0

	// Scrolls to x=150 before the check
	g.Step(Input{}, frame)

	if g.State() != GameOver {
		t.Fatalf("state = %v, expected GameOver", g.State())
	}
	if len(reporter.scores) != 1 {
		t.Errorf("reporter called %d times", len(reporter.scores))
	}
}

func TestRetryResetsRun(t *testing.T) {
	cfg := testConfig()
	audio := &recordingAudio{}
	reporter := &recordingReporter{}
	g := New(cfg, 1, WithAudio(audio), WithReporter(reporter))
	g.Start(epoch)
	now := runUntilOver(t, g, epoch, 200)

	if g.Start(now) {
		t.Error("Start should be ignored after game over")
	}
	if !g.Retry(now) {
		t.Fatal("Retry should succeed after game over")
	}
	if g.State() != Running || !g.Running() {
		t.Errorf("after Retry: state %v, running %v", g.State(), g.Running())
	}
	if g.Score() != 0 {
		t.Errorf("score = %d after retry", g.Score())
	}
	if len(g.Obstacles()) != 0 {
		t.Errorf("%d obstacles left after retry", len(g.Obstacles()))
	}
	if g.Player() != NewPlayer(cfg) {
		t.Errorf("player not reset: %+v", g.Player())
	}
	if g.clouds.Elapsed != 0 {
		t.Error("cloud layer not reset")
	}
	if want := []string{"ambient", "fail", "pause", "ambient"}; !reflect.DeepEqual(audio.calls, want) {
		t.Errorf("audio calls = %v, want %v", audio.calls, want)
	}
	if g.clock.Starts() != 2 || g.clock.Stops() != 1 {
		t.Errorf("clock starts/stops = %d/%d", g.clock.Starts(), g.clock.Stops())
	}

	// The second run ends once more and reports separately
	runUntilOver(t, g, now, 200)
	if len(reporter.scores) != 2 {
		t.Errorf("expected two reports, got %v", reporter.scores)
	}
}

func TestPlayerStaysAboveGround(t *testing.T) {
	cfg := unreachableConfig()
	g := New(cfg, 3)
	g.Start(epoch)

	now := epoch
	for i := 0; i < 1000; i++ {
		now = now.Add(frame)
		g.Frame(now, Input{Jump: i%7 < 3})
		p := g.Player()
		if p.Y+p.Height > cfg.Screen.GroundLine() {
			t.Fatalf("frame %d: player bottom %v below ground %v", i, p.Y+p.Height, cfg.Screen.GroundLine())
		}
		if p.Grounded && p.DY != 0 {
			t.Fatalf("frame %d: grounded player with dy %v", i, p.DY)
		}
	}
}

func TestScoreCountsRemovals(t *testing.T) {
	g := New(unreachableConfig(), 1)
	g.Start(epoch)

	now := epoch
	prev := 0
	for i := 0; i < 2000; i++ {
		now = now.Add(frame)
		if !g.Frame(now, Input{}) {
			t.Fatalf("frame %d: unreachable player collided", i)
		}
		if g.Score() < prev {
			t.Fatalf("score decreased from %d to %d", prev, g.Score())
		}
		prev = g.Score()
		if want := g.spawner.Spawned() - len(g.Obstacles()); g.Score() != want {
			t.Fatalf("frame %d: score %d, obstacles removed %d", i, g.Score(), want)
		}
	}
	if g.Score() == 0 {
		t.Error("expected obstacles to be cleared")
	}
}

func TestGameDeterministic(t *testing.T) {
	cfg := randomConfig(t)
	cfg.Player.X = -1000
	a, b := New(cfg, 9), New(cfg, 9)
	a.Start(epoch)
	b.Start(epoch)

	now := epoch
	for i := 0; i < 500; i++ {
		now = now.Add(frame)
		a.Frame(now, Input{})
		b.Frame(now, Input{})
	}
	if a.Score() != b.Score() || !reflect.DeepEqual(a.Obstacles(), b.Obstacles()) {
		t.Error("games with the same seed diverged")
	}
}

func TestCloudsUseWallClock(t *testing.T) {
	g := New(unreachableConfig(), 1)
	g.Start(epoch)

	g.Frame(epoch.Add(250*time.Millisecond), Input{})
	g.Frame(epoch.Add(time.Second), Input{})
	if g.clouds.Elapsed != time.Second {
		t.Errorf("cloud layer elapsed %v, expected 1s", g.clouds.Elapsed)
	}
	// Obstacles move per frame regardless of the delta
	if obs := g.Obstacles(); len(obs) != 1 || obs[0].X != g.cfg.Screen.Width-g.cfg.Physics.ScrollSpeed {
		t.Errorf("unexpected obstacles %+v", obs)
	}
}
