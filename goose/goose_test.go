package goose

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/lixenwraith/loose-goose/companion"
	"github.com/lixenwraith/loose-goose/engine"
	"github.com/lixenwraith/loose-goose/parameter"
	"github.com/lixenwraith/loose-goose/render"
	"github.com/lixenwraith/loose-goose/status"
	"github.com/lixenwraith/loose-goose/vmath"
)

var bounds = vmath.Bounds{Width: 800, Height: 600}

func newCtx(rng engine.Rand) *engine.Context {
	ctx := engine.TestContext(rng, bounds)
	ctx.Renderer = render.NewRecorder()
	return ctx
}

// step mirrors one engine tick over ctx.Registry
func step(ctx *engine.Context) {
	ctx.Registry.Purge()
	ctx.Tick++
	ctx.Time += ctx.DT
	ctx.Registry.Each(func(_ engine.Layer, e engine.Entity) {
		if !e.Dead() {
			e.Update(ctx)
		}
	})
}

func stepUntil(ctx *engine.Context, maxTicks int, done func() bool) int {
	for i := 0; i < maxTicks; i++ {
		if done() {
			return i
		}
		step(ctx)
	}
	return maxTicks
}

func TestIdleToWanderPicksPaddedTarget(t *testing.T) {
	ctx := newCtx(engine.FixedRand(0))
	g := SpawnAt(ctx, Options{}, vmath.V(400, 300), Idle)

	g.Update(ctx)

	if g.State() != Wander {
		t.Fatalf("Expected state %s, got %s", Wander, g.State())
	}
	target, ok := g.Target()
	require.True(t, ok)
	if target.X < parameter.Padding || target.X > bounds.Width-parameter.Padding {
		t.Errorf("Expected target X in padded bounds, got %.1f", target.X)
	}
	if target.Y < parameter.Padding || target.Y > bounds.Height-parameter.Padding {
		t.Errorf("Expected target Y in padded bounds, got %.1f", target.Y)
	}
	t.Logf("✓ Idle rolled Wander with target %+v", target)
}

func TestIdleStaysIdleOnFailedRolls(t *testing.T) {
	ctx := newCtx(engine.FixedRand(0.99))
	g := SpawnAt(ctx, Options{}, vmath.V(400, 300), Idle)
	for range 60 {
		g.Update(ctx)
	}
	assert.Equal(t, Idle, g.State())
	assert.True(t, g.Velocity().IsZero())
}

func TestWanderArrivesAndIdles(t *testing.T) {
	ctx := newCtx(engine.FixedRand(0.99))
	g := SpawnAt(ctx, Options{}, vmath.V(400, 300), Wander)
	target, _ := g.Target()

	n := stepUntil(ctx, 60*60, func() bool { return g.State() == Idle })
	require.Less(t, n, 60*60, "wander never arrived")
	assert.Less(t, vmath.Distance(g.Position(), target), parameter.ArrivalDistance+1)
}

func TestChaseTargetConverges(t *testing.T) {
	ctx := newCtx(engine.FixedRand(0.5))
	pointer := vmath.V(500, 500)
	ctx.Input.Pointer = pointer
	g := SpawnAt(ctx, Options{}, vmath.V(0, 0), Chase)
	s, ok := g.machine.State().(*chaseState)
	require.True(t, ok)

	start := vmath.Distance(g.Position(), pointer)
	prev := vmath.Distance(s.smoothed(), pointer)
	for i := 0; i < 150; i++ {
		g.Update(ctx)
		d := vmath.Distance(s.smoothed(), pointer)
		if d >= prev {
			t.Fatalf("Expected smoothed distance to shrink at tick %d: %.3f >= %.3f", i, d, prev)
		}
		prev = d
	}
	assert.Equal(t, Chase, g.State())
	assert.Less(t, vmath.Distance(g.Position(), pointer), start)
}

func TestChaseStrikesWhenClose(t *testing.T) {
	ctx := newCtx(engine.FixedRand(0.2))
	pointer := vmath.V(400, 300)
	ctx.Input.Pointer = pointer
	g := SpawnAt(ctx, Options{}, vmath.V(402, 300), Chase)

	// No strike before the delay has passed
	g.Update(ctx)
	require.Equal(t, Chase, g.State())

	stepUntil(ctx, 120, func() bool { return g.State() != Chase })
	assert.Equal(t, Bite, g.State(), "Pick(2) with 0.2 chooses bite")
	assert.True(t, g.BendingDown())
	assert.InDelta(t, parameter.StrikeCooldown, g.strikeCooldown, 0.1)
}

func TestBiteReturnsToWander(t *testing.T) {
	ctx := newCtx(engine.FixedRand(0.99))
	g := SpawnAt(ctx, Options{}, vmath.V(400, 300), Bite)
	n := stepUntil(ctx, 120, func() bool { return g.State() != Bite })
	require.Less(t, n, 120)
	assert.Equal(t, Wander, g.State())
	assert.False(t, g.BendingDown())
}

func TestBonkWaitsForSwing(t *testing.T) {
	ctx := newCtx(engine.FixedRand(0.99))
	g := SpawnAt(ctx, Options{}, vmath.V(400, 300), Bonk)
	s := g.machine.State().(*bonkState)
	n := stepUntil(ctx, 120, func() bool { return g.State() != Bonk })
	require.Less(t, n, 120)
	assert.True(t, s.bat.Swung())
	assert.True(t, s.bat.Dead(), "bat is owned by the bonk state")
	assert.Equal(t, Wander, g.State())
}

func TestClickForcesChaseAndSecondaryShoos(t *testing.T) {
	ctx := newCtx(engine.FixedRand(0.99))
	g := SpawnAt(ctx, Options{}, vmath.V(400, 300), Idle)

	ctx.Input = engine.Input{Pointer: vmath.V(410, 305), Clicked: true}
	g.Update(ctx)
	assert.Equal(t, Chase, g.State())

	ctx.Input = engine.Input{Pointer: vmath.V(390, 300), SecondaryClicked: true}
	g.Update(ctx)
	require.Equal(t, Shooed, g.State())
	target, _ := g.Target()
	assert.Greater(t, target.X, g.Position().X, "flees away from the pointer")
	assert.True(t, bounds.ContainsInset(target, parameter.Padding-0.001))

	ctx.Input = engine.Input{}
	stepUntil(ctx, int(parameter.ShooedTimeLimit*60)+10, func() bool { return g.State() != Shooed })
	assert.Equal(t, Idle, g.State())
}

func TestUnknownStatePanics(t *testing.T) {
	ctx := newCtx(engine.FixedRand(0.5))
	g := SpawnAt(ctx, Options{}, vmath.V(400, 300), Idle)
	assert.Panics(t, func() { g.SetState(ctx, Kind(200)) })
	assert.Equal(t, Idle, g.State())
}

func findEntity[T engine.Entity](ctx *engine.Context) (T, bool) {
	var out T
	found := false
	ctx.Registry.Each(func(_ engine.Layer, e engine.Entity) {
		if v, ok := e.(T); ok && !found && !e.Dead() {
			out, found = v, true
		}
	})
	return out, found
}

func TestExitRunsBeforeEnter(t *testing.T) {
	ctx := newCtx(engine.FixedRand(0.5))
	g := SpawnAt(ctx, Options{}, vmath.V(400, 300), Swim)
	puddle, ok := findEntity[*companion.Marker](ctx)
	require.True(t, ok)

	var order []string
	g.machine.OnTransition(func(_ *engine.Context, from Kind, _ bool, to Kind) {
		order = append(order, "hook")
		assert.True(t, puddle.Dead(), "outgoing state's companions die in Exit")
		assert.Nil(t, g.machine.State(), "incoming state not entered yet")
	})
	g.SetState(ctx, Dance)
	order = append(order, "entered:"+g.State().String())

	assert.Equal(t, []string{"hook", "entered:dance"}, order)
}

func TestTransitionKillsStateCompanions(t *testing.T) {
	tests := []struct {
		name  string
		kind  Kind
		check func(ctx *engine.Context) (engine.Entity, bool)
	}{
		{"swim puddle", Swim, func(ctx *engine.Context) (engine.Entity, bool) { return findEntity[*companion.Marker](ctx) }},
		{"mud patch", TrackMud, func(ctx *engine.Context) (engine.Entity, bool) { return findEntity[*companion.Marker](ctx) }},
		{"disco ball", Dance, func(ctx *engine.Context) (engine.Entity, bool) { return findEntity[*companion.DiscoBall](ctx) }},
		{"wander bubble", Wander, func(ctx *engine.Context) (engine.Entity, bool) { return findEntity[*companion.Bubble](ctx) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := newCtx(engine.FixedRand(0.5))
			g := SpawnAt(ctx, Options{}, vmath.V(400, 300), tt.kind)
			owned, ok := tt.check(ctx)
			require.True(t, ok, "state spawned its companion")

			g.SetState(ctx, Idle)
			assert.True(t, owned.Dead())
		})
	}
}

func TestDanceStopsMusicAndLeavesIdle(t *testing.T) {
	ctx := newCtx(engine.FixedRand(0.99))
	g := SpawnAt(ctx, Options{}, vmath.V(400, 300), Dance)
	assert.True(t, g.Dancing())
	stepUntil(ctx, int(parameter.DanceDuration*60)+10, func() bool { return g.State() != Dance })
	assert.Equal(t, Idle, g.State())
	assert.False(t, g.Dancing())
}

func TestSwimHidesShadowUntilExit(t *testing.T) {
	ctx := newCtx(engine.FixedRand(0.5))
	g := SpawnAt(ctx, Options{}, vmath.V(400, 300), Swim)
	stepUntil(ctx, 60*30, func() bool { return g.Shadow().Hidden() })
	require.True(t, g.Shadow().Hidden(), "arrived at the puddle")
	assert.Equal(t, AnimSwimming, g.Anim())

	g.SetState(ctx, Idle)
	assert.False(t, g.Shadow().Hidden())
}

func TestPuddleStaysInBounds(t *testing.T) {
	ctx := newCtx(engine.SeededRand(7))
	for _, from := range []vmath.Vec2{{X: 0, Y: 0}, {X: 800, Y: 600}, {X: 400, Y: 300}} {
		p := placePuddle(ctx, from)
		assert.True(t, bounds.ContainsInset(p, parameter.Padding-0.001), "puddle %+v from %+v", p, from)
	}
}

func TestFlyLandsNearTakeoff(t *testing.T) {
	ctx := newCtx(engine.FixedRand(0.99))
	start := vmath.V(400, 300)
	g := SpawnAt(ctx, Options{}, start, Fly)
	shadowY := g.Shadow().Position().Y

	step(ctx)
	step(ctx)
	assert.True(t, g.Flying())
	assert.InDelta(t, shadowY, g.Shadow().Position().Y, 0.001, "shadow stays on the ground")

	n := stepUntil(ctx, 60*15, func() bool { return g.State() != Fly })
	require.Less(t, n, 60*15, "never landed")
	assert.Equal(t, Idle, g.State())
	assert.False(t, g.Flying())
	assert.Less(t, vmath.Distance(g.Position(), start), parameter.FlyLandOffset+parameter.FlyLandArrival+1)
}

func TestTrackMudLeavesFootprintsAndCleansUp(t *testing.T) {
	ctx := newCtx(engine.SeededRand(3))
	g := SpawnAt(ctx, Options{}, vmath.V(400, 300), TrackMud)
	s := g.machine.State().(*trackMudState)

	stepUntil(ctx, 60*40, func() bool { return s.phase == mudTrack && s.sincePrint == 0 && s.elapsed > 1 })
	require.Equal(t, mudTrack, s.phase)
	prints := s.owned.Live()
	require.Greater(t, prints, 1, "mud plus at least one footprint")

	g.SetState(ctx, Idle)
	assert.Equal(t, 0, s.owned.Live())
}

func TestDragMemesReleasesProp(t *testing.T) {
	ctx := newCtx(engine.FixedRand(0.99))
	g := SpawnAt(ctx, Options{}, vmath.V(400, 300), DragMemes)
	prop, ok := findEntity[*companion.Prop](ctx)
	require.True(t, ok)
	assert.False(t, prop.Released())

	n := stepUntil(ctx, 60*30, func() bool { return g.State() != DragMemes })
	require.Less(t, n, 60*30)
	assert.True(t, prop.Released())
	assert.False(t, prop.Dead(), "released prop outlives the state")

	g.Despawn(ctx)
	assert.True(t, prop.Dead(), "agent owns the released prop")
}

func TestEggHatchesIntoGosling(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	ctx := newCtx(engine.FixedRand(0.99))
	st := status.NewRegistry()
	g := SpawnAt(ctx, Options{Log: zap.New(core), Status: st}, vmath.V(400, 300), LayEgg)

	egg, ok := findEntity[*Egg](ctx)
	require.True(t, ok)
	assert.Equal(t, 1, g.brood())

	// lay, rest, wiggle, hatch
	total := parameter.LayEggTime + parameter.EggRest + parameter.EggWiggle + 8 + 1
	stepUntil(ctx, int(total*60), func() bool { return len(g.Goslings()) > 0 })

	require.Len(t, g.Goslings(), 1)
	assert.True(t, egg.Dead())
	gs := g.Goslings()[0]
	assert.Equal(t, 1, gs.Child())
	assert.Equal(t, float64(1)*parameter.GoslingTrailStep+parameter.GoslingTrailBase, gs.TrailDistance())
	assert.Equal(t, int64(1), st.Ints.Get("goose.goslings").Load())
	assert.Equal(t, 1, logs.FilterMessage("gosling hatched").Len())
}

func TestGoslingTrailsAndFreezes(t *testing.T) {
	ctx := newCtx(engine.FixedRand(0.99))
	g := SpawnAt(ctx, Options{}, vmath.V(400, 300), Idle)
	g.hatch(ctx, vmath.V(250, 300), 1)
	gs := g.Goslings()[0]

	g.speed = 30
	g.vel = vmath.V(30, 0)
	tp := gs.trailPoint()
	assert.InDelta(t, 400-gs.TrailDistance(), tp.X, 0.001)
	assert.InDelta(t, 300, tp.Y, 0.001)

	gs.Update(ctx)
	assert.Equal(t, GoslingChase, gs.State(), "trailing point is 110px away")

	g.flying = true
	before := gs.Position()
	gs.Update(ctx)
	assert.Equal(t, before, gs.Position(), "frozen while the parent flies")

	g.flying = false
	g.dancing = true
	gs.Update(ctx)
	assert.Equal(t, goslingDancing, gs.anim)
	g.dancing = false
	gs.Update(ctx)
	assert.Equal(t, GoslingIdle, gs.State())
}

func TestKillLeavesEmptyRegistry(t *testing.T) {
	for _, kind := range Kinds() {
		t.Run(kind.String(), func(t *testing.T) {
			tp := engine.NewMockTimeProvider(time.Unix(0, 0))
			e := engine.New(engine.Options{Clock: engine.NewClock(tp, parameter.MaxTickStep), Rand: engine.FixedRand(0.5)})
			e.Update(engine.Input{}, bounds)
			ctx := e.Context()

			g := SpawnAt(ctx, Options{}, vmath.V(400, 300), kind)
			g.hatch(ctx, vmath.V(350, 300), 1)
			for range 30 {
				tp.Advance(parameter.FrameInterval)
				e.Update(engine.Input{Pointer: vmath.V(100, 100)}, bounds)
			}
			require.Greater(t, e.Registry().Live(), 0)

			g.Despawn(ctx)
			assert.Equal(t, 0, e.Registry().Live(), "every entity is dead in the same tick")

			tp.Advance(parameter.FrameInterval)
			e.Update(engine.Input{}, bounds)
			assert.Equal(t, 0, e.Registry().Len())
		})
	}
}

func TestBelongingsStayBounded(t *testing.T) {
	ctx := newCtx(engine.FixedRand(0.99))
	g := SpawnAt(ctx, Options{}, vmath.V(400, 300), Idle)

	for i := 0; i < 1000; i++ {
		if i%2 == 0 {
			g.SetState(ctx, Wander)
		} else {
			g.SetState(ctx, Idle)
		}
		step(ctx)
		if i%10 == 9 {
			// outlast every honk burst spawned in this batch
			for range 30 {
				step(ctx)
			}
		}
	}
	if n := g.belongings.Len(); n > 64 {
		t.Errorf("Expected belongings to stay bounded, got %d tracked after 1000 transitions", n)
	}
	for range 30 {
		step(ctx)
	}
	assert.Equal(t, 0, g.belongings.Live(), "every honk burst has ended")
	t.Logf("✓ %d members tracked after 1000 transitions", g.belongings.Len())
}

func TestContactReentryReplaysAnimation(t *testing.T) {
	for _, kind := range []Kind{Bite, Bonk} {
		t.Run(kind.String(), func(t *testing.T) {
			ctx := newCtx(engine.FixedRand(0.99))
			g := SpawnAt(ctx, Options{}, vmath.V(400, 300), kind)
			stepUntil(ctx, 600, func() bool { return g.animator().Completed() })
			require.True(t, g.animator().Completed())
			require.Equal(t, kind, g.State(), "completion is only acted on by the next update")

			g.SetState(ctx, kind)
			assert.False(t, g.animator().Completed(), "re-entry restarts the contact strip")
			step(ctx)
			assert.Equal(t, kind, g.State(), "the contact plays again before leaving")
		})
	}
}

func TestSetHat(t *testing.T) {
	ctx := newCtx(engine.FixedRand(0.5))
	g := SpawnAt(ctx, Options{}, vmath.V(400, 300), Idle)

	require.ErrorIs(t, g.SetHat(ctx, HatType(42)), ErrUnknownHat)
	require.NoError(t, g.SetHat(ctx, HatCrown))
	assert.Equal(t, HatCrown, g.Hat().Type())

	h, err := ParseHat("top-hat")
	require.NoError(t, err)
	assert.Equal(t, HatTopHat, h)
	_, err = ParseHat("bowler")
	assert.ErrorIs(t, err, ErrUnknownHat)
	assert.Equal(t, HatNone, HatJester.Next(), "cycling wraps")
}

func TestParseKind(t *testing.T) {
	for _, k := range Kinds() {
		got, err := ParseKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}
	_, err := ParseKind("moonwalk")
	assert.ErrorIs(t, err, ErrUnknownState)
}

func TestTransitionMetrics(t *testing.T) {
	ctx := newCtx(engine.FixedRand(0.5))
	st := status.NewRegistry()
	g := SpawnAt(ctx, Options{Status: st}, vmath.V(400, 300), Idle)
	g.SetState(ctx, Dance)
	g.Update(ctx)

	assert.Equal(t, int64(2), st.Ints.Get("goose.transitions").Load())
	assert.Equal(t, "dance", st.Strings.Get("goose.state").Load())
	assert.InDelta(t, 400, st.Floats.Get("goose.x").Get(), 0.001)
	assert.Equal(t, int64(1), st.Ints.Get("goose.entered.dance").Load())
	assert.Equal(t, int64(1), st.Ints.Get("goose.entered.idle").Load())

	g.Despawn(ctx)
	assert.Equal(t, "", st.Strings.Get("goose.state").Load())
	assert.Zero(t, st.Ints.Get("goose.transitions").Load())
	assert.Zero(t, st.Ints.Get("goose.entered.dance").Load())
}
