package parameter

// Agent speeds in pixels per second
const (
	SpeedWander    = 30.0
	SpeedChase     = 120.0
	SpeedFly       = 80.0
	SpeedFlyDown   = 60.0
	SpeedSwimWalk  = 30.0
	SpeedMud       = 30.0
	SpeedDragMemes = 50.0
	SpeedShooed    = 120.0
)

// Idle transition chances, per second
const (
	ChanceWander    = 0.06
	ChanceFly       = 0.02
	ChanceSwim      = 0.02
	ChanceDance     = 0.02
	ChanceTrackMud  = 0.02
	ChanceDragMemes = 0.01
	ChanceLayEgg    = 0.01

	// ChanceIdleGlance plays LookingAround or LookingUp while bobbing
	ChanceIdleGlance = 0.15
)

// Movement geometry in pixels
const (
	// Padding insets random targets from the viewport edge
	Padding = 100.0

	// ArrivalDistance ends walking states
	ArrivalDistance = 10.0

	// HitHalfExtent is the half size of the agent's click box
	HitHalfExtent = 32.0

	// SpawnJitter is the spread around the viewport centre on spawn
	SpawnJitter = 100.0
)

// Chase
const (
	// ChaseSmoothing is the per-tick exponential factor pulling the target to the pointer
	ChaseSmoothing = 0.03

	// ChaseTimeLimit in seconds before giving up and wandering
	ChaseTimeLimit = 25.0

	// ChaseHonkMin and ChaseHonkSpread give the random honk interval
	ChaseHonkMin    = 0.5
	ChaseHonkSpread = 2.5

	// ChaseTalkInterval between flavor bubbles
	ChaseTalkInterval = 8.0

	// ChaseHoldDistance stops the walk; ChaseResumeDistance restarts it
	ChaseHoldDistance   = 10.0
	ChaseResumeDistance = 20.0

	// StrikeDistance arms Bite/Bonk once the cooldown has elapsed
	StrikeDistance = 10.0

	// StrikeCooldown in seconds after a Bite or Bonk
	StrikeCooldown = 3.0

	// StrikeDelay keeps a fresh chase from striking on the very click that started it
	StrikeDelay = 1.0
)

// Fly
const (
	FlyRise          = 100.0
	FlyLandOffset    = 10.0
	FlyBobAmplitude  = 20.0
	FlyBobFrequency  = 2.0
	FlyHover         = 2.0
	FlyAscendArrival = 20.0
	FlyLandArrival   = 10.0
)

// Swim
const (
	SwimPuddleMin     = 100.0
	SwimPuddleSpread  = 50.0
	SwimArrival       = 2.0
	SwimDurationMin   = 15.0
	SwimDurationRange = 10.0

	// SwimPlacementTries bounds puddle rejection sampling before clamping
	SwimPlacementTries = 64
)

// TrackMud
const (
	MudDwell          = 2.0
	MudTrackMin       = 50.0
	MudTrackRange     = 10.0
	MudFootprintEvery = 0.5
	MudDriftSpeed     = 200.0
	MudTurnChance     = 0.01
)

// Contact states
const (
	AngryAlive = 0.8

	// ShooedTimeLimit caps a flight from the pointer
	ShooedTimeLimit = 4.0
	ShooedDistance  = 200.0
)

// Dance and eggs
const (
	DanceDuration = 8.8
	DanceVolume   = 0.7
	LayEggTime    = 3.0
	MaxBrood      = 5
	EggRest       = 2.0
	EggWiggle     = 4.0
	EggHatchDrop  = 20.0
)

// Gosling
const (
	GoslingTrailStep    = 30.0
	GoslingTrailBase    = 10.0
	GoslingStartFollow  = 20.0
	GoslingStopFollow   = 10.0
	GoslingStartChase   = 70.0
	GoslingStopChase    = 50.0
	GoslingSpeedFollow  = 30.0
	GoslingSpeedChase   = 90.0
	GoslingPeepFollow   = 0.06
	GoslingPeepChase    = 0.15
	GoslingGrowUpSecond = 120.0
)

// Speech bubbles
const (
	BubbleAlive    = 3.0
	BubbleMaxLines = 3
	BubbleLineStep = 12.0
	BubbleMaxWidth = 64*2 - 16 - 40

	// BubbleGlyphAdvance approximates glyph width for wrapping
	BubbleGlyphAdvance = 6.0
)
