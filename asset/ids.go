package asset

// Sprite sheet ids
const (
	SheetGoose      = "goose"
	SheetGosling    = "gosling"
	SheetEgg        = "egg"
	SheetHonk       = "honk"
	SheetTextBox    = "textbox"
	SheetShadow     = "shadow"
	SheetHat        = "hats"
	SheetAngry      = "angry"
	SheetBat        = "bat"
	SheetPuddle     = "puddle"
	SheetMud        = "mud"
	SheetFootprints = "footprints"
	SheetDisco      = "disco"
	SheetTarget     = "target"
	SheetMemes      = "memes"
)

// Audio clip ids
const (
	ClipHonk1    = "honk1"
	ClipHonk2    = "honk2"
	ClipHonk3    = "honk3"
	ClipHonkEcho = "honk-echo"
	ClipSplash   = "splash"
	ClipSplat    = "splat"
	ClipDance    = "distraction-dance"
	ClipPeep1    = "peep1"
	ClipPeep2    = "peep2"
	ClipPeep3    = "peep3"
	ClipEggCrack = "egg-crack"
	ClipBonk     = "bonk"
)

// Honks is the pool for transition cues
var Honks = []string{ClipHonk1, ClipHonk2, ClipHonk3}

// Peeps is the pool for gosling chatter
var Peeps = []string{ClipPeep1, ClipPeep2, ClipPeep3}

// MemeCount is the number of frames in the meme sheet row
const MemeCount = 7
