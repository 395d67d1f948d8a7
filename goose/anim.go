package goose

import (
	"github.com/lixenwraith/loose-goose/animation"
	"github.com/lixenwraith/loose-goose/asset"
	"github.com/lixenwraith/loose-goose/parameter"
)

// Anim indexes the agent's animation rows
type Anim uint8

const (
	AnimBobbing Anim = iota
	AnimLookingAround
	AnimLookingUp
	AnimWalking
	AnimRunning
	AnimFlying
	AnimSwimming
	AnimShooed
	AnimDancing
	AnimAngry
	AnimBiting
	AnimBonking
	AnimLaying

	animCount
)

var gooseSheet = animation.SquareSheet(asset.SheetGoose, parameter.GooseFrame, parameter.GooseScale)

var gooseStrips = [animCount]animation.Strip{
	AnimBobbing:       animation.Loop(0, 2, 0.7),
	AnimLookingAround: animation.Once(1, 3, 0.7),
	AnimLookingUp:     animation.Once(2, 1, 0.7),
	AnimWalking:       animation.Loop(3, 4, 0.2),
	AnimRunning:       animation.Loop(4, 4, 0.15),
	AnimFlying:        animation.Loop(5, 4, 0.2),
	AnimSwimming:      animation.Loop(6, 2, 0.5),
	AnimShooed:        animation.Loop(7, 4, 0.15),
	AnimDancing:       animation.Loop(8, 4, 0.2),
	AnimAngry:         animation.Loop(9, 4, 0.15),
	AnimBiting:        animation.Once(10, 4, 0.15),
	AnimBonking:       animation.Once(11, 3, 0.15),
	AnimLaying:        animation.Loop(12, 2, 0.4),
}

func newGooseAnimators() [animCount]*animation.Animator {
	var out [animCount]*animation.Animator
	for i, s := range gooseStrips {
		out[i] = animation.Must(gooseSheet, s)
	}
	return out
}

// wide reports poses whose shadow sits further back
func (a Anim) wide() bool {
	switch a {
	case AnimRunning, AnimDancing, AnimShooed, AnimBiting, AnimBonking:
		return true
	}
	return false
}
