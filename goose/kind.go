package goose

import (
	"errors"
	"fmt"
	"strings"
)

// Kind names a behavior state of the agent
type Kind uint8

const (
	Idle Kind = iota
	Wander
	Chase
	Bite
	Bonk
	Fly
	Swim
	Dance
	TrackMud
	DragMemes
	LayEgg
	Shooed

	kindCount
)

var kindNames = [kindCount]string{
	Idle:      "idle",
	Wander:    "wander",
	Chase:     "chase",
	Bite:      "bite",
	Bonk:      "bonk",
	Fly:       "fly",
	Swim:      "swim",
	Dance:     "dance",
	TrackMud:  "track_mud",
	DragMemes: "drag_memes",
	LayEgg:    "lay_egg",
	Shooed:    "shooed",
}

var (
	ErrUnknownState = errors.New("goose: unknown state")
	ErrUnknownHat   = errors.New("goose: unknown hat")
)

func (k Kind) Valid() bool { return k < kindCount }

func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", k)
}

// Kinds lists every state in declaration order
func Kinds() []Kind {
	out := make([]Kind, 0, kindCount)
	for k := Kind(0); k < kindCount; k++ {
		out = append(out, k)
	}
	return out
}

// ParseKind accepts the snake_case name, case-insensitive; dashes are treated as underscores
func ParseKind(s string) (Kind, error) {
	name := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")
	for k, n := range kindNames {
		if n == name {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownState, s)
}
