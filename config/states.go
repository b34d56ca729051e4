package config

import (
	"fmt"
	"strings"
)

// SpriteStateID identifies which lander sprite is current.
type SpriteStateID int

const (
	SpriteIdle SpriteStateID = iota
	SpriteThrust
)

func (s SpriteStateID) String() string {
	switch s {
	case SpriteIdle:
		return "idle"
	case SpriteThrust:
		return "thrust"
	}
	return "unknown"
}

// PlaybackMode controls what an animated sprite does after its last frame.
type PlaybackMode int

const (
	PlaybackLooping PlaybackMode = iota
	PlaybackPlayToEnd
)

// RotationMode selects how RotateLeft/RotateRight move the lander.
//
// RotationDelta accumulates an orientation delta that is integrated once per
// Update and cleared by EndFrame. RotationTorque applies a one-tick torque to
// the rigid body and lets the body integrate angular velocity and damping.
type RotationMode int

const (
	RotationDelta RotationMode = iota
	RotationTorque
)

func (m RotationMode) String() string {
	switch m {
	case RotationDelta:
		return "delta"
	case RotationTorque:
		return "torque"
	}
	return "unknown"
}

// ParseRotationMode parses the --rotation-mode flag value.
func ParseRotationMode(s string) (RotationMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "delta", "":
		return RotationDelta, nil
	case "torque":
		return RotationTorque, nil
	}
	return RotationDelta, fmt.Errorf("unknown rotation mode %q (want delta or torque)", s)
}

// TouchdownState reports how the lander last met the ground.
type TouchdownState int

const (
	Airborne TouchdownState = iota
	Landed
	Crashed
)

func (t TouchdownState) String() string {
	switch t {
	case Airborne:
		return "airborne"
	case Landed:
		return "landed"
	case Crashed:
		return "crashed"
	}
	return "unknown"
}
