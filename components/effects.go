package components

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

// ScreenShakeData tracks the camera shake amount in the range 0..1. A
// triggered shake decays to zero over its duration.
type ScreenShakeData struct {
	Amount float64
	Rumble float64 // floor applied for the current frame only
	tween  *gween.Tween
}

// Trigger starts a decaying shake. A weaker shake never replaces a stronger one.
func (s *ScreenShakeData) Trigger(amount float64, durationSeconds float32) {
	if amount <= s.Amount {
		return
	}
	s.Amount = amount
	s.tween = gween.New(float32(amount), 0, durationSeconds, ease.OutQuad)
}

// Update advances the decay and returns the shake for this frame.
func (s *ScreenShakeData) Update(deltaSeconds float64) float64 {
	if s.tween != nil {
		current, finished := s.tween.Update(float32(deltaSeconds))
		s.Amount = float64(current)
		if finished {
			s.Amount = 0
			s.tween = nil
		}
	}
	shake := s.Amount
	if s.Rumble > shake {
		shake = s.Rumble
	}
	s.Rumble = 0
	return shake
}

var ScreenShake = donburi.NewComponentType[ScreenShakeData]()
