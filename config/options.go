package config

// Options keys in the persisted document.
const (
	KeyWindowWidth        = "windowWidth"
	KeyWindowHeight       = "windowHeight"
	KeyFullscreen         = "fullscreen"
	KeyLockCameraRotation = "lockCameraRotation"
	KeyLockCameraPosition = "lockCameraPosition"
	KeyLockPositionMouse  = "lockPositionToMouse"
	KeyMaxShakeAngle      = "maxShakeAngle"
	KeyMaxShakeOffsetH    = "maxShakeOffsetHorizontal"
	KeyMaxShakeOffsetV    = "maxShakeOffsetVertical"
)

// GameSettings are the engine-level settings every game persists.
type GameSettings struct {
	WindowWidth  int
	WindowHeight int
	Fullscreen   bool
}

func DefaultGameSettings() GameSettings {
	return GameSettings{
		WindowWidth:  C.Width * 2,
		WindowHeight: C.Height * 2,
		Fullscreen:   false,
	}
}

// GameOptions extends GameSettings with the lander's camera and debug options.
type GameOptions struct {
	GameSettings

	LockCameraRotation  bool
	LockCameraPosition  bool
	LockPositionToMouse bool

	MaxShakeAngle            float64 // degrees
	MaxShakeOffsetHorizontal float64
	MaxShakeOffsetVertical   float64
}

// DefaultGameOptions returns the compiled-in defaults.
func DefaultGameOptions() GameOptions {
	return GameOptions{
		GameSettings:             DefaultGameSettings(),
		MaxShakeAngle:            2.5,
		MaxShakeOffsetHorizontal: 25.0,
		MaxShakeOffsetVertical:   25.0,
	}
}

func (o *GameOptions) SetToDefault() {
	*o = DefaultGameOptions()
}

// LoadFromConfig reads every known key, keeping the current value for keys
// the document does not carry.
func (o *GameOptions) LoadFromConfig(s *Store) {
	o.WindowWidth = s.GetInt(KeyWindowWidth, o.WindowWidth)
	o.WindowHeight = s.GetInt(KeyWindowHeight, o.WindowHeight)
	o.Fullscreen = s.GetBool(KeyFullscreen, o.Fullscreen)
	o.LockCameraRotation = s.GetBool(KeyLockCameraRotation, o.LockCameraRotation)
	o.LockCameraPosition = s.GetBool(KeyLockCameraPosition, o.LockCameraPosition)
	o.LockPositionToMouse = s.GetBool(KeyLockPositionMouse, o.LockPositionToMouse)
	o.MaxShakeAngle = s.GetFloat(KeyMaxShakeAngle, o.MaxShakeAngle)
	o.MaxShakeOffsetHorizontal = s.GetFloat(KeyMaxShakeOffsetH, o.MaxShakeOffsetHorizontal)
	o.MaxShakeOffsetVertical = s.GetFloat(KeyMaxShakeOffsetV, o.MaxShakeOffsetVertical)
}

func (o *GameOptions) SaveToConfig(s *Store) {
	s.SetValue(KeyWindowWidth, o.WindowWidth)
	s.SetValue(KeyWindowHeight, o.WindowHeight)
	s.SetValue(KeyFullscreen, o.Fullscreen)
	s.SetValue(KeyLockCameraRotation, o.LockCameraRotation)
	s.SetValue(KeyLockCameraPosition, o.LockCameraPosition)
	s.SetValue(KeyLockPositionMouse, o.LockPositionToMouse)
	s.SetValue(KeyMaxShakeAngle, o.MaxShakeAngle)
	s.SetValue(KeyMaxShakeOffsetH, o.MaxShakeOffsetHorizontal)
	s.SetValue(KeyMaxShakeOffsetV, o.MaxShakeOffsetVertical)
}

func (o *GameOptions) IsCameraRotationLocked() bool { return o.LockCameraRotation }
func (o *GameOptions) IsCameraPositionLocked() bool { return o.LockCameraPosition }
func (o *GameOptions) GetMaxShakeAngle() float64    { return o.MaxShakeAngle }

func (o *GameOptions) GetMaxShakeOffsetHorizontal() float64 { return o.MaxShakeOffsetHorizontal }
func (o *GameOptions) GetMaxShakeOffsetVertical() float64   { return o.MaxShakeOffsetVertical }
