package scenes

import (
	"fmt"
	"math/rand"

	"github.com/charmbracelet/log"
	"github.com/cugone/LunarLander/assets"
	"github.com/cugone/LunarLander/assets/animations"
	"github.com/cugone/LunarLander/components"
	cfg "github.com/cugone/LunarLander/config"
	"github.com/cugone/LunarLander/systems"
	"github.com/cugone/LunarLander/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// SheetLoader returns the lander sprite sheet.
type SheetLoader func() *animations.SpriteSheet

// LevelSource loads a level by path.
type LevelSource interface {
	LoadLevel(path string) (assets.Level, error)
}

// UI is the overlay drawn above the HUD.
type UI interface {
	systems.UICapture
	Update()
	Draw(screen *ebiten.Image)
}

// Deps are the collaborators a LanderScene is built from.
type Deps struct {
	Input   systems.InputSource
	UI      UI
	Options systems.OptionsSource
	Sheets  SheetLoader
	Levels  LevelSource
	Rand    systems.RandomSource
	Logger  *log.Logger

	LevelPath string
}

// LanderScene is one lander session: camera, lander and options.
type LanderScene struct {
	ecs    *ecs.ECS
	deps   Deps
	lander systems.Lander

	initialized bool
}

func NewLanderScene(deps Deps) *LanderScene {
	if deps.Input == nil {
		deps.Input = systems.EbitenInput{}
	}
	if deps.Sheets == nil {
		deps.Sheets = assets.MustLoadLanderSheet
	}
	if deps.Levels == nil {
		deps.Levels = assets.NewLevelLoader()
	}
	if deps.Rand == nil {
		deps.Rand = rand.New(rand.NewSource(rand.Int63()))
	}
	if deps.LevelPath == "" {
		deps.LevelPath = assets.DefaultLevel
	}
	return &LanderScene{deps: deps}
}

// Initialize loads options, the level and the sprite sheet, configures the
// camera and creates the lander. Options that fail to load are replaced by
// the defaults; a level that fails to load is returned as an error.
func (s *LanderScene) Initialize() error {
	if s.initialized {
		return nil
	}

	level, err := s.deps.Levels.LoadLevel(s.deps.LevelPath)
	if err != nil {
		return fmt.Errorf("could not load level: %w", err)
	}
	s.initialized = true

	e := ecs.NewECS(donburi.NewWorld())

	// Systems
	e.AddSystem(systems.UpdateInput(s.deps.Input))
	e.AddSystem(systems.UpdateControls(s.deps.UI))
	e.AddSystem(systems.WithSessionCheck(systems.UpdateCameraController(s.deps.UI)))
	e.AddSystem(systems.WithSessionCheck(systems.UpdatePhysics))
	e.AddSystem(systems.WithSessionCheck(systems.UpdateMouseLock))
	e.AddSystem(systems.WithSessionCheck(systems.UpdateCollisions))
	e.AddSystem(systems.WithSessionCheck(systems.UpdateLanders))
	e.AddSystem(systems.WithSessionCheck(systems.UpdateCamera(s.deps.Rand)))

	// Renderers
	e.AddRenderer(cfg.LayerWorld, systems.DrawGround)
	e.AddRenderer(cfg.LayerWorld, systems.DrawLander)
	e.AddRenderer(cfg.LayerWorld, systems.DrawDebug)
	e.AddRenderer(cfg.LayerHUD, systems.DrawHUD)

	s.ecs = e

	opts := systems.LoadOptions(s.deps.Options, s.deps.Logger)
	settings := systems.GetOrCreateSettings(e)
	settings.Options = &opts
	settings.LockCameraRotation = opts.IsCameraRotationLocked()
	settings.LockCameraPosition = opts.IsCameraPositionLocked()

	factory.CreateLevel(e, level)

	// The space starts margin units above and left of the map
	margin := cfg.Physics.SpaceMargin
	offset := math.Vec2{X: float64(margin), Y: float64(margin)}.Sub(level.Origin)
	factory.CreateSpace(e, offset,
		level.Width+margin*2, level.Height+margin*2,
		cfg.Physics.SpaceCell, cfg.Physics.SpaceCell,
	)
	for _, g := range level.Ground {
		factory.CreateGround(e, g)
	}

	factory.CreateCamera(e)

	spawn := math.Vec2{}
	if level.HasSpawn {
		spawn = level.LanderSpawn
	}
	s.lander = systems.NewLander(factory.CreateLander(e, spawn, s.deps.Sheets()))
	s.lander.SetMouseLocked(opts.LockPositionToMouse)
	return nil
}

// World exposes the entity world.
func (s *LanderScene) World() donburi.World { return s.ecs.World }

func (s *LanderScene) ECS() *ecs.ECS { return s.ecs }

func (s *LanderScene) Lander() systems.Lander { return s.lander }

func (s *LanderScene) Settings() *components.SettingsData {
	return systems.GetOrCreateSettings(s.ecs)
}

// Camera returns the scene camera.
func (s *LanderScene) Camera() *components.CameraData {
	entry, _ := components.Camera.First(s.ecs.World)
	return components.Camera.Get(entry)
}

// SaveOptions persists the current session settings.
func (s *LanderScene) SaveOptions() error {
	settings := s.Settings()
	settings.Options.LockCameraPosition = settings.LockCameraPosition
	settings.Options.LockCameraRotation = settings.LockCameraRotation
	if err := systems.SaveOptions(s.deps.Options, settings.Options); err != nil {
		if s.deps.Logger != nil {
			s.deps.Logger.Warn("options not saved", "error", err)
		}
		return err
	}
	return nil
}

func (s *LanderScene) BeginFrame() {
	s.lander.BeginFrame()
}

// Update advances the session by deltaSeconds.
func (s *LanderScene) Update(deltaSeconds float64) {
	s.Settings().DeltaSeconds = deltaSeconds
	if s.deps.UI != nil {
		s.deps.UI.Update()
	}
	s.ecs.Update()
}

func (s *LanderScene) EndFrame() {
	systems.EndFrameLanders(s.ecs)
}

// Quitting reports whether the player asked to leave.
func (s *LanderScene) Quitting() bool {
	return s.Settings().Quitting
}

func (s *LanderScene) Render(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(cfg.Space)

	if s.ecs == nil {
		return
	}
	s.Settings().ScreenWidth = screen.Bounds().Dx()
	s.Settings().ScreenHeight = screen.Bounds().Dy()
	s.ecs.Draw(screen)

	if s.deps.UI != nil {
		s.deps.UI.Draw(screen)
	}
}
