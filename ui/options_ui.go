package ui

import (
	"bytes"
	"fmt"
	"image"
	"image/color"

	"github.com/cugone/LunarLander/components"
	"github.com/ebitenui/ebitenui"
	euiimage "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// OptionsUI is the in-game options window toggled with F6. While it is open
// and under the cursor it captures keyboard and mouse input.
type OptionsUI struct {
	UI *ebitenui.UI

	// Callbacks
	Settings func() *components.SettingsData
	OnSave   func() error

	// CursorPosition defaults to ebiten.CursorPosition.
	CursorPosition func() (int, int)

	open bool
	rect image.Rectangle

	// Widget references for updates
	panel             *widget.Container
	positionButton    *widget.Button
	rotationButton    *widget.Button
	debugButton       *widget.Button
	mouseLockButton   *widget.Button
	statusLabel       *widget.Label
	pendingStatusText string

	titleFace  text.Face
	normalFace text.Face
}

// NewOptionsUI creates the options window. settings returns the live session
// settings; onSave persists them.
func NewOptionsUI(settings func() *components.SettingsData, onSave func() error) *OptionsUI {
	o := &OptionsUI{
		Settings:       settings,
		OnSave:         onSave,
		CursorPosition: ebiten.CursorPosition,
	}

	o.loadFonts()
	o.buildUI()

	return o
}

func (o *OptionsUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	o.titleFace = &text.GoTextFace{
		Source: fontSource,
		Size:   14,
	}
	o.normalFace = &text.GoTextFace{
		Source: fontSource,
		Size:   10,
	}
}

func (o *OptionsUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	padding := widget.NewInsetsSimple(6)
	o.panel = widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(euiimage.NewNineSliceColor(color.RGBA{20, 20, 30, 220})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(padding),
			widget.RowLayoutOpts.Spacing(3),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionEnd,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)

	o.panel.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("OPTIONS", &o.titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	))

	o.positionButton = o.newButton(func() {
		s := o.Settings()
		s.LockCameraPosition = !s.LockCameraPosition
	})
	o.rotationButton = o.newButton(func() {
		s := o.Settings()
		s.LockCameraRotation = !s.LockCameraRotation
	})
	o.debugButton = o.newButton(func() {
		s := o.Settings()
		s.DebugRender = !s.DebugRender
	})
	o.mouseLockButton = o.newButton(func() {
		s := o.Settings()
		s.Options.LockPositionToMouse = !s.Options.LockPositionToMouse
	})
	saveButton := o.newButton(o.save)
	saveButton.Text().Label = "Save"
	closeButton := o.newButton(o.ToggleOptionsWindow)
	closeButton.Text().Label = "Close"

	for _, b := range []*widget.Button{o.positionButton, o.rotationButton, o.debugButton, o.mouseLockButton, saveButton, closeButton} {
		o.panel.AddChild(b)
	}

	o.statusLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &o.normalFace, &widget.LabelColor{
			Idle: color.RGBA{255, 200, 100, 255},
		}),
	)
	o.panel.AddChild(o.statusLabel)

	rootContainer.AddChild(o.panel)

	o.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (o *OptionsUI) newButton(onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(150, 18),
		),
		widget.ButtonOpts.Image(buttonImage()),
		widget.ButtonOpts.Text("", &o.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
			o.UpdateUI()
		}),
	)
}

func buttonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     euiimage.NewNineSliceColor(color.RGBA{60, 60, 80, 255}),
		Hover:    euiimage.NewNineSliceColor(color.RGBA{80, 80, 100, 255}),
		Pressed:  euiimage.NewNineSliceColor(color.RGBA{40, 40, 60, 255}),
		Disabled: euiimage.NewNineSliceColor(color.RGBA{40, 40, 40, 255}),
	}
}

func (o *OptionsUI) save() {
	s := o.Settings()
	s.Options.LockCameraPosition = s.LockCameraPosition
	s.Options.LockCameraRotation = s.LockCameraRotation
	o.pendingStatusText = "Saved"
	if o.OnSave != nil {
		if err := o.OnSave(); err != nil {
			o.pendingStatusText = "Save failed"
		}
	}
}

// UpdateUI refreshes widget labels from the settings.
func (o *OptionsUI) UpdateUI() {
	if o.Settings == nil {
		return
	}
	s := o.Settings()
	setButtonLabel(o.positionButton, fmt.Sprintf("Camera position lock: %s", onOff(s.LockCameraPosition)))
	setButtonLabel(o.rotationButton, fmt.Sprintf("Camera rotation lock: %s", onOff(s.LockCameraRotation)))
	setButtonLabel(o.debugButton, fmt.Sprintf("Debug render: %s", onOff(s.DebugRender)))
	if s.Options != nil {
		setButtonLabel(o.mouseLockButton, fmt.Sprintf("Start locked to mouse: %s", onOff(s.Options.LockPositionToMouse)))
	}
	if o.statusLabel != nil {
		o.statusLabel.Label = o.pendingStatusText
	}
}

func setButtonLabel(b *widget.Button, label string) {
	if b == nil {
		return
	}
	if textWidget := b.Text(); textWidget != nil {
		textWidget.Label = label
	}
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func (o *OptionsUI) IsOpen() bool { return o.open }

func (o *OptionsUI) ToggleOptionsWindow() {
	o.open = !o.open
	o.pendingStatusText = ""
}

func (o *OptionsUI) hovered() bool {
	if !o.open || o.CursorPosition == nil {
		return false
	}
	x, y := o.CursorPosition()
	return image.Pt(x, y).In(o.rect)
}

func (o *OptionsUI) WantsKeyboardCapture() bool { return o.hovered() }

func (o *OptionsUI) WantsMouseCapture() bool { return o.hovered() }

// Update runs the widget tree while the window is open.
func (o *OptionsUI) Update() {
	if !o.open || o.UI == nil {
		return
	}
	o.UpdateUI()
	o.UI.Update()
	if o.panel != nil {
		o.rect = o.panel.GetWidget().Rect
	}
}

func (o *OptionsUI) Draw(screen *ebiten.Image) {
	if !o.open || o.UI == nil {
		return
	}
	o.UI.Draw(screen)
}
