package ui

import (
	"image"
	"testing"
)

func TestCaptureOnlyWhileOpenAndHovered(t *testing.T) {
	cx, cy := 10, 10
	o := &OptionsUI{
		CursorPosition: func() (int, int) { return cx, cy },
		rect:           image.Rect(0, 0, 100, 50),
	}

	if o.WantsKeyboardCapture() || o.WantsMouseCapture() {
		t.Error("Expected no capture while closed")
	}

	o.ToggleOptionsWindow()
	if !o.IsOpen() {
		t.Fatal("Expected window open after toggle")
	}
	if !o.WantsKeyboardCapture() || !o.WantsMouseCapture() {
		t.Error("Expected capture with the cursor over the window")
	}

	cx = 200
	if o.WantsMouseCapture() {
		t.Error("Expected no capture with the cursor outside the window")
	}

	o.ToggleOptionsWindow()
	cx = 10
	if o.WantsKeyboardCapture() {
		t.Error("Expected no capture after closing")
	}
}

func TestOnOff(t *testing.T) {
	if onOff(true) != "on" || onOff(false) != "off" {
		t.Errorf("Expected on/off, got %s/%s", onOff(true), onOff(false))
	}
}
