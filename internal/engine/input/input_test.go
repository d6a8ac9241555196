package input

import (
	"testing"

	"github.com/veandco/go-sdl2/sdl"
)

func TestTranslate(t *testing.T) {
	tests := []struct {
		name   string
		in     sdl.Event
		want   Event
		wantOK bool
	}{
		{
			name:   "quit",
			in:     &sdl.QuitEvent{Type: sdl.QUIT},
			want:   Event{Type: EventQuit},
			wantOK: true,
		},
		{
			name:   "resize",
			in:     &sdl.WindowEvent{Type: sdl.WINDOWEVENT, Event: sdl.WINDOWEVENT_SIZE_CHANGED, Data1: 800, Data2: 600},
			want:   Event{Type: EventWindowResize, Width: 800, Height: 600},
			wantOK: true,
		},
		{
			name:   "window moved is ignored",
			in:     &sdl.WindowEvent{Type: sdl.WINDOWEVENT, Event: sdl.WINDOWEVENT_MOVED},
			wantOK: false,
		},
		{
			name:   "key down",
			in:     &sdl.KeyboardEvent{Type: sdl.KEYDOWN, Keysym: sdl.Keysym{Scancode: sdl.SCANCODE_ESCAPE}},
			want:   Event{Type: EventKeyDown, Key: sdl.SCANCODE_ESCAPE},
			wantOK: true,
		},
		{
			name:   "key repeat is ignored",
			in:     &sdl.KeyboardEvent{Type: sdl.KEYDOWN, Repeat: 1, Keysym: sdl.Keysym{Scancode: sdl.SCANCODE_F12}},
			wantOK: false,
		},
		{
			name:   "mouse motion",
			in:     &sdl.MouseMotionEvent{Type: sdl.MOUSEMOTION, X: 10, Y: 20, XRel: -3, YRel: 4},
			want:   Event{Type: EventMouseMove, MouseX: 10, MouseY: 20, DeltaX: -3, DeltaY: 4},
			wantOK: true,
		},
		{
			name:   "left button down",
			in:     &sdl.MouseButtonEvent{Type: sdl.MOUSEBUTTONDOWN, Button: sdl.BUTTON_LEFT, X: 1, Y: 2},
			want:   Event{Type: EventMouseDown, Button: ButtonLeft, MouseX: 1, MouseY: 2},
			wantOK: true,
		},
		{
			name:   "wheel",
			in:     &sdl.MouseWheelEvent{Type: sdl.MOUSEWHEEL, Y: 2},
			want:   Event{Type: EventMouseWheel, Wheel: 2},
			wantOK: true,
		},
		{
			name:   "flipped wheel",
			in:     &sdl.MouseWheelEvent{Type: sdl.MOUSEWHEEL, Y: 2, Direction: sdl.MOUSEWHEEL_FLIPPED},
			want:   Event{Type: EventMouseWheel, Wheel: -2},
			wantOK: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Translate(tt.in)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("Translate = %+v, want %+v", got, tt.want)
			}
		})
	}
}
