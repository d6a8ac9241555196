package earth

// Titler is anything with a settable title, such as the window.
type Titler interface {
	SetTitle(title string)
}

// LoadingSuffix is appended to the window title while the day texture
// is still loading.
const LoadingSuffix = " (loading)"

// TitleIndicator shows loading progress in the window title.
type TitleIndicator struct {
	target Titler
	base   string
	hidden bool
}

// NewTitleIndicator shows the loading title immediately.
func NewTitleIndicator(target Titler, base string) *TitleIndicator {
	target.SetTitle(base + LoadingSuffix)
	return &TitleIndicator{target: target, base: base}
}

// Hide restores the plain title. Only the first call has any effect.
func (t *TitleIndicator) Hide() {
	if t.hidden {
		return
	}
	t.hidden = true
	t.target.SetTitle(t.base)
}

// Visible reports whether the loading suffix is still shown.
func (t *TitleIndicator) Visible() bool {
	return !t.hidden
}
