package faderkit

// ModulationRange is the visible span of an automation arc or strip drawn
// alongside a widget
type ModulationRange struct {
	Start Normal
	End   Normal

	// FilledVisible hides the filled portion while keeping the empty portion
	FilledVisible bool

	// Visible hides the whole indicator
	Visible bool
}

// NewModulationRange creates a visible ModulationRange from start to end
func NewModulationRange(start, end Normal) ModulationRange {
	return ModulationRange{
		Start:         start,
		End:           end,
		FilledVisible: true,
		Visible:       true,
	}
}

// Span returns the ordered endpoints; inverse is true when End < Start, which
// renderers draw with the inverse colour
func (m ModulationRange) Span() (lo, hi Normal, inverse bool) {
	if m.End.Less(m.Start) {
		return m.End, m.Start, true
	}
	return m.Start, m.End, false
}

// IsEmpty reports whether the span has no length
func (m ModulationRange) IsEmpty() bool {
	return m.Start.Equal(m.End)
}
