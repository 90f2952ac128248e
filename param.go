package faderkit

// Param is the state of one user controlled value: the current position and
// the position it returns to on reset (double-click)
//
// The default is fixed when the Param is created by a Range
type Param struct {
	Normal  Normal
	Default Normal
}

// NewParam creates a Param at value with the given default
func NewParam(value, defaultValue Normal) Param {
	return Param{Normal: value, Default: defaultValue}
}

// Update assigns the value half of the Param; returns true when it changed
func (p *Param) Update(normal Normal) bool {
	if p.Normal.Equal(normal) {
		return false
	}
	p.Normal = normal
	return true
}

// Reset moves the value back to the default
func (p *Param) Reset() {
	p.Normal = p.Default
}

// IsDefault reports whether the value sits exactly on the default
func (p Param) IsDefault() bool {
	return p.Normal.Equal(p.Default)
}
