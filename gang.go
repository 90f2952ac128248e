package faderkit

import (
	"fmt"
	"log/slog"
)

// GangMode specifies how ganged params follow each other
type GangMode string

const (
	// GangModeMirror gives every member the leader's value
	GangModeMirror GangMode = "mirror"

	// GangModeRelative moves every member by the leader's change, keeping
	// their offsets until they hit an end of the range
	GangModeRelative GangMode = "relative"
)

// Gang ties several params together so that moving one moves the rest
type Gang struct {
	name    string
	mode    GangMode
	members []*Param
}

// NewGang creates a gang over members; an empty mode means mirror
func NewGang(name string, mode GangMode, members ...*Param) (*Gang, error) {
	if len(members) < 1 {
		return nil, fmt.Errorf("gang '%v' must have at least 1 member", name)
	}
	switch mode {
	case "":
		mode = GangModeMirror
	case GangModeMirror, GangModeRelative:
	default:
		return nil, fmt.Errorf("gang '%v': unknown gang mode '%v'", name, mode)
	}
	return &Gang{name: name, mode: mode, members: members}, nil
}

func (g *Gang) Name() string {
	return g.name
}

func (g *Gang) Mode() GangMode {
	return g.mode
}

func (g *Gang) Members() []*Param {
	return g.members
}

// Follow propagates a change of leader (a member) from previous to its
// current value; returns true when any other member changed
func (g *Gang) Follow(leader *Param, previous Normal) bool {
	if leader.Normal.Equal(previous) {
		return false
	}
	delta := leader.Normal.Float32() - previous.Float32()
	changed := false
	for _, p := range g.members {
		if p == leader {
			continue
		}
		var next Normal
		switch g.mode {
		case GangModeRelative:
			next = NewNormal(p.Normal.Float32() + delta)
		default:
			next = leader.Normal
		}
		if p.Update(next) {
			changed = true
		}
	}
	if changed {
		slog.Debug("gang followed", "gang", g.name, "mode", g.mode, "value", leader.Normal)
	}
	return changed
}

// Reset returns every member to its default
func (g *Gang) Reset() {
	for _, p := range g.members {
		p.Reset()
	}
}
