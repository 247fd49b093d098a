package plotlayout

import (
	"fmt"
	"log/slog"
	"math"
)

// Range padding as fraction of the span, added on each side.
const (
	autoPadding     = 0.125 / 2
	explicitPadding = 0.001
)

// ResolveRange computes the unpadded range of ax in range space from the
// shown traces drawn on it. An explicit range is used as given. Axes
// without any shown trace get EmptyRange. A degenerate range is widened by
// one unit on each side.
func ResolveRange(ax *Axis, traces []Trace) (Interval, error) {
	r := EmptyRange
	n := 0
	for _, t := range traces {
		b := t.Base()
		if !b.Shown() {
			continue
		}
		if (ax.Horizontal() && b.XAxis != ax.ID) || (!ax.Horizontal() && b.YAxis != ax.ID) {
			continue
		}
		n++
		e := t.Extent(ax.ID.Letter)
		if h, ok := t.(*Histogram); ok && ax.ID.Vertical() {
			e = h.CountRange(ax.ResolvedType == Log)
		}
		r = r.Union(e)
	}
	if n == 0 {
		return EmptyRange, nil
	}
	if ax.HasRange {
		return ax.Range, nil
	}
	if r.IsEmpty() {
		return EmptyRange, nil
	}

	if ax.ResolvedType == Log {
		if r.Min <= 0 {
			return EmptyRange, fmt.Errorf("%s: data minimum %g: %w", ax.ID, r.Min, ErrNonPositiveLog)
		}
		r = Interval{math.Log10(r.Min), math.Log10(r.Max)}
	}
	if r.Min == r.Max {
		r = Interval{r.Min - 1, r.Max + 1}
	}
	return r, nil
}

// ApplyMatching unifies the ranges of axes linked by their matches
// attribute. Every axis of a group gets the union of the members' ranges
// and the orientation of the group's root, the axis the others match.
// The group range counts as explicit only if all members with a range
// had an explicit one.
func ApplyMatching(axes []*Axis) error {
	index := make(map[AxisID]int, len(axes))
	for i, ax := range axes {
		index[ax.ID] = i
	}
	parent := make([]int, len(axes))
	for i := range parent {
		parent[i] = i
	}
	var find func(int) int
	find = func(i int) int {
		if parent[i] != i {
			parent[i] = find(parent[i])
		}
		return parent[i]
	}

	for i, ax := range axes {
		if ax.Matches == "" {
			continue
		}
		id, err := ParseAxisID(ax.Matches)
		if err != nil {
			return configError(ax.ID.Name()+".matches", ax.Matches, err)
		}
		j, ok := index[id]
		if !ok {
			return configError(ax.ID.Name()+".matches", ax.Matches, ErrUnknownReference)
		}
		if ri, rj := find(i), find(j); ri != rj {
			parent[ri] = rj
		}
	}

	groups := make(map[int][]*Axis)
	for i, ax := range axes {
		root := find(i)
		groups[root] = append(groups[root], ax)
	}
	for root, members := range groups {
		if len(members) < 2 {
			continue
		}
		r := EmptyRange
		explicit, seen := true, false
		for _, m := range members {
			if m.State.Range.IsEmpty() {
				continue
			}
			r = r.Union(m.State.Range)
			explicit = explicit && m.State.Explicit
			seen = true
		}
		if !seen {
			continue
		}
		rev := axes[root].State.Reversed
		for _, m := range members {
			if m.State.Range.IsEmpty() {
				continue
			}
			m.State.Range = r
			m.State.Explicit = explicit
			m.State.Reversed = rev
		}
	}
	return nil
}

// PadRange widens r on both sides by a fraction of its span: 1/16 for
// automatic ranges and 1/1000 for explicit ones. The direction of r is
// kept.
func PadRange(r Interval, explicit bool) Interval {
	f := autoPadding
	if explicit {
		f = explicitPadding
	}
	add := r.Span() * f
	return Interval{r.Min - add, r.Max + add}
}

// ResolveRanges runs the range pipeline on all axes: autorange, matching,
// padding and orientation. Afterwards every axis with traces has a tick
// generator computed for a zero pixel length.
func (f *Figure) ResolveRanges(cfg RenderConfig) error {
	log := cfg.logger()
	l := f.Layout
	for _, ax := range l.Axes {
		r, err := ResolveRange(ax, f.Traces)
		if err != nil {
			return err
		}
		ax.State = AxisState{
			Explicit: ax.HasRange,
			Reversed: ax.AutorangeReversed,
		}
		if ax.HasRange {
			ax.State.Reversed = ax.Range.Reversed()
		}
		ax.State.Range = r.Ordered()
	}
	if err := ApplyMatching(l.Axes); err != nil {
		return err
	}

	for _, ax := range l.Axes {
		if ax.Empty() {
			continue
		}
		r := PadRange(ax.State.Range, ax.State.Explicit)
		if ax.State.Reversed {
			r = r.Flip()
		}
		ax.State.Range = r
	}
	if err := l.resolvePositions(f); err != nil {
		return err
	}

	for _, ax := range l.Axes {
		if ax.Empty() {
			delete(l.ticks, ax.ID)
			continue
		}
		t := NewTicks(ax, 0)
		if ax.Horizontal() {
			t.MinSpacing = cfg.MinTickSpacingX
		} else {
			t.MinSpacing = cfg.MinTickSpacingY
		}
		l.ticks[ax.ID] = t
		if _, err := t.Calculate(); err != nil {
			return err
		}
	}
	if cfg.Debug {
		debugAxes(log, "ranges resolved", l.Axes)
	}
	return nil
}

// resolvePositions determines where the axis lines sit: anchored axes at
// the edge of their anchor's domain, free axes at their position. The grid
// of an axis spans the last perpendicular axis it shares a subplot with.
func (l *Layout) resolvePositions(f *Figure) error {
	for _, ax := range l.Axes {
		st := &ax.State
		st.Position = ax.Position
		st.Shift = ax.Shift
		if !ax.Free() {
			anchor, err := l.AxisRef(ax.Anchor)
			if err != nil {
				return configError(ax.ID.Name()+".anchor", ax.Anchor, err)
			}
			if anchor.ID.Letter == ax.ID.Letter {
				return configError(ax.ID.Name()+".anchor", ax.Anchor, ErrUnknownReference)
			}
			st.hasAnchor = true
			st.Position = anchor.Domain.Min
			if ax.Side == "right" || ax.Side == "top" {
				st.Position = anchor.Domain.Max
			}
		}
		for _, sp := range f.Subplots() {
			switch ax.ID {
			case sp.X.ID:
				st.GridWith = sp.Y.ID
			case sp.Y.ID:
				st.GridWith = sp.X.ID
			}
		}
		if st.GridWith == (AxisID{}) && st.hasAnchor {
			st.GridWith, _ = ParseAxisID(ax.Anchor)
		}
	}
	return nil
}

func debugAxes(log *slog.Logger, msg string, axes []*Axis) {
	for _, ax := range axes {
		log.Debug(msg,
			"axis", ax.ID.Name(),
			"type", ax.ResolvedType.String(),
			"range", ax.State.Range.String(),
			"explicit", ax.State.Explicit,
			"dtick", ax.State.DTick.String(),
			"ticks", len(ax.State.TickPos),
		)
	}
}
