package plotlayout

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"time"

	"gonum.org/v1/plot"

	"github.com/vdobler/plotlayout/data"
)

// Minimal pixel distance between two automatic ticks.
const (
	MinTickSpacingX = 80
	MinTickSpacingY = 40
)

// maxTicks bounds tick generation.
const maxTicks = 10000

// tickEps is the relative tolerance used when aligning ticks to the grid
// tick0 + k*dtick.
const tickEps = 1e-9

// roundBase10 is the rounding set for linear and date steps.
var roundBase10 = []float64{2, 5, 10}

// Ticks computes the tick positions and labels of one axis for its current
// range and pixel length. A Ticks is created once per update and re-entered
// with a new Length on every layout pass.
type Ticks struct {
	Axis       *Axis
	Length     float64 // pixel length of the axis
	MinSpacing float64 // minimal pixel distance of automatic ticks

	tick0 float64
	dtick DTick
}

// NewTicks binds a tick generator to ax.
func NewTicks(ax *Axis, length float64) *Ticks {
	t := &Ticks{Axis: ax, Length: length, MinSpacing: MinTickSpacingX}
	if ax.ID.Vertical() {
		t.MinSpacing = MinTickSpacingY
	}
	return t
}

func (t *Ticks) rng() Interval { return t.Axis.State.Range }

// Tick0 returns the current tick origin in range space.
func (t *Ticks) Tick0() float64 { return t.tick0 }

// DTick returns the current tick step.
func (t *Ticks) DTick() DTick { return t.dtick }

// Prepare determines tick0 and dtick. Array mode needs no preparation,
// tick mode linear with an explicit dtick uses tick0 and dtick as given;
// everything else is chosen automatically from the range and the pixel
// length.
func (t *Ticks) Prepare() error {
	ax := t.Axis
	if ax.TickMode == TickModeArray {
		return nil
	}
	if ax.TickMode == TickModeLinear && ax.DTick != nil {
		d, err := dtickFrom(ax.DTick)
		if err != nil {
			return t.attrError(err)
		}
		t.dtick = d
		t.tick0 = ax.Tick0
		if d.Kind == LogDecadeStep {
			t.tick0 = 0
		}
		return nil
	}

	nt := ax.NTicks
	if nt <= 0 {
		nt = int(math.Round(t.Length / t.MinSpacing))
		if nt < 5 {
			nt = 5
		} else if nt > 10 {
			nt = 10
		}
	}
	rough := math.Abs(t.rng().Span()) / float64(nt)
	return t.AutoTicks(rough)
}

// AutoTicks picks a nice step close to the rough step.
func (t *Ticks) AutoTicks(rough float64) error {
	if !(rough > 0) || math.IsInf(rough, 0) {
		return fmt.Errorf("%s: %w", t.Axis.ID, ErrZeroSpan)
	}
	t.tick0 = 0
	switch t.Axis.ResolvedType {
	case Log:
		span := math.Abs(t.rng().Span())
		switch {
		case span >= 1:
			t.dtick = NumericDTick(math.Max(1, math.Ceil(rough)))
		case rough > 0.3:
			t.dtick = DTick{Kind: LogDecadeStep, Step: 2}
		default:
			t.dtick = DTick{Kind: LogDecadeStep, Step: 1}
		}
	case Category, MultiCategory:
		d := roundDTick(rough, base10(rough), roundBase10)
		t.dtick = NumericDTick(math.Max(1, math.Ceil(d)))
	default:
		t.dtick = NumericDTick(roundDTick(rough, base10(rough), roundBase10))
	}
	return nil
}

func base10(x float64) float64 {
	return math.Pow(10, math.Floor(math.Log10(x)))
}

// roundDTick rounds rough up to base times a member of set.
func roundDTick(rough, base float64, set []float64) float64 {
	return base * roundUp(rough/base, set)
}

// roundUp returns the smallest member of the ascending set which is not
// smaller than v; the last member if v exceeds all of them.
func roundUp(v float64, set []float64) float64 {
	for _, s := range set {
		if s >= v*(1-tickEps) {
			return s
		}
	}
	return set[len(set)-1]
}

// TickFirst returns the first tick position inside the range: the smallest
// grid point not below the start of the range, or the largest not above it
// for reversed ranges.
func (t *Ticks) TickFirst() (float64, error) {
	r := t.rng()
	if r.IsEmpty() || math.IsInf(r.Min, 0) || math.IsInf(r.Max, 0) {
		return 0, fmt.Errorf("%s: range %v: %w", t.Axis.ID, r, ErrZeroSpan)
	}
	rev := r.Reversed()
	align := func(q float64) float64 {
		if rev {
			return math.Floor(q + tickEps)
		}
		return math.Ceil(q - tickEps)
	}

	switch t.dtick.Kind {
	case NumericStep:
		step := t.dtick.Step
		x := t.tick0 + align((r.Min-t.tick0)/step)*step
		if math.Abs(x) < step*tickEps {
			x = 0
		}
		return x, nil

	case LogLinearStep:
		step := t.dtick.Step
		v := math.Pow(10, r.Min)
		x := t.tick0 + align((v-t.tick0)/step)*step
		for x <= 0 && !rev {
			x += step
		}
		if x <= 0 {
			return math.Inf(-1), nil
		}
		return math.Log10(x), nil

	case LogDecadeStep:
		digits := logDigits[t.dtick.Step]
		decade := math.Floor(r.Min)
		if !rev {
			for d := decade; ; d++ {
				for _, digit := range digits {
					if p := d + math.Log10(digit); p >= r.Min-tickEps {
						return p, nil
					}
				}
			}
		}
		for d := decade; ; d-- {
			for i := len(digits) - 1; i >= 0; i-- {
				if p := d + math.Log10(digits[i]); p <= r.Min+tickEps {
					return p, nil
				}
			}
		}

	case MonthStep:
		return 0, t.attrError(configError("dtick", t.dtick.String(), ErrNotImplemented))
	}
	return 0, t.attrError(configError("dtick", t.dtick.String(), ErrUnknownDTick))
}

// TickIncrement returns the position one step of dtick after x, or before
// x if reversed.
func (t *Ticks) TickIncrement(x float64, dtick DTick, reversed bool) (float64, error) {
	sign := 1.0
	if reversed {
		sign = -1
	}
	switch dtick.Kind {
	case NumericStep:
		return x + sign*dtick.Step, nil

	case LogLinearStep:
		v := math.Pow(10, x) + sign*dtick.Step
		if v <= 0 {
			return math.Inf(-1), nil
		}
		return math.Log10(v), nil

	case LogDecadeStep:
		digits := logDigits[dtick.Step]
		decade := math.Floor(x + tickEps)
		digit := math.Pow(10, x-decade)
		if reversed {
			for i := len(digits) - 1; i >= 0; i-- {
				if digits[i] < digit*(1-tickEps) {
					return decade + math.Log10(digits[i]), nil
				}
			}
			return decade - 1 + math.Log10(digits[len(digits)-1]), nil
		}
		for _, d := range digits {
			if d > digit*(1+tickEps) {
				return decade + math.Log10(d), nil
			}
		}
		return decade + 1, nil

	case MonthStep:
		return 0, t.attrError(configError("dtick", dtick.String(), ErrNotImplemented))
	}
	return 0, t.attrError(configError("dtick", dtick.String(), ErrUnknownDTick))
}

// Calculate prepares the tick step and stores the tick values, positions
// and labels in the axis state. The returned slice holds the tick
// positions in range space.
func (t *Ticks) Calculate() ([]float64, error) {
	if err := t.Prepare(); err != nil {
		return nil, err
	}
	if t.Axis.TickMode == TickModeArray {
		return t.arrayTicks()
	}

	r := t.rng()
	rev := r.Reversed()
	passed := func(x float64) bool {
		if rev {
			return !(x > r.Max)
		}
		return !(x < r.Max)
	}

	first, err := t.TickFirst()
	if err != nil {
		return nil, err
	}
	sign, step := 1.0, t.dtick.Step
	if rev {
		sign = -1
	}
	k0 := math.Round((first - t.tick0) / step)

	var pos []float64
	x := first
	for i := 0; !passed(x); i++ {
		if i >= maxTicks {
			return nil, fmt.Errorf("%s: dtick %s over %v: %w", t.Axis.ID, t.dtick, r, ErrTooManyTicks)
		}
		pos = append(pos, x)
		if t.dtick.Kind == NumericStep {
			// Multiples of step from tick0 instead of accumulated sums.
			x = t.tick0 + (k0+sign*float64(i+1))*step
			if math.Abs(x) < step*tickEps {
				x = 0
			}
			continue
		}
		if x, err = t.TickIncrement(x, t.dtick, rev); err != nil {
			return nil, err
		}
	}

	vals := make([]float64, len(pos))
	text := make([]string, len(pos))
	for i, p := range pos {
		vals[i] = t.value(p)
		text[i] = t.label(p, vals[i])
	}
	t.store(pos, vals, text)
	return pos, nil
}

// arrayTicks clips the caller supplied tick values to the range.
func (t *Ticks) arrayTicks() ([]float64, error) {
	ax := t.Axis
	vals, err := ax.tickValues()
	if err != nil {
		return nil, err
	}
	r := t.rng()

	type tick struct {
		pos, val float64
		text     string
	}
	var ticks []tick
	for i, v := range vals {
		if math.IsNaN(v) {
			continue
		}
		p, err := ax.Transformation().Trans(v)
		if err != nil {
			return nil, fmt.Errorf("%s.tickvals: %w", ax.ID, err)
		}
		if !r.Contains(p) {
			continue
		}
		tk := tick{pos: p, val: v}
		if i < len(ax.TickText) {
			tk.text = ax.TickText[i]
		} else {
			tk.text = t.label(p, v)
		}
		ticks = append(ticks, tk)
	}
	sort.SliceStable(ticks, func(i, j int) bool {
		if r.Reversed() {
			return ticks[i].pos > ticks[j].pos
		}
		return ticks[i].pos < ticks[j].pos
	})

	pos := make([]float64, len(ticks))
	tv := make([]float64, len(ticks))
	text := make([]string, len(ticks))
	for i, tk := range ticks {
		pos[i], tv[i], text[i] = tk.pos, tk.val, tk.text
	}
	t.store(pos, tv, text)
	return pos, nil
}

var _ plot.Ticker = (*Ticks)(nil)

// Ticks implements plot.Ticker: it returns the ticks of the axis for the
// range [min, max] in range space at the current Length. The axis state
// is left untouched; tick errors yield no ticks, use Calculate to see
// them.
func (t *Ticks) Ticks(min, max float64) []plot.Tick {
	saved, tick0, dtick := t.Axis.State, t.tick0, t.dtick
	defer func() {
		t.Axis.State, t.tick0, t.dtick = saved, tick0, dtick
	}()
	t.Axis.State.Range = Interval{min, max}
	if _, err := t.Calculate(); err != nil {
		return nil
	}
	return t.Marks()
}

// Marks returns the ticks of the last Calculate as plot ticks with their
// positions in range space.
func (t *Ticks) Marks() []plot.Tick {
	st := t.Axis.State
	marks := make([]plot.Tick, len(st.TickPos))
	for i, p := range st.TickPos {
		marks[i] = plot.Tick{Value: p, Label: st.TickText[i]}
	}
	return marks
}

// MinorTicks returns the positions in range space of the minor ticks the
// Ticker of the axis transformation places inside the range. Positions of
// major ticks and duplicates are left out. Category axes have no minor ticks.
func (t *Ticks) MinorTicks() ([]float64, error) {
	ax := t.Axis
	tr := ax.Transformation()
	r := t.rng().Ordered()
	if !ax.Minor.Shown() || tr.Ticker == nil || ax.ResolvedType.Categorical() || r.IsEmpty() || r.Span() == 0 {
		return nil, nil
	}
	major := ax.State.TickPos
	var pos []float64
	for _, tk := range tr.Ticker.Ticks(tr.Inverse(r.Min), tr.Inverse(r.Max)) {
		if !tk.IsMinor() {
			continue
		}
		p, err := tr.Trans(tk.Value)
		if err != nil {
			return nil, fmt.Errorf("%s.minor: %w", ax.ID, err)
		}
		eps := r.Span() * tickEps
		if !r.Contains(p) || nearAny(p, major, eps) || nearAny(p, pos, eps) {
			continue
		}
		pos = append(pos, p)
	}
	sort.Float64s(pos)
	return pos, nil
}

func nearAny(x float64, xs []float64, eps float64) bool {
	for _, y := range xs {
		if math.Abs(x-y) <= eps {
			return true
		}
	}
	return false
}

func (t *Ticks) store(pos, vals []float64, text []string) {
	st := &t.Axis.State
	st.Tick0, st.DTick = t.tick0, t.dtick
	st.TickPos, st.TickVals, st.TickText = pos, vals, text
}

// value converts a tick position from range space into data space.
func (t *Ticks) value(p float64) float64 {
	if t.Axis.ResolvedType != Log {
		return p
	}
	decade := math.Floor(p + tickEps)
	if math.Abs(p-math.Round(p)) < tickEps {
		return math.Pow10(int(math.Round(p)))
	}
	digit := math.Pow(10, p-decade)
	if r := math.Round(digit); math.Abs(digit-r) < 1e-6 {
		digit = r
	}
	return digit * math.Pow10(int(decade))
}

// label formats the tick at position p with data value v.
func (t *Ticks) label(p, v float64) string {
	ax := t.Axis
	switch ax.ResolvedType {
	case Log:
		if math.Abs(p-math.Round(p)) < tickEps {
			return formatG(v)
		}
		mantissa := v / math.Pow10(int(math.Floor(p+tickEps)))
		return "<sup>" + formatG(mantissa) + "</sup>"
	case Category, MultiCategory:
		i := math.Round(p)
		if math.Abs(p-i) < tickEps && i >= 0 && int(i) < len(ax.Categories) {
			return ax.Categories[int(i)]
		}
		return ""
	case Date:
		if ax.TickFormat != "" {
			sec, frac := math.Modf(v)
			return time.Unix(int64(sec), int64(frac*1e9)).UTC().Format(ax.TickFormat)
		}
	}
	return formatG(v)
}

// formatG formats x like C's %g: six significant digits, no trailing zeros.
func formatG(x float64) string {
	if x == 0 {
		return "0"
	}
	return strconv.FormatFloat(x, 'g', 6, 64)
}

func (t *Ticks) attrError(err error) error {
	if ce, ok := err.(*ConfigurationError); ok {
		ce.Attr = t.Axis.ID.Name() + "." + ce.Attr
		return ce
	}
	return err
}

// tickValues converts the array mode tick values into data space.
func (ax *Axis) tickValues() ([]float64, error) {
	switch ax.ResolvedType {
	case Date:
		return data.Timestamps(ax.TickVals), nil
	case Category, MultiCategory:
		out := make([]float64, len(ax.TickVals))
		for i, v := range ax.TickVals {
			out[i] = math.NaN()
			if x, ok := data.ToFloat(v); ok {
				out[i] = x
				continue
			}
			name := fmt.Sprint(v)
			for j, c := range ax.Categories {
				if c == name {
					out[i] = float64(j)
					break
				}
			}
		}
		return out, nil
	}
	return data.Floats(ax.TickVals), nil
}
