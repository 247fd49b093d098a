package plotlayout

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/vdobler/plotlayout/data"
)

// ----------------------------------------------------------------------------
// AxisID

// AxisID identifies an axis by its letter ('x' or 'y') and its index.
// The first axis of each letter has index 1.
type AxisID struct {
	Letter byte
	Index  int
}

// ParseAxisID accepts both the layout key form ("xaxis", "yaxis3") and the
// trace reference form ("x", "y3").
func ParseAxisID(s string) (AxisID, error) {
	if len(s) == 0 || (s[0] != 'x' && s[0] != 'y') {
		return AxisID{}, fmt.Errorf("%w: axis %q", ErrUnknownReference, s)
	}
	id := AxisID{Letter: s[0], Index: 1}
	rest := strings.TrimPrefix(s[1:], "axis")
	if rest == "" {
		return id, nil
	}
	n, err := strconv.Atoi(rest)
	if err != nil || n < 1 {
		return AxisID{}, fmt.Errorf("%w: axis %q", ErrUnknownReference, s)
	}
	id.Index = n
	return id, nil
}

func mustAxisID(s string) AxisID {
	id, err := ParseAxisID(s)
	if err != nil {
		panic(err)
	}
	return id
}

// Name is the layout key of the axis, e.g. "xaxis2".
func (id AxisID) Name() string {
	if id.Index <= 1 {
		return string(id.Letter) + "axis"
	}
	return string(id.Letter) + "axis" + strconv.Itoa(id.Index)
}

// Ref is the trace reference of the axis, e.g. "x2".
func (id AxisID) Ref() string {
	if id.Index <= 1 {
		return string(id.Letter)
	}
	return string(id.Letter) + strconv.Itoa(id.Index)
}

// Vertical reports whether the axis is a y axis.
func (id AxisID) Vertical() bool { return id.Letter == 'y' }

func (id AxisID) String() string { return id.Name() }

func (id AxisID) less(o AxisID) bool {
	if id.Letter != o.Letter {
		return id.Letter < o.Letter
	}
	return id.Index < o.Index
}

// ----------------------------------------------------------------------------
// AxisType

// AxisType selects one of the handful known axis types.
type AxisType int

const (
	AutoType AxisType = iota
	Linear
	Log
	Date
	Category
	MultiCategory
)

var axisTypeNames = []string{"-", "linear", "log", "date", "category", "multicategory"}

// String returns the schema name of at.
func (at AxisType) String() string {
	if int(at) < len(axisTypeNames) {
		return axisTypeNames[at]
	}
	return "AxisType(" + strconv.Itoa(int(at)) + ")"
}

// ParseAxisType converts a schema name into an AxisType.
func ParseAxisType(s string) (AxisType, error) {
	for i, n := range axisTypeNames {
		if n == s {
			return AxisType(i), nil
		}
	}
	return AutoType, fmt.Errorf("unknown axis type %q", s)
}

// Categorical reports whether values on at are category indices.
func (at AxisType) Categorical() bool { return at == Category || at == MultiCategory }

// Tick modes.
const (
	TickModeAuto   = "auto"
	TickModeLinear = "linear"
	TickModeArray  = "array"
)

// ----------------------------------------------------------------------------
// Axis

// AxisTitle is the title drawn next to an axis.
type AxisTitle struct {
	Text     string
	Standoff float64
	FontSize float64
}

// Axis is the configuration of one coordinate dimension together with the
// state derived from the traces drawn on it.
type Axis struct {
	ID AxisID

	// Type is the declared type; AutoType means infer from data.
	Type AxisType

	// ResolvedType is the type actually used.
	ResolvedType AxisType

	// Range is the explicit range if HasRange. For log axes the edges are
	// powers of ten, i.e. [0,2] spans 1 to 100.
	Range    Interval
	HasRange bool

	Autorange         bool
	AutorangeReversed bool

	Domain    Interval
	Anchor    string // "free" or a perpendicular axis reference
	Matches   string // axis reference whose range this axis mirrors
	Position  float64
	Side      string
	Shift     float64
	Autoshift bool

	TickMode   string
	NTicks     int
	Tick0      float64
	DTick      interface{} // number or tagged string, nil if unset
	TickVals   []interface{}
	TickText   []string
	TickFormat string
	Ticks      string // "", "outside" or "inside"
	TickLen    float64

	ShowTickLabels bool
	ShowGrid       bool
	ShowLine       bool
	GridColor      string
	LineColor      string
	TickFontSize   float64
	Title          AxisTitle
	Minor          MinorTicks

	CategoryOrder string
	Categories    []string

	// State is recomputed on every update and layout pass.
	State AxisState
}

// MinorTicks are the unlabelled ticks between the major ticks.
type MinorTicks struct {
	Ticks    string // "", "outside" or "inside"
	TickLen  float64
	ShowGrid bool
}

// Shown reports whether minor ticks or minor grid lines are drawn.
func (m MinorTicks) Shown() bool { return m.Ticks != "" || m.ShowGrid }

// AxisState holds the values derived for an axis: the padded range,
// placement and the current tick set.
type AxisState struct {
	Range    Interval // padded range in range space (log10 for log axes)
	Reversed bool
	Explicit bool

	Position float64 // paper fraction of the axis line
	Shift    float64 // pixel offset of stacked free axes

	Tick0     float64
	DTick     DTick
	TickVals  []float64 // data space
	TickPos   []float64 // range space
	TickText  []string
	GridWith  AxisID // perpendicular axis spanning the grid lines
	hasAnchor bool
}

// Empty reports whether no trace contributes to ax.
func (ax *Axis) Empty() bool { return ax.State.Range.IsEmpty() }

// Horizontal reports whether ax is an x axis.
func (ax *Axis) Horizontal() bool { return !ax.ID.Vertical() }

// Free reports whether ax is positioned freely instead of anchored.
func (ax *Axis) Free() bool { return ax.Anchor == "" || ax.Anchor == "free" }

// Transformation returns the mapping from data values to range space.
func (ax *Axis) Transformation() Transformation {
	if ax.ResolvedType == Log {
		return Log10Trans
	}
	return IdentityTrans
}

func (ax *Axis) String() string {
	if ax == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s %s Range=%v DTick=%v Ticks=%d", ax.ID, ax.ResolvedType,
		ax.State.Range, ax.State.DTick, len(ax.State.TickVals))
}

// newAxis builds an axis from its merged specification.
func newAxis(id AxisID, m data.Map) (*Axis, error) {
	ax := &Axis{
		ID:             id,
		Autorange:      true,
		Domain:         Interval{0, 1},
		Side:           "bottom",
		TickMode:       TickModeAuto,
		ShowTickLabels: data.Bool(m, "showticklabels", true),
		ShowGrid:       data.Bool(m, "showgrid", true),
		ShowLine:       data.Bool(m, "showline", true),
		GridColor:      data.String(m, "gridcolor", "#eee"),
		LineColor:      data.String(m, "linecolor", "#444"),
		Position:       data.Float(m, "position", 0),
		Anchor:         data.String(m, "anchor", ""),
		Matches:        data.String(m, "matches", ""),
		Shift:          data.Float(m, "shift", 0),
		Autoshift:      data.Bool(m, "autoshift", false),
		NTicks:         data.Int(m, "nticks", 0),
		Tick0:          data.Float(m, "tick0", 0),
		DTick:          m["dtick"],
		TickFormat:     data.String(m, "tickformat", ""),
		Ticks:          data.String(m, "ticks", ""),
		TickLen:        data.Float(m, "ticklen", 5),
		CategoryOrder:  data.String(m, "categoryorder", data.OrderTrace),
	}
	if id.Vertical() {
		ax.Side = "left"
	}
	ax.Side = data.String(m, "side", ax.Side)

	attr := func(a string) string { return id.Name() + "." + a }

	typ := data.String(m, "type", "-")
	t, err := ParseAxisType(typ)
	if err != nil {
		return nil, configError(attr("type"), typ, err)
	}
	ax.Type = t
	if rt, ok := m["_type"].(string); ok {
		if t, err := ParseAxisType(rt); err == nil && t != AutoType {
			ax.ResolvedType = t
		}
	}

	switch a := m["autorange"].(type) {
	case bool:
		ax.Autorange = a
	case string:
		switch a {
		case "reversed":
			ax.AutorangeReversed = true
		case "true":
		default:
			return nil, configError(attr("autorange"), a, ErrUnknownAction)
		}
	}

	if r, ok := data.List(m, "range"); ok && len(r) == 2 {
		lo, ok1 := rangeEdge(r[0])
		hi, ok2 := rangeEdge(r[1])
		if ok1 && ok2 {
			ax.Range, ax.HasRange = Interval{lo, hi}, true
			ax.Autorange = false
		}
	}

	if d, ok := data.List(m, "domain"); ok && len(d) == 2 {
		lo, ok1 := data.ToFloat(d[0])
		hi, ok2 := data.ToFloat(d[1])
		if !ok1 || !ok2 || lo < 0 || hi > 1 || lo >= hi {
			return nil, configError(attr("domain"), d, fmt.Errorf("domain must lie in [0,1]"))
		}
		ax.Domain = Interval{lo, hi}
	}

	mode := data.String(m, "tickmode", "")
	switch mode {
	case "":
		if data.Has(m, "tickvals") {
			mode = TickModeArray
		} else if ax.DTick != nil {
			mode = TickModeLinear
		} else {
			mode = TickModeAuto
		}
	case TickModeAuto, TickModeLinear, TickModeArray:
	default:
		return nil, configError(attr("tickmode"), mode, ErrUnknownAction)
	}
	ax.TickMode = mode
	if tv, ok := data.List(m, "tickvals"); ok {
		ax.TickVals = tv
	}
	if tt, ok := data.List(m, "ticktext"); ok {
		for _, t := range tt {
			ax.TickText = append(ax.TickText, fmt.Sprint(t))
		}
	}

	if cats, ok := data.List(m, "categoryarray"); ok {
		for _, c := range cats {
			ax.Categories = append(ax.Categories, fmt.Sprint(c))
		}
	}

	ax.TickFontSize = data.Float(data.Sub(m, "tickfont"), "size", 0)
	if minor := data.Sub(m, "minor"); minor != nil {
		ax.Minor = MinorTicks{
			Ticks:    data.String(minor, "ticks", ""),
			TickLen:  data.Float(minor, "ticklen", 0.6*ax.TickLen),
			ShowGrid: data.Bool(minor, "showgrid", false),
		}
	}
	if title := data.Sub(m, "title"); title != nil {
		ax.Title = AxisTitle{
			Text:     data.String(title, "text", ""),
			Standoff: data.Float(title, "standoff", 15),
			FontSize: data.Float(data.Sub(title, "font"), "size", 0),
		}
	} else if s, ok := m["title"].(string); ok {
		ax.Title = AxisTitle{Text: s, Standoff: 15}
	}

	if !ax.Free() {
		if _, err := ParseAxisID(ax.Anchor); err != nil {
			return nil, configError(attr("anchor"), ax.Anchor, err)
		}
	}
	if ax.Matches != "" {
		if _, err := ParseAxisID(ax.Matches); err != nil {
			return nil, configError(attr("matches"), ax.Matches, err)
		}
	}

	return ax, nil
}

// rangeEdge accepts numbers and date strings as explicit range edges.
func rangeEdge(v interface{}) (float64, bool) {
	if x, ok := data.ToFloat(v); ok {
		return x, true
	}
	if t, ok := data.ParseDate(v); ok {
		return data.Timestamp(t), true
	}
	return math.NaN(), false
}
