package plotlayout

import "github.com/vdobler/plotlayout/data"

// Colorway is the default sequence of trace colors.
var Colorway = []string{
	"#636efa", "#EF553B", "#00cc96", "#ab63fa", "#FFA15A",
	"#19d3f3", "#FF6692", "#B6E880", "#FF97FF", "#FECB52",
}

func fontDefaults() data.Map {
	return data.Map{
		"color":  "#444",
		"family": `"Open Sans", verdana, arial, sans-serif`,
		"size":   12.0,
	}
}

// traceDefaults returns the defaults of the given trace type. Unknown
// types get no defaults; they are rejected when the trace is built.
func traceDefaults(typ string) data.Map {
	switch typ {
	case "scatter", "scattergl":
		return data.Map{
			"visible":     true,
			"showlegend":  true,
			"legendgroup": "",
			"opacity":     1.0,
			"xaxis":       "x",
			"yaxis":       "y",
			"marker": data.Map{
				"size":     6.0,
				"sizemode": "diameter",
				"sizeref":  1.0,
				"symbol":   "circle",
			},
			"line": data.Map{
				"dash":  "solid",
				"shape": "linear",
				"width": 2.0,
			},
		}
	case "histogram":
		return data.Map{
			"visible":    true,
			"showlegend": true,
			"xaxis":      "x",
			"yaxis":      "y",
		}
	}
	return data.Map{}
}

func axisDefaults(letter byte) data.Map {
	side := "bottom"
	if letter == 'y' {
		side = "left"
	}
	return data.Map{
		"autorange":      true,
		"color":          "#444",
		"domain":         []interface{}{0.0, 1.0},
		"gridcolor":      "#eee",
		"gridwidth":      1.0,
		"linecolor":      "#444",
		"linewidth":      1.0,
		"nticks":         0,
		"position":       0.0,
		"showgrid":       true,
		"showline":       true,
		"showticklabels": true,
		"side":           side,
		"tickformat":     "",
		"ticklen":        5.0,
		"ticks":          "",
		"type":           "-",
		"title":          data.Map{"standoff": 15.0},
	}
}

func layoutDefaults() data.Map {
	return data.Map{
		"font":          fontDefaults(),
		"paper_bgcolor": "white",
		"plot_bgcolor":  "#E5ECF6",
		"colorway":      toList(Colorway),
		"margin": data.Map{
			"autoexpand": true,
			"t":          100.0,
			"l":          80.0,
			"r":          80.0,
			"b":          80.0,
		},
		"legend": data.Map{
			"bgcolor":         "white",
			"bordercolor":     "#444",
			"borderwidth":     0.0,
			"font":            fontDefaults(),
			"groupclick":      "togglegroup",
			"itemclick":       "toggle",
			"itemdoubleclick": "toggleothers",
			"itemwidth":       30.0,
			"orientation":     "v",
			"title":           data.Map{"text": ""},
			"tracegroupgap":   10.0,
			"valign":          "middle",
			"visible":         true,
			"xanchor":         "left",
			"xref":            "paper",
			"yanchor":         "auto",
			"yref":            "paper",
		},
	}
}

func toList(s []string) []interface{} {
	out := make([]interface{}, len(s))
	for i, v := range s {
		out[i] = v
	}
	return out
}
