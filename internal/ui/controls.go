package ui

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"wildfire/internal/core"
)

// stepFloat returns the value one step away from current in direction. It
// reports false when the bounds leave no room to move. Compass controls wrap.
func stepFloat(ctrl core.ParameterControl, current float64, direction int) (float64, bool) {
	if direction == 0 {
		return current, false
	}
	step := ctrl.Step
	if step <= 0 {
		step = 0.05
	}
	target := current + float64(direction)*step
	if ctrl.Wrap && ctrl.HasMin && ctrl.HasMax {
		span := ctrl.Max - ctrl.Min + step
		if target > ctrl.Max+1e-9 {
			target -= span
		}
		if target < ctrl.Min-1e-9 {
			target += span
		}
		return target, math.Abs(target-current) >= 1e-9
	}
	if ctrl.HasMin && target < ctrl.Min {
		target = ctrl.Min
	}
	if ctrl.HasMax && target > ctrl.Max {
		target = ctrl.Max
	}
	return target, math.Abs(target-current) >= 1e-9
}

// readControl pulls the current value of a control out of the snapshot.
func readControl(s core.ParameterSnapshot, ctrl core.ParameterControl) (float64, bool) {
	p, ok := s.Lookup(ctrl.Key)
	if !ok {
		return 0, false
	}
	v, err := strconv.ParseFloat(p.Value, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

var compassPoints = [...]string{"N", "NNE", "NE", "ENE", "E", "ESE", "SE", "SSE", "S", "SSW", "SW", "WSW", "W", "WNW", "NW", "NNW"}

// compassPoint names the 16-point bearing nearest to deg.
func compassPoint(deg float64) string {
	deg = math.Mod(math.Mod(deg, 360)+360, 360)
	return compassPoints[int(math.Round(deg/22.5))%len(compassPoints)]
}

// controlText renders a control value with the unit the fire model uses.
func controlText(ctrl core.ParameterControl, value float64) string {
	switch ctrl.Key {
	case "wind_speed":
		return formatFloat(ctrl, value) + " mph"
	case "wind_direction":
		return fmt.Sprintf("%s %s", formatFloat(ctrl, value), compassPoint(value))
	case "minutes_per_tick":
		return formatFloat(ctrl, value) + " min"
	default:
		return formatFloat(ctrl, value)
	}
}

func formatFloat(ctrl core.ParameterControl, value float64) string {
	step := ctrl.Step
	if step <= 0 {
		step = 0.05
	}
	var precision int
	switch {
	case step < 0.001:
		precision = 4
	case step < 0.01:
		precision = 3
	case step < 0.1:
		precision = 2
	case step < 1:
		precision = 1
	default:
		precision = 0
	}
	return strconv.FormatFloat(value, 'f', precision, 64)
}

// clockText renders elapsed simulated minutes as a day and wall clock.
func clockText(minutes float64) string {
	if minutes < 0 {
		minutes = 0
	}
	total := int(minutes)
	day := total / core.MinutesPerDay
	rem := total % core.MinutesPerDay
	return fmt.Sprintf("day %d %02d:%02d", day, rem/60, rem%60)
}

// statusLine is one label/value row of the fire status block.
type statusLine struct {
	label string
	value string
	alert bool
}

// fireStatus summarises the clock and fire groups of the snapshot. Alerts
// mark the rows a player should notice: the fire going out or burning low.
func fireStatus(s core.ParameterSnapshot) []statusLine {
	var lines []statusLine
	if p, ok := s.Lookup("time"); ok {
		if v, err := strconv.ParseFloat(p.Value, 64); err == nil {
			lines = append(lines, statusLine{label: "Clock", value: clockText(v)})
		}
	}
	for _, g := range s.Groups {
		if g.Name != "Fire" {
			continue
		}
		for _, p := range g.Params {
			line := statusLine{label: p.Label, value: formatStat(p)}
			if p.Type == core.ParamTypeBool && p.Value == "true" {
				line.alert = true
			}
			lines = append(lines, line)
		}
	}
	return lines
}

// zoneBar is one row of the burned-per-zone chart. Frac is relative to the
// zone that has burned the most.
type zoneBar struct {
	label string
	count int
	frac  float64
}

func burnedBars(s core.ParameterSnapshot) []zoneBar {
	var bars []zoneBar
	most := 0
	for _, g := range s.Groups {
		if g.Name != "Burned" {
			continue
		}
		for _, p := range g.Params {
			if !strings.HasPrefix(p.Key, "burned_zone_") {
				continue
			}
			n, err := strconv.Atoi(p.Value)
			if err != nil {
				continue
			}
			bars = append(bars, zoneBar{label: p.Label, count: n})
			most = max(most, n)
		}
	}
	if most > 0 {
		for i := range bars {
			bars[i].frac = float64(bars[i].count) / float64(most)
		}
	}
	return bars
}

// formatStat renders a read-only parameter.
func formatStat(p core.Parameter) string {
	switch p.Type {
	case core.ParamTypeFloat:
		v, err := strconv.ParseFloat(p.Value, 64)
		if err != nil {
			return p.Value
		}
		if v == math.Trunc(v) && math.Abs(v) < 1e9 {
			return strconv.FormatFloat(v, 'f', 0, 64)
		}
		return strconv.FormatFloat(v, 'f', 1, 64)
	case core.ParamTypeBool:
		if p.Value == "true" {
			return "yes"
		}
		return "no"
	default:
		return p.Value
	}
}
