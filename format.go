package glade

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Orientation selects how a plane's offsets are resolved at render time.
type Orientation uint8

const (
	OrientCamera Orientation = iota // relative to the camera viewport's top-left
	OrientScreen                    // absolute screen coordinates
	OrientWorld                     // world coordinates projected through the camera
)

// TextSizes holds per-role text sizes for a plane's draw callback.
type TextSizes struct {
	Title    float64
	Heading  float64
	Subtitle float64
	Base     float64
	Color    float64
}

// Formatting is a plane's declarative presentation state. It is mutated
// either through directive strings ("txt:title!set|24") or positional numeric
// values; see Apply.
type Formatting struct {
	Text        TextSizes
	Background  Color
	TextColor   Color
	Orientation Orientation
	OffsetX     float64
	OffsetY     float64
	Scale       float64
}

// DefaultFormatting returns the initial formatting state.
func DefaultFormatting() Formatting {
	return Formatting{
		Text:      TextSizes{Title: 24, Heading: 18, Subtitle: 14, Base: 12, Color: 12},
		TextColor: ColorWhite,
		Scale:     1,
	}
}

// Directive is one parsed formatting command:
//
//	"<category>[:<key>]!<operator>[|<value>]"
//
// Categories: txt, orientation, scale, color.
// Operators: set, add, scale, mult, default.
type Directive struct {
	Category string
	Key      string
	Op       string
	Value    string
}

// ParseDirective parses a directive string. The category and operator must be
// known; the value payload is validated at apply time.
func ParseDirective(s string) (Directive, error) {
	bang := strings.Index(s, "!")
	if bang < 0 {
		return Directive{}, fmt.Errorf("glade: directive %q missing '!'", s)
	}
	head, rest := s[:bang], s[bang+1:]

	var d Directive
	if colon := strings.Index(head, ":"); colon >= 0 {
		d.Category, d.Key = head[:colon], head[colon+1:]
	} else {
		d.Category = head
	}
	if pipe := strings.Index(rest, "|"); pipe >= 0 {
		d.Op, d.Value = rest[:pipe], rest[pipe+1:]
	} else {
		d.Op = rest
	}

	switch d.Category {
	case "txt", "orientation", "scale", "color":
	default:
		return Directive{}, fmt.Errorf("glade: unknown directive category %q", d.Category)
	}
	switch d.Op {
	case "set", "add", "scale", "mult", "default":
	default:
		return Directive{}, fmt.Errorf("glade: unknown directive operator %q", d.Op)
	}
	return d, nil
}

// Apply mutates the formatting from a mixed argument list. String arguments
// are parsed as directives (unparsable ones are logged and ignored); numeric
// arguments map by position to a fixed schema:
//
//	0–4  title/heading/subtitle/base/color text size
//	5    uniform scale
//	6    orientation mode (0 camera, 1 screen, 2 world)
//	7,8  orientation offset X, Y
func (f *Formatting) Apply(args ...any) {
	for i, arg := range args {
		switch v := arg.(type) {
		case string:
			d, err := ParseDirective(v)
			if err != nil {
				warnf("%v", err)
				continue
			}
			f.applyDirective(d)
		case float64:
			f.applyIndexed(i, v)
		case int:
			f.applyIndexed(i, float64(v))
		}
	}
}

// applyIndexed maps a positional numeric value into the fixed schema.
// Out-of-schema indices are ignored.
func (f *Formatting) applyIndexed(index int, v float64) {
	switch index {
	case 0:
		f.Text.Title = v
	case 1:
		f.Text.Heading = v
	case 2:
		f.Text.Subtitle = v
	case 3:
		f.Text.Base = v
	case 4:
		f.Text.Color = v
	case 5:
		f.Scale = v
	case 6:
		if mode := Orientation(int(v)); mode <= OrientWorld {
			f.Orientation = mode
		}
	case 7:
		f.OffsetX = v
	case 8:
		f.OffsetY = v
	}
}

// applyDirective routes one parsed directive into the state-transition
// functions. Malformed numeric payloads are silent no-ops; malformed
// orientation JSON payloads log an error and leave state unchanged.
func (f *Formatting) applyDirective(d Directive) {
	switch d.Category {
	case "txt":
		f.applyText(d)
	case "scale":
		if v, ok := parseNum(d.Value); ok {
			f.Scale = applyNumOp(f.Scale, d.Op, v)
		}
	case "orientation":
		f.applyOrientation(d)
	case "color":
		f.applyColor(d)
	}
}

func (f *Formatting) applyText(d Directive) {
	v, ok := parseNum(d.Value)
	if !ok {
		return
	}
	switch d.Key {
	case "title":
		f.Text.Title = applyNumOp(f.Text.Title, d.Op, v)
	case "heading":
		f.Text.Heading = applyNumOp(f.Text.Heading, d.Op, v)
	case "subtitle":
		f.Text.Subtitle = applyNumOp(f.Text.Subtitle, d.Op, v)
	case "color":
		f.Text.Color = applyNumOp(f.Text.Color, d.Op, v)
	case "", "base":
		f.Text.Base = applyNumOp(f.Text.Base, d.Op, v)
	}
}

func (f *Formatting) applyOrientation(d Directive) {
	switch d.Key {
	case "x":
		if v, ok := parseNum(d.Value); ok {
			f.OffsetX = applyNumOp(f.OffsetX, d.Op, v)
		}
	case "y":
		if v, ok := parseNum(d.Value); ok {
			f.OffsetY = applyNumOp(f.OffsetY, d.Op, v)
		}
	case "mode":
		if mode, ok := parseOrientMode(d.Value); ok {
			f.Orientation = mode
		}
	case "":
		// Keyless payload is a JSON array: [mode, offsetX, offsetY].
		var arr []any
		if err := json.Unmarshal([]byte(d.Value), &arr); err != nil {
			warnf("orientation payload %q: %v", d.Value, err)
			return
		}
		if len(arr) > 0 {
			switch m := arr[0].(type) {
			case string:
				if mode, ok := parseOrientMode(m); ok {
					f.Orientation = mode
				}
			case float64:
				if mode := Orientation(int(m)); mode <= OrientWorld {
					f.Orientation = mode
				}
			}
		}
		if len(arr) > 1 {
			if v, ok := arr[1].(float64); ok {
				f.OffsetX = v
			}
		}
		if len(arr) > 2 {
			if v, ok := arr[2].(float64); ok {
				f.OffsetY = v
			}
		}
	}
}

func (f *Formatting) applyColor(d Directive) {
	c, ok := parseColorValue(d.Value)
	if !ok {
		return
	}
	switch d.Key {
	case "text":
		f.TextColor = mergeColor(f.TextColor, d.Op, c)
	case "", "background":
		f.Background = mergeColor(f.Background, d.Op, c)
	}
}

func parseOrientMode(s string) (Orientation, bool) {
	switch s {
	case "camera":
		return OrientCamera, true
	case "screen":
		return OrientScreen, true
	case "world":
		return OrientWorld, true
	}
	return 0, false
}

// parseNum parses a numeric payload. Empty or unparsable payloads report
// false and the directive becomes a no-op.
func parseNum(value string) (float64, bool) {
	if value == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// applyNumOp is the pure numeric state transition.
func applyNumOp(cur float64, op string, v float64) float64 {
	switch op {
	case "set":
		return v
	case "add":
		return cur + v
	case "scale", "mult":
		return cur * v
	case "default":
		if cur == 0 {
			return v
		}
		return cur
	}
	return cur
}

// parseColorValue parses a JSON array [r, g, b] or [r, g, b, a] with
// components in [0, 1]. Alpha defaults to 1.
func parseColorValue(value string) (Color, bool) {
	var arr []float64
	if err := json.Unmarshal([]byte(value), &arr); err != nil {
		return Color{}, false
	}
	if len(arr) != 3 && len(arr) != 4 {
		return Color{}, false
	}
	c := Color{R: arr[0], G: arr[1], B: arr[2], A: 1}
	if len(arr) == 4 {
		c.A = arr[3]
	}
	return c, true
}

func mergeColor(cur Color, op string, v Color) Color {
	switch op {
	case "set":
		return v
	case "default":
		if cur == (Color{}) {
			return v
		}
		return cur
	case "add":
		return Color{cur.R + v.R, cur.G + v.G, cur.B + v.B, cur.A + v.A}
	case "scale", "mult":
		return Color{cur.R * v.R, cur.G * v.G, cur.B * v.B, cur.A * v.A}
	}
	return cur
}
