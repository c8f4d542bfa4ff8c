package glade

import "testing"

func TestParseDirective(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    Directive
		wantErr bool
	}{
		{"full form", "txt:title!set|24", Directive{"txt", "title", "set", "24"}, false},
		{"no key", "scale!mult|2", Directive{"scale", "", "mult", "2"}, false},
		{"no value", "color:text!default", Directive{"color", "text", "default", ""}, false},
		{"empty value", "txt!set|", Directive{"txt", "", "set", ""}, false},
		{"missing bang", "txt:title|24", Directive{}, true},
		{"unknown category", "font:title!set|24", Directive{}, true},
		{"unknown operator", "txt:title!become|24", Directive{}, true},
		{"empty string", "", Directive{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDirective(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseDirective(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseDirective(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestApplyTextDirectives(t *testing.T) {
	f := DefaultFormatting()
	f.Apply(
		"txt:title!set|30",
		"txt:heading!add|2",
		"txt:subtitle!scale|2",
		"txt!set|10", // keyless targets base
	)
	if f.Text.Title != 30 {
		t.Errorf("title = %v, want 30", f.Text.Title)
	}
	if f.Text.Heading != 20 {
		t.Errorf("heading = %v, want 18+2", f.Text.Heading)
	}
	if f.Text.Subtitle != 28 {
		t.Errorf("subtitle = %v, want 14*2", f.Text.Subtitle)
	}
	if f.Text.Base != 10 {
		t.Errorf("base = %v, want 10", f.Text.Base)
	}
}

func TestApplyDefaultOp(t *testing.T) {
	var f Formatting // zero state, not DefaultFormatting
	f.Apply("scale!default|1.5")
	if f.Scale != 1.5 {
		t.Errorf("scale = %v, want default to fill the zero value", f.Scale)
	}
	f.Apply("scale!default|3")
	if f.Scale != 1.5 {
		t.Errorf("scale = %v, want default to keep a non-zero value", f.Scale)
	}
}

func TestApplyMalformedNumericIsNoop(t *testing.T) {
	f := DefaultFormatting()
	before := f
	f.Apply("txt:title!set|banana", "scale!mult|", "orientation:x!add|abc")
	if f != before {
		t.Errorf("state changed on malformed numeric payloads: %+v", f)
	}
}

func TestApplyUnknownDirectiveIgnored(t *testing.T) {
	f := DefaultFormatting()
	before := f
	f.Apply("nonsense", "txt:title!become|24")
	if f != before {
		t.Errorf("state changed on unparsable directives: %+v", f)
	}
}

func TestApplyOrientation(t *testing.T) {
	f := DefaultFormatting()
	f.Apply("orientation:mode!set|screen", "orientation:x!set|4", "orientation:y!set|8")
	if f.Orientation != OrientScreen || f.OffsetX != 4 || f.OffsetY != 8 {
		t.Errorf("orientation = (%v, %v, %v)", f.Orientation, f.OffsetX, f.OffsetY)
	}

	// Keyless JSON payload sets all three at once.
	f.Apply(`orientation!set|["world", 10, 20]`)
	if f.Orientation != OrientWorld || f.OffsetX != 10 || f.OffsetY != 20 {
		t.Errorf("orientation = (%v, %v, %v), want world at (10, 20)", f.Orientation, f.OffsetX, f.OffsetY)
	}
	f.Apply(`orientation!set|[0]`)
	if f.Orientation != OrientCamera || f.OffsetX != 10 || f.OffsetY != 20 {
		t.Errorf("short payload should leave offsets alone, got (%v, %v, %v)", f.Orientation, f.OffsetX, f.OffsetY)
	}
}

func TestApplyOrientationMalformedJSON(t *testing.T) {
	f := DefaultFormatting()
	f.Apply(`orientation!set|["world", 10, 20]`)
	before := f
	f.Apply(`orientation!set|{broken`)
	if f != before {
		t.Errorf("malformed orientation payload must leave state unchanged: %+v", f)
	}
}

func TestApplyColor(t *testing.T) {
	f := DefaultFormatting()
	f.Apply(`color:text!set|[1, 0, 0]`)
	if f.TextColor != (Color{1, 0, 0, 1}) {
		t.Errorf("text color = %+v, want opaque red", f.TextColor)
	}
	f.Apply(`color!set|[0, 0, 1, 0.5]`)
	if f.Background != (Color{0, 0, 1, 0.5}) {
		t.Errorf("background = %+v, want half-transparent blue", f.Background)
	}
	f.Apply(`color:text!scale|[0.5, 0.5, 0.5, 1]`)
	if f.TextColor != (Color{0.5, 0, 0, 1}) {
		t.Errorf("text color = %+v after scale", f.TextColor)
	}

	// Wrong arity and broken JSON are silent no-ops.
	before := f
	f.Apply(`color:text!set|[1, 0]`, `color!set|oops`)
	if f != before {
		t.Errorf("state changed on malformed color payloads: %+v", f)
	}
}

func TestApplyPositionalSchema(t *testing.T) {
	var f Formatting
	f.Apply(30.0, 20.0, 16.0, 12.0, 10.0, 2.0, 1, 40.0, 50.0)
	want := Formatting{
		Text:        TextSizes{Title: 30, Heading: 20, Subtitle: 16, Base: 12, Color: 10},
		Scale:       2,
		Orientation: OrientScreen,
		OffsetX:     40,
		OffsetY:     50,
		TextColor:   Color{},
	}
	if f != want {
		t.Errorf("formatting = %+v, want %+v", f, want)
	}
}

func TestApplyPositionalOutOfSchema(t *testing.T) {
	var f Formatting
	f.Apply(1.0, 2.0, 3.0, 4.0, 5.0, 6.0, 7.0, 8.0, 9.0, 99.0)
	if f.OffsetY != 9 {
		t.Errorf("offsetY = %v, want 9", f.OffsetY)
	}
	// Index 9 has no slot and index 6 value 7 is not a valid mode.
	if f.Orientation != OrientCamera {
		t.Errorf("orientation = %v, want out-of-range mode ignored", f.Orientation)
	}
}

func TestApplyMixedArgs(t *testing.T) {
	f := DefaultFormatting()
	f.Apply("txt:title!set|40", 0.0, "scale!set|2")
	// Positional index counts all args; index 1 is the float.
	if f.Text.Title != 40 || f.Text.Heading != 0 || f.Scale != 2 {
		t.Errorf("formatting = %+v", f)
	}
}
