package stipple

import "testing"

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in      string
		want    hexColor
		wantErr bool
	}{
		{"#ff0080", hexColor{255, 0, 128}, false},
		{"ff0080", hexColor{255, 0, 128}, false},
		{"#AbCdEf", hexColor{0xab, 0xcd, 0xef}, false},
		{"#000000", hexColor{0, 0, 0}, false},
		// Shorthand and alpha forms are not colors here.
		{"#fff", hexColor{}, true},
		{"#ff0080aa", hexColor{}, true},
		{"", hexColor{}, true},
		{"#gg0000", hexColor{}, true},
		{"not a color", hexColor{}, true},
	}
	for _, tt := range tests {
		got, err := parseHexColor(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseHexColor(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("parseHexColor(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestHexColorString(t *testing.T) {
	c := hexColor{5, 0xab, 255}
	if got := c.String(); got != "#05abff" {
		t.Errorf("String() = %q, want %q", got, "#05abff")
	}
}

func TestBlendChannelCeiling(t *testing.T) {
	// 0 -> 255 at 0.5 is 127.5; ceiling gives 128, not 127.
	if got := blendChannel(0, 255, 0.5); got != 128 {
		t.Errorf("blendChannel(0,255,0.5) = %d, want 128", got)
	}
	// Exact endpoints are untouched.
	if got := blendChannel(10, 200, 0); got != 10 {
		t.Errorf("blendChannel at 0 = %d, want 10", got)
	}
	if got := blendChannel(10, 200, 1); got != 200 {
		t.Errorf("blendChannel at 1 = %d, want 200", got)
	}
	// Descending blends ceil as well: 255 -> 0 at 0.5 is 127.5 -> 128.
	if got := blendChannel(255, 0, 0.5); got != 128 {
		t.Errorf("blendChannel(255,0,0.5) = %d, want 128", got)
	}
}

func TestHexColorBlendChannelIndependence(t *testing.T) {
	from := hexColor{0, 100, 200}
	to := hexColor{100, 0, 250}
	got := from.blend(to, 0.3)
	if got.r != blendChannel(0, 100, 0.3) ||
		got.g != blendChannel(100, 0, 0.3) ||
		got.b != blendChannel(200, 250, 0.3) {
		t.Errorf("blend mixed channels: got %+v", got)
	}
}

func TestNRGBA(t *testing.T) {
	c := hexColor{10, 20, 30}
	got := c.nrgba(0.5)
	if got.R != 10 || got.G != 20 || got.B != 30 {
		t.Errorf("nrgba channels = %+v", got)
	}
	if got.A != 128 {
		t.Errorf("nrgba alpha = %d, want 128", got.A)
	}
	if a := c.nrgba(2).A; a != 255 {
		t.Errorf("nrgba clamps high: alpha = %d, want 255", a)
	}
	if a := c.nrgba(-1).A; a != 0 {
		t.Errorf("nrgba clamps low: alpha = %d, want 0", a)
	}
}
