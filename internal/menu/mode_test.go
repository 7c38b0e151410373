package menu

import "testing"

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{"simple", Simple, false},
		{"Radio", Radio, false},
		{" CHECK ", Check, false},
		{"checkbox", Check, false},
		{"multi", Simple, true},
		{"", Simple, true},
	}
	for _, tt := range tests {
		got, err := ParseMode(tt.in)
		if (err != nil) != tt.wantErr {
			t.Fatalf("ParseMode(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseMode(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestModeStringRoundTrip(t *testing.T) {
	for _, m := range []Mode{Simple, Radio, Check} {
		got, err := ParseMode(m.String())
		if err != nil || got != m {
			t.Fatalf("ParseMode(%q) = %v, %v", m.String(), got, err)
		}
	}
	if s := Mode(9).String(); s != "Mode(9)" {
		t.Fatalf("unexpected name for invalid mode: %q", s)
	}
}
