package culture

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    ID
		wantErr bool
	}{
		{"tokyo", Tokyo, false},
		{" TOKYO ", Tokyo, false},
		{"New York", NewYork, false},
		{"new-york", NewYork, false},
		{"berlin", Berlin, false},
		{"", Default, false},
		{"paris", "", true},
	}

	for _, tt := range tests {
		got, err := Parse(tt.in)
		if tt.wantErr {
			if err != ErrUnknown {
				t.Errorf("Parse(%q): expected ErrUnknown, got %v", tt.in, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("Parse(%q): unexpected error %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("Parse(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestLookupEveryKnownID(t *testing.T) {
	for _, id := range All() {
		info, ok := Lookup(id)
		if !ok {
			t.Errorf("no info for %s", id)
		}
		if info.ID != id {
			t.Errorf("info for %s carries id %s", id, info.ID)
		}
		if info.Name == "" || info.Accent == "" || info.Genre == "" {
			t.Errorf("incomplete info for %s: %+v", id, info)
		}
	}
}

func TestLookupUnknownFallsBackToDefault(t *testing.T) {
	info, ok := Lookup("atlantis")
	if ok {
		t.Error("expected ok=false for unknown culture")
	}
	if info.ID != Default {
		t.Errorf("expected default record, got %s", info.ID)
	}
}

func TestIsDefault(t *testing.T) {
	if !Default.IsDefault() || !ID("").IsDefault() {
		t.Error("default and empty ids should be default")
	}
	if Tokyo.IsDefault() {
		t.Error("tokyo is not default")
	}
}
