package report

import "testing"

func TestParseLimit(t *testing.T) {
	tests := []struct {
		raw     string
		want    int
		wantErr bool
	}{
		{raw: "", want: 30},
		{raw: "7", want: 7},
		{raw: "365", want: 365},
		{raw: "30xyz", wantErr: true},
		{raw: "3.5", wantErr: true},
		{raw: "0", wantErr: true},
		{raw: "-5", wantErr: true},
	}

	for _, tt := range tests {
		got, err := parseLimit(tt.raw, 30)
		if tt.wantErr {
			if err == nil {
				t.Errorf("parseLimit(%q) harusnya ditolak, dapat %d", tt.raw, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseLimit(%q) error: %v", tt.raw, err)
			continue
		}
		if got != tt.want {
			t.Errorf("parseLimit(%q) = %d, harusnya %d", tt.raw, got, tt.want)
		}
	}
}
