package attendance

import "testing"

func TestNormalizeTime(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "clock with seconds", input: "08:30:00", want: "08:30:00"},
		{name: "clock without seconds", input: "16:45", want: "16:45:00"},
		{name: "rfc3339 timestamp", input: "2025-09-19T08:30:15Z", want: "08:30:15"},
		{name: "timestamp without zone", input: "2025-09-19T08:30:15", want: "08:30:15"},
		{name: "timestamp with space", input: "2025-09-19 08:30:15", want: "08:30:15"},
		{name: "garbage", input: "half past eight", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "out of range", input: "25:99:00", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeTime(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("NormalizeTime(%q) expected error, got %q", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("NormalizeTime(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Fatalf("NormalizeTime(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestTotalHours(t *testing.T) {
	in := "08:30:00"
	out := "16:45:00"

	if got := totalHours(&in, &out); got != "08:15" {
		t.Fatalf("totalHours = %q, want %q", got, "08:15")
	}
	if got := totalHours(&in, nil); got != "" {
		t.Fatalf("totalHours with open check-out = %q, want empty", got)
	}
	if got := totalHours(nil, &out); got != "" {
		t.Fatalf("totalHours without check-in = %q, want empty", got)
	}
}
