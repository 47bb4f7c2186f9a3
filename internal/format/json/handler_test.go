package json

import (
	"strings"
	"testing"

	"github.com/thirteen37/biosedit/internal/format"
	"github.com/thirteen37/biosedit/internal/setting"
)

func ptr(s string) *string { return &s }

func TestHandler_Export(t *testing.T) {
	h := New()

	above4g := setting.New("Above 4G Decoding")
	above4g.Token = "0E"
	above4g.Offset = "0B8D"
	above4g.Width = "01"
	above4g.BIOSDefault = ptr("[00]Disabled")
	above4g.Options = []string{"[01]Enabled", "[00]Disabled"}
	above4g.ActiveOption = 1

	timeout := setting.New("Boot Timeout")
	timeout.HelpString = "Seconds to wait"
	timeout.Token = "1B"
	timeout.Offset = "0021"
	timeout.Width = "02"
	timeout.Value = ptr("1")

	tests := []struct {
		name     string
		settings []*setting.Setting
		opts     format.ExportOptions
		want     string
	}{
		{
			name:     "no settings",
			settings: nil,
			want:     "[]\n",
		},
		{
			name:     "options with active marker",
			settings: []*setting.Setting{above4g},
			want: `[
  {
    "setupQuestion": "Above 4G Decoding",
    "helpString": "",
    "token": "0E",
    "offset": "0B8D",
    "width": "01",
    "biosDefault": "[00]Disabled",
    "options": [
      "[01]Enabled",
      "[00]Disabled"
    ],
    "activeOption": 1
  }
]
`,
		},
		{
			name:     "value with tab indent",
			settings: []*setting.Setting{timeout},
			opts:     format.ExportOptions{Indent: "\t"},
			want: "[\n\t{\n" +
				"\t\t\"setupQuestion\": \"Boot Timeout\",\n" +
				"\t\t\"helpString\": \"Seconds to wait\",\n" +
				"\t\t\"token\": \"1B\",\n" +
				"\t\t\"offset\": \"0021\",\n" +
				"\t\t\"width\": \"02\",\n" +
				"\t\t\"value\": \"1\"\n" +
				"\t}\n]\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := h.Export(tt.settings, tt.opts)
			if err != nil {
				t.Fatalf("Export() error = %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("Export() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestHandler_ExportOmitsActiveWithoutMarker(t *testing.T) {
	s := setting.New("Fan Mode")
	s.Options = []string{"[00]Silent", "[01]Turbo"}

	got, err := New().Export([]*setting.Setting{s}, format.ExportOptions{})
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	if want := `"activeOption"`; strings.Contains(string(got), want) {
		t.Errorf("Export() = %s, should not contain %s", got, want)
	}
}
