package ini

import (
	"strings"
	"testing"

	"github.com/thirteen37/biosedit/internal/format"
	"github.com/thirteen37/biosedit/internal/setting"
	"gopkg.in/ini.v1"
)

func ptr(s string) *string { return &s }

func TestHandler_Export(t *testing.T) {
	above4g := setting.New("Above 4G Decoding")
	above4g.Token = "0E"
	above4g.Offset = "0B8D"
	above4g.Width = "01"
	above4g.BIOSDefault = ptr("[00]Disabled")
	above4g.Options = []string{"[01]Enabled", "[00]Disabled"}
	above4g.ActiveOption = 0

	timeout := setting.New("Boot Timeout")
	timeout.Token = "1B"
	timeout.Offset = "0021"
	timeout.Value = ptr("5")

	got, err := New().Export([]*setting.Setting{above4g, timeout}, format.ExportOptions{})
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	cfg, err := ini.Load(got)
	if err != nil {
		t.Fatalf("exported INI does not parse: %v\n%s", err, got)
	}

	tests := []struct {
		section string
		key     string
		want    string
	}{
		{"Above 4G Decoding||0E||0B8D", "question", "Above 4G Decoding"},
		{"Above 4G Decoding||0E||0B8D", "token", "0E"},
		{"Above 4G Decoding||0E||0B8D", "width", "01"},
		{"Above 4G Decoding||0E||0B8D", "default", "[00]Disabled"},
		{"Above 4G Decoding||0E||0B8D", "option.0", "[01]Enabled"},
		{"Above 4G Decoding||0E||0B8D", "option.1", "[00]Disabled"},
		{"Above 4G Decoding||0E||0B8D", "active", "0"},
		{"Boot Timeout||1B||0021", "offset", "0021"},
		{"Boot Timeout||1B||0021", "value", "5"},
	}

	for _, tt := range tests {
		t.Run(tt.section+"/"+tt.key, func(t *testing.T) {
			sec, err := cfg.GetSection(tt.section)
			if err != nil {
				t.Fatalf("GetSection(%q) error = %v", tt.section, err)
			}
			if got := sec.Key(tt.key).String(); got != tt.want {
				t.Errorf("%s = %q, want %q", tt.key, got, tt.want)
			}
		})
	}

	if cfg.Section("Above 4G Decoding||0E||0B8D").HasKey("value") {
		t.Error("options setting should not export a value")
	}
	if cfg.Section("Boot Timeout||1B||0021").HasKey("option.0") {
		t.Error("value setting should not export options")
	}
}

func TestHandler_ExportIncompleteKeys(t *testing.T) {
	first := setting.New("Orphan")
	first.Offset = "0400"
	second := setting.New("Orphan")
	second.Offset = "0401"

	got, err := New().Export([]*setting.Setting{first, second}, format.ExportOptions{})
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	out := string(got)
	for _, want := range []string{"[Orphan]", "[Orphan#2]"} {
		if !strings.Contains(out, want) {
			t.Errorf("Export() missing section %s:\n%s", want, out)
		}
	}
}
