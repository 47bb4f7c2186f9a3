package plaintext

import (
	"testing"

	"github.com/thirteen37/biosedit/internal/format"
	"github.com/thirteen37/biosedit/internal/setting"
)

func ptr(s string) *string { return &s }

func TestDetails(t *testing.T) {
	above4g := setting.New("Above 4G Decoding")
	above4g.HelpString = "Enables 64bit capable devices"
	above4g.Token = "0E"
	above4g.Offset = "0B8D"
	above4g.Width = "01"
	above4g.BIOSDefault = ptr("[00]Disabled")
	above4g.Options = []string{"[01]Enabled", "[00]Disabled"}
	above4g.ActiveOption = 1
	above4g.Content = []string{"Map String = Above4G"}

	timeout := setting.New("Boot Timeout")
	timeout.Token = "1B"
	timeout.Offset = "0021"
	timeout.Width = "02"
	timeout.Value = ptr("1")

	empty := setting.New("Reserved")
	empty.Value = ptr("")

	tests := []struct {
		name string
		s    *setting.Setting
		opts format.ExportOptions
		want string
	}{
		{
			name: "options",
			s:    above4g,
			want: "Setup Question: Above 4G Decoding\n" +
				"Help String: Enables 64bit capable devices\n" +
				"Token: 0E\n" +
				"Offset: 0B8D\n" +
				"Width: 01\n" +
				"BIOS Default: [00]Disabled\n" +
				"Options:\n" +
				"  ( ) [01]Enabled\n" +
				"  (*) [00]Disabled\n",
		},
		{
			name: "verbose with custom indent",
			s:    above4g,
			opts: format.ExportOptions{Indent: "\t", Verbose: true},
			want: "Setup Question: Above 4G Decoding\n" +
				"Help String: Enables 64bit capable devices\n" +
				"Token: 0E\n" +
				"Offset: 0B8D\n" +
				"Width: 01\n" +
				"BIOS Default: [00]Disabled\n" +
				"Options:\n" +
				"\t( ) [01]Enabled\n" +
				"\t(*) [00]Disabled\n" +
				"Content:\n" +
				"\tMap String = Above4G\n",
		},
		{
			name: "value",
			s:    timeout,
			want: "Setup Question: Boot Timeout\n" +
				"Help String: \n" +
				"Token: 1B\n" +
				"Offset: 0021\n" +
				"Width: 02\n" +
				"Value: 1\n",
		},
		{
			name: "empty value is hidden",
			s:    empty,
			want: "Setup Question: Reserved\n" +
				"Help String: \n" +
				"Token: \n" +
				"Offset: \n" +
				"Width: \n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Details(tt.s, tt.opts); got != tt.want {
				t.Errorf("Details() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestHandler_Export(t *testing.T) {
	first := setting.New("First")
	first.Value = ptr("1")
	second := setting.New("Second")
	second.Value = ptr("2")

	got, err := New().Export([]*setting.Setting{first, second}, format.ExportOptions{})
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	want := Details(first, format.ExportOptions{}) + "\n" + Details(second, format.ExportOptions{})
	if string(got) != want {
		t.Errorf("Export() = %q, want %q", got, want)
	}
}
