package setting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_OwnsSlices(t *testing.T) {
	a := New("A")
	b := New("B")

	a.Options = append(a.Options, "[00]Disabled")
	a.Content = append(a.Content, "junk")

	assert.Empty(t, b.Options)
	assert.Empty(t, b.Content)
	assert.Equal(t, NoOption, b.ActiveOption)
	assert.Nil(t, b.Value)
	assert.Nil(t, b.BIOSDefault)
}

func TestFinalize_Collapse(t *testing.T) {
	tests := []struct {
		name        string
		options     []string
		active      int
		wantOptions []string
		wantValue   *string
	}{
		{
			name:        "single unmarked option becomes value",
			options:     []string{"[05]Auto"},
			active:      NoOption,
			wantOptions: []string{},
			wantValue:   ptr("[05]Auto"),
		},
		{
			name:        "single marked option stays",
			options:     []string{"[05]Auto"},
			active:      0,
			wantOptions: []string{"[05]Auto"},
		},
		{
			name:        "two options stay",
			options:     []string{"[00]Disabled", "[01]Enabled"},
			active:      NoOption,
			wantOptions: []string{"[00]Disabled", "[01]Enabled"},
		},
		{
			name:        "no options",
			options:     nil,
			active:      NoOption,
			wantOptions: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New("Q")
			s.Options = tt.options
			s.ActiveOption = tt.active

			s.Finalize()

			assert.Equal(t, tt.wantOptions, s.Options)
			assert.Equal(t, tt.wantValue, s.Value)
		})
	}
}

func TestSetActiveOption(t *testing.T) {
	s := New("Q")
	s.Options = []string{"[00]Disabled", "[01]Enabled"}

	require.NoError(t, s.SetActiveOption(1))
	assert.Equal(t, 1, s.ActiveOption)

	for _, i := range []int{-1, 2, 10} {
		err := s.SetActiveOption(i)
		assert.ErrorIs(t, err, ErrIndex, "index %d", i)
		assert.Equal(t, 1, s.ActiveOption, "failed call must not change the selection")
	}
}

func TestSetActiveOption_NoOptions(t *testing.T) {
	s := New("Q")
	assert.ErrorIs(t, s.SetActiveOption(0), ErrIndex)
}

func TestSetValue(t *testing.T) {
	s := New("Q")
	s.SetValue("7")
	require.NotNil(t, s.Value)
	assert.Equal(t, "7", *s.Value)

	s.SetValue("")
	require.NotNil(t, s.Value)
	assert.Equal(t, "", *s.Value)
}

func TestSelectOption(t *testing.T) {
	newSetting := func() *Setting {
		s := New("Q")
		s.Options = []string{"[00]Disabled", "[01]Enabled", "[02]Auto", "[03]auto"}
		return s
	}

	tests := []struct {
		name    string
		label   string
		want    int
		wantErr error
	}{
		{"full text", "[01]Enabled", 1, nil},
		{"label", "Enabled", 1, nil},
		{"label ignores case", "disabled", 0, nil},
		{"exact text beats ambiguous label", "[03]auto", 3, nil},
		{"ambiguous label", "AUTO", NoOption, ErrAmbiguous},
		{"unknown", "Sometimes", NoOption, ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newSetting()
			err := s.SelectOption(tt.label)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, NoOption, s.ActiveOption)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, s.ActiveOption)
		})
	}
}

func TestOptionLabel(t *testing.T) {
	assert.Equal(t, "Enabled", OptionLabel("[01]Enabled"))
	assert.Equal(t, "Gen 3", OptionLabel("[03] Gen 3"))
	assert.Equal(t, "plain", OptionLabel("plain"))
	assert.Equal(t, "[unclosed", OptionLabel("[unclosed"))
}

func TestDisplayValue(t *testing.T) {
	s := New("Q")
	assert.Equal(t, "", s.DisplayValue())

	s.SetValue("5")
	assert.Equal(t, "5", s.DisplayValue())

	s.Options = []string{"[00]Disabled", "[01]Enabled"}
	assert.Equal(t, "[00]Disabled, [01]Enabled", s.DisplayValue())

	require.NoError(t, s.SetActiveOption(1))
	assert.Equal(t, "[01]Enabled", s.DisplayValue())
}

func TestClone(t *testing.T) {
	s := New("Q")
	s.Token = "0E"
	s.Options = []string{"[00]Disabled", "[01]Enabled"}
	s.ActiveOption = 1
	s.SetValue("x")
	def := "[00]Disabled"
	s.BIOSDefault = &def

	c := s.Clone()
	require.Equal(t, s, c)

	c.Options[0] = "changed"
	*c.Value = "y"
	*c.BIOSDefault = "z"
	assert.Equal(t, "[00]Disabled", s.Options[0])
	assert.Equal(t, "x", *s.Value)
	assert.Equal(t, "[00]Disabled", *s.BIOSDefault)
}

func ptr(s string) *string {
	return &s
}

func TestValidValue(t *testing.T) {
	assert.NoError(t, ValidValue("7"))
	assert.NoError(t, ValidValue(""))
	assert.NoError(t, ValidValue("<English> / <French>"))

	for _, v := range []string{"7\nSetup Question = Injected", "7\r", "5 // default"} {
		assert.ErrorIs(t, ValidValue(v), ErrInvalidValue, "value %q", v)
	}
}

func TestSameChoice(t *testing.T) {
	base := New("Q")
	base.Options = []string{"[00]Off", "[01]On"}
	base.ActiveOption = 1

	same := base.Clone()
	assert.True(t, base.SameChoice(same))

	toggled := base.Clone()
	toggled.ActiveOption = 0
	assert.False(t, base.SameOptions(toggled))

	valued := base.Clone()
	valued.SetValue("7")
	assert.True(t, base.SameOptions(valued))
	assert.False(t, base.SameChoice(valued))

	outOfRange := base.Clone()
	outOfRange.ActiveOption = 9
	unmarked := base.Clone()
	unmarked.ActiveOption = NoOption
	assert.True(t, outOfRange.SameOptions(unmarked))
}
