package format

import (
	"github.com/iancoleman/orderedmap"
	"github.com/thirteen37/biosedit/internal/setting"
)

// Record converts a setting to an ordered map with a fixed field order.
// Optional fields are present only when set.
func Record(s *setting.Setting) *orderedmap.OrderedMap {
	om := orderedmap.New()
	om.Set("setupQuestion", s.SetupQuestion)
	om.Set("helpString", s.HelpString)
	om.Set("token", s.Token)
	om.Set("offset", s.Offset)
	om.Set("width", s.Width)
	if s.BIOSDefault != nil {
		om.Set("biosDefault", *s.BIOSDefault)
	}
	if len(s.Options) > 0 {
		om.Set("options", s.Options)
		if s.HasActive() {
			om.Set("activeOption", s.ActiveOption)
		}
	}
	if s.Value != nil {
		om.Set("value", *s.Value)
	}
	return om
}
