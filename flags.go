package larreco

import (
	"fmt"
	"strings"
)

// StringArrayFlags collects the values of a repeatable string flag. The
// first Set replaces any default values put in Array before parsing.
type StringArrayFlags struct {
	Array   []string
	beenSet bool
}

func (f *StringArrayFlags) Set(value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return fmt.Errorf("empty value")
	}

	if !f.beenSet {
		f.beenSet = true
		f.Array = nil
	}

	f.Array = append(f.Array, value)
	return nil
}

func (f *StringArrayFlags) String() string {
	if f == nil {
		return "[]"
	}
	return fmt.Sprint(f.Array)
}
