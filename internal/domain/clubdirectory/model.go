package clubdirectory

import (
	"fmt"
	"strings"
)

// Entry is a static directory row: one official club name plus the short names it is published under.
type Entry struct {
	OfficialName string
	Aliases      []string
}

func (e Entry) Validate() error {
	if strings.TrimSpace(e.OfficialName) == "" {
		return fmt.Errorf("club directory official name is required")
	}
	for _, alias := range e.Aliases {
		if strings.TrimSpace(alias) == "" {
			return fmt.Errorf("club directory alias for %q is empty", e.OfficialName)
		}
	}
	return nil
}
