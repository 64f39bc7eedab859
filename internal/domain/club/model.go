package club

import (
	"fmt"
	"strings"
	"time"
)

// Club is a team row observed on a standings page, identified by (Name, League).
type Club struct {
	Name          string
	League        string
	Division      string
	RosterURL     string
	LastScrapedAt time.Time
}

func (c Club) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("club name is required")
	}
	if strings.TrimSpace(c.League) == "" {
		return fmt.Errorf("club league is required")
	}
	if strings.TrimSpace(c.RosterURL) == "" {
		return fmt.Errorf("club roster url is required")
	}
	return nil
}

// Key is the upsert identity.
func (c Club) Key() string {
	return strings.TrimSpace(c.League) + "|" + strings.TrimSpace(c.Name)
}
