// README: Saved place models and label normalisation.
package savedplace

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"eventride/internal/types"
)

var (
	ErrInvalidPlace = errors.New("invalid saved place")
	ErrNotFound     = errors.New("saved place not found")
)

const (
	LabelHome = "home"
	LabelWork = "work"
)

// Place is an address a user saved under a label.
type Place struct {
	Label      string            `json:"label"`
	Address    string            `json:"address"`
	Coordinate *types.Coordinate `json:"coordinate,omitempty"`
	UpdatedAt  time.Time         `json:"updated_at"`
}

var labelAliases = map[string]string{
	"home":    LabelHome,
	"house":   LabelHome,
	"家":       LabelHome,
	"work":    LabelWork,
	"office":  LabelWork,
	"company": LabelWork,
	"公司":      LabelWork,
}

// NormalizeLabel lowercases and trims label and maps known aliases onto
// LabelHome or LabelWork.
func NormalizeLabel(label string) string {
	l := strings.ToLower(strings.TrimSpace(label))
	if alias, ok := labelAliases[l]; ok {
		return alias
	}
	return l
}

func (p Place) validate() error {
	if NormalizeLabel(p.Label) == "" {
		return fmt.Errorf("%w: label is required", ErrInvalidPlace)
	}
	if strings.TrimSpace(p.Address) == "" {
		return fmt.Errorf("%w: address is required", ErrInvalidPlace)
	}
	if p.Coordinate != nil {
		if err := p.Coordinate.Validate(); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidPlace, err)
		}
	}
	return nil
}
