package config

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseAspectRatio accepts either a decimal ("1.7778") or a ratio ("16:9",
// "16/9")
func ParseAspectRatio(s string) (float64, error) {
	s = strings.TrimSpace(s)
	for _, sep := range []string{":", "/"} {
		num, den, found := strings.Cut(s, sep)
		if !found {
			continue
		}
		w, err := strconv.ParseFloat(strings.TrimSpace(num), 64)
		if err != nil {
			return 0, fmt.Errorf("invalid aspect ratio %q: %w", s, err)
		}
		h, err := strconv.ParseFloat(strings.TrimSpace(den), 64)
		if err != nil {
			return 0, fmt.Errorf("invalid aspect ratio %q: %w", s, err)
		}
		if h == 0 {
			return 0, fmt.Errorf("invalid aspect ratio %q: zero height", s)
		}
		return w / h, nil
	}

	ratio, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid aspect ratio %q: %w", s, err)
	}
	return ratio, nil
}

// AspectFlag is a flag.Value for aspect ratios in either notation
type AspectFlag struct {
	Value *float64
}

func (a AspectFlag) String() string {
	if a.Value == nil || *a.Value == 0 {
		return ""
	}
	return strconv.FormatFloat(*a.Value, 'g', -1, 64)
}

func (a AspectFlag) Set(s string) error {
	ratio, err := ParseAspectRatio(s)
	if err != nil {
		return err
	}
	*a.Value = ratio
	return nil
}
