package ofx

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

// parseAmount parses a signed OFX amount string into cents. Both decimal
// separators seen in the wild are accepted: the decimal separator is
// whichever of ',' and '.' appears last, earlier occurrences of either
// are thousands marks. "-588,74", "1.234,56" and "1,234.56" all parse.
func parseAmount(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, errors.New("empty amount")
	}

	comma := strings.LastIndexByte(s, ',')
	dot := strings.LastIndexByte(s, '.')

	if sep := max(comma, dot); sep >= 0 {
		head := strings.NewReplacer(",", "", ".", "").Replace(s[:sep])
		s = head + "." + s[sep+1:]
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, err
	}

	return d.Mul(decimal.NewFromInt(100)).Round(0).IntPart(), nil
}
