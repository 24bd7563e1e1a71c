package encounter

import (
	"fmt"
	"strconv"
	"strings"

	apperrors "github.com/louisbranch/encounter-xp/internal/platform/errors"
)

// Level is an adventurer level.
type Level uint8

const (
	MinLevel Level = 1
	MaxLevel Level = 20
)

// ParseLevels parses a comma and/or space separated list of levels.
//
// Every comma and every space is a separator, so doubled separators leave an
// empty token that fails to parse. Order and duplicates are preserved.
func ParseLevels(raw string) ([]Level, error) {
	var tokens []string
	for _, part := range strings.Split(raw, ",") {
		tokens = append(tokens, strings.Split(part, " ")...)
	}

	levels := make([]Level, 0, len(tokens))
	for _, token := range tokens {
		n, err := strconv.Atoi(token)
		if err != nil {
			return nil, invalidLevelToken(raw)
		}
		if n < int(MinLevel) || n > int(MaxLevel) {
			return nil, apperrors.WithMetadata(
				apperrors.CodeLevelOutOfRange,
				fmt.Sprintf("all provided levels must be between %d and %d inclusive, received:\n%d", MinLevel, MaxLevel, n),
				map[string]string{"level": strconv.Itoa(n)},
			)
		}
		levels = append(levels, Level(n))
	}
	return levels, nil
}

func invalidLevelToken(raw string) error {
	return apperrors.WithMetadata(
		apperrors.CodeLevelInvalidToken,
		"please check that levels contains only integers separated by commas or spaces, received:\n"+raw,
		map[string]string{"raw": raw},
	)
}
