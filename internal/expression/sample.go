// Package expression turns a happiness feed into jump triggers.
//
// A feed is a stream of lines, each carrying one happiness score in [0, 1]:
// a bare number, {"happy": 0.97}, or the face-api shape
// {"expressions": {"happy": 0.97}}.
package expression

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMalformed is returned for lines that carry no usable score.
var ErrMalformed = errors.New("expression: malformed sample")

type sampleJSON struct {
	Happy       *float64 `json:"happy"`
	Expressions *struct {
		Happy *float64 `json:"happy"`
	} `json:"expressions"`
}

// ParseSample extracts the happiness score from one feed line.
func ParseSample(line string) (float64, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return 0, fmt.Errorf("%w: empty line", ErrMalformed)
	}

	var score float64
	if strings.HasPrefix(line, "{") {
		var s sampleJSON
		if err := json.Unmarshal([]byte(line), &s); err != nil {
			return 0, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		switch {
		case s.Happy != nil:
			score = *s.Happy
		case s.Expressions != nil && s.Expressions.Happy != nil:
			score = *s.Expressions.Happy
		default:
			return 0, fmt.Errorf("%w: no happy field", ErrMalformed)
		}
	} else {
		v, err := strconv.ParseFloat(line, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		score = v
	}

	if score < 0 || score > 1 {
		return 0, fmt.Errorf("%w: score %v out of range", ErrMalformed, score)
	}
	return score, nil
}
