package lpips

import (
	"bufio"
	"fmt"
	"math"
	"os"
	"regexp"
	"strconv"
	"strings"

	"qoeanalysis/common"
)

//a score line: [VideoQuality-LPIPS] frame=0012 score: 0.0432
var scoreRegex = regexp.MustCompile(`score:\s*(-?\d+(?:\.\d+)?(?:[eE][+-]?\d+)?)`)

const scoreMarker = "score:"

// LoadScores extracts the per-frame LPIPS distances from a receiver-side
// score log, in file order. Lines without the score marker are unrelated
// log output and skipped; a line carrying the marker whose value does not
// parse is an error, so a noisy log cannot silently shrink the sample set.
func LoadScores(path string) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	scores := make([]float64, 0)
	scanner := bufio.NewScanner(f)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := scanner.Text()
		if !strings.Contains(line, scoreMarker) {
			continue
		}
		m := scoreRegex.FindStringSubmatch(line)
		if m == nil {
			return nil, fmt.Errorf("%w: %s:%d: score marker without numeric value", common.ErrMalformedRecord, path, lineno)
		}
		v, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %s:%d: %v", common.ErrMalformedRecord, path, lineno, err)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: %s:%d: %v", common.ErrInvalidSample, path, lineno, v)
		}
		scores = append(scores, v)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if len(scores) == 0 {
		return nil, fmt.Errorf("%w: %s", common.ErrEmptyResult, path)
	}
	return scores, nil
}
