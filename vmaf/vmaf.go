package vmaf

import (
	"fmt"
	"math"
	"os"
	"sort"

	"golang.org/x/exp/maps"

	"qoeanalysis/common"
	"qoeanalysis/savedata"
)

//results file layout, one object per run keyed by condition:
//{"ratio": {"frames": [{"frameNum": 0, "metrics": {"vmaf": 75.06}}, ...]},
// "gcc":   {"frames": [...]}}

type FrameRecord struct {
	FrameNum int                `json:"frameNum"`
	Metrics  map[string]float64 `json:"metrics"`
}

type ConditionFrames struct {
	Frames []FrameRecord `json:"frames"`
}

// Result holds the per-frame VMAF scores of both conditions, ordered by
// frame index.
type Result struct {
	Ratio []float64
	Gcc   []float64
}

// LoadScores parses the VMAF results file of a run.
func LoadScores(path string) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	raw := make(map[string]ConditionFrames)
	if err := common.UnMarshalResult(f, &raw); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", common.ErrMalformedRecord, path, err)
	}
	res := &Result{}
	if res.Ratio, err = conditionScores(path, common.KeyRatio, raw); err != nil {
		return nil, err
	}
	if res.Gcc, err = conditionScores(path, common.KeyGCC, raw); err != nil {
		return nil, err
	}
	return res, nil
}

func conditionScores(path, cond string, raw map[string]ConditionFrames) ([]float64, error) {
	cf, ok := raw[cond]
	if !ok {
		return nil, fmt.Errorf("%w: %s: condition %q not in %v", common.ErrMalformedRecord, path, cond, maps.Keys(raw))
	}
	if len(cf.Frames) == 0 {
		return nil, fmt.Errorf("%w: %s: condition %q has no frames", common.ErrEmptyResult, path, cond)
	}
	frames := make([]FrameRecord, len(cf.Frames))
	copy(frames, cf.Frames)
	sort.Slice(frames, func(i, j int) bool { return frames[i].FrameNum < frames[j].FrameNum })
	scores := make([]float64, 0, len(frames))
	for _, fr := range frames {
		v, ok := fr.Metrics["vmaf"]
		if !ok {
			return nil, fmt.Errorf("%w: %s: frame %d of %q has no vmaf score", common.ErrMalformedRecord, path, fr.FrameNum, cond)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: %s: frame %d of %q: %v", common.ErrInvalidSample, path, fr.FrameNum, cond, v)
		}
		scores = append(scores, v)
	}
	return scores, nil
}

// LoadScoresCached returns the gob-cached parse of path when present,
// otherwise parses the JSON and writes the cache for the next run.
func LoadScoresCached(path string) (*Result, error) {
	gobname := savedata.GobName(path)
	cached := &Result{}
	if err := savedata.LoadData(gobname, cached); err == nil {
		return cached, nil
	}
	res, err := LoadScores(path)
	if err != nil {
		return nil, err
	}
	if err := savedata.SaveData(gobname, res); err != nil {
		os.Remove(gobname)
	}
	return res, nil
}
