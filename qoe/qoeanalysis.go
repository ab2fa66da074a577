package qoe

import (
	"fmt"
	"log"
	"math"
	"strconv"
	"sync"

	"qoeanalysis/common"
	"qoeanalysis/savedata"
)

// ConditionSummary is the reported QoE of one condition's receiver log.
type ConditionSummary struct {
	File        string                    `json:"file"`
	Timing      map[string]common.Summary `json:"timing"`
	Freeze      *FreezeInfo               `json:"freeze"`
	BitrateMbps float64                   `json:"bitrate_mbps,omitempty"`
}

type RunSummary struct {
	Ratio ConditionSummary `json:"ratio"`
	Gcc   ConditionSummary `json:"gcc"`
}

// AnalyzeQoe runs the QoE pipeline of one run: parse both receiver logs,
// write the stats summary and the E2E sample dump, render the E2E delay
// CDF comparison chart.
func AnalyzeQoe(basepath string) error {
	fp := common.CheckDataFiles(basepath)
	ratio, err := ParseReceiverLog(fp.RatioRecv)
	if err != nil {
		return err
	}
	gcc, err := ParseReceiverLog(fp.GccRecv)
	if err != nil {
		return err
	}
	rsum, err := summarize(fp.RatioRecv, ratio)
	if err != nil {
		return err
	}
	gsum, err := summarize(fp.GccRecv, gcc)
	if err != nil {
		return err
	}
	ratiocdf, err := common.ECDF(ratio.Timing.E2e)
	if err != nil {
		return fmt.Errorf("%s: %w", fp.RatioRecv, err)
	}
	gcccdf, err := common.ECDF(gcc.Timing.E2e)
	if err != nil {
		return fmt.Errorf("%s: %w", fp.GccRecv, err)
	}
	if err := common.MakePlotDir(basepath); err != nil {
		return fmt.Errorf("%w: %v", common.ErrOutputWrite, err)
	}
	sumname := common.PlotName(basepath, ".qoe.json")
	if err := savedata.SaveJSON(sumname, RunSummary{Ratio: rsum, Gcc: gsum}); err != nil {
		return fmt.Errorf("%w: %s: %v", common.ErrOutputWrite, sumname, err)
	}
	if err := saveE2eCSV(common.PlotName(basepath, ".e2e.csv"), ratio, gcc); err != nil {
		return err
	}
	cdfname := common.PlotName(basepath, ".e2ecdf.pdf")
	log.Println("QoE", basepath, "ratio e2e samples:", len(ratio.Timing.E2e), "gcc e2e samples:", len(gcc.Timing.E2e))
	return common.PlotCDF("CDF of E2E Delay", "E2E delay /ms", cdfname, 0, math.NaN(),
		common.Curve{Label: common.LabelRatio, Points: ratiocdf},
		common.Curve{Label: common.LabelGCC, Points: gcccdf})
}

func summarize(path string, rl *ReceiverLog) (ConditionSummary, error) {
	cs := ConditionSummary{
		File:        path,
		Timing:      make(map[string]common.Summary),
		Freeze:      rl.Freeze,
		BitrateMbps: rl.BitrateMbps(),
	}
	components := map[string][]float64{
		"e2e":        rl.Timing.E2e,
		"encode":     rl.Timing.Encode,
		"pacer":      rl.Timing.Pacer,
		"network":    rl.Timing.Network,
		"jitter_buf": rl.Timing.JitterBuf,
		"packet_buf": rl.Timing.PacketBuf,
		"frame_buf":  rl.Timing.FrameBuf,
		"decode":     rl.Timing.Decode,
	}
	if len(rl.Timing.E2e) == 0 {
		return cs, fmt.Errorf("%w: %s: no TIMING-BREAKDOWN lines", common.ErrEmptyResult, path)
	}
	for name, samples := range components {
		s, err := common.Summarize(samples)
		if err != nil {
			return cs, fmt.Errorf("%s %s: %w", path, name, err)
		}
		cs.Timing[name] = s
	}
	return cs, nil
}

func saveE2eCSV(path string, ratio, gcc *ReceiverLog) error {
	e2ecsv := &savedata.SaveCSV{}
	if err := e2ecsv.NewCSV(path); err != nil {
		return fmt.Errorf("%w: %s: %v", common.ErrOutputWrite, path, err)
	}
	e2ecsv.AddOneToCSV([]string{"condition", "frame", "e2e_ms"})
	for i, v := range ratio.Timing.E2e {
		e2ecsv.AddOneToCSV([]string{common.KeyRatio, strconv.Itoa(i), strconv.FormatFloat(v, 'f', -1, 64)})
	}
	for i, v := range gcc.Timing.E2e {
		e2ecsv.AddOneToCSV([]string{common.KeyGCC, strconv.Itoa(i), strconv.FormatFloat(v, 'f', -1, 64)})
	}
	if err := e2ecsv.CloseCSV(); err != nil {
		return fmt.Errorf("%w: %s: %v", common.ErrOutputWrite, path, err)
	}
	return nil
}

func RunQoeAnalysis(globwg *sync.WaitGroup, wchan chan int, errch chan<- error, basepath string) {
	defer globwg.Done()
	if err := AnalyzeQoe(basepath); err != nil {
		log.Println("qoe analysis failed:", err)
		errch <- fmt.Errorf("qoe %s: %w", basepath, err)
	}
	<-wchan
}
