package lpips

import (
	"fmt"
	"log"
	"math"
	"sync"

	"qoeanalysis/common"
)

// AnalyzeLpips runs the LPIPS pipeline of one run: load both condition
// logs, build the empirical CDFs, render the comparison chart. LPIPS is a
// distance, so the better condition's curve sits to the left.
func AnalyzeLpips(basepath string) error {
	fp := common.CheckDataFiles(basepath)
	ratio, err := LoadScores(fp.RatioLpips)
	if err != nil {
		return err
	}
	gcc, err := LoadScores(fp.GccLpips)
	if err != nil {
		return err
	}
	ratiocdf, err := common.ECDF(ratio)
	if err != nil {
		return fmt.Errorf("%s: %w", fp.RatioLpips, err)
	}
	gcccdf, err := common.ECDF(gcc)
	if err != nil {
		return fmt.Errorf("%s: %w", fp.GccLpips, err)
	}
	if err := common.MakePlotDir(basepath); err != nil {
		return fmt.Errorf("%w: %v", common.ErrOutputWrite, err)
	}
	cdfname := common.PlotName(basepath, ".lpipscdf.pdf")
	log.Println("LPIPS", basepath, "ratio frames:", len(ratio), "gcc frames:", len(gcc))
	return common.PlotCDF("CDF of LPIPS", "LPIPS distance", cdfname, 0, math.NaN(),
		common.Curve{Label: common.LabelRatio, Points: ratiocdf},
		common.Curve{Label: common.LabelGCC, Points: gcccdf})
}

func RunLpipsAnalysis(globwg *sync.WaitGroup, wchan chan int, errch chan<- error, basepath string) {
	defer globwg.Done()
	if err := AnalyzeLpips(basepath); err != nil {
		log.Println("lpips analysis failed:", err)
		errch <- fmt.Errorf("lpips %s: %w", basepath, err)
	}
	<-wchan
}
