package vmaf

import (
	"fmt"
	"log"
	"sync"

	"qoeanalysis/common"
)

// AnalyzeVmaf runs the VMAF pipeline of one run: load scores, build the
// empirical CDF of each condition, render the comparison chart.
func AnalyzeVmaf(basepath string) error {
	fp := common.CheckDataFiles(basepath)
	res, err := LoadScoresCached(fp.VmafJSON)
	if err != nil {
		return err
	}
	ratiocdf, err := common.ECDF(res.Ratio)
	if err != nil {
		return fmt.Errorf("%s ratio: %w", fp.VmafJSON, err)
	}
	gcccdf, err := common.ECDF(res.Gcc)
	if err != nil {
		return fmt.Errorf("%s gcc: %w", fp.VmafJSON, err)
	}
	if err := common.MakePlotDir(basepath); err != nil {
		return fmt.Errorf("%w: %v", common.ErrOutputWrite, err)
	}
	cdfname := common.PlotName(basepath, ".vmafcdf.pdf")
	log.Println("VMAF", basepath, "ratio frames:", len(res.Ratio), "gcc frames:", len(res.Gcc))
	return common.PlotCDF("CDF of VMAF", "VMAF score", cdfname, 0, 100,
		common.Curve{Label: common.LabelRatio, Points: ratiocdf},
		common.Curve{Label: common.LabelGCC, Points: gcccdf})
}

func RunVmafAnalysis(globwg *sync.WaitGroup, wchan chan int, errch chan<- error, basepath string) {
	defer globwg.Done()
	if err := AnalyzeVmaf(basepath); err != nil {
		log.Println("vmaf analysis failed:", err)
		errch <- fmt.Errorf("vmaf %s: %w", basepath, err)
	}
	<-wchan
}
