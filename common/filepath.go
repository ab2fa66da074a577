package common

import (
	"os"
	"path/filepath"
)

// Sibling files of one experiment run, derived from its base path
// (<dir>/<run> without extension).
type FilePaths struct {
	VmafJSON        string
	VmafExist       bool
	RatioLpips      string
	RatioLpipsExist bool
	GccLpips        string
	GccLpipsExist   bool
	RatioRecv       string
	RatioRecvExist  bool
	GccRecv         string
	GccRecvExist    bool
}

// CheckDataFiles probes which input files exist for the run at basepath.
func CheckDataFiles(basepath string) *FilePaths {
	fp := &FilePaths{
		VmafJSON:   basepath + ".vmaf.json",
		RatioLpips: basepath + "." + KeyRatio + ".lpips.log",
		GccLpips:   basepath + "." + KeyGCC + ".lpips.log",
		RatioRecv:  basepath + "." + KeyRatio + ".recv.log",
		GccRecv:    basepath + "." + KeyGCC + ".recv.log",
	}
	_, err := os.Stat(fp.VmafJSON)
	fp.VmafExist = (err == nil)
	_, err = os.Stat(fp.RatioLpips)
	fp.RatioLpipsExist = (err == nil)
	_, err = os.Stat(fp.GccLpips)
	fp.GccLpipsExist = (err == nil)
	_, err = os.Stat(fp.RatioRecv)
	fp.RatioRecvExist = (err == nil)
	_, err = os.Stat(fp.GccRecv)
	fp.GccRecvExist = (err == nil)
	return fp
}

// PlotName maps a run base path to an output path under its plots dir:
// <dir>/<run> + suffix becomes <dir>/plots/<run><suffix>.
func PlotName(basepath, suffix string) string {
	dir, run := filepath.Split(basepath)
	return filepath.Join(dir, "plots", run+suffix)
}

// MakePlotDir creates the plots dir next to the run files.
func MakePlotDir(basepath string) error {
	dir, _ := filepath.Split(basepath)
	err := os.Mkdir(filepath.Join(dir, "plots"), 0775)
	if err != nil && !os.IsExist(err) {
		return err
	}
	return nil
}
