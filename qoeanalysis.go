package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"qoeanalysis/common"
	"qoeanalysis/config"
	"qoeanalysis/lpips"
	"qoeanalysis/qoe"
	"qoeanalysis/vmaf"
)

var runSuffixes = []string{".vmaf.json", ".ratio.lpips.log", ".ratio.recv.log"}

// findRuns collects the run base paths present under datapath, from
// whichever input files each run shipped with.
func findRuns(datapath string) []string {
	seen := make(map[string]bool)
	for _, suffix := range runSuffixes {
		files, err := filepath.Glob(filepath.Join(datapath, "*"+suffix))
		if err != nil {
			continue
		}
		for _, f := range files {
			seen[strings.TrimSuffix(f, suffix)] = true
		}
	}
	runs := make([]string, 0, len(seen))
	for base := range seen {
		runs = append(runs, base)
	}
	sort.Strings(runs)
	return runs
}

func main() {
	cfgpath := flag.String("config", "qoeanalysis.yaml", "config file")
	mptr := flag.String("metric", "", "metrics to analyze: vmaf,lpips,qoe or all (overrides config)")
	wptr := flag.Int("worker", 0, "number of workers (overrides config)")
	cptr := flag.Bool("clean", false, "clean run (remove and rebuild gob)")
	pptr := flag.String("path", "", "data path (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*cfgpath)
	if err != nil {
		log.Fatal("config: ", err)
	}
	datapath := cfg.DataPath
	if *pptr != "" {
		datapath = *pptr
	}
	nworkers := cfg.Workers
	if *wptr > 0 {
		nworkers = *wptr
	}
	metrics := cfg.Metrics
	if *mptr != "" && *mptr != "all" {
		metrics = strings.Split(*mptr, ",")
	}

	if *cptr {
		gobsearch := filepath.Join(datapath, "*.gob")
		gobfiles, err := filepath.Glob(gobsearch)
		if err == nil {
			for _, gfile := range gobfiles {
				_ = os.Remove(gfile)
			}
		}
	}

	runs := findRuns(datapath)
	if len(runs) == 0 {
		log.Fatal("no experiment runs under ", datapath)
	}

	workerchan := make(chan int, nworkers)
	errch := make(chan error, len(runs)*len(metrics))
	var wg sync.WaitGroup
	for _, base := range runs {
		fp := common.CheckDataFiles(base)
		for _, metric := range metrics {
			switch metric {
			case "vmaf":
				if !fp.VmafExist {
					log.Println("no vmaf results for", base)
					continue
				}
				workerchan <- 1
				log.Println("Run:", metric, base)
				wg.Add(1)
				go vmaf.RunVmafAnalysis(&wg, workerchan, errch, base)
			case "lpips":
				if !fp.RatioLpipsExist || !fp.GccLpipsExist {
					log.Println("no lpips logs for", base)
					continue
				}
				workerchan <- 1
				log.Println("Run:", metric, base)
				wg.Add(1)
				go lpips.RunLpipsAnalysis(&wg, workerchan, errch, base)
			case "qoe":
				if !fp.RatioRecvExist || !fp.GccRecvExist {
					log.Println("no receiver logs for", base)
					continue
				}
				workerchan <- 1
				log.Println("Run:", metric, base)
				wg.Add(1)
				go qoe.RunQoeAnalysis(&wg, workerchan, errch, base)
			default:
				log.Fatal("unknown metric ", metric)
			}
		}
	}
	wg.Wait()
	close(errch)
	nerr := 0
	for range errch {
		nerr++
	}
	if nerr > 0 {
		log.Println(nerr, "analyses failed")
		os.Exit(1)
	}
}
