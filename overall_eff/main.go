package main

import (
	"flag"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"gonum.org/v1/plot/vg"

	"github.com/PandoraPFA/LArReco"
)

func printUsage() {
	fmt.Fprintf(os.Stderr, `Usage: `+os.Args[0]+` [options] [root-files]...

Collects <work>/job<n>/output<suffix>.root of every job into
job<n><suffix>.root and reports how often the most likely neutrino was
correctly identified. When ROOT files are given they are read directly and
no job outputs are collected.

options:
`,
	)
	flag.PrintDefaults()
}

func main() {
	var (
		base     = flag.String("base", ".", "base directory")
		work     = flag.String("work", larreco.DefaultWorkDir, "job work directory, relative to base")
		nJobs    = flag.Int("njobs", larreco.DefaultNJobs, "number of jobs")
		suffix   = flag.String("suffix", "d", "suffix of the job output to read")
		treeName = flag.String("tree", larreco.DefaultTreeName, "name of the tree to read")
		title    = flag.String("title", "", "plot title")
		plotOut  = flag.String("plot", "", "optional output image of the wasright distribution")
		logLevel = flag.String("log-level", "info", "logging level")
	)
	flag.Usage = printUsage
	flag.Parse()
	if err := larreco.ConfigureLogging(*logLevel); err != nil {
		log.Fatal(err)
	}

	files := flag.Args()
	if len(files) == 0 {
		layout := larreco.NewJobLayout(*base)
		layout.WorkDir = *work
		layout.NJobs = *nJobs

		var (
			missing int
			err     error
		)
		files, missing, err = layout.CollectOutputs(*suffix)
		if err != nil {
			log.Fatal(err)
		}
		log.Infof("collected %d job outputs, %d missing", len(files), missing)
	}

	counts, err := larreco.ReadEfficiency(files, *treeName)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("right ", counts.Right)
	fmt.Println("wrong ", counts.Wrong)
	fmt.Println("total ", counts.Total)
	fmt.Println("The percentage of times the most likely neutrino was correctly identified is", counts.Percent())
	fmt.Println("is 0/nan ", counts.ZeroNaN)
	fmt.Println("not 0/nan ", counts.NotZeroNaN)
	fmt.Println("right but not 0 = ", counts.RightNotZeroNaN)
	fmt.Println("wrong but not 0 = ", counts.WrongNotZeroNaN)

	if *plotOut != "" {
		p := larreco.EfficiencyPlot(counts, *title)
		if err := p.Save(6*vg.Inch, 4*vg.Inch, *plotOut); err != nil {
			log.Fatal(err)
		}
	}
}
