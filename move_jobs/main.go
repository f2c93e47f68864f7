package main

import (
	"flag"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/PandoraPFA/LArReco"
)

func printUsage() {
	fmt.Fprintf(os.Stderr, `Usage: `+os.Args[0]+` [options]

Moves job<n><suffix>.root files from the base directory back into
<work>/job<n>/output<suffix>.root. Missing files are skipped.

options:
`,
	)
	flag.PrintDefaults()
}

func main() {
	suffixes := &larreco.StringArrayFlags{Array: larreco.DefaultSuffixes}
	var (
		base     = flag.String("base", ".", "base directory holding the collected job files")
		work     = flag.String("work", larreco.DefaultWorkDir, "job work directory, relative to base")
		nJobs    = flag.Int("njobs", larreco.DefaultNJobs, "number of jobs")
		logLevel = flag.String("log-level", "info", "logging level")
	)
	flag.Var(suffixes, "suffix", "output file suffix (repeatable), use - for none")
	flag.Usage = printUsage
	flag.Parse()
	if flag.NArg() != 0 {
		printUsage()
		log.Fatal("Invalid arguments")
	}
	if err := larreco.ConfigureLogging(*logLevel); err != nil {
		log.Fatal(err)
	}

	layout := larreco.NewJobLayout(*base)
	layout.WorkDir = *work
	layout.NJobs = *nJobs
	layout.Suffixes = nil
	for _, s := range suffixes.Array {
		if s == "-" {
			s = ""
		}
		layout.Suffixes = append(layout.Suffixes, s)
	}

	moved, err := layout.MoveOutputs()
	if err != nil {
		log.Fatal(err)
	}
	log.Infof("moved %d files", moved)
}
