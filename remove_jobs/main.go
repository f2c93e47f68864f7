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

Removes every <work>/job<n> directory under the base directory.

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
		logLevel = flag.String("log-level", "info", "logging level")
	)
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

	removed, err := layout.RemoveJobDirs()
	if err != nil {
		log.Fatal(err)
	}
	log.Infof("removed %d job directories", removed)
}
