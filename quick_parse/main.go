package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/exp/rand"
	"gonum.org/v1/plot/vg"

	"github.com/PandoraPFA/LArReco"
)

func printUsage() {
	fmt.Fprintf(os.Stderr, `Usage: `+os.Args[0]+` [options] [events-csv-file]

Prints the number of events of each interaction type and writes a random
sample of the requested types to sample_<type>.csv. The input defaults to
events.csv.

options:
`,
	)
	flag.PrintDefaults()
}

func main() {
	types := &larreco.StringArrayFlags{Array: []string{"CCQEL_MU_P", "CCRES_MU_P_PIPLUS"}}
	var (
		nSamples = flag.Int("n", 5, "number of events to sample per type, 0 for all")
		seed     = flag.Uint64("seed", 0, "random seed, 0 for a time based seed")
		outDir   = flag.String("outdir", ".", "directory for the sample files")
		plotOut  = flag.String("plot", "", "optional output image of the counts per type")
		logLevel = flag.String("log-level", "info", "logging level")
	)
	flag.Var(types, "type", "interaction type to sample (repeatable)")
	flag.Usage = printUsage
	flag.Parse()
	if flag.NArg() > 1 {
		printUsage()
		log.Fatal("Invalid arguments")
	}
	if err := larreco.ConfigureLogging(*logLevel); err != nil {
		log.Fatal(err)
	}

	inputFile := "events.csv"
	if flag.NArg() == 1 {
		inputFile = flag.Arg(0)
	}

	file, err := os.Open(inputFile)
	if err != nil {
		log.Fatal(err)
	}
	table, err := larreco.ReadTable(file)
	file.Close()
	if err != nil {
		log.Fatalf("could not read %q: %v", inputFile, err)
	}

	counts, err := table.ValueCounts(larreco.InteractionTypeColumn)
	if err != nil {
		log.Fatal(err)
	}
	total := 0
	for _, c := range counts {
		fmt.Printf("%-30s %8d\n", c.Value, c.Count)
		total += c.Count
	}
	fmt.Println("Total events:", total)

	if *plotOut != "" {
		p, err := larreco.CountsPlot(counts, "events per interaction type")
		if err != nil {
			log.Fatal(err)
		}
		if err := p.Save(8*vg.Inch, 6*vg.Inch, *plotOut); err != nil {
			log.Fatal(err)
		}
	}

	if *seed == 0 {
		*seed = uint64(time.Now().UnixNano())
	}
	log.Debugf("sampling with seed %d", *seed)
	src := rand.NewSource(*seed)
	for _, intType := range types.Array {
		sample, err := table.Select(intType, *nSamples, src)
		if err != nil {
			log.Fatal(err)
		}

		path := filepath.Join(*outDir, larreco.SampleFilename(intType))
		out, err := os.Create(path)
		if err != nil {
			log.Fatal(err)
		}
		err = sample.WriteCSV(out)
		if cerr := out.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			log.Fatalf("could not write %q: %v", path, err)
		}
		log.Infof("wrote %d %s events to %s", len(sample.Rows), intType, path)
	}
}
