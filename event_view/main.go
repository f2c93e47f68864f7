package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/pkg/profile"
	log "github.com/sirupsen/logrus"

	"github.com/PandoraPFA/LArReco"
)

var errInvalidArguments = errors.New("invalid arguments")

func printUsage(fs *flag.FlagSet) func() {
	return func() {
		fmt.Fprintf(fs.Output(), `Usage: `+os.Args[0]+` [options] -i <events-csv-file>

Writes one <interaction-type>_event_<n>.png image per event, where the
interaction type is the input file name without its extension.

options:
`,
		)
		fs.PrintDefaults()
	}
}

func main() {
	err := run(os.Args[1:])
	switch {
	case errors.Is(err, flag.ErrHelp):
	case err != nil:
		log.Fatal(err)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("event_view", flag.ContinueOnError)
	var (
		inputFile string
		outDir    = fs.String("outdir", ".", "directory for the output images")
		logLevel  = fs.String("log-level", "info", "logging level")
		doProfile = fs.Bool("profile", false, "write a CPU profile to the output directory")
	)
	fs.StringVar(&inputFile, "input-file", "", "the input events file to process")
	fs.StringVar(&inputFile, "i", "", "shorthand for -input-file")
	fs.Usage = printUsage(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if inputFile == "" || fs.NArg() != 0 {
		fs.Usage()
		return errInvalidArguments
	}

	if err := larreco.ConfigureLogging(*logLevel); err != nil {
		return err
	}
	if *doProfile {
		defer profile.Start(profile.ProfilePath(*outDir), profile.Quiet, profile.NoShutdownHook).Stop()
	}

	file, err := os.Open(inputFile)
	if err != nil {
		return err
	}
	events, err := larreco.ReadEvents(file)
	file.Close()
	if err != nil {
		return fmt.Errorf("could not read %q: %w", inputFile, err)
	}

	intType := larreco.InteractionType(inputFile)
	rasterizer := larreco.NewRasterizer()
	for _, event := range events {
		path, err := rasterizer.WriteImage(event, intType, *outDir)
		if err != nil {
			return err
		}
		log.WithField("hits", len(event.Hits)).Debugf("wrote %s", path)
	}
	log.Infof("wrote %d images of %s events", len(events), intType)
	return nil
}
