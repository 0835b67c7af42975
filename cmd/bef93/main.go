// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"fmt"
	"log"
	"os"

	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/ezrec/bef93/engine"
)

var (
	app = kingpin.New("bef93", "An execution engine for two-dimensional self-modifying playfield programs.")

	argFile = app.Arg("file", "The program file to execute.").Required().ExistingFile()

	flagTemplate = app.Flag("template", "Treat the program as a playfield template.").Short('t').Bool()
	flagExpand   = app.Flag("expand", "Expand a playfield template to output and exit.").Short('x').Bool()
	flagInput    = app.Flag("input", "Program input file ('-' for stdin).").Short('i').Default("-").String()
	flagOutput   = app.Flag("output", "Program output file ('-' for stdout).").Short('o').Default("-").String()
	flagMaxSteps = app.Flag("max-steps", "Step budget; 0 runs unbounded.").Short('m').Default("0").Int()
	flagSeed     = app.Flag("seed", "Entropy seed for random travel; 0 picks a host seed.").Int64()
	flagStrict   = app.Flag("strict", "Reject programs larger than the canonical playfield.").Bool()
	flagVerbose  = app.Flag("verbose", "Verbose mode.").Short('v').Bool()
)

func main() {
	app.Version(engine.VERSION)
	kingpin.MustParse(app.Parse(os.Args[1:]))

	text, err := os.ReadFile(*argFile)
	if err != nil {
		log.Fatalf("%v: %v", *argFile, err)
	}

	eng := engine.NewEngine()
	eng.Verbose = *flagVerbose
	eng.Seed = *flagSeed
	eng.MaxSteps = *flagMaxSteps
	eng.Strict = *flagStrict

	if *flagExpand {
		expanded, err := eng.Expand(string(text))
		if err != nil {
			log.Fatalf("%v: %v", *argFile, err)
		}
		fmt.Println(expanded)
		return
	}

	if *flagTemplate {
		err = eng.LoadTemplate(string(text))
	} else {
		err = eng.Load(string(text))
	}
	if err != nil {
		log.Fatalf("%v: %v", *argFile, err)
	}

	if *flagInput == "-" {
		eng.Console.Input = os.Stdin
	} else {
		input, err := os.Open(*flagInput)
		if err != nil {
			log.Fatalf("%v: %v", *flagInput, err)
		}
		defer input.Close()
		eng.Console.Input = input
	}

	if *flagOutput == "-" {
		eng.Console.Output = os.Stdout
	} else {
		output, err := os.Create(*flagOutput)
		if err != nil {
			log.Fatalf("%v: %v", *flagOutput, err)
		}
		defer output.Close()
		eng.Console.Output = output
	}

	res := eng.Run()
	if res.Fault != nil {
		fmt.Fprintf(os.Stderr, "%v: %v\n", *argFile, res.Fault)
	}

	os.Exit(res.ExitCode())
}
