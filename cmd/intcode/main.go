// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"golang.org/x/term"

	"github.com/ezrec/intcode/amplifier"
	"github.com/ezrec/intcode/intcode"
	"github.com/ezrec/intcode/script"
)

// envInt returns the integer environment variable name, or def.
func envInt(name string, def int) int {
	value, err := strconv.Atoi(os.Getenv(name))
	if err != nil {
		return def
	}
	return value
}

// envBool returns the boolean environment variable name, or def.
func envBool(name string, def bool) bool {
	value, err := strconv.ParseBool(os.Getenv(name))
	if err != nil {
		return def
	}
	return value
}

func main() {
	err := godotenv.Load()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("%v: .env: %v", os.Args[0], err)
	}

	var program string
	var input string
	var phases string
	var mode string
	var search bool
	var relative bool
	var size int
	var dump bool
	var verbose bool

	flag.StringVar(&program, "f", "-", "Program file")
	flag.StringVar(&input, "i", "[]", "Input values expression")
	flag.StringVar(&phases, "p", "range(5)", "Amplifier phases expression")
	flag.StringVar(&mode, "m", "run", "Mode: run, serial, or feedback")
	flag.BoolVar(&search, "search", false, "Maximise over phase permutations")
	flag.BoolVar(&relative, "r", envBool("INTCODE_RELATIVE", false), "Enable relative addressing")
	flag.IntVar(&size, "s", envInt("INTCODE_MEMORY", 0), "Minimum memory size")
	flag.BoolVar(&dump, "dump", false, "Print final memory (run mode only)")
	flag.BoolVar(&verbose, "v", envBool("INTCODE_VERBOSE", false), "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	var text []byte
	if program == "-" {
		text, err = io.ReadAll(os.Stdin)
	} else {
		text, err = os.ReadFile(program)
	}
	if err != nil {
		log.Fatalf("%v: %v", program, err)
	}

	memory, err := intcode.Parse(string(text))
	if err != nil {
		log.Fatalf("%v: %v", program, err)
	}

	runner := &intcode.Runner{Verbose: verbose, Relative: relative, Size: size}

	var outputs []int64
	switch mode {
	case "run":
		var inputs []int64
		inputs, err = script.Ints(input, nil)
		if err != nil {
			log.Fatalf("-i %v: %v", input, err)
		}
		outputs, err = runner.RunWithInput(memory, inputs)
		if err != nil {
			log.Fatalf("%v: %v", program, err)
		}
	case "serial", "feedback":
		if dump {
			log.Fatalf("%v: -dump is only supported in run mode", os.Args[0])
		}
		net_mode := amplifier.SERIAL
		if mode == "feedback" {
			net_mode = amplifier.FEEDBACK
		}
		var settings []int64
		settings, err = script.Ints(phases, nil)
		if err != nil {
			log.Fatalf("-p %v: %v", phases, err)
		}
		var output int64
		if search {
			var best amplifier.Trial
			best, err = amplifier.Search(context.Background(), runner, memory, settings, net_mode)
			output = best.Output
			if verbose && err == nil {
				log.Printf("phases: %v", best.Phases)
			}
		} else {
			net := amplifier.NewNetwork(runner, memory, settings)
			output, err = net.Evaluate(net_mode, 0)
		}
		if err != nil {
			log.Fatalf("%v: %v", program, err)
		}
		outputs = []int64{output}
	default:
		log.Fatalf("%v: Unknown mode: %v", os.Args[0], mode)
	}

	words := make([]string, len(outputs))
	for n, output := range outputs {
		words[n] = strconv.FormatInt(output, 10)
	}

	if term.IsTerminal(int(os.Stdout.Fd())) {
		for _, word := range words {
			fmt.Println(word)
		}
	} else {
		fmt.Println(strings.Join(words, ","))
	}

	if dump {
		fmt.Println(memory.String())
	}
}
