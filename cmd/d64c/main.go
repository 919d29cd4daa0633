// Copyright 2024, The d64make Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Command d64c is a CLI front end for the D64 and Jaguar codecs.
package main

import (
	"flag"
	"io/ioutil"
	"log"

	"github.com/Killertamagotchi/d64make/d64"
	"github.com/Killertamagotchi/d64make/jaguar"
)

func main() {
	mode := flag.String("mode", "", "encode or decode")
	codecName := flag.String("codec", "d64", "d64 or jaguar")
	inPath := flag.String("in", "", "input file")
	outPath := flag.String("out", "", "output file")
	flag.Parse()

	if *mode == "" || *inPath == "" || *outPath == "" {
		log.Fatal("usage: d64c -mode=encode|decode -codec=d64|jaguar -in=FILE -out=FILE")
	}

	input, err := ioutil.ReadFile(*inPath)
	if err != nil {
		log.Fatalf("reading %s: %v", *inPath, err)
	}

	output, n, err := run(*mode, *codecName, input)
	if err != nil {
		log.Fatalf("%s %s: %v", *mode, *codecName, err)
	}

	if err := ioutil.WriteFile(*outPath, output[:n], 0644); err != nil {
		log.Fatalf("writing %s: %v", *outPath, err)
	}
}

func run(mode, codecName string, input []byte) (output []byte, n int, err error) {
	switch codecName {
	case "d64":
		switch mode {
		case "encode":
			output = make([]byte, len(input)*2+256)
			n, err = d64.Encode(input, output)
		case "decode":
			output = make([]byte, len(input)*32+256)
			n, err = d64.Decode(input, output)
		default:
			log.Fatalf("unknown mode %q", mode)
		}
	case "jaguar":
		switch mode {
		case "encode":
			output = make([]byte, len(input)*9/8+64)
			n, err = jaguar.Encode(input, output)
		case "decode":
			output = make([]byte, len(input)*32+256)
			n, err = jaguar.Decode(input, output)
		default:
			log.Fatalf("unknown mode %q", mode)
		}
	default:
		log.Fatalf("unknown codec %q", codecName)
	}
	return output, n, err
}
