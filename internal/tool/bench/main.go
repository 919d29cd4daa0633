// Copyright 2024, The d64make Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// +build ignore

// Benchmark tool to compare the D64 and Jaguar codecs against general-purpose
// compressors on caller-supplied files.
//
// Example usage:
//	$ go run internal/tool/bench/main.go -files texture.lmp,sound.lmp
package main

import (
	"flag"
	"fmt"
	"io/ioutil"
	"os"
	"strings"
	"time"

	"github.com/klauspost/compress/flate"
	"github.com/ulikunitz/xz"

	"github.com/dsnet/golib/strconv"

	"github.com/Killertamagotchi/d64make/d64"
	"github.com/Killertamagotchi/d64make/jaguar"
)

type codec struct {
	name   string
	encode func(input []byte) ([]byte, error)
}

func main() {
	files := flag.String("files", "", "comma-separated list of files to benchmark")
	flag.Parse()

	if *files == "" {
		fmt.Fprintln(os.Stderr, "usage: bench -files a.lmp,b.lmp")
		os.Exit(1)
	}

	codecs := []codec{
		{"d64", encodeD64},
		{"jaguar", encodeJaguar},
		{"flate", encodeFlate},
		{"xz", encodeXZ},
	}

	for _, path := range strings.Split(*files, ",") {
		input, err := ioutil.ReadFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "skipping %s: %v\n", path, err)
			continue
		}
		runFile(path, input, codecs)
	}
}

func runFile(path string, input []byte, codecs []codec) {
	fmt.Printf("BENCHMARK: %s (%s)\n", path, strconv.FormatPrefix(float64(len(input)), strconv.Base1024, 2))
	for _, c := range codecs {
		ts := time.Now()
		output, err := c.encode(input)
		elapsed := time.Since(ts)
		if err != nil {
			fmt.Printf("\t%-8s FAILED: %v\n", c.name, err)
			continue
		}
		ratio := float64(len(input)) / float64(len(output))
		fmt.Printf("\t%-8s %10s  ratio=%.2fx  %v\n",
			c.name, strconv.FormatPrefix(float64(len(output)), strconv.Base1024, 2), ratio, elapsed)
	}
	fmt.Println()
}

func encodeD64(input []byte) ([]byte, error) {
	output := make([]byte, len(input)*2+256)
	n, err := d64.Encode(input, output)
	if err != nil {
		return nil, err
	}
	return output[:n], nil
}

func encodeJaguar(input []byte) ([]byte, error) {
	output := make([]byte, len(input)*9/8+64)
	n, err := jaguar.Encode(input, output)
	if err != nil {
		return nil, err
	}
	return output[:n], nil
}

func encodeFlate(input []byte) ([]byte, error) {
	var buf strings.Builder
	w, err := flate.NewWriter(&buf, flate.DefaultCompression)
	if err != nil {
		return nil, err
	}
	if _, err := w.Write(input); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return []byte(buf.String()), nil
}

func encodeXZ(input []byte) ([]byte, error) {
	var buf strings.Builder
	w, err := xz.NewWriter(&buf)
	if err != nil {
		return nil, err
	}
	if _, err := w.Write(input); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return []byte(buf.String()), nil
}
