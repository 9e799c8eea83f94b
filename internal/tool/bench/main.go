// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

//go:build ignore

// Benchmark tool to compare performance between multiple Burrows-Wheeler
// transform implementations.
//
// Example usage:
//	$ go build -o benchmark main.go
//	$ ./benchmark \
//		-tests       fwdRate,invRate,ratio \
//		-transforms  raw,ds,ds-par,kanzi   \
//		-files       lorem.txt,random.bin  \
//		-compressors flate,xz              \
//		-sizes       1e4,1e5,1e6
//
// Each test prints one table per benchmark, with a row per input and a column
// per transform. Rates are relative to the first transform listed.
package main

import (
	"flag"
	"fmt"
	"math"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/dsnet/golib/strconv"

	"github.com/dsnet/sais/internal/tool/bench"
)

const defaultSizes = "1e4,1e5,1e6"

var (
	testToEnum = map[string]int{
		"fwdRate": bench.TestForwardRate,
		"invRate": bench.TestInverseRate,
		"ratio":   bench.TestCompressRatio,
	}
	enumToTest = map[int]string{
		bench.TestForwardRate:   "fwdRate",
		bench.TestInverseRate:   "invRate",
		bench.TestCompressRatio: "ratio",
	}
)

func defaultTests() string {
	var d []int
	for k := range enumToTest {
		d = append(d, k)
	}
	sort.Ints(d)
	var s []string
	for _, v := range d {
		s = append(s, enumToTest[v])
	}
	return strings.Join(s, ",")
}

func defaultTransforms() string {
	var s []string
	for k := range bench.Transforms {
		if k != "raw" {
			s = append(s, k)
		}
	}
	sort.Strings(s)
	return strings.Join(append([]string{"raw"}, s...), ",") // Baseline first
}

func defaultCompressors() string {
	var s []string
	for k := range bench.Compressors {
		s = append(s, k)
	}
	sort.Strings(s)
	return strings.Join(s, ",")
}

func main() {
	// Setup flag arguments.
	f0 := flag.String("tests", defaultTests(), "List of different benchmark tests")
	f1 := flag.String("transforms", defaultTransforms(), "List of transforms to benchmark")
	f2 := flag.String("compressors", defaultCompressors(), "List of compressors for the ratio test")
	f3 := flag.String("paths", "", "List of paths to search for test files")
	f4 := flag.String("files", strings.Join(bench.Generated(), ","), "List of input files to benchmark")
	f5 := flag.String("sizes", defaultSizes, "List of input sizes to benchmark")
	f6 := flag.Bool("validate", true, "Verify that every transform round trips before benchmarking")
	flag.Parse()

	// Parse the flag arguments.
	var sep = regexp.MustCompile("[,:]")
	var trs, cmps, paths, files []string
	var tests, sizes []int
	for _, s := range sep.Split(*f0, -1) {
		if _, ok := testToEnum[s]; !ok {
			panic("invalid test")
		}
		tests = append(tests, testToEnum[s])
	}
	for _, s := range sep.Split(*f1, -1) {
		if _, ok := bench.Transforms[s]; !ok {
			panic("invalid transform")
		}
		trs = append(trs, s)
	}
	for _, s := range sep.Split(*f2, -1) {
		if _, ok := bench.Compressors[s]; !ok {
			panic("invalid compressor")
		}
		cmps = append(cmps, s)
	}
	if *f3 != "" {
		paths = sep.Split(*f3, -1)
	}
	files = sep.Split(*f4, -1)
	for _, s := range sep.Split(*f5, -1) {
		var size int
		if nf, err := strconv.ParsePrefix(s, strconv.AutoParse); err == nil {
			size = int(nf)
		}
		sizes = append(sizes, size)
	}

	ts := time.Now()
	bench.Paths = paths
	if *f6 {
		validate(trs, files, sizes)
	}
	runBenchmarks(trs, cmps, files, tests, sizes)
	te := time.Now()
	fmt.Printf("RUNTIME: %v\n", te.Sub(ts))
}

func validate(trs, files []string, sizes []int) {
	for _, f := range files {
		for _, n := range sizes {
			b, err := bench.LoadInput(f, n)
			if err != nil {
				continue
			}
			for _, tr := range trs {
				if err := bench.Verify(bench.Transforms[tr], b); err != nil {
					fmt.Printf("VALIDATE: %s on %s:%d: %v\n", tr, f, n, err)
				}
			}
		}
	}
}

func runBenchmarks(trs, cmps, files []string, tests, sizes []int) {
	for _, t := range tests {
		// Each compressor of the ratio test is a separate table.
		variants := []string{""}
		if t == bench.TestCompressRatio {
			variants = cmps
		}
		for _, v := range variants {
			var results [][]bench.Result
			var names []string
			var title, suffix string

			label := enumToTest[t]
			if v != "" {
				label += ":" + v
			}
			fmt.Printf("BENCHMARK: %s\n", label)
			if len(trs) == 0 {
				fmt.Print("\tSKIP: There are no transforms available.\n\n")
				continue
			}

			// Progress ticker.
			var cnt int
			tick := func() {
				total := len(trs) * len(files) * len(sizes)
				pct := 100.0 * float64(cnt) / float64(total)
				fmt.Printf("\t[%6.2f%%] %d of %d\r", pct, cnt, total)
				cnt++
			}

			// Perform the bench. This may take some time.
			switch t {
			case bench.TestForwardRate:
				title, suffix = "MB/s", ""
				results, names = bench.BenchmarkForwardSuite(trs, files, sizes, tick)
			case bench.TestInverseRate:
				title, suffix = "MB/s", ""
				results, names = bench.BenchmarkInverseSuite(trs, files, sizes, tick)
			case bench.TestCompressRatio:
				title, suffix = "ratio", "x"
				results, names = bench.BenchmarkRatioSuite(trs, files, sizes, bench.Compressors[v], tick)
			default:
				panic("unknown test")
			}

			// Print all of the results.
			printResults(results, names, trs, title, suffix)
			fmt.Println()
		}
	}
}

func printResults(results [][]bench.Result, names, trs []string, title, suffix string) {
	// Allocate result table.
	cells := make([][]string, 1+len(names))
	for i := range cells {
		cells[i] = make([]string, 1+2*len(trs))
	}

	// Label the first row.
	cells[0][0] = "benchmark"
	for i, c := range trs {
		cells[0][1+2*i] = c + " " + title
		cells[0][2+2*i] = "delta"
	}

	// Insert all rows.
	for j, row := range results {
		cells[1+j][0] = names[j]
		for i, r := range row {
			if r.R != 0 && !math.IsNaN(r.R) && !math.IsInf(r.R, 0) {
				cells[1+j][1+2*i] = fmt.Sprintf("%.2f", r.R) + suffix
			}
			if r.D != 0 && !math.IsNaN(r.D) && !math.IsInf(r.D, 0) {
				cells[1+j][2+2*i] = fmt.Sprintf("%.2f", r.D) + "x"
			}
		}
	}

	// Compute the maximum lengths.
	maxLens := make([]int, 1+2*len(trs))
	for _, row := range cells {
		for i, s := range row {
			if maxLens[i] < len(s) {
				maxLens[i] = len(s)
			}
		}
	}

	// Print padded versions of all cells.
	for _, row := range cells {
		fmt.Print("\t")
		for i, s := range row {
			switch {
			case i == 0: // Column 0
				row[i] = s + strings.Repeat(" ", maxLens[i]-len(s))
			case i%2 == 1: // Column 1, 3, 5, 7, ...
				row[i] = strings.Repeat(" ", 6+maxLens[i]-len(s)) + s
			case i%2 == 0: // Column 2, 4, 6, 8, ...
				row[i] = strings.Repeat(" ", 2+maxLens[i]-len(s)) + s
			}
			fmt.Print(row[i])
		}
		fmt.Println()
	}
}
