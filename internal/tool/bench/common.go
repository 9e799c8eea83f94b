// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package bench compares the performance of various Burrows-Wheeler transform
// implementations with respect to forward speed, inverse speed, and how well
// the transformed output compresses.
package bench

import (
	"errors"
	"fmt"
	"hash/crc32"
	"io"
	"os"
	"path"
	"regexp"
	"runtime"
	"strings"
	"testing"

	"github.com/dsnet/golib/hashutil"
	"github.com/dsnet/golib/strconv"

	"github.com/dsnet/sais/internal/testutil"
	"github.com/dsnet/sais/internal/workers"
)

const (
	TestForwardRate = iota
	TestInverseRate
	TestCompressRatio
)

// Key holds the primary indexes of a transform, one per independently
// invertible chunk. The first entry is always the primary index of the whole
// transform.
type Key []int

// Forward computes the transform of src into dst, which has the same length.
type Forward func(dst, src []byte) (Key, error)

// Inverse reconstructs the text of the transform src into dst.
type Inverse func(dst, src []byte, key Key) error

// Compressor returns a stream compressor used to measure the ratio test.
type Compressor func(io.Writer) io.WriteCloser

type Transform struct {
	Forward Forward
	Inverse Inverse
}

var (
	Transforms  map[string]Transform
	Compressors map[string]Compressor

	// List of search paths for test files.
	Paths []string
)

func RegisterTransform(name string, fwd Forward, inv Inverse) {
	if Transforms == nil {
		Transforms = make(map[string]Transform)
	}
	Transforms[name] = Transform{fwd, inv}
}

func RegisterCompressor(name string, c Compressor) {
	if Compressors == nil {
		Compressors = make(map[string]Compressor)
	}
	Compressors[name] = c
}

func init() {
	// The identity transform is the baseline of every comparison.
	RegisterTransform("raw",
		func(dst, src []byte) (Key, error) { copy(dst, src); return Key{0}, nil },
		func(dst, src []byte, _ Key) error { copy(dst, src); return nil })
}

// BenchmarkForward benchmarks the forward transform of the given input.
func BenchmarkForward(input []byte, fwd Forward) testing.BenchmarkResult {
	return testing.Benchmark(func(b *testing.B) {
		b.StopTimer()
		if fwd == nil {
			b.Fatalf("unexpected error: nil Forward")
		}
		output := make([]byte, len(input))
		runtime.GC()
		b.StartTimer()
		for i := 0; i < b.N; i++ {
			if _, err := fwd(output, input); err != nil {
				b.Fatalf("unexpected error: %v", err)
			}
			b.SetBytes(int64(len(input)))
		}
	})
}

// BenchmarkInverse benchmarks the inverse transform of the pre-transformed
// input with the given key.
func BenchmarkInverse(input []byte, key Key, inv Inverse) testing.BenchmarkResult {
	return testing.Benchmark(func(b *testing.B) {
		b.StopTimer()
		if inv == nil {
			b.Fatalf("unexpected error: nil Inverse")
		}
		output := make([]byte, len(input))
		runtime.GC()
		b.StartTimer()
		for i := 0; i < b.N; i++ {
			if err := inv(output, input, key); err != nil {
				b.Fatalf("unexpected error: %v", err)
			}
			b.SetBytes(int64(len(input)))
		}
	})
}

type Result struct {
	R float64 // Rate (MB/s) or ratio (rawSize/compSize)
	D float64 // Delta ratio relative to primary benchmark
}

func rate(result testing.BenchmarkResult) Result {
	if result.N == 0 {
		return Result{}
	}
	us := (float64(result.T.Nanoseconds()) / 1e3) / float64(result.N)
	return Result{R: float64(result.Bytes) / us}
}

// BenchmarkForwardSuite runs the forward benchmark across all transforms,
// files, and sizes.
//
// The values returned have the following structure:
//	results: [len(files)*len(sizes)][len(trs)]Result
//	names:   [len(files)*len(sizes)]string
func BenchmarkForwardSuite(trs, files []string, sizes []int, tick func()) (results [][]Result, names []string) {
	return benchmarkSuite(trs, files, sizes, tick,
		func(input []byte, tr string) Result {
			return rate(BenchmarkForward(input, Transforms[tr].Forward))
		})
}

// BenchmarkInverseSuite runs the inverse benchmark across all transforms,
// files, and sizes. Each input is first transformed by the forward transform
// of the same implementation, and the round trip is verified.
func BenchmarkInverseSuite(trs, files []string, sizes []int, tick func()) (results [][]Result, names []string) {
	return benchmarkSuite(trs, files, sizes, tick,
		func(input []byte, tr string) Result {
			if Verify(Transforms[tr], input) != nil {
				return Result{}
			}
			output := make([]byte, len(input))
			key, err := Transforms[tr].Forward(output, input)
			if err != nil {
				return Result{}
			}
			return rate(BenchmarkInverse(output, key, Transforms[tr].Inverse))
		})
}

// BenchmarkRatioSuite measures how well the output of each transform
// compresses with cmp.
func BenchmarkRatioSuite(trs, files []string, sizes []int, cmp Compressor, tick func()) (results [][]Result, names []string) {
	return benchmarkSuite(trs, files, sizes, tick,
		func(input []byte, tr string) Result {
			output := make([]byte, len(input))
			if _, err := Transforms[tr].Forward(output, input); err != nil {
				return Result{}
			}
			n, err := compressedSize(output, cmp)
			if err != nil || n == 0 {
				return Result{}
			}
			return Result{R: float64(len(input)) / float64(n)}
		})
}

type countWriter int64

func (w *countWriter) Write(b []byte) (int, error) {
	*w += countWriter(len(b))
	return len(b), nil
}

func compressedSize(input []byte, cmp Compressor) (int64, error) {
	var cnt countWriter
	wr := cmp(&cnt)
	_, err := wr.Write(input)
	if err := wr.Close(); err != nil {
		return 0, err
	}
	return int64(cnt), err
}

// Verify checks that the transform round trips the input.
func Verify(tr Transform, input []byte) error {
	if tr.Forward == nil || tr.Inverse == nil {
		return errors.New("bench: incomplete transform")
	}
	output := make([]byte, len(input))
	key, err := tr.Forward(output, input)
	if err != nil {
		return err
	}
	got := make([]byte, len(input))
	if err := tr.Inverse(got, output, key); err != nil {
		return err
	}
	if want, sum := crc32.ChecksumIEEE(input), Checksum(got, 0); sum != want {
		return fmt.Errorf("bench: mismatching checksum: got 0x%08x, want 0x%08x", sum, want)
	}
	return nil
}

// Checksum computes the CRC-32 of b by hashing blocks of it concurrently and
// combining the partial sums. A threads of zero uses runtime.GOMAXPROCS.
func Checksum(b []byte, threads int) uint32 {
	if threads <= 0 {
		threads = runtime.GOMAXPROCS(0)
	}
	rs := workers.Split(len(b), threads, workers.MinBlock)
	sums := make([]uint32, len(rs))
	workers.Run(rs, func(i int, r workers.Range) error {
		sums[i] = crc32.ChecksumIEEE(b[r.Lo:r.Hi])
		return nil
	})
	var crc uint32
	for i, r := range rs {
		crc = hashutil.CombineCRC32(crc32.IEEE, crc, sums[i], int64(r.Len()))
	}
	return crc
}

type benchFunc func(input []byte, tr string) Result

func benchmarkSuite(trs, files []string, sizes []int, tick func(), run benchFunc) ([][]Result, []string) {
	// Allocate buffers for the result.
	d0 := len(files) * len(sizes)
	d1 := len(trs)
	results := make([][]Result, d0)
	for i := range results {
		results[i] = make([]Result, d1)
	}
	names := make([]string, d0)

	// Run the benchmark for every transform, file, and size.
	var i int
	for _, f := range files {
		for _, n := range sizes {
			b, err := LoadInput(f, n)
			name := getName(f, len(b))
			for j, tr := range trs {
				if tick != nil {
					tick()
				}
				names[i] = name
				if err == nil {
					results[i][j] = run(b, tr)
				}
				results[i][j].D = results[i][j].R / results[i][0].R
			}
			i++
		}
	}
	return results, names
}

// Generated inputs that are available without any test files.
var generators = map[string]func(n int) []byte{
	"lorem.txt":   func(n int) []byte { return testutil.ResizeData([]byte(testutil.Lorem), n) },
	"random.bin":  func(n int) []byte { return testutil.NewRand(0).Bytes(n) },
	"repeats.bin": func(n int) []byte { return testutil.Repeats(testutil.NewRand(2), n) },
	"symbols.bin": func(n int) []byte { return testutil.RandText[byte](testutil.NewRand(1), n, 0, 3) },
	"zeros.bin":   func(n int) []byte { return make([]byte, n) },
}

// Generated reports the names of the inputs that are generated in memory.
func Generated() []string {
	return []string{"lorem.txt", "random.bin", "repeats.bin", "symbols.bin", "zeros.bin"}
}

// LoadInput returns n bytes of the named input, which is either generated
// or loaded from a file relative to Paths.
func LoadInput(name string, n int) ([]byte, error) {
	if gen, ok := generators[name]; ok {
		return gen(n), nil
	}
	return testutil.LoadFile(getPath(name), n)
}

func getPath(file string) string {
	if path.IsAbs(file) {
		return file
	}
	for _, p := range Paths {
		p = path.Join(p, file)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return file
}

func getName(f string, n int) string {
	var sn string
	switch n {
	case 1e3, 1e4, 1e5, 1e6, 1e7, 1e8, 1e9, 1e10, 1e11, 1e12:
		s := fmt.Sprintf("%e", float64(n))
		re := regexp.MustCompile("\\.0*e\\+0*")
		sn = re.ReplaceAllString(s, "e")
	default:
		s := strconv.FormatPrefix(float64(n), strconv.Base1024, 2)
		sn = strings.Replace(s, ".00", "", -1)
	}
	return fmt.Sprintf("%s:%s", path.Base(f), sn)
}
