// Package aoc are quick & dirty utilities for solving the Advent of Code
// 2022 puzzles: a runner that checks every part against the sample in its
// doc comment before running the real input, and the grid, point and
// container helpers the puzzles share.
package aoc

import (
	"bufio"
	"bytes"
	"flag"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"golang.org/x/exp/maps"
)

// Log is the logger used by the runner and by Puzzle.Debug.
var Log = logrus.New()

type sample struct {
	input string
	want  string
}

var sampleRx = regexp.MustCompile(`(?s)^\s*want=([^\n]*)(?:\n\n(.+\n))?`)

func parseSample(funcName, comment string) (sample, bool) {
	text := strings.TrimPrefix(comment, "//")
	if v, ok := strings.CutPrefix(text, "/*"); ok {
		text = strings.TrimSuffix(v, "*/")
	}
	m := sampleRx.FindStringSubmatch(text)
	if m == nil {
		var zero sample
		return zero, false
	}
	s := sample{
		want:  strings.TrimSpace(m[1]),
		input: m[2],
	}
	if strings.HasPrefix(s.want, `"`) {
		want, err := strconv.Unquote(s.want)
		if err != nil {
			Log.Fatalf("%s: bad quoted want %s: %v", funcName, s.want, err)
		}
		s.want = want
	}
	return s, true
}

// extractSamples parses every .go file in src, in lexical order, and returns
// the samples found in method doc comments keyed by method name. A sample
// without an input inherits the input of the previous sample.
func extractSamples(src fs.FS) map[string]sample {
	names, err := fs.Glob(src, "*.go")
	if err != nil {
		Log.Fatalf("listing sources: %v", err)
	}
	slices.Sort(names)
	var lastInput string
	samples := make(map[string]sample)
	fset := token.NewFileSet()
	for _, name := range names {
		body := MustGet(fs.ReadFile(src, name))
		f, err := parser.ParseFile(fset, name, body, parser.ParseComments)
		if err != nil {
			Log.Fatalf("parsing %s to extract samples: %v", name, err)
		}
		for _, d := range f.Decls {
			fd, ok := d.(*ast.FuncDecl)
			if !ok || fd.Doc == nil {
				continue
			}
			funcName := fd.Name.Name
			for _, c := range fd.Doc.List {
				s, ok := parseSample(funcName, c.Text)
				if ok {
					s.input = Or(s.input, lastInput)
					samples[funcName] = s
					lastInput = s.input
					break
				}
			}
		}
	}
	return samples
}

type Puzzle struct {
	year       int
	day        day
	SampleMode bool

	solver  partSolver
	samples map[string]sample
}

// Input returns the sample input in sample mode and the contents of
// <input dir>/<year>/<day>.input otherwise.
func (p *Puzzle) Input() []byte {
	if p.SampleMode {
		return []byte(p.Sample().input)
	}
	return readInput(filepath.Join(flagInputDir, fmt.Sprint(p.year), fmt.Sprintf("%d.input", p.day.day)))
}

// Text returns the input with trailing newlines removed.
func (p *Puzzle) Text() string {
	return strings.TrimRight(string(p.Input()), "\n")
}

// Lines returns the lines of the input.
func (p *Puzzle) Lines() []string {
	var lines []string
	p.ForLines(func(line string) {
		lines = append(lines, line)
	})
	return lines
}

// Sections returns the blank-line separated sections of the input.
func (p *Puzzle) Sections() []string {
	return strings.Split(p.Text(), "\n\n")
}

func (p *Puzzle) Scanner() *bufio.Scanner {
	return bufio.NewScanner(bytes.NewReader(p.Input()))
}

func (p *Puzzle) ForLinesY(onLine func(int, string)) {
	s := p.Scanner()
	y := -1
	for s.Scan() {
		y++
		onLine(y, s.Text())
	}
	if err := s.Err(); err != nil {
		Log.Fatal(err)
	}
}

func (p *Puzzle) log() *logrus.Entry {
	return Log.WithFields(logrus.Fields{
		"day":    p.day.day,
		"part":   p.solver.Part,
		"sample": p.SampleMode,
	})
}

func (p *Puzzle) Debug(v ...any) {
	p.log().Debug(v...)
}

func (p *Puzzle) Debugf(format string, args ...any) {
	if p.SampleMode {
		p.log().Debugf(format, args...)
	}
}

// ForLines calls onLine for each line of input.
func (p *Puzzle) ForLines(onLine func(line string)) {
	p.ForLinesY(func(_ int, line string) { onLine(line) })
}

func (p *Puzzle) Sample() sample {
	sample, ok := p.samples[p.solver.Name]
	if !ok {
		Log.Fatalf("no sample found for %v", p.solver.Name)
	}
	return sample
}

type day struct {
	day   int
	parts []partSolver
}

type partSolver struct {
	fn   func() any
	Part string
	Name string
}

// extractMethods registers a struct with methods named D{day}p{part} for
// each day/part of Advent of Code. The methods must have the signature
// func() any.
func extractMethods(x any) map[int]day {
	rx := regexp.MustCompile(`^D(\d+)p(\d+.*)$`)
	v := reflect.ValueOf(x).Elem()
	if v.Kind() != reflect.Struct {
		Log.Fatalf("Register: got %T; want struct", x)
	}
	vt := v.Type()
	byDays := map[int][]partSolver{}
	for i := 0; i < vt.NumMethod(); i++ {
		mt := vt.Method(i)
		mn := mt.Name
		matches := rx.FindStringSubmatch(mn)
		if len(matches) != 3 {
			continue
		}
		m := v.Method(i).Interface().(func() any)
		day, part := matches[1], matches[2]
		d := Int(day)
		byDays[d] = append(byDays[d], partSolver{
			fn:   m,
			Part: part,
			Name: mn,
		})
	}
	days := make(map[int]day, len(byDays))
	for d, parts := range byDays {
		slices.SortFunc(parts, func(i, j partSolver) int {
			return strings.Compare(i.Part, j.Part)
		})
		days[d] = day{parts: parts, day: d}
	}
	return days
}

var (
	flagCurDay     int
	flagPart       string
	flagDebug      bool
	flagOnlySample bool
	flagSkipSample bool
	flagInputDir   string
)

func init() {
	flag.IntVar(&flagCurDay, "day", -1, "day to run")
	flag.BoolVar(&flagOnlySample, "sample", false, "only run sample")
	flag.BoolVar(&flagSkipSample, "skip-sample", false, "skip sample")
	flag.StringVar(&flagPart, "part", "", "part to run")
	flag.BoolVar(&flagDebug, "debug", false, "debug mode; defaults to $AOC_DEBUG")
	flag.StringVar(&flagInputDir, "input", ".", "directory holding <year>/<day>.input; defaults to $AOC_INPUT_DIR")
}

var initFlags = sync.OnceFunc(func() {
	// A missing .env is fine; the flags keep their defaults.
	if err := godotenv.Load(); err == nil {
		Log.Debug("loaded .env")
	}
	if dir := os.Getenv("AOC_INPUT_DIR"); dir != "" {
		flagInputDir = dir
	}
	if v := os.Getenv("AOC_DEBUG"); v != "" && v != "0" {
		flagDebug = true
	}
	flag.Parse()
	if flagDebug {
		Log.SetLevel(logrus.DebugLevel)
	}
})

func readInput(filename string) []byte {
	f, err := os.ReadFile(filename)
	if err != nil {
		Log.Fatalf("reading input: %v", err)
	}
	return f
}

func bind(slvr any, p *Puzzle) {
	sr := reflect.ValueOf(slvr)
	sr.Elem().FieldByName("Puzzle").Set(reflect.ValueOf(p))
}

func runDay(slvr any, year int, day day, samples map[string]sample) {
	p := Puzzle{
		year:    year,
		day:     day,
		samples: samples,
	}
	fmt.Println("Running day", day.day)
	bind(slvr, &p)
	for _, ps := range day.parts {
		p.solver = ps
		if flagPart != "" && ps.Part != flagPart {
			continue
		}

		for _, sm := range []bool{true, false} {
			if !sm && flagOnlySample {
				continue
			} else if sm && flagSkipSample {
				continue
			}
			p.SampleMode = sm
			if !sm {
				// Prime the input.
				p.Input()
			}
			t0 := time.Now()
			got := ps.fn()
			if sm {
				sample := p.Sample()
				if fmt.Sprint(got) != sample.want {
					fmt.Printf("part %s: %v ❌; want %v\n", ps.Part, got, sample.want)
					return
				}
				fmt.Printf("part %s sample: %v ✅ (%v) \n", ps.Part, got, time.Since(t0).Round(time.Microsecond))
			} else {
				fmt.Printf("part %s: %v (took %v) \n", ps.Part, got, time.Since(t0).Round(time.Microsecond))
			}
		}
	}
}

// Run runs the D{day}p{part} methods of slvr, which must be a pointer to a
// struct embedding *Puzzle. Samples are read from the doc comments of the
// .go files in src.
func Run(year int, src fs.FS, slvr any) {
	samples := extractSamples(src)
	days := extractMethods(slvr)
	initFlags()

	if flagCurDay != -1 {
		day, ok := days[flagCurDay]
		if !ok {
			Log.Fatalf("no day %d", flagCurDay)
		}
		runDay(slvr, year, day, samples)
		return
	}

	dayNums := maps.Keys(days)
	slices.Sort(dayNums)
	for _, day := range dayNums {
		runDay(slvr, year, days[day], samples)
		fmt.Println()
	}
}

// SampleResult is the outcome of running one part against its sample.
type SampleResult struct {
	Name string // method name, e.g. D22p2
	Got  string
	Want string
}

// SampleResults runs every D{day}p{part} method of slvr against the sample
// in its doc comment, in day then part order. Methods without a sample are
// skipped.
func SampleResults(year int, src fs.FS, slvr any) []SampleResult {
	samples := extractSamples(src)
	days := extractMethods(slvr)
	dayNums := maps.Keys(days)
	slices.Sort(dayNums)

	var out []SampleResult
	for _, d := range dayNums {
		p := Puzzle{
			year:       year,
			day:        days[d],
			samples:    samples,
			SampleMode: true,
		}
		bind(slvr, &p)
		for _, ps := range days[d].parts {
			s, ok := samples[ps.Name]
			if !ok {
				continue
			}
			p.solver = ps
			out = append(out, SampleResult{
				Name: ps.Name,
				Got:  fmt.Sprint(ps.fn()),
				Want: s.want,
			})
		}
	}
	return out
}

// MustDo panics if err is non-nil.
func MustDo(err error) {
	if err != nil {
		panic(err)
	}
}

// MustGet returns v as is. It panics if err is non-nil.
func MustGet[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func TrimPrefix(s, prefix string) string {
	s1, ok := strings.CutPrefix(s, prefix)
	if !ok {
		Log.Fatalf("bad prefix: %q", s)
	}
	return s1
}

// Or returns the first non-zero element of list, or else returns the zero T.
func Or[T any](list ...T) T {
	for _, v := range list {
		if !reflect.ValueOf(v).IsZero() {
			return v
		}
	}
	var zero T
	return zero
}

func InitMap[K comparable, V any](m *map[K]V) {
	if *m == nil {
		*m = make(map[K]V)
	}
}

// AnyKey returns any key from the map.
// It panics if the map is empty.
func AnyKey[K comparable, V any](m map[K]V) K {
	for k := range m {
		return k
	}
	panic("bad")
}
