// Package bench compares association lists against the built-in map and an
// ordered tree map on the
// insert-if-absent workload that association lists are meant for: growing a
// small keyed collection one key at a time.
package bench

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"github.com/amp-labs/assoc/assoc"
	"github.com/amp-labs/assoc/compare"
	"github.com/amp-labs/assoc/logger"
	"github.com/amp-labs/assoc/treemap"
)

var (
	ErrInvalidConfig = errors.New("invalid bench config")
	ErrChecksum      = errors.New("workload checksum mismatch")
)

// Structure names a data structure under test.
type Structure string

const (
	// StructureAssoc is assoc.List with == key matching.
	StructureAssoc Structure = "assoc"
	// StructureAssocFunc is assoc.ListFunc with an equality function.
	StructureAssocFunc Structure = "assocfunc"
	// StructureGoMap is the built-in map.
	StructureGoMap Structure = "gomap"
	// StructureTreeMap is the red-black tree in treemap.
	StructureTreeMap Structure = "treemap"
)

// Structures lists every structure Run measures, in measurement order.
var Structures = []Structure{ //nolint:gochecknoglobals
	StructureAssoc,
	StructureAssocFunc,
	StructureGoMap,
	StructureTreeMap,
}

// ctxCheckInterval is how many rounds run between cancellation checks.
const ctxCheckInterval = 64

// Config controls a Run.
type Config struct {
	// Sizes are the numbers of distinct keys to insert per round.
	Sizes []int
	// Rounds is how many times each workload is repeated per size.
	Rounds int
	// Logger receives per-result debug logs. Nil means logger.Get(ctx).
	Logger *slog.Logger
}

// Validate reports the first problem with the config.
func (c Config) Validate() error {
	if len(c.Sizes) == 0 {
		return fmt.Errorf("%w: no sizes given", ErrInvalidConfig)
	}

	for _, size := range c.Sizes {
		if size < 1 {
			return fmt.Errorf("%w: size %d must be positive", ErrInvalidConfig, size)
		}
	}

	if c.Rounds < 1 {
		return fmt.Errorf("%w: rounds %d must be positive", ErrInvalidConfig, c.Rounds)
	}

	return nil
}

// Result is the measurement of one structure at one size.
type Result struct {
	Name           string    `json:"name"             yaml:"name"`
	Structure      Structure `json:"structure"        yaml:"structure"`
	Size           int       `json:"size"             yaml:"size"`
	Rounds         int       `json:"rounds"           yaml:"rounds"`
	NsPerOp        float64   `json:"ns_per_op"        yaml:"ns_per_op"`        //nolint:tagliatelle
	AllocsPerRound float64   `json:"allocs_per_round" yaml:"allocs_per_round"` //nolint:tagliatelle
}

// Run measures every structure at every configured size and returns the
// results in natural name order. It stops early with ctx.Err() when the
// context is cancelled.
func Run(ctx context.Context, cfg Config) ([]Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log := cfg.Logger
	if log == nil {
		log = logger.Get(ctx)
	}

	results := make([]Result, 0, len(Structures)*len(cfg.Sizes))

	for _, structure := range Structures {
		for _, size := range cfg.Sizes {
			res, err := measure(ctx, structure, size, cfg.Rounds)
			if err != nil {
				return nil, err
			}

			log.Debug("measured workload",
				"name", res.Name,
				"ns_per_op", res.NsPerOp,
				"allocs_per_round", res.AllocsPerRound)

			results = append(results, res)
		}
	}

	Sort(results)

	return results, nil
}

func measure(ctx context.Context, structure Structure, size, rounds int) (Result, error) {
	run := workload(structure)
	want := checksum(size)

	var before, after runtime.MemStats

	runtime.ReadMemStats(&before)
	start := time.Now()

	for round := range rounds {
		if round%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return Result{}, err
			}
		}

		if got := run(size); got != want {
			return Result{}, fmt.Errorf("%w: %s size %d: got %d, want %d", ErrChecksum, structure, size, got, want)
		}
	}

	elapsed := time.Since(start)

	runtime.ReadMemStats(&after)

	// Each round requests every key twice: once vacant, once occupied.
	ops := float64(rounds) * float64(2*size)

	return Result{
		Name:           fmt.Sprintf("%s/size=%d", structure, size),
		Structure:      structure,
		Size:           size,
		Rounds:         rounds,
		NsPerOp:        float64(elapsed.Nanoseconds()) / ops,
		AllocsPerRound: float64(after.Mallocs-before.Mallocs) / float64(rounds),
	}, nil
}

// checksum is the sum of 2*i for i in [0, size).
func checksum(size int) int {
	return size * (size - 1)
}

// workload returns a function that builds a fresh structure with size keys
// through insert-if-absent, then requests every key again and sums the values
// seen on the second pass.
func workload(structure Structure) func(size int) int {
	switch structure {
	case StructureAssoc:
		return fillList
	case StructureAssocFunc:
		return fillListFunc
	case StructureGoMap:
		return fillGoMap
	case StructureTreeMap:
		return fillTreeMap
	default:
		panic(fmt.Sprintf("bench: unknown structure %q", structure))
	}
}

func fillList(size int) int {
	var list assoc.List[int, int]

	for i := range size {
		list.Entry(i).OrInsert(2 * i)
	}

	sum := 0

	for i := range size {
		sum += *list.Entry(i).OrInsert(-1)
	}

	return sum
}

func fillListFunc(size int) int {
	list := assoc.NewListFunc[int, int](compare.Equal[int]())

	for i := range size {
		list.Entry(i).OrInsert(2 * i)
	}

	sum := 0

	for i := range size {
		sum += *list.Entry(i).OrInsert(-1)
	}

	return sum
}

func fillGoMap(size int) int {
	m := map[int]int{}

	for i := range size {
		if _, ok := m[i]; !ok {
			m[i] = 2 * i
		}
	}

	sum := 0

	for i := range size {
		v, ok := m[i]
		if !ok {
			v = -1
			m[i] = v
		}

		sum += v
	}

	return sum
}

func fillTreeMap(size int) int {
	var tree treemap.Map[int, int]

	for i := range size {
		tree.GetOrInsert(i, 2*i)
	}

	sum := 0

	for i := range size {
		sum += *tree.GetOrInsert(i, -1)
	}

	return sum
}
