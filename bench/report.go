package bench

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"

	"facette.io/natsort"
	"github.com/aquasecurity/table"
	"gopkg.in/yaml.v3"
)

var ErrUnknownFormat = errors.New("unknown report format")

// Report formats accepted by Write.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// CheckFormat returns ErrUnknownFormat unless format is accepted by Write.
func CheckFormat(format string) error {
	switch format {
	case FormatText, FormatJSON, FormatYAML:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// Sort orders results by name using natural sort order, so that
// "assoc/size=8" comes before "assoc/size=64".
func Sort(results []Result) {
	slices.SortStableFunc(results, func(a, b Result) int {
		switch {
		case natsort.Compare(a.Name, b.Name):
			return -1
		case natsort.Compare(b.Name, a.Name):
			return 1
		default:
			return 0
		}
	})
}

// Write renders results to w in the given format.
func Write(w io.Writer, format string, results []Result) error {
	switch format {
	case FormatText:
		writeTable(w, results)

		return nil
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return enc.Encode(results)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)

		if err := enc.Encode(results); err != nil {
			return err
		}

		return enc.Close()
	default:
		return CheckFormat(format)
	}
}

func writeTable(w io.Writer, results []Result) {
	tbl := table.New(w)
	tbl.SetHeaders("Name", "Structure", "Size", "Rounds", "ns/op", "allocs/round")

	for _, res := range results {
		tbl.AddRow(
			res.Name,
			string(res.Structure),
			strconv.Itoa(res.Size),
			strconv.Itoa(res.Rounds),
			strconv.FormatFloat(res.NsPerOp, 'f', 2, 64),
			strconv.FormatFloat(res.AllocsPerRound, 'f', 1, 64),
		)
	}

	tbl.Render()
}
