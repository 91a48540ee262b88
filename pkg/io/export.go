package io

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/matzehuels/critpath/pkg/cpm"
	"github.com/matzehuels/critpath/pkg/errors"
)

// WriteJSON encodes a schedule result as indented JSON and writes it to w.
func WriteJSON(res *cpm.Result, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(res); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

var (
	aonHeader = []string{"id", "label", "duration", "es", "ef", "ls", "lf", "slack", "critical", "wave"}
	aoaHeader = []string{"from", "to", "duration", "earliest_start", "latest_finish", "slack", "critical"}
)

// WriteCSV writes a schedule result as CSV with a header row.
//
// AON results have one row per task. AOA results have one row per activity,
// with the earliest time of its start event and the latest time of its end
// event.
func WriteCSV(res *cpm.Result, w io.Writer) error {
	cw := csv.NewWriter(w)

	if res.Mode == cpm.ModeAOA {
		if err := cw.Write(aoaHeader); err != nil {
			return err
		}
		for _, a := range res.Activities {
			from, _ := res.Event(a.From)
			to, _ := res.Event(a.To)
			row := []string{
				strconv.Itoa(a.From), strconv.Itoa(a.To), formatFloat(a.Duration),
				formatFloat(from.Earliest), formatFloat(to.Latest),
				formatFloat(a.Slack), strconv.FormatBool(a.Critical),
			}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
	} else {
		if err := cw.Write(aonHeader); err != nil {
			return err
		}
		for _, t := range res.Tasks {
			row := []string{
				strconv.Itoa(t.ID), t.Label, formatFloat(t.Duration),
				formatFloat(t.ES), formatFloat(t.EF), formatFloat(t.LS), formatFloat(t.LF),
				formatFloat(t.Slack), strconv.FormatBool(t.Critical), strconv.Itoa(t.Wave),
			}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
	}

	cw.Flush()
	return cw.Error()
}

// ExportResult writes res to the file at path. The format is chosen from
// the extension: .json or .csv.
func ExportResult(res *cpm.Result, path string) error {
	var write func(*cpm.Result, io.Writer) error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		write = WriteJSON
	case ".csv":
		write = WriteCSV
	default:
		return errors.New(errors.ErrCodeInvalidFormat,
			"cannot infer export format from %q (use .json or .csv)", path)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := write(res, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
