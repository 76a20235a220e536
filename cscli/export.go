package cscli

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"cdr.dev/slog"

	"oss.terrastruct.com/util-go/xdefer"
	"oss.terrastruct.com/util-go/xjson"
	"oss.terrastruct.com/util-go/xmain"

	"oss.terrastruct.com/colorschemes/lib/log"
	"oss.terrastruct.com/colorschemes/schemes"
	"oss.terrastruct.com/colorschemes/schemes/schemescatalog"
)

type format string

const (
	formatText format = "text"
	formatJSON format = "json"
	formatCSV  format = "csv"
)

func parseFormat(s string) (format, error) {
	switch f := format(strings.ToLower(s)); f {
	case formatText, formatJSON, formatCSV:
		return f, nil
	}
	return "", fmt.Errorf("unsupported format %q. The available options are: text, json, csv", s)
}

func exportCmd(ctx context.Context, ms *xmain.State, f format, categories []schemes.Category) (err error) {
	defer xdefer.Errorf(&err, "failed to export")

	outputPath := "-"
	switch len(ms.Opts.Flags.Args()) {
	case 1:
	case 2:
		outputPath = ms.Opts.Flags.Arg(1)
	default:
		return xmain.UsageErrorf("export accepts at most one output path")
	}
	if outputPath != "-" {
		outputPath = ms.AbsPath(outputPath)
	}

	ps := schemescatalog.Registry.Palettes(categories...)
	log.Debug(ctx, "exporting color schemes", slog.F("format", f), slog.F("count", len(ps)), slog.F("output", outputPath))

	b, err := encode(f, ps)
	if err != nil {
		return err
	}
	err = ms.WritePath(outputPath, b)
	if err != nil {
		return err
	}
	if outputPath != "-" {
		ms.Log.Success.Printf("successfully exported %d color schemes to %v", len(ps), outputPath)
	}
	return nil
}

func encode(f format, ps []schemes.Palette) ([]byte, error) {
	switch f {
	case formatJSON:
		b := xjson.Marshal(ps)
		if len(b) == 0 || b[len(b)-1] != '\n' {
			b = append(b, '\n')
		}
		return b, nil
	case formatCSV:
		return encodeCSV(ps)
	case formatText:
		return encodeText(ps), nil
	}
	return nil, fmt.Errorf("unsupported format %q", f)
}

// encodeCSV writes one row per color so that order survives spreadsheets.
func encodeCSV(ps []schemes.Palette) ([]byte, error) {
	b := &bytes.Buffer{}
	w := csv.NewWriter(b)
	err := w.Write([]string{"id", "category", "index", "color"})
	if err != nil {
		return nil, err
	}
	for _, p := range ps {
		for i, c := range p.Colors {
			err = w.Write([]string{p.ID, string(p.Category), strconv.Itoa(i), c.Hex()})
			if err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	return b.Bytes(), w.Error()
}

func encodeText(ps []schemes.Palette) []byte {
	b := &bytes.Buffer{}
	for _, p := range ps {
		fmt.Fprintf(b, "%s\t%s\t%s\n", p.ID, p.Category, strings.Join(p.Hex(), " "))
	}
	return b.Bytes()
}
