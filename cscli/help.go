package cscli

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"cdr.dev/slog"

	"oss.terrastruct.com/util-go/xmain"

	"oss.terrastruct.com/colorschemes/lib/go2"
	"oss.terrastruct.com/colorschemes/lib/log"
	"oss.terrastruct.com/colorschemes/lib/version"
	"oss.terrastruct.com/colorschemes/schemes"
	"oss.terrastruct.com/colorschemes/schemes/schemescatalog"
)

func help(ms *xmain.State) {
	fmt.Fprintf(ms.Stdout, `%[1]s %[2]s
Usage:
  %[1]s [--category=office,tableau] list
  %[1]s [--category=office,tableau] show id ...
  %[1]s categories
  %[1]s [--format=text|json|csv] [--category=office,tableau] export [file]

%[1]s lists the predefined chart color schemes and exports them for use by other tools.
Colors are listed in the order they are assigned to datasets.

Use - to have %[1]s write to stdout. export writes to stdout if a file is not provided.

Flags:
%[3]s

Subcommands:
  %[1]s list - Lists available color schemes
  %[1]s show id ... - Prints the colors of the given color schemes
  %[1]s categories - Lists color scheme categories
  %[1]s export [file] - Writes every color scheme to file
  %[1]s version - Prints the version
`, filepath.Base(ms.Name), version.Version, ms.Opts.Defaults())
}

func listCmd(ctx context.Context, ms *xmain.State, categories []schemes.Category) error {
	if len(ms.Opts.Flags.Args()) > 1 {
		return xmain.UsageErrorf("list subcommand accepts no arguments")
	}
	s := schemescatalog.CLIString(categories...)
	if s == "" {
		ms.Log.Warn.Printf("no color schemes found")
		return nil
	}
	fmt.Fprintf(ms.Stdout, "Available color schemes:\n%s", s)
	return nil
}

func categoriesCmd(_ context.Context, ms *xmain.State) error {
	if len(ms.Opts.Flags.Args()) > 1 {
		return xmain.UsageErrorf("categories subcommand accepts no arguments")
	}
	for _, c := range schemescatalog.Registry.Categories() {
		fmt.Fprintf(ms.Stdout, "- %s: %d color schemes\n", c, len(schemescatalog.IDs(c)))
	}
	return nil
}

func showCmd(ctx context.Context, ms *xmain.State, categories []schemes.Category) error {
	ids := ms.Opts.Flags.Args()[1:]
	if len(ids) == 0 {
		return xmain.UsageErrorf("show must be passed at least one color scheme id")
	}

	var ps []schemes.Palette
	for _, id := range ids {
		p, err := findPalette(id, categories)
		if err != nil {
			return xmain.UsageErrorf("%v. The available options are:\n%s", err, schemescatalog.CLIString(categories...))
		}
		ps = append(ps, p)
	}

	for i, p := range ps {
		log.Debug(ctx, "showing color scheme", slog.F("id", p.ID), slog.F("category", p.Category))
		if i > 0 {
			fmt.Fprintln(ms.Stdout)
		}
		fmt.Fprintf(ms.Stdout, "%s (%s)\n", p.ID, p.Category)
		width := go2.Max(len(strconv.Itoa(len(p.Colors)-1)), 2)
		for j, c := range p.Colors {
			fmt.Fprintf(ms.Stdout, "  %*d %s rgb(%d, %d, %d)\n", width, j, c.Hex(), c.R, c.G, c.B)
		}
	}
	return nil
}

// findPalette honors --category when it is set.
func findPalette(id string, categories []schemes.Category) (schemes.Palette, error) {
	if len(categories) == 0 {
		return schemescatalog.Find(id)
	}
	var err error
	for _, c := range categories {
		var p schemes.Palette
		p, err = schemescatalog.Lookup(c, id)
		if err == nil {
			return p, nil
		}
	}
	names := make([]string, len(categories))
	for i, c := range categories {
		names[i] = string(c)
	}
	if len(categories) == 1 {
		return schemes.Palette{}, err
	}
	return schemes.Palette{}, fmt.Errorf("color scheme %q not found in categories %s", id, strings.Join(names, ", "))
}
