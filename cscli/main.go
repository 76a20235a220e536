package cscli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"cdr.dev/slog"
	"github.com/spf13/pflag"

	"oss.terrastruct.com/util-go/xmain"

	"oss.terrastruct.com/colorschemes/lib/log"
	"oss.terrastruct.com/colorschemes/lib/version"
	"oss.terrastruct.com/colorschemes/schemes"
)

func Run(ctx context.Context, ms *xmain.State) (err error) {
	debugFlag, err := ms.Opts.Bool("DEBUG", "debug", "d", false, "print debug logs.")
	if err != nil {
		return err
	}
	categoryFlag := ms.Opts.String("COLORSCHEMES_CATEGORY", "category", "c", "", "only include color schemes of the given categories, comma separated (office, tableau). Default is all categories")
	formatFlag := ms.Opts.String("COLORSCHEMES_FORMAT", "format", "f", string(formatText), "export format (text, json, csv)")
	versionFlag, err := ms.Opts.Bool("", "version", "v", false, "get the version")
	if err != nil {
		return err
	}

	err = ms.Opts.Flags.Parse(ms.Opts.Args)
	if !errors.Is(err, pflag.ErrHelp) && err != nil {
		return xmain.UsageErrorf("failed to parse flags: %v", err)
	}

	if errors.Is(err, pflag.ErrHelp) {
		help(ms)
		return nil
	}

	ctx = log.Stderr(ctx, ms.Stderr, *debugFlag)

	categories, err := parseCategories(*categoryFlag)
	if err != nil {
		return xmain.UsageErrorf("-c[ategory] %v. The available options are: %s", err, categoriesString())
	}
	if len(categories) > 0 {
		log.Debug(ctx, "filtering color schemes", slog.F("categories", categories))
	}

	if len(ms.Opts.Flags.Args()) == 0 {
		if *versionFlag {
			fmt.Fprintln(ms.Stdout, version.Version)
			return nil
		}
		help(ms)
		return nil
	}

	switch ms.Opts.Flags.Arg(0) {
	case "list":
		return listCmd(ctx, ms, categories)
	case "show":
		return showCmd(ctx, ms, categories)
	case "categories":
		return categoriesCmd(ctx, ms)
	case "export":
		f, err := parseFormat(*formatFlag)
		if err != nil {
			return xmain.UsageErrorf("-f[ormat] %v", err)
		}
		return exportCmd(ctx, ms, f, categories)
	case "version":
		if len(ms.Opts.Flags.Args()) > 1 {
			return xmain.UsageErrorf("version subcommand accepts no arguments")
		}
		fmt.Fprintln(ms.Stdout, version.Version)
		return nil
	case "help":
		help(ms)
		return nil
	default:
		return xmain.UsageErrorf("unknown subcommand %q", ms.Opts.Flags.Arg(0))
	}
}

func parseCategories(s string) ([]schemes.Category, error) {
	var out []schemes.Category
	for _, part := range strings.Split(s, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		c, err := schemes.ParseCategory(part)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

func categoriesString() string {
	var names []string
	for _, c := range schemes.Categories {
		names = append(names, string(c))
	}
	return strings.Join(names, ", ")
}
