package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/k0kubun/pp/v3"

	"github.com/sqldef/dtcast/cast"
	"github.com/sqldef/dtcast/catalog"
	"github.com/sqldef/dtcast/civiltime"
	"github.com/sqldef/dtcast/token"
	"github.com/sqldef/dtcast/util"
)

var version string

type options struct {
	Format  string `short:"f" long:"format" description:"Format string, e.g. YYYY-MM-DD HH24:MI:SS" required:"true"`
	Input   string `short:"i" long:"input" description:"Input string to parse; when omitted, renders the current time instead"`
	Target  string `long:"target" description:"DATE, TIME, DATETIME, or TIMESTAMP" default:"TIMESTAMP"`
	Zone    string `short:"z" long:"zone" description:"IANA time zone name" default:"UTC"`
	Aliases string `long:"aliases" description:"YAML file mapping alias names to format strings"`
	Debug   bool   `long:"debug" description:"Dump the tokenized element list"`
	Help    bool   `long:"help" description:"Show this help"`
	Version bool   `long:"version" description:"Show this version"`
}

// parseOptions builds the go-flags parser, runs it, then checks for
// help/version before touching anything else.
func parseOptions(args []string) *options {
	var opts options
	parser := flags.NewParser(&opts, flags.None)
	parser.Usage = "[option...]"
	if _, err := parser.ParseArgs(args); err != nil {
		log.Fatal(err)
	}

	if opts.Help {
		parser.WriteHelp(os.Stdout)
		os.Exit(0)
	}
	if opts.Version {
		fmt.Println(version)
		os.Exit(0)
	}
	return &opts
}

func targetType(name string) (catalog.TargetType, error) {
	switch name {
	case "DATE":
		return catalog.TargetDate, nil
	case "TIME":
		return catalog.TargetTime, nil
	case "DATETIME":
		return catalog.TargetDatetime, nil
	case "TIMESTAMP":
		return catalog.TargetTimestamp, nil
	default:
		return 0, fmt.Errorf("unrecognized target type %q", name)
	}
}

func main() {
	util.InitSlog()
	opts := parseOptions(os.Args[1:])

	format := opts.Format
	if opts.Aliases != "" {
		resolved, err := resolveAlias(opts.Aliases, format)
		if err != nil {
			log.Fatal(err)
		}
		format = resolved
	}

	target, err := targetType(opts.Target)
	if err != nil {
		log.Fatal(err)
	}

	loc, err := civiltime.LoadZone(opts.Zone)
	if err != nil {
		log.Fatal(err)
	}

	if opts.Debug {
		elements, err := token.Tokenize(format)
		if err != nil {
			log.Fatal(err)
		}
		pp.Println(elements)
	}

	now := time.Now().In(loc)

	if opts.Input == "" {
		if err := cast.ValidateFormatStringForFormatting(format, target); err != nil {
			log.Fatal(err)
		}
		out, err := cast.CastFormatTimestampToString(format, now, loc)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(out)
		return
	}

	if err := cast.ValidateFormatStringForParsing(format, target); err != nil {
		log.Fatal(err)
	}
	instant, err := cast.CastStringToTimestamp(format, opts.Input, loc, now)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(instant.Format(time.RFC3339Nano))
}
