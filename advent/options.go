package main

import (
	"flag"
	"fmt"
	"sort"

	"github.com/vaughan0/go-ini"
)

type options struct {
	input    string // empty means stdin
	copies   int
	parallel int
	brute    bool
	verbose  bool
	profile  string
}

// configKeys maps keys of a config file section to flag names.
var configKeys = map[string]string{
	"input":    "input",
	"copies":   "copies",
	"parallel": "parallel",
	"brute":    "brute",
	"verbose":  "v",
	"fgprof":   "fgprof",
}

// parseOptions parses the flags of the named solution. Values from the
// config file section (if -config is given) fill in any flag not set on
// the command line.
func parseOptions(name, section string, args []string) (options, error) {
	var opts options
	var configFile string
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.StringVar(&configFile, "config", "", "INI `file` with defaults for the other flags in section ["+section+"]")
	fs.StringVar(&opts.input, "input", "", "read records from `file` instead of stdin")
	fs.IntVar(&opts.copies, "copies", 5, "number of copies when unfolding records")
	fs.IntVar(&opts.parallel, "parallel", 1, "number of records to count concurrently")
	fs.BoolVar(&opts.brute, "brute", false, "check the answer by brute force (small inputs only)")
	fs.BoolVar(&opts.verbose, "v", false, "log each record and its count")
	fs.StringVar(&opts.profile, "fgprof", "", "write a wall-clock profile to `file`")
	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if fs.NArg() > 0 {
		return opts, fmt.Errorf("unexpected arguments: %q", fs.Args())
	}
	if configFile != "" {
		if err := applyConfig(fs, configFile, section); err != nil {
			return opts, err
		}
	}
	if opts.copies < 1 {
		return opts, fmt.Errorf("-copies must be at least 1 (got %d)", opts.copies)
	}
	return opts, nil
}

func applyConfig(fs *flag.FlagSet, configFile, section string) error {
	config, err := ini.LoadFile(configFile)
	if err != nil {
		return fmt.Errorf("error loading config (%s): %s", configFile, err)
	}
	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	values := config.Section(section)
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		name, ok := configKeys[key]
		if !ok {
			return fmt.Errorf("%s: unknown key %q in section [%s]", configFile, key, section)
		}
		if set[name] {
			continue
		}
		if err := fs.Set(name, values[key]); err != nil {
			return fmt.Errorf("%s: bad value for %s: %s", configFile, key, err)
		}
	}
	return nil
}
