package main

import (
	"fmt"
	"os"

	"github.com/felixge/fgprof"
)

// startProfile begins writing a pprof-format wall-clock profile to
// filename. The returned function stops profiling and closes the file.
// If filename is empty, nothing is profiled.
func startProfile(filename string) (stop func() error, err error) {
	if filename == "" {
		return func() error { return nil }, nil
	}
	f, err := os.Create(filename)
	if err != nil {
		return nil, fmt.Errorf("error creating profile: %s", err)
	}
	stopProfile := fgprof.Start(f, fgprof.FormatPprof)
	return func() error {
		if err := stopProfile(); err != nil {
			f.Close()
			return err
		}
		return f.Close()
	}, nil
}
