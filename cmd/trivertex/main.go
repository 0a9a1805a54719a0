// SPDX-License-Identifier: MIT

// Command trivertex plays a scripted trivertex game and prints the results.
//
// Usage:
//
//	trivertex [-grid 4] [-cell 100] [-seed N] [-colors red,blue] [script-file]
//
// With no script file the script is read from stdin. An image block in the
// script wins over -seed; without either the reference image is used.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/plan-systems/klog"

	"github.com/katalvlaran/trivertex/game"
	"github.com/katalvlaran/trivertex/grid"
	"github.com/katalvlaran/trivertex/script"
)

func main() {
	gridSize := flag.Int("grid", 4, "cells per side")
	cellSize := flag.Float64("cell", 100, "cell size in board units")
	seed := flag.Int64("seed", 0, "randomize the image with this seed (0 = reference image)")
	colors := flag.String("colors", "red,blue", "palette for -seed, comma separated")

	if err := initLogging(); err != nil {
		fmt.Fprintln(os.Stderr, "trivertex:", err)
		os.Exit(2)
	}
	flag.Parse()

	err := run(*gridSize, *cellSize, *seed, *colors, flag.Arg(0), os.Stdout)
	if err != nil {
		klog.Errorf("trivertex: %v", err)
	}
	klog.Flush()
	if err != nil {
		os.Exit(1)
	}
}

// initLogging registers the klog flags (-v, -logtostderr, ...) on the command
// line with stderr logging at verbosity 2 as defaults; flag.Parse may override them.
func initLogging() error {
	klog.InitFlags(nil)
	for name, value := range map[string]string{"logtostderr": "true", "v": "2"} {
		if err := flag.Set(name, value); err != nil {
			return errors.Wrapf(err, "klog flag -%s", name)
		}
	}
	klog.SetFormatter(&klog.FmtConstWidth{
		FileNameCharWidth: 16,
		UseColor:          true,
	})
	return nil
}

func run(gridSize int, cellSize float64, seed int64, colors, path string, out io.Writer) error {
	name, src, err := readScript(path)
	if err != nil {
		return err
	}
	sc, err := script.Parse(name, src)
	if err != nil {
		return err
	}

	var opts []game.Option
	table, ok, err := sc.Image()
	switch {
	case err != nil:
		return err
	case ok:
		opts = append(opts, game.WithColorTable(table))
		gridSize = table.Size()
	case seed != 0:
		opts = append(opts, game.WithRandomColors(seed, palette(colors)...))
	}

	s, err := game.Initialize(gridSize, cellSize, opts...)
	if err != nil {
		return err
	}
	if err = script.Run(s, sc, out); err != nil {
		return err
	}
	if s.Complete() {
		fmt.Fprintln(out, "board complete")
	}
	return nil
}

func readScript(path string) (name, src string, err error) {
	var buf []byte
	if path == "" || path == "-" {
		name = "stdin"
		buf, err = io.ReadAll(os.Stdin)
	} else {
		name = path
		buf, err = os.ReadFile(path)
	}
	if err != nil {
		return "", "", errors.Wrapf(err, "reading %s", name)
	}
	return name, string(buf), nil
}

func palette(csv string) []grid.Color {
	var out []grid.Color
	for _, c := range strings.Split(csv, ",") {
		if c = strings.TrimSpace(c); c != "" {
			out = append(out, grid.Color(c))
		}
	}
	return out
}
