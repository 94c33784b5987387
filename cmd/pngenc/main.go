// Copyright 2020 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"strings"

	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/subcmd"
	"cloudeng.io/errors"
	"github.com/schollz/progressbar/v2"
	"golang.org/x/crypto/ssh/terminal"

	"github.com/cosnicolaou/pngenc"
	"github.com/cosnicolaou/pngenc/internal/testimage"
)

type commonFlags struct {
	Variant     string `subcmd:"variant,V4MC,'encoder variant: V2, V3, V4 or V4MC'"`
	Workers     int    `subcmd:"workers,,'V4MC worker count, 0 means runtime.NumCPU()'"`
	Bands       int    `subcmd:"bands,,'V4MC row band count, 0 means one per worker'"`
	ProgressBar bool   `subcmd:"progress,true,'display a progress bar'"`
}

type encodeFlags struct {
	commonFlags
}

type patternFlags struct {
	commonFlags
	Pattern string `subcmd:"pattern,checkerboard,'solid, checkerboard, vertical-strip, horizontal-strip, random or single-pixel'"`
	Width   int    `subcmd:"width,32,'raster width for generated patterns'"`
	Height  int    `subcmd:"height,32,'raster height for generated patterns'"`
	Output  string `subcmd:"output,,'output .png path'"`
}

var cmdSet *subcmd.CommandSet

func init() {
	defaults := map[string]interface{}{
		"workers": runtime.GOMAXPROCS(-1),
	}

	encodeCmd := subcmd.NewCommand("encode",
		subcmd.MustRegisterFlagStruct(&encodeFlags{}, defaults, nil),
		encode, subcmd.AtLeastNArguments(1))
	encodeCmd.Document(`encode one or more PPM (P6) files to PNG, one output per input`)

	benchCmd := subcmd.NewCommand("bench",
		subcmd.MustRegisterFlagStruct(&patternFlags{}, defaults, nil),
		bench, subcmd.ExactlyNumArguments(0))
	benchCmd.Document(`generate a boundary-case test pattern and encode it, for manual inspection and timing`)

	cmdSet = subcmd.NewCommandSet(encodeCmd, benchCmd)
	cmdSet.Document(`encode in-memory RGB rasters to PNG using a from-scratch, parallelized encoder`)
}

func main() {
	cmdSet.MustDispatch(context.Background())
}

func variantFromFlag(name string) (pngenc.Variant, error) {
	switch strings.ToUpper(name) {
	case "V2":
		return pngenc.V2, nil
	case "V3":
		return pngenc.V3, nil
	case "V4":
		return pngenc.V4, nil
	case "V4MC":
		return pngenc.V4MC, nil
	default:
		return 0, fmt.Errorf("pngenc: unknown variant %q, want one of V2, V3, V4, V4MC", name)
	}
}

func optsFromCommonFlags(cl commonFlags, bands int) (pngenc.Options, error) {
	variant, err := variantFromFlag(cl.Variant)
	if err != nil {
		return pngenc.Options{}, err
	}
	return pngenc.Options{
		Variant: variant,
		Workers: cl.Workers,
		Bands:   bands,
	}, nil
}

// progressBarFor returns a progress callback wired to a terminal-gated
// schollz/progressbar, and a cleanup func to call once encoding finishes.
func progressBarFor(show bool, label string) (func(pngenc.Event), func()) {
	if !show || !terminal.IsTerminal(int(os.Stderr.Fd())) {
		return nil, func() {}
	}
	bar := progressbar.NewOptions(-1,
		progressbar.OptionSetWriter(os.Stderr))
	fmt.Fprintf(os.Stderr, "%s\n", label)
	return func(e pngenc.Event) {
			if e.Total > 0 {
				bar.ChangeMax(e.Total)
			}
			bar.Add(1)
		}, func() {
			fmt.Fprintln(os.Stderr)
		}
}

func encodeOneFile(ctx context.Context, cl *encodeFlags, inputFile string) error {
	in, err := os.Open(inputFile)
	if err != nil {
		return err
	}
	defer in.Close()

	raster, err := readPPM(in)
	if err != nil {
		return fmt.Errorf("%s: %w", inputFile, err)
	}

	opts, err := optsFromCommonFlags(cl.commonFlags, cl.Bands)
	if err != nil {
		return err
	}
	progress, done := progressBarFor(cl.ProgressBar, inputFile)
	opts.Progress = progress

	outputFile := strings.TrimSuffix(inputFile, ".ppm") + ".png"
	out, err := os.Create(outputFile)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = pngenc.Encode(out, raster, opts)
	done()
	return err
}

func encode(ctx context.Context, values interface{}, args []string) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	cmdutil.HandleSignals(cancel, os.Interrupt)

	cl := values.(*encodeFlags)
	errs := errors.M{}
	for _, arg := range args {
		errs.Append(encodeOneFile(ctx, cl, arg))
	}
	return errs.Err()
}

func bench(ctx context.Context, values interface{}, args []string) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	cmdutil.HandleSignals(cancel, os.Interrupt)

	cl := values.(*patternFlags)
	raster, ok := testimage.Named(cl.Pattern, cl.Width, cl.Height)
	if !ok {
		return fmt.Errorf("pngenc: unknown pattern %q", cl.Pattern)
	}

	opts, err := optsFromCommonFlags(cl.commonFlags, cl.Bands)
	if err != nil {
		return err
	}
	progress, done := progressBarFor(cl.ProgressBar, cl.Pattern)
	opts.Progress = progress

	out := os.Stdout
	if len(cl.Output) > 0 {
		f, err := os.Create(cl.Output)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	n, err := pngenc.Encode(out, pngenc.Raster{Width: raster.Width, Height: raster.Height, Pix: raster.Pix}, opts)
	done()
	if err == nil && len(cl.Output) > 0 {
		fmt.Fprintf(os.Stderr, "wrote %d bytes to %s\n", n, cl.Output)
	}
	return err
}
