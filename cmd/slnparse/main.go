// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"gopkg.microglot.org/slnparse"
	"gopkg.microglot.org/slnparse/fs"
	"gopkg.microglot.org/slnparse/sln"
)

type opts struct {
	Roots  []string
	Format string
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	op := &opts{}
	flags := pflag.NewFlagSet("slnparse", pflag.PanicOnError)
	flags.StringSliceVar(&op.Roots, "root", []string{"."}, "Root search paths for solution files.")
	flags.StringVar(&op.Format, "format", "yaml", "Output format: yaml or json.")
	_ = flags.Parse(os.Args[1:])
	targets := flags.Args()

	if len(targets) == 0 {
		fmt.Fprintln(os.Stderr, "no solution files given")
		os.Exit(1)
	}

	mf := make(fs.FileSystemMulti, 0, len(op.Roots))
	for _, root := range op.Roots {
		absRoot, errAbs := filepath.Abs(root)
		if errAbs != nil {
			panic(errAbs.Error())
		}
		rf, err := fs.NewFileSystemLocal(absRoot)
		if err != nil {
			panic(err.Error())
		}
		mf = append(mf, rf)
	}

	for _, target := range targets {
		files, err := mf.Open(ctx, target)
		if err != nil {
			fmt.Fprintln(os.Stderr, err.Error())
			os.Exit(1)
		}
		for _, f := range files {
			body, err := f.Body(ctx)
			if err != nil {
				fmt.Fprintln(os.Stderr, err.Error())
				os.Exit(1)
			}
			doc, err := slnparse.Parse(ctx, f.Path(ctx), body)
			if err != nil {
				fmt.Fprintln(os.Stderr, err.Error())
				os.Exit(1)
			}
			if err := dump(doc, op.Format); err != nil {
				fmt.Fprintln(os.Stderr, err.Error())
				os.Exit(1)
			}
		}
	}
}

func dump(doc *sln.SolutionFile, format string) error {
	switch format {
	case "yaml":
		b, err := yaml.Marshal(doc)
		if err != nil {
			return err
		}
		fmt.Print(string(b))
	case "json":
		b, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(b))
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
	return nil
}
