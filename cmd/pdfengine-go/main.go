// Command pdfengine-go exposes the document engine facade on the command
// line: merge, split, unlock, image import, and document info.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/sealdoc/pdfengine-go/pkg/pdfengine"
)

func usage() {
	fmt.Fprintf(os.Stderr, `pdfengine-go %s

Usage:
  pdfengine-go merge  -a first.pdf -b second.pdf -o out.pdf
  pdfengine-go split  -in doc.pdf -from 0 -to 4 -o out.pdf
  pdfengine-go unlock -in doc.pdf [-password pw] -o out.pdf
  pdfengine-go images -o out.pdf img1.png [img2.jpg ...]
  pdfengine-go info   -in doc.pdf
`, pdfengine.WrapperVersion())
	os.Exit(2)
}

func main() {
	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	if len(os.Args) < 2 {
		usage()
	}

	engine, err := pdfengine.New(pdfengine.Config{Logger: log})
	if err != nil {
		log.Error("engine init failed", "error", err)
		os.Exit(1)
	}
	defer func() { _ = engine.Close() }()

	if err := run(engine, os.Args[1], os.Args[2:]); err != nil {
		if errors.Is(err, pdfengine.ErrInvalidArgument) {
			log.Error("invalid arguments", "error", err)
			os.Exit(2)
		}
		log.Error("operation failed", "error", err, "cause", engine.LastErrorDescription())
		os.Exit(1)
	}
}

func run(engine *pdfengine.Engine, command string, args []string) error {
	switch command {
	case "merge":
		fs := flag.NewFlagSet("merge", flag.ExitOnError)
		first := fs.String("a", "", "first input document")
		second := fs.String("b", "", "second input document")
		out := fs.String("o", "merged.pdf", "output path")
		_ = fs.Parse(args)

		doc, err := engine.Merge(pdfengine.PathSource(*first), pdfengine.PathSource(*second))
		if err != nil {
			return err
		}
		return writeOutput(*out, doc)

	case "split":
		fs := flag.NewFlagSet("split", flag.ExitOnError)
		in := fs.String("in", "", "input document")
		from := fs.Int("from", 0, "first page index (zero-based, inclusive)")
		to := fs.Int("to", 0, "last page index (zero-based, inclusive)")
		out := fs.String("o", "split.pdf", "output path")
		_ = fs.Parse(args)

		doc, err := engine.Split(pdfengine.PathSource(*in), *from, *to)
		if err != nil {
			return err
		}
		return writeOutput(*out, doc)

	case "unlock":
		fs := flag.NewFlagSet("unlock", flag.ExitOnError)
		in := fs.String("in", "", "input document")
		password := fs.String("password", "", "document password (optional)")
		out := fs.String("o", "unlocked.pdf", "output path")
		_ = fs.Parse(args)

		doc, err := engine.Unlock(pdfengine.PathSource(*in), *password)
		if err != nil {
			return err
		}
		return writeOutput(*out, doc)

	case "images":
		fs := flag.NewFlagSet("images", flag.ExitOnError)
		out := fs.String("o", "images.pdf", "output path")
		_ = fs.Parse(args)

		images := make([]pdfengine.ImageDescriptor, 0, fs.NArg())
		for _, path := range fs.Args() {
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			images = append(images, pdfengine.ImageDescriptor{Data: data})
		}
		doc, err := engine.ImagesToDocument(images)
		if err != nil {
			return err
		}
		return writeOutput(*out, doc)

	case "info":
		fs := flag.NewFlagSet("info", flag.ExitOnError)
		in := fs.String("in", "", "input document")
		password := fs.String("password", "", "document password (optional)")
		_ = fs.Parse(args)

		reader, err := engine.OpenReader(pdfengine.PathSource(*in), *password, 1, 4096)
		if err != nil {
			return err
		}
		defer func() { _ = reader.Close() }()

		pages, err := reader.PageCount()
		if err != nil {
			return err
		}
		fmt.Printf("%s: %d pages\n", *in, pages)
		return nil

	default:
		usage()
		return nil
	}
}

func writeOutput(path string, doc []byte) error {
	if err := os.WriteFile(path, doc, 0o644); err != nil {
		return err
	}
	fmt.Printf("wrote %s (%d bytes)\n", path, len(doc))
	return nil
}
