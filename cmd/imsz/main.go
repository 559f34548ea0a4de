// Command imsz prints the format and pixel dimensions of image files.
//
// Usage:
//
//	imsz [-v] [-j N] FILE...
//
// For each file that can be probed a line "<path> <format>, <width> x
// <height>" is written to standard output. Failures are reported on
// standard error and make the exit status 1. Files are probed
// concurrently but reported in the order given.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/fumiama/imsz"
)

const version = "0.3.0"

type cliArgs struct {
	verbose bool
	version bool
	jobs    int
	files   []string
}

func parseFlags(fs *flag.FlagSet, argv []string) (cliArgs, error) {
	var args cliArgs
	fs.BoolVar(&args.verbose, "v", false, "Log diagnostics for every file to stderr")
	fs.BoolVar(&args.version, "version", false, "Show version and exit")
	fs.IntVar(&args.jobs, "j", runtime.NumCPU(), "Number of files to probe at once")
	if err := fs.Parse(argv); err != nil {
		return cliArgs{}, err
	}
	args.files = fs.Args()
	return args, nil
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(argv []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("imsz", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: imsz [flag]... FILE...\n")
		fs.PrintDefaults()
	}
	args, err := parseFlags(fs, argv)
	if err == flag.ErrHelp {
		return 0
	}
	if err != nil {
		return 2
	}
	if args.version {
		fmt.Fprintln(stdout, version)
		return 0
	}
	if args.jobs < 1 {
		fmt.Fprintf(stderr, "imsz: invalid -j %d: must be at least 1\n", args.jobs)
		return 2
	}
	if len(args.files) == 0 {
		fs.Usage()
		return 2
	}

	level := slog.LevelWarn
	if args.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	results := probeAll(args.files, args.jobs)

	status := 0
	for i, name := range args.files {
		info, err := results[i].info, results[i].err
		if err != nil {
			status = 1
			logger.Debug("probe failed", "path", name, "err", err)
		} else {
			logger.Debug("probed", "path", name, "format", info.Format.String())
		}
		switch code := imsz.Code(err); code {
		case imsz.OK:
			fmt.Fprintf(stdout, "%s %s, %d x %d\n", name, info.Format, info.Width, info.Height)
		case imsz.IOErrorCode:
			fmt.Fprintf(stderr, "%s IO Error\n", name)
		case imsz.ParserErrorCode:
			fmt.Fprintf(stderr, "%s Parser Error %s\n", name, info.Format)
		case imsz.UnsupportedErrorCode:
			fmt.Fprintf(stderr, "%s Unsupported Format\n", name)
		default:
			fmt.Fprintf(stderr, "%s %s\n", name, syscall.Errno(code))
		}
	}
	return status
}

type result struct {
	info imsz.ImageInfo
	err  error
}

// probeAll probes files with at most jobs probes in flight. A failed
// probe does not stop the others.
func probeAll(files []string, jobs int) []result {
	results := make([]result, len(files))
	var g errgroup.Group
	g.SetLimit(jobs)
	for i, name := range files {
		g.Go(func() error {
			info, err := imsz.DecodeFile(name)
			results[i] = result{info, err}
			return nil
		})
	}
	g.Wait()
	return results
}
