// Command genematch finds the catalog entry that best matches a sequence.
//
// Usage:
//
//	genematch [command] [options]
//
// Commands:
//
//	match       Find the best matching GeneID for a query
//	align       Globally align two sequences
//	catalog     Show catalog statistics
//	version     Show version information
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/aria-lang/genematch/internal/alignment"
	"github.com/aria-lang/genematch/internal/catalog"
	"github.com/aria-lang/genematch/internal/report"
	"github.com/aria-lang/genematch/internal/scan"
	"github.com/aria-lang/genematch/internal/sequence"
	"github.com/aria-lang/genematch/pkg/genematch"
	"github.com/dustin/go-humanize"
	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
)

func main() {
	if len(os.Args) < 2 {
		printUsage(os.Stderr)
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	var err error
	switch command {
	case "match":
		err = matchCmd(args, os.Stdin, os.Stdout, os.Stderr)
	case "align":
		err = alignCmd(args, os.Stdout, os.Stderr)
	case "catalog":
		err = catalogCmd(args, os.Stdout, os.Stderr)
	case "version":
		fmt.Println(genematch.Info())
	case "help", "-h", "--help":
		printUsage(os.Stdout)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage(os.Stderr)
		os.Exit(1)
	}

	if err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, `GeneMatch - Best Global Alignment Search

Usage:
  genematch <command> [options]

Commands:
  match     Find the best matching GeneID for a query sequence
  align     Globally align two sequences
  catalog   Show catalog statistics
  version   Show version information
  help      Show this help message

Use "genematch <command> -h" for more information about a command.`)
}

// scoringFlags registers -match, -mismatch and -gap on fs.
func scoringFlags(fs *flag.FlagSet) func() (alignment.ScoringScheme, error) {
	def := alignment.DefaultScheme()
	match := fs.Int("match", def.MatchScore, "Score for a match")
	mismatch := fs.Int("mismatch", def.MismatchScore, "Score for a mismatch")
	gap := fs.Int("gap", def.GapPenalty, "Score for each gap position")
	return func() (alignment.ScoringScheme, error) {
		return alignment.NewScoringScheme(*match, *mismatch, *gap)
	}
}

// readQuery prompts on out and reads one line from in.
func readQuery(in io.Reader, out io.Writer) (string, error) {
	fmt.Fprint(out, "Enter your sequence (A, T, C, G): ")
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", fmt.Errorf("reading query: %w", err)
	}
	return strings.TrimSpace(line), nil
}

func matchCmd(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("match", flag.ContinueOnError)
	fs.SetOutput(stderr)
	catalogPath := fs.String("catalog", "covid.tsv", "Catalog file (TSV with GeneID and sequence columns, or FASTA)")
	seq := fs.String("seq", "", "Query sequence (prompted for when empty)")
	workers := fs.Int("workers", runtime.NumCPU(), "Number of alignment workers")
	strict := fs.Bool("strict", false, "Fail on the first malformed catalog record instead of skipping it")
	asJSON := fs.Bool("json", false, "Write the result as JSON")
	progress := fs.Bool("progress", false, "Show a progress bar on stderr")
	quiet := fs.Bool("quiet", false, "Suppress informational messages")
	scheme := scoringFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	sc, err := scheme()
	if err != nil {
		return err
	}

	logger := log.New(stderr, "genematch: ", 0)
	if *quiet {
		logger.SetOutput(io.Discard)
	}

	cat, err := catalog.Load(*catalogPath)
	if err != nil {
		return err
	}
	logger.Printf("loaded %s records from %s", humanize.Comma(int64(cat.Len())), cat.Source)

	raw := *seq
	if raw == "" {
		raw, err = readQuery(stdin, stdout)
		if err != nil {
			return err
		}
	}
	query, err := sequence.New(strings.TrimSpace(raw))
	if err != nil {
		return fmt.Errorf("invalid sequence, use only A, T, C and G: %w", err)
	}

	opts := []scan.Option{
		scan.WithWorkers(*workers),
		scan.WithLogger(logger),
	}
	if *strict {
		opts = append(opts, scan.WithPolicy(scan.RejectRun))
	}

	var (
		pbs *mpb.Progress
		bar *mpb.Bar
	)
	if *progress && cat.Len() > 0 {
		pbs = mpb.New(mpb.WithWidth(40), mpb.WithOutput(stderr))
		bar = pbs.AddBar(int64(cat.Len()),
			mpb.PrependDecorators(
				decor.Name("aligned records: ", decor.WC{W: len("aligned records: "), C: decor.DindentRight}),
				decor.CountersNoUnit("%d / %d", decor.WCSyncWidth),
			),
			mpb.AppendDecorators(
				decor.Name("ETA: ", decor.WC{W: len("ETA: ")}),
				decor.EwmaETA(decor.ET_STYLE_GO, 64),
				decor.OnComplete(decor.Name(""), ". done"),
			),
		)
		last := time.Now()
		opts = append(opts, scan.WithProgress(func(done, total int) {
			now := time.Now()
			bar.EwmaIncrBy(1, now.Sub(last))
			last = now
		}))
	}

	logger.Printf("finding the best matching GeneID with %s", sc)
	res, err := scan.New(opts...).Best(context.Background(), cat.Records, query, sc)
	if pbs != nil {
		if err != nil {
			bar.Abort(false)
		}
		pbs.Wait()
	}
	if err != nil {
		return err
	}

	if *asJSON {
		return report.JSON(stdout, res)
	}
	if err := report.Skipped(stderr, res.Skipped); err != nil {
		return err
	}
	fmt.Fprintln(stdout)
	return report.Text(stdout, res.Best)
}

func alignCmd(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("align", flag.ContinueOnError)
	fs.SetOutput(stderr)
	seq1 := fs.String("seq1", "", "Query sequence")
	seq2 := fs.String("seq2", "", "Target sequence")
	scheme := scoringFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *seq1 == "" || *seq2 == "" {
		fs.Usage()
		return fmt.Errorf("both -seq1 and -seq2 are required")
	}

	sc, err := scheme()
	if err != nil {
		return err
	}

	s1, err := sequence.New(*seq1)
	if err != nil {
		return fmt.Errorf("sequence 1: %w", err)
	}
	s2, err := sequence.New(*seq2)
	if err != nil {
		return fmt.Errorf("sequence 2: %w", err)
	}

	a, err := alignment.Global(s1, s2, sc)
	if err != nil {
		return err
	}

	fmt.Fprintln(stdout, a.Format())
	return nil
}

func catalogCmd(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("catalog", flag.ContinueOnError)
	fs.SetOutput(stderr)
	catalogPath := fs.String("catalog", "covid.tsv", "Catalog file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cat, err := catalog.Load(*catalogPath)
	if err != nil {
		return err
	}

	summary, err := cat.Summary()
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "Source: %s (%s)\n", cat.Source, cat.Format)
	return report.Summary(stdout, summary)
}
