package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/peptikit/peptigraph/pkg/fasta"
	"github.com/peptikit/peptigraph/pkg/modfile"
	"github.com/peptikit/peptigraph/pkg/pipeline"
	"github.com/peptikit/peptigraph/pkg/smiles"
)

// convertOpts holds the command-line flags for the convert command.
type convertOpts struct {
	threeLetter bool     // sequence uses three-letter codes ("Ala-Gly-Dhb")
	cyclize     bool     // close the backbone head-to-tail
	crossLinks  []string // "kind:a:b" cross-link specs
	mods        string   // TOML modification manifest path
	fastaPath   string   // FASTA input path for batch conversion
	output      string   // output file path (default: stdout)
	refresh     bool     // bypass the cache
	noCache     bool     // disable the cache entirely
}

// newConvertCmd creates the convert command for generating SMILES.
func newConvertCmd() *cobra.Command {
	var opts convertOpts

	cmd := &cobra.Command{
		Use:   "convert [sequence]",
		Short: "Convert a peptide sequence to SMILES",
		Long: `Convert a peptide sequence to SMILES molecular line notation.

The sequence is given as one-letter codes ("AGCW"), as three-letter
codes with --three-letter ("Ala-Gly-Cys-Trp"), from a TOML modification
manifest with --mods, or in batch from a FASTA file with --fasta.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sequence := ""
			if len(args) == 1 {
				sequence = args[0]
			}
			return runConvert(cmd.Context(), sequence, &opts)
		},
	}

	cmd.Flags().BoolVar(&opts.threeLetter, "three-letter", false, "sequence uses three-letter residue codes")
	cmd.Flags().BoolVar(&opts.cyclize, "cyclize", false, "close the backbone head-to-tail")
	cmd.Flags().StringArrayVar(&opts.crossLinks, "crosslink", nil, "cross-link spec kind:a:b (repeatable)")
	cmd.Flags().StringVar(&opts.mods, "mods", "", "TOML modification manifest")
	cmd.Flags().StringVar(&opts.fastaPath, "fasta", "", "FASTA file for batch conversion")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "bypass the cache and recompute")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the result cache")

	return cmd
}

func runConvert(ctx context.Context, sequence string, opts *convertOpts) error {
	logger := loggerFromContext(ctx)

	switch {
	case opts.mods != "":
		if sequence != "" || opts.fastaPath != "" {
			return fmt.Errorf("--mods cannot be combined with a sequence argument or --fasta")
		}
		return convertModfile(ctx, opts, logger)
	case opts.fastaPath != "":
		if sequence != "" {
			return fmt.Errorf("--fasta cannot be combined with a sequence argument")
		}
		return convertFasta(ctx, opts, logger)
	case sequence != "":
		return convertSequence(ctx, sequence, opts, logger)
	default:
		return fmt.Errorf("a sequence argument, --mods, or --fasta is required")
	}
}

func convertSequence(ctx context.Context, sequence string, opts *convertOpts, logger *log.Logger) error {
	runner, err := newRunner(opts.noCache, logger)
	if err != nil {
		return fmt.Errorf("init cache: %w", err)
	}

	result, err := runner.Execute(ctx, pipeline.Options{
		Sequence:   sequence,
		Notation:   notation(opts.threeLetter),
		Cyclize:    cyclizeMode(opts.cyclize),
		CrossLinks: opts.crossLinks,
		Refresh:    opts.refresh,
		Logger:     logger,
	})
	if err != nil {
		return err
	}

	if err := writeOutput(opts.output, []byte(result.SMILES+"\n")); err != nil {
		return err
	}
	if opts.output != "" {
		printSuccess("Converted %d residues", result.Residues)
		printFile(opts.output)
	}
	printStats(result.Residues, result.AtomCount, result.CacheInfo.ConvertHit)
	if opts.output == "" {
		printNextStep("Render it", fmt.Sprintf("peptigraph render %s --format svg", sequence))
	}
	return nil
}

func convertModfile(ctx context.Context, opts *convertOpts, logger *log.Logger) error {
	prog := newProgress(logger)
	p, err := modfile.Load(opts.mods)
	if err != nil {
		return err
	}

	w := smiles.NewWriter()
	if err := p.Visit(w); err != nil {
		return err
	}
	smi := w.Write()
	prog.done(fmt.Sprintf("Converted %d residues", p.Length()))

	if err := writeOutput(opts.output, []byte(smi+"\n")); err != nil {
		return err
	}
	if opts.output != "" {
		printFile(opts.output)
	}
	printStats(p.Length(), w.AtomCount(), false)
	return nil
}

func convertFasta(ctx context.Context, opts *convertOpts, logger *log.Logger) error {
	f, err := os.Open(opts.fastaPath)
	if err != nil {
		return fmt.Errorf("open FASTA: %w", err)
	}
	defer f.Close()

	records, err := fasta.Parse(f)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		printWarning("No records in %s", opts.fastaPath)
		return nil
	}

	runner, err := newRunner(opts.noCache, logger)
	if err != nil {
		return fmt.Errorf("init cache: %w", err)
	}

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Converting %d records...", len(records)))
	spinner.Start()

	var out strings.Builder
	for _, rec := range records {
		result, err := runner.Execute(ctx, pipeline.Options{
			Sequence: rec.Sequence,
			Refresh:  opts.refresh,
			Logger:   logger,
		})
		if err != nil {
			spinner.StopWithError(fmt.Sprintf("Record %q failed", rec.Header))
			return err
		}
		fmt.Fprintf(&out, ">%s\n%s\n", rec.Header, result.SMILES)
	}
	spinner.StopWithSuccess(fmt.Sprintf("Converted %d records", len(records)))

	if err := writeOutput(opts.output, []byte(out.String())); err != nil {
		return err
	}
	if opts.output != "" {
		printFile(opts.output)
	}
	return nil
}

// writeOutput writes data to path, or to stdout when path is empty.
func writeOutput(path string, data []byte) error {
	if path == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func notation(threeLetter bool) string {
	if threeLetter {
		return "code3"
	}
	return "code1"
}

func cyclizeMode(cyclize bool) string {
	if cyclize {
		return "head-to-tail"
	}
	return "none"
}
