// Package cli implements zecid's command-line subcommands.
package cli

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/zarlcorp/core/pkg/zfilesystem"
	"github.com/zarlcorp/zecid/internal/api"
	"github.com/zarlcorp/zecid/internal/cedula"
	"github.com/zarlcorp/zecid/internal/config"
	"github.com/zarlcorp/zecid/internal/export"
	"github.com/zarlcorp/zecid/internal/identity"
	"github.com/zarlcorp/zecid/internal/metrics"
	"github.com/zarlcorp/zecid/internal/refdata"
	"github.com/zarlcorp/zecid/internal/rng"
)

// ErrInvalidNumbers is returned by validate when any number fails.
var ErrInvalidNumbers = errors.New("invalid numbers")

// ErrUsage is returned for bad command-line arguments.
var ErrUsage = errors.New("usage")

// Usage prints the command summary.
func Usage(w io.Writer) {
	fmt.Fprint(w, `usage: zecid <command> [flags]

commands:
  people       generate natural persons
  companies    generate companies
  validate     classify cédula and RUC numbers
  provinces    list provinces and cantons
  browse       open the interactive browser with preset options
  serve        run the HTTP API
  version      print the version

run without a command on a terminal to open the interactive browser.
`)
}

// CmdPeople generates and prints persons.
func CmdPeople(args []string) {
	exitOn(runPeople(args, os.Stdout, os.Stderr))
}

// CmdCompanies generates and prints companies.
func CmdCompanies(args []string) {
	exitOn(runCompanies(args, os.Stdout, os.Stderr))
}

// CmdValidate classifies each number argument.
func CmdValidate(args []string) {
	exitOn(runValidate(args, os.Stdout, os.Stderr))
}

// CmdProvinces lists the provinces of the reference data.
func CmdProvinces(args []string) {
	exitOn(runProvinces(args, os.Stdout, os.Stderr))
}

// CmdServe runs the HTTP API until ctx is cancelled.
func CmdServe(ctx context.Context, args []string, version string) {
	exitOn(runServe(ctx, args, os.Stderr, version))
}

func exitOn(err error) {
	if err == nil {
		return
	}
	if !errors.Is(err, flag.ErrHelp) {
		fmt.Fprintf(os.Stderr, "zecid: %v\n", err)
	}
	os.Exit(1)
}

// NewGenerator builds a generator from an optional seed and catalog file.
// A zero seed uses crypto/rand.
func NewGenerator(seed int64, dataFile string) (*identity.Generator, error) {
	var opts []identity.Option
	if seed != 0 {
		opts = append(opts, identity.WithSource(rng.Seeded(seed)))
	}
	if dataFile != "" {
		c, err := refdata.LoadFile(dataFile)
		if err != nil {
			return nil, err
		}
		opts = append(opts, identity.WithCatalog(c))
	}
	return identity.New(opts...), nil
}

// output holds the flags shared by the generating commands.
type output struct {
	quantity int
	province string
	format   string
	out      string
	seed     int64
	data     string
}

func (o *output) register(fs *flag.FlagSet) {
	fs.IntVar(&o.quantity, "n", 1, "number of records (1-1000)")
	fs.StringVar(&o.province, "province", "", "province code or name")
	fs.StringVar(&o.format, "format", string(export.Text), "output format: text, json, csv, tsv")
	fs.StringVar(&o.out, "out", "", "write to file instead of stdout")
	fs.Int64Var(&o.seed, "seed", 0, "seed for reproducible output")
	fs.StringVar(&o.data, "data", "", "yaml reference data file")
}

func (o *output) write(records []identity.Record, stdout, stderr io.Writer) error {
	f, err := export.ParseFormat(o.format)
	if err != nil {
		return err
	}

	if o.out == "" {
		return export.Write(stdout, f, records)
	}

	root, name, err := splitExisting(o.out)
	if err != nil {
		return err
	}
	fsys := zfilesystem.NewOSFileSystem(root)
	if err := export.SaveFile(fsys, name, f, records); err != nil {
		return err
	}
	fmt.Fprintf(stderr, "wrote %d records to %s\n", len(records), o.out)
	return nil
}

// splitExisting splits p into its deepest existing ancestor directory and
// the slash-separated remainder, so missing parents are created inside
// the filesystem root.
func splitExisting(p string) (root, rel string, err error) {
	abs, err := filepath.Abs(p)
	if err != nil {
		return "", "", fmt.Errorf("resolve %s: %w", p, err)
	}
	root = filepath.Dir(abs)
	for {
		if fi, err := os.Stat(root); err == nil && fi.IsDir() {
			break
		}
		parent := filepath.Dir(root)
		if parent == root {
			break
		}
		root = parent
	}
	rel, err = filepath.Rel(root, abs)
	if err != nil {
		return "", "", fmt.Errorf("resolve %s: %w", p, err)
	}
	return root, filepath.ToSlash(rel), nil
}

func newFlagSet(name string, stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet("zecid "+name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	return fs
}

func runPeople(args []string, stdout, stderr io.Writer) error {
	var o output
	var opts identity.Options

	fs := newFlagSet("people", stderr)
	o.register(fs)
	fs.BoolVar(&opts.IncludeRUC, "ruc", false, "include a natural-person RUC")
	fs.BoolVar(&opts.IncludeCompany, "company", false, "include a company name")
	fs.IntVar(&opts.AgeRange.Min, "min-age", identity.DefaultMinAge, "minimum age")
	fs.IntVar(&opts.AgeRange.Max, "max-age", identity.DefaultMaxAge, "maximum age")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("%w: unexpected argument %q", ErrUsage, fs.Arg(0))
	}

	g, err := NewGenerator(o.seed, o.data)
	if err != nil {
		return err
	}

	opts.Quantity = o.quantity
	opts.Province = o.province
	people, err := g.People(opts)
	if err != nil {
		return err
	}

	return o.write(identity.People(people), stdout, stderr)
}

// Browse holds the parsed flags of the browse command.
type Browse struct {
	Generator *identity.Generator
	Options   identity.Options
}

// ParseBrowse parses the browse flags. The interactive browser itself
// lives outside this package.
func ParseBrowse(args []string, stderr io.Writer) (Browse, error) {
	var (
		opts       identity.Options
		seed       int64
		data, prov string
	)

	fs := newFlagSet("browse", stderr)
	fs.IntVar(&opts.Quantity, "n", 20, "records per batch (1-1000)")
	fs.StringVar(&prov, "province", "", "province code or name")
	fs.BoolVar(&opts.IncludeRUC, "ruc", false, "include a natural-person RUC")
	fs.BoolVar(&opts.IncludeCompany, "company", false, "include a company name")
	fs.IntVar(&opts.AgeRange.Min, "min-age", identity.DefaultMinAge, "minimum age")
	fs.IntVar(&opts.AgeRange.Max, "max-age", identity.DefaultMaxAge, "maximum age")
	fs.Int64Var(&seed, "seed", 0, "seed for reproducible output")
	fs.StringVar(&data, "data", "", "yaml reference data file")
	if err := fs.Parse(args); err != nil {
		return Browse{}, err
	}
	if fs.NArg() > 0 {
		return Browse{}, fmt.Errorf("%w: unexpected argument %q", ErrUsage, fs.Arg(0))
	}
	opts.Province = prov

	if _, err := opts.Normalize(); err != nil {
		return Browse{}, err
	}

	g, err := NewGenerator(seed, data)
	if err != nil {
		return Browse{}, err
	}
	if prov != "" {
		if _, err := g.Catalog().Province(prov); err != nil {
			return Browse{}, err
		}
	}

	return Browse{Generator: g, Options: opts}, nil
}

func runCompanies(args []string, stdout, stderr io.Writer) error {
	var o output

	fs := newFlagSet("companies", stderr)
	o.register(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("%w: unexpected argument %q", ErrUsage, fs.Arg(0))
	}

	g, err := NewGenerator(o.seed, o.data)
	if err != nil {
		return err
	}

	companies, err := g.Companies(identity.Options{Quantity: o.quantity, Province: o.province})
	if err != nil {
		return err
	}

	return o.write(identity.Companies(companies), stdout, stderr)
}

type validation struct {
	Number string      `json:"number"`
	Kind   cedula.Kind `json:"kind"`
	Valid  bool        `json:"valid"`
}

func runValidate(args []string, stdout, stderr io.Writer) error {
	fs := newFlagSet("validate", stderr)
	asJSON := fs.Bool("json", false, "print results as json")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		return fmt.Errorf("%w: zecid validate <number>...", ErrUsage)
	}

	results := make([]validation, 0, fs.NArg())
	invalid := 0
	for _, n := range fs.Args() {
		k := cedula.Classify(n)
		if k == cedula.KindInvalid {
			invalid++
		}
		results = append(results, validation{Number: n, Kind: k, Valid: k != cedula.KindInvalid})
	}

	if *asJSON {
		if err := printJSON(stdout, results); err != nil {
			return err
		}
	} else {
		for _, r := range results {
			fmt.Fprintf(stdout, "  %-13s  %s\n", r.Number, r.Kind)
		}
	}

	if invalid > 0 {
		return fmt.Errorf("%w: %d of %d", ErrInvalidNumbers, invalid, len(results))
	}
	return nil
}

func runProvinces(args []string, stdout, stderr io.Writer) error {
	fs := newFlagSet("provinces", stderr)
	asJSON := fs.Bool("json", false, "print provinces as json")
	data := fs.String("data", "", "yaml reference data file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	c := refdata.Default()
	if *data != "" {
		var err error
		if c, err = refdata.LoadFile(*data); err != nil {
			return err
		}
	}

	if *asJSON {
		return printJSON(stdout, c.Provinces)
	}
	for _, p := range c.Provinces {
		fmt.Fprintf(stdout, "  %s  %-32s %d cantons\n", p.Code, p.Name, len(p.Cantons))
	}
	return nil
}

func runServe(ctx context.Context, args []string, stderr io.Writer, version string) error {
	cfg := config.DefaultServe()
	fs := newFlagSet("serve", stderr)
	cfg.RegisterFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	g, err := NewGenerator(0, cfg.DataFile)
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewJSONHandler(stderr, nil))
	reg := prometheus.NewRegistry()
	h := api.New(g, logger, metrics.New(reg), api.WithVersion(version))
	srv := api.NewServer(cfg, api.NewRouter(h, cfg, reg))

	logger.Info("starting zecid", "addr", cfg.Addr, "rate", cfg.RateLimit, "burst", cfg.Burst)
	if err := api.Run(ctx, srv, cfg); err != nil {
		return err
	}
	logger.Info("stopped")
	return nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}
