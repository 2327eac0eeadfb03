// tssz runs SSZ conformance vectors, and inspects encodings.
//
//	tssz spectest [--config f] [--dir d] [--handlers a,b] [--hasher h] [--fail-fast] [--log-level l]
//	tssz hash --type <handler>/<case> (--hex 0x.. | --file f)
//	tssz layout --fields 2,v,1 (--hex 0x.. | --file f)
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/protolambda/tssz/config"
	"github.com/protolambda/tssz/pretty"
	"github.com/protolambda/tssz/spectest"
)

// errFailures signals a completed run with failing cases.
var errFailures = errors.New("conformance cases failed")

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if err != errFailures {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	if len(args) == 0 {
		printUsage(out)
		return errors.New("missing command")
	}
	switch args[0] {
	case "spectest":
		return runSpectest(args[1:], out)
	case "hash":
		return runHash(args[1:], out)
	case "layout":
		return runLayout(args[1:], out)
	case "help", "-h", "--help":
		printUsage(out)
		return nil
	default:
		printUsage(out)
		return errors.Errorf("unknown command %q", args[0])
	}
}

func printUsage(out io.Writer) {
	fmt.Fprint(out, `Usage:
  tssz spectest [--config f] [--dir d] [--handlers a,b] [--hasher h] [--fail-fast] [--log-level l]
  tssz hash --type <handler>/<case> (--hex 0x.. | --file f)
  tssz layout --fields 2,v,1 (--hex 0x.. | --file f)
`)
}

func runSpectest(args []string, out io.Writer) error {
	flagSet := pflag.NewFlagSet("spectest", pflag.ContinueOnError)
	configPath := flagSet.String("config", "", "YAML config file")
	dir := flagSet.String("dir", "", "ssz_generic test vectors directory")
	handlers := flagSet.StringSlice("handlers", nil, "handlers to run, all by default")
	hasher := flagSet.String("hasher", "", "hash function: sha256 or blake3")
	failFast := flagSet.Bool("fail-fast", false, "stop at the first failure")
	logLevel := flagSet.String("log-level", "", "log level: debug, info, warn or error")
	if err := flagSet.Parse(args); err != nil {
		return err
	}

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			return err
		}
	}
	if flagSet.Changed("dir") {
		cfg.TestsDir = *dir
	}
	if flagSet.Changed("handlers") {
		cfg.Handlers = *handlers
	}
	if flagSet.Changed("hasher") {
		cfg.Hasher = *hasher
	}
	if flagSet.Changed("fail-fast") {
		cfg.FailFast = *failFast
	}
	if flagSet.Changed("log-level") {
		cfg.LogLevel = *logLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := cfg.Logger()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	h, err := cfg.Hasher()
	if err != nil {
		return err
	}
	runner := spectest.NewRunner(log, spectest.DefaultRegistry(), h, cfg.FailFast)
	report, err := runner.Run(cfg.TestsDir, cfg.Handlers)
	if err != nil {
		return err
	}
	log.Info("conformance run done", zap.String("dir", cfg.TestsDir),
		zap.Int("passed", report.Passed), zap.Int("failed", report.Failed), zap.Int("skipped", report.Skipped))
	for _, f := range report.Failures {
		fmt.Fprintf(out, "FAIL %s %s: %v\n", f.Handler, f.Case, f.Err)
	}
	fmt.Fprintf(out, "passed %d, failed %d, skipped %d\n", report.Passed, report.Failed, report.Skipped)
	if !report.OK() {
		return errFailures
	}
	return nil
}

// readInput returns the bytes given with --hex or --file.
func readInput(hexInput string, file string) ([]byte, error) {
	switch {
	case hexInput != "" && file != "":
		return nil, errors.New("use either --hex or --file, not both")
	case hexInput != "":
		if !strings.HasPrefix(hexInput, "0x") {
			hexInput = "0x" + hexInput
		}
		data, err := hexutil.Decode(hexInput)
		if err != nil {
			return nil, errors.Wrap(err, "invalid --hex")
		}
		return data, nil
	case file != "":
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, errors.Wrap(err, "cannot read --file")
		}
		return data, nil
	default:
		return nil, errors.New("no input, use --hex or --file")
	}
}

func runHash(args []string, out io.Writer) error {
	flagSet := pflag.NewFlagSet("hash", pflag.ContinueOnError)
	typeName := flagSet.String("type", "", "registered type, as <handler>/<case>, e.g. containers/VarTestStruct")
	hexInput := flagSet.String("hex", "", "hex encoded input")
	file := flagSet.String("file", "", "input file")
	hasherName := flagSet.String("hasher", "sha256", "hash function: sha256 or blake3")
	if err := flagSet.Parse(args); err != nil {
		return err
	}
	handler, name, ok := strings.Cut(*typeName, "/")
	if !ok {
		return errors.Errorf("--type must be <handler>/<case>, got %q", *typeName)
	}
	registry := spectest.DefaultRegistry()
	newValue, ok := registry.Resolve(handler, name)
	if !ok {
		// a bare prefix, e.g. uints/uint_16
		newValue, ok = registry.Resolve(handler, name+"_")
	}
	if !ok {
		return errors.Errorf("unknown type %q", *typeName)
	}
	data, err := readInput(*hexInput, *file)
	if err != nil {
		return err
	}
	cfg := config.Default()
	cfg.Hasher = *hasherName
	h, err := cfg.Hasher()
	if err != nil {
		return err
	}
	v := newValue()
	if err := v.Deserialize(data); err != nil {
		return errors.Wrap(err, "cannot decode input")
	}
	root, err := v.HashTreeRoot(h)
	if err != nil {
		return errors.Wrap(err, "cannot hash")
	}
	fmt.Fprintln(out, root)
	return nil
}

func runLayout(args []string, out io.Writer) error {
	flagSet := pflag.NewFlagSet("layout", pflag.ContinueOnError)
	fieldsDesc := flagSet.String("fields", "", "field layout: byte sizes of fixed fields, v for variable fields")
	hexInput := flagSet.String("hex", "", "hex encoded input")
	file := flagSet.String("file", "", "input file")
	if err := flagSet.Parse(args); err != nil {
		return err
	}
	fields, err := pretty.ParseFields(*fieldsDesc)
	if err != nil {
		return err
	}
	data, err := readInput(*hexInput, *file)
	if err != nil {
		return err
	}
	return pretty.Layout(out, data, fields)
}
