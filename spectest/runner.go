// Package spectest runs ssz_generic conformance test vectors.
//
// The vectors are laid out as <dir>/<handler>/<valid|invalid>/<case>/,
// each case holding the encoding in serialized.ssz_snappy (or a raw serialized.ssz),
// and for valid cases a meta.yaml with the expected root.
package spectest

import (
	"bytes"
	"os"
	"path/filepath"
	"sort"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/klauspost/compress/s2"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/protolambda/tssz/htr"
)

const (
	snappyFile = "serialized.ssz_snappy"
	rawFile    = "serialized.ssz"
	metaFile   = "meta.yaml"
)

// ErrUnknownType is returned for cases that do not resolve to a registered type.
var ErrUnknownType = errors.New("no type registered for case")

// Failure describes one failed case.
type Failure struct {
	Handler string
	Case    string
	Valid   bool
	Err     error
}

// Report summarizes a run.
type Report struct {
	Passed   int
	Failed   int
	Skipped  int
	Failures []Failure
}

// OK reports whether no case failed.
func (r *Report) OK() bool {
	return r.Failed == 0
}

type meta struct {
	Root string `yaml:"root"`
}

type Runner struct {
	log      *zap.Logger
	registry *Registry
	hasher   *htr.Hasher
	failFast bool
}

func NewRunner(log *zap.Logger, registry *Registry, hasher *htr.Hasher, failFast bool) *Runner {
	return &Runner{log: log, registry: registry, hasher: hasher, failFast: failFast}
}

// Run runs the cases of the given handlers under dir.
// No handlers runs every registered handler that has a directory.
func (r *Runner) Run(dir string, handlers []string) (*Report, error) {
	if len(handlers) == 0 {
		handlers = r.registry.Handlers()
	}
	report := new(Report)
	for _, handler := range handlers {
		handlerDir := filepath.Join(dir, handler)
		if _, err := os.Stat(handlerDir); os.IsNotExist(err) {
			r.log.Debug("no test vectors for handler", zap.String("handler", handler))
			continue
		}
		for _, valid := range []bool{true, false} {
			sub := "valid"
			if !valid {
				sub = "invalid"
			}
			cases, err := listCases(filepath.Join(handlerDir, sub))
			if err != nil {
				return report, err
			}
			for _, name := range cases {
				err := r.RunCase(handler, name, filepath.Join(handlerDir, sub, name), valid)
				switch {
				case err == nil:
					report.Passed++
				case errors.Is(err, ErrUnknownType):
					report.Skipped++
					r.log.Debug("skipping case", zap.String("handler", handler), zap.String("case", name))
				default:
					report.Failed++
					report.Failures = append(report.Failures, Failure{Handler: handler, Case: name, Valid: valid, Err: err})
					r.log.Warn("case failed", zap.String("handler", handler), zap.String("case", name),
						zap.Bool("valid", valid), zap.Error(err))
					if r.failFast {
						return report, nil
					}
				}
			}
		}
		r.log.Info("handler done", zap.String("handler", handler),
			zap.Int("passed", report.Passed), zap.Int("failed", report.Failed), zap.Int("skipped", report.Skipped))
	}
	return report, nil
}

// listCases returns the sorted case directories in dir, none if dir does not exist.
func listCases(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "cannot list cases in %s", dir)
	}
	var out []string
	for _, e := range entries {
		if e.IsDir() {
			out = append(out, e.Name())
		}
	}
	sort.Strings(out)
	return out, nil
}

// RunCase runs a single case. A valid case must decode, re-encode to the same bytes,
// and hash to the root in its meta.yaml. An invalid case must fail to decode.
func (r *Runner) RunCase(handler string, name string, caseDir string, valid bool) error {
	newValue, ok := r.registry.Resolve(handler, name)
	if !ok {
		return errors.Wrapf(ErrUnknownType, "%s/%s", handler, name)
	}
	data, err := ReadSerialized(caseDir)
	if err != nil {
		return err
	}
	v := newValue()
	if !valid {
		if err := v.Deserialize(data); err == nil {
			return errors.New("invalid input decoded without error")
		}
		return nil
	}
	if err := v.Deserialize(data); err != nil {
		return errors.Wrap(err, "cannot decode")
	}
	out, err := v.Serialize(nil)
	if err != nil {
		return errors.Wrap(err, "cannot encode")
	}
	if !bytes.Equal(out, data) {
		return errors.Errorf("re-encoded to %s, expected %s", hexutil.Encode(out), hexutil.Encode(data))
	}
	expected, err := ReadRoot(caseDir)
	if err != nil {
		return err
	}
	root, err := v.HashTreeRoot(r.hasher)
	if err != nil {
		return errors.Wrap(err, "cannot hash")
	}
	if root != expected {
		return errors.Errorf("root %s, expected %s", root, expected)
	}
	return nil
}

// ReadSerialized reads the encoding of a case, snappy compressed or raw.
func ReadSerialized(caseDir string) ([]byte, error) {
	compressed, err := os.ReadFile(filepath.Join(caseDir, snappyFile))
	if err == nil {
		data, err := s2.Decode(nil, compressed)
		if err != nil {
			return nil, errors.Wrapf(err, "cannot decompress %s", snappyFile)
		}
		return data, nil
	}
	if !os.IsNotExist(err) {
		return nil, errors.Wrapf(err, "cannot read %s", snappyFile)
	}
	data, err := os.ReadFile(filepath.Join(caseDir, rawFile))
	if err != nil {
		return nil, errors.Wrap(err, "no serialized data")
	}
	return data, nil
}

// ReadRoot reads the expected root of a valid case.
func ReadRoot(caseDir string) (htr.Node, error) {
	raw, err := os.ReadFile(filepath.Join(caseDir, metaFile))
	if err != nil {
		return htr.Node{}, errors.Wrapf(err, "cannot read %s", metaFile)
	}
	var m meta
	if err := yaml.Unmarshal(raw, &m); err != nil {
		return htr.Node{}, errors.Wrapf(err, "cannot parse %s", metaFile)
	}
	b, err := hexutil.Decode(m.Root)
	if err != nil {
		return htr.Node{}, errors.Wrapf(err, "invalid root %q", m.Root)
	}
	if len(b) != htr.BytesPerChunk {
		return htr.Node{}, errors.Errorf("root must be %d bytes, got %d", htr.BytesPerChunk, len(b))
	}
	return htr.Node(b), nil
}
