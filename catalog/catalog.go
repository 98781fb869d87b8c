// Package catalog describes the benchmark instances and run settings.
//
// A catalog is either the built-in Default or a YAML document:
//
//	dir: instances
//	settings:
//	  warmup_runs: 2
//	  runs: 10
//	  max_exact_n: 20
//	instances:
//	  - file: tsp1_253.txt
//	  - name: custom
//	    file: my_matrix.txt
//	    optimal: 0    # unknown
//
// Instance names and optima default to the <name>_<optimum>.txt convention
// of the file name. Omitted settings keep their default values.
package catalog

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Default settings, matching the classic benchmark protocol.
const (
	DefaultDir        = "instances"
	DefaultWarmupRuns = 2
	DefaultRuns       = 10
	DefaultMaxExactN  = 20
)

var (
	// ErrBadFileName is returned when a file name does not follow <name>_<optimum>.<ext>.
	ErrBadFileName = errors.New("catalog: file name is not <name>_<optimum>.<ext>")

	// ErrInvalidSettings reports out-of-range run settings.
	ErrInvalidSettings = errors.New("catalog: invalid settings")

	// ErrInvalidInstance reports an instance entry without a file.
	ErrInvalidInstance = errors.New("catalog: invalid instance")

	// ErrEmpty is returned for a catalog that lists no instances.
	ErrEmpty = errors.New("catalog: no instances")
)

// Instance is one benchmark input. Optimal == 0 means the optimum is unknown.
type Instance struct {
	Name    string `yaml:"name"`
	File    string `yaml:"file"`
	Optimal int64  `yaml:"optimal"`
}

// Settings drive the benchmark runner.
type Settings struct {
	WarmupRuns int `yaml:"warmup_runs"` // discarded runs per solver
	Runs       int `yaml:"runs"`        // measured runs per solver
	MaxExactN  int `yaml:"max_exact_n"` // exact solver skipped above this n
}

// DefaultSettings returns the default run settings.
func DefaultSettings() Settings {
	return Settings{
		WarmupRuns: DefaultWarmupRuns,
		Runs:       DefaultRuns,
		MaxExactN:  DefaultMaxExactN,
	}
}

// Validate checks warmup_runs ≥ 0, runs ≥ 1 and max_exact_n ≥ 0.
func (s Settings) Validate() error {
	switch {
	case s.WarmupRuns < 0:
		return fmt.Errorf("%w: warmup_runs=%d < 0", ErrInvalidSettings, s.WarmupRuns)
	case s.Runs < 1:
		return fmt.Errorf("%w: runs=%d < 1", ErrInvalidSettings, s.Runs)
	case s.MaxExactN < 0:
		return fmt.Errorf("%w: max_exact_n=%d < 0", ErrInvalidSettings, s.MaxExactN)
	}

	return nil
}

// Catalog is an ordered list of instances plus the settings to run them with.
type Catalog struct {
	Dir       string     `yaml:"dir"`
	Settings  Settings   `yaml:"settings"`
	Instances []Instance `yaml:"instances"`
}

// Default returns the five classic instances under DefaultDir.
func Default() *Catalog {
	files := []string{
		"tsp1_253.txt",
		"tsp2_1248.txt",
		"tsp3_1194.txt",
		"tsp4_7013.txt",
		"tsp5_27603.txt",
	}
	c := &Catalog{Dir: DefaultDir, Settings: DefaultSettings()}
	for _, f := range files {
		name, opt, _ := ParseFileName(f)
		c.Instances = append(c.Instances, Instance{Name: name, File: f, Optimal: opt})
	}

	return c
}

// Path resolves inst.File against the catalog directory. Absolute files and
// an empty Dir leave the file name unchanged.
func (c *Catalog) Path(inst Instance) string {
	if c.Dir == "" || filepath.IsAbs(inst.File) {
		return inst.File
	}

	return filepath.Join(c.Dir, inst.File)
}

// Decode reads a YAML catalog from r. Unknown keys are rejected.
// Settings absent from the document keep their defaults; Dir defaults to
// DefaultDir only when the key is missing.
func Decode(r io.Reader) (*Catalog, error) {
	c := &Catalog{Dir: DefaultDir, Settings: DefaultSettings()}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmpty
		}
		return nil, fmt.Errorf("catalog: decode: %w", err)
	}
	if err := c.normalize(); err != nil {
		return nil, err
	}

	return c, nil
}

// Load opens path and decodes it with Decode.
func Load(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	c, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return c, nil
}

// normalize validates settings and fills names and optima from file names.
func (c *Catalog) normalize() error {
	if err := c.Settings.Validate(); err != nil {
		return err
	}
	if len(c.Instances) == 0 {
		return ErrEmpty
	}
	for i := range c.Instances {
		inst := &c.Instances[i]
		if strings.TrimSpace(inst.File) == "" {
			return fmt.Errorf("%w: entry %d has no file", ErrInvalidInstance, i)
		}
		if inst.Optimal < 0 {
			return fmt.Errorf("%w: entry %d: optimal=%d < 0", ErrInvalidInstance, i, inst.Optimal)
		}
		fromName := instanceFromFile(inst.File)
		if inst.Name == "" {
			inst.Name = fromName.Name
		}
		if inst.Optimal == 0 {
			inst.Optimal = fromName.Optimal
		}
	}

	return nil
}

// ParseFileName splits "tsp1_253.txt" into ("tsp1", 253). Directories in
// name are ignored. The name part may itself contain underscores; the
// optimum is what follows the last one.
func ParseFileName(name string) (string, int64, error) {
	base := filepath.Base(name)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	cut := strings.LastIndexByte(stem, '_')
	if cut <= 0 || cut == len(stem)-1 {
		return "", 0, fmt.Errorf("%w: %q", ErrBadFileName, base)
	}
	opt, err := strconv.ParseInt(stem[cut+1:], 10, 64)
	if err != nil || opt <= 0 {
		return "", 0, fmt.Errorf("%w: %q", ErrBadFileName, base)
	}

	return stem[:cut], opt, nil
}

// FromPath builds an Instance for a single file given on the command line.
// Files not following the naming convention get their stem as name and an
// unknown optimum.
func FromPath(path string) Instance {
	return instanceFromFile(path)
}

func instanceFromFile(path string) Instance {
	name, opt, err := ParseFileName(path)
	if err != nil {
		base := filepath.Base(path)
		return Instance{Name: strings.TrimSuffix(base, filepath.Ext(base)), File: path}
	}

	return Instance{Name: name, File: path, Optimal: opt}
}
