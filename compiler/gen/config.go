package gen

import (
	"fmt"
	"os"
	"runtime"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Subset selects which built contracts a generation run yields.
type Subset string

// Subsets.
const (
	// SubsetAll yields every combination that builds.
	SubsetAll Subset = "all"
	// SubsetMinimalCover yields only contracts whose footprint is not
	// covered by another contract of the same upgradeability.
	SubsetMinimalCover Subset = "minimal-cover"
)

// Config holds the generator configuration. It is usually assembled with
// NewConfig or read from a solgen.yaml file with LoadConfig.
type Config struct {
	// Kinds restricts generation to the listed kinds. Empty means all.
	Kinds []Kind `yaml:"kinds,omitempty"`
	// Subset selects all combinations or their minimal cover.
	Subset Subset `yaml:"subset,omitempty"`
	// Where is an optional filter expression, see Filter.
	Where string `yaml:"where,omitempty"`
	// Target is the directory written by the Writer.
	Target string `yaml:"target,omitempty"`
	// Workers bounds the number of concurrent print and write tasks.
	Workers int `yaml:"workers,omitempty"`

	Logger *zap.Logger `yaml:"-"`

	filter *Filter
}

func defaultConfig() *Config {
	return &Config{
		Subset:  SubsetAll,
		Workers: runtime.GOMAXPROCS(0),
		Logger:  zap.NewNop(),
	}
}

// Filter returns the compiled Where expression, or nil.
func (c *Config) Filter() *Filter { return c.filter }

// LoadConfig reads a YAML configuration file and applies opts on top of it.
func LoadConfig(path string, opts ...Option) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("gen: read config: %w", err)
	}
	var file Config
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("gen: parse config %s: %w", path, err)
	}
	var fromFile []Option
	if len(file.Kinds) > 0 {
		fromFile = append(fromFile, WithKinds(file.Kinds...))
	}
	if file.Subset != "" {
		fromFile = append(fromFile, WithSubset(file.Subset))
	}
	if file.Where != "" {
		fromFile = append(fromFile, WithWhere(file.Where))
	}
	if file.Target != "" {
		fromFile = append(fromFile, WithTarget(file.Target))
	}
	if file.Workers != 0 {
		fromFile = append(fromFile, WithWorkers(file.Workers))
	}
	c := defaultConfig()
	if err := c.ApplyAll(fromFile...); err != nil {
		return nil, err
	}
	if err := c.Apply(opts...); err != nil {
		return nil, err
	}
	return c, nil
}
