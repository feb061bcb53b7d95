package config

import (
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Params is the fully resolved set of spec.md §6 parameters plus the
// AMBIENT config-file/output-directory flags.
type Params struct {
	Dataset string

	K    int
	HasK bool

	M          int
	S          float64
	Z          int
	Q          int
	HasQ       bool
	AddNegated bool
	Greedy     bool
	Verbose    bool

	Config string
	OutDir string
}

// BindFlags registers every spec.md §6 parameter, plus --config and
// --out-dir, on flags with the defaults from §6's parameter table.
func BindFlags(flags *pflag.FlagSet) {
	flags.String("dataset", "", "path to the dataset file (required)")
	flags.Int("k", 0, "stop after k itemsets (omit for a BIC-driven stop)")
	flags.Int("m", 0, "max itemset size (0 = unbounded)")
	flags.Float64("s", 0.05, "min support fraction")
	flags.Int("z", 10, "top-z candidates retained in search")
	flags.Int("q", 0, "max |C_sub| per submodel before blacklist (omit to turn off)")
	flags.Bool("add-negated", false, "enable the negation extension")
	flags.Bool("greedy", false, "enable the greedy h_X < parent_h prune")
	flags.Bool("verbose", false, "per-iteration debug logging")
	flags.String("config", "", "optional YAML config file")
	flags.String("out-dir", ".", "directory to write summary.dat and stats into")
}

// Load merges flags, an optional viper-parsed YAML config file (flags take
// precedence over the file, which takes precedence over built-in
// defaults), and MTV_-prefixed environment variables, into a Params.
func Load(flags *pflag.FlagSet) (*Params, error) {
	v := viper.New()
	if err := v.BindPFlags(flags); err != nil {
		return nil, err
	}
	v.SetEnvPrefix("MTV")
	v.AutomaticEnv()

	if cfgPath, _ := flags.GetString("config"); cfgPath != "" {
		v.SetConfigFile(cfgPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	p := &Params{
		Dataset:    v.GetString("dataset"),
		M:          v.GetInt("m"),
		S:          v.GetFloat64("s"),
		Z:          v.GetInt("z"),
		AddNegated: v.GetBool("add-negated"),
		Greedy:     v.GetBool("greedy"),
		Verbose:    v.GetBool("verbose"),
		Config:     v.GetString("config"),
		OutDir:     v.GetString("out-dir"),
	}

	if flags.Changed("k") || v.IsSet("k") {
		p.K = v.GetInt("k")
		p.HasK = true
	}
	if flags.Changed("q") || v.IsSet("q") {
		p.Q = v.GetInt("q")
		p.HasQ = true
	}

	return p, nil
}
