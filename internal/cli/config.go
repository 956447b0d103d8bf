package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/densegraph/harness"
)

// experimentFile is the on-disk shape of a `run --config` file:
//
//	algorithm  = "kruskal"
//	categories = ["sparse", "dense"]
//	format     = "text"
//
//	[sweep]
//	min_nodes = 10
//	max_nodes = 300
//	step      = 10
//	trials    = 3
//	seed      = 1
type experimentFile struct {
	Algorithm  string         `toml:"algorithm"`
	Categories []string       `toml:"categories"`
	Format     string         `toml:"format"`
	Sweep      harness.Config `toml:"sweep"`
}

// loadExperiment decodes path on top of base. Keys absent from the file keep
// the values already in base; unknown keys are an error.
func loadExperiment(path string, base experimentFile) (experimentFile, error) {
	md, err := toml.DecodeFile(path, &base)
	if err != nil {
		return experimentFile{}, fmt.Errorf("config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return experimentFile{}, fmt.Errorf("config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}

	return base, nil
}

// graphFile is the on-disk shape of a weight matrix. TOML's `inf` literal
// marks a missing edge:
//
//	weights = [
//	  [0.0, 4.0, inf],
//	  [4.0, 0.0, 1.0],
//	  [inf, 1.0, 0.0],
//	]
type graphFile struct {
	Weights [][]float64 `toml:"weights"`
}

func loadGraphFile(path string) (graphFile, error) {
	var gf graphFile
	if _, err := toml.DecodeFile(path, &gf); err != nil {
		return graphFile{}, fmt.Errorf("graph %s: %w", path, err)
	}
	if len(gf.Weights) == 0 {
		return graphFile{}, fmt.Errorf("graph %s: missing or empty \"weights\"", path)
	}

	return gf, nil
}
