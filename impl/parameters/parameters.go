package parameters

import (
	"encoding/json"
	"fmt"
	"gossip-simulation/config"
	"io"
	"os"
)

// Parameters is the on-disk form of a simulation run.
type Parameters struct {
	// Simulation
	NodesCount int    `json:"n"`
	Cycles     int    `json:"cycles"`
	Seed       uint64 `json:"seed"`

	// Overlay
	Fanout       int    `json:"fanout"`
	MinNeighbors int    `json:"min_neighbors"`
	MaxNeighbors int    `json:"max_neighbors"`
	Policy       string `json:"policy"`
}

func DefaultParameters() Parameters {
	return Parameters{
		NodesCount:   config.NodesCount,
		Cycles:       config.Cycles,
		Seed:         config.Seed,
		Fanout:       config.Fanout,
		MinNeighbors: config.MinNeighbors,
		MaxNeighbors: config.MaxNeighbors,
		Policy:       config.ClampNeighbors.String(),
	}
}

// LoadParameters reads a json document. Fields missing from the document keep
// their default values.
func LoadParameters(path string) (Parameters, error) {
	params := DefaultParameters()

	f, e := os.Open(path)
	if e != nil {
		return params, fmt.Errorf("can't read from file %s: %w", path, e)
	}
	defer f.Close()

	byteArray, e := io.ReadAll(f)
	if e != nil {
		return params, fmt.Errorf("could not read bytes from %s: %w", path, e)
	}

	if e = json.Unmarshal(byteArray, &params); e != nil {
		return params, fmt.Errorf("could not parse json from %s: %w", path, e)
	}
	return params, nil
}

// Config validates the overlay part of the parameters.
func (p Parameters) Config() (config.Config, error) {
	policy, e := config.ParsePolicy(p.Policy)
	if e != nil {
		return config.Config{}, e
	}
	return config.New(
		p.Fanout, p.MaxNeighbors,
		config.WithMinNeighbors(p.MinNeighbors),
		config.WithPolicy(policy))
}
