// Package scenario describes a search problem as YAML: the node count, the
// edges with optional weights, heuristic annotations, the root/goal pair, the
// algorithm to run and the seed for unset weights.
//
//	name: seven-node
//	nodes: 7
//	seed: 1
//	root: 0
//	goal: 6
//	algorithm: astar
//	heuristics: [8, 8, 6, 5, 1, 4, 0]   # ~ leaves a node unannotated
//	edges:
//	  - {from: 0, to: 1, weight: 4}
//	  - {from: 1, to: 0}                 # weight resolved lazily
//
// Build turns a Scenario into a ready core.Graph.
package scenario

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/pathfind/core"
)

// ErrInvalidScenario wraps every validation failure.
var ErrInvalidScenario = errors.New("scenario: invalid scenario")

//go:embed default.yaml
var defaultYAML []byte

var validate = validator.New(validator.WithRequiredStructEnabled())

// Edge is one AddEdge call. A nil Weight defers weight resolution.
type Edge struct {
	From   int    `yaml:"from" validate:"gte=0"`
	To     int    `yaml:"to" validate:"gte=0"`
	Weight *int64 `yaml:"weight,omitempty" validate:"omitempty,gte=0"`
}

// Scenario is the YAML document shape.
type Scenario struct {
	Name      string `yaml:"name"`
	Nodes     int    `yaml:"nodes" validate:"gt=0"`
	Symmetric bool   `yaml:"symmetric"`
	Seed      int64  `yaml:"seed"`
	Root      int    `yaml:"root" validate:"gte=0,ltfield=Nodes"`
	Goal      int    `yaml:"goal" validate:"gte=0,ltfield=Nodes"`
	Algorithm string `yaml:"algorithm"`

	// Heuristics is indexed by node identity; nil entries stay unset.
	Heuristics []*int64 `yaml:"heuristics"`

	Edges []Edge `yaml:"edges" validate:"dive"`
}

// Default returns the built-in seven-node scenario.
func Default() *Scenario {
	s, err := Parse(defaultYAML)
	if err != nil {
		panic(fmt.Sprintf("scenario: embedded default is broken: %v", err))
	}

	return s
}

// Load reads and parses a scenario file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scenario: read %s: %w", path, err)
	}

	return Parse(data)
}

// Parse decodes a YAML document and validates it. Unknown fields are rejected.
func Parse(data []byte) (*Scenario, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var s Scenario
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("scenario: decode: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	return &s, nil
}

// Validate checks identities, weights and heuristics against the node count.
// Field rules live in the struct tags; edge endpoints and the heuristic
// count are checked against Nodes here.
func (s *Scenario) Validate() error {
	if err := validate.Struct(s); err != nil {
		var fes validator.ValidationErrors
		if errors.As(err, &fes) && len(fes) > 0 {
			fe := fes[0]
			return fmt.Errorf("%w: %s fails %s%s, got %v",
				ErrInvalidScenario, fe.Namespace(), fe.Tag(), param(fe.Param()), fe.Value())
		}
		return fmt.Errorf("%w: %v", ErrInvalidScenario, err)
	}
	if len(s.Heuristics) > s.Nodes {
		return fmt.Errorf("%w: %d heuristics for %d nodes", ErrInvalidScenario, len(s.Heuristics), s.Nodes)
	}
	for i, e := range s.Edges {
		if !s.inRange(e.From) || !s.inRange(e.To) {
			return fmt.Errorf("%w: edge #%d %d→%d out of range", ErrInvalidScenario, i, e.From, e.To)
		}
	}

	return nil
}

func param(p string) string {
	if p == "" {
		return ""
	}
	return "=" + p
}

func (s *Scenario) inRange(id int) bool { return id >= 0 && id < s.Nodes }

// Build creates the graph: every node in identity order, then edges in
// document order, then heuristics. Extra options are applied after the
// scenario's own seed and adjacency settings.
func (s *Scenario) Build(opts ...core.GraphOption) (*core.Graph, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	all := []core.GraphOption{core.WithSeed(s.Seed)}
	if s.Symmetric {
		all = append(all, core.WithSymmetricAdjacency())
	}
	all = append(all, opts...)

	g, err := core.NewGraph(s.Nodes, all...)
	if err != nil {
		return nil, err
	}
	for id := 0; id < s.Nodes; id++ {
		if _, err = g.CreateNode(id); err != nil {
			return nil, err
		}
	}
	for _, e := range s.Edges {
		var eopts []core.EdgeOption
		if e.Weight != nil {
			eopts = append(eopts, core.WithWeight(*e.Weight))
		}
		if err = g.AddEdge(e.From, e.To, eopts...); err != nil {
			return nil, err
		}
	}
	for id, h := range s.Heuristics {
		if h == nil {
			continue
		}
		if err = g.SetHeuristic(id, *h); err != nil {
			return nil, err
		}
	}

	return g, nil
}
