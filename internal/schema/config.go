package schema

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// CircuitConfig defines a complete circuit.
type CircuitConfig struct {
	Version string       `json:"version,omitempty" yaml:"version,omitempty"`
	ID      string       `json:"id" yaml:"id" validate:"required,max=128"`
	Mode    string       `json:"mode,omitempty" yaml:"mode,omitempty" validate:"omitempty,oneof=edge once"`
	Nodes   []NodeConfig `json:"nodes" yaml:"nodes" validate:"required,min=1,dive"`
}

// NodeConfig declares one node and its edges. An edge may be listed on either
// endpoint, or both; duplicates collapse into one edge.
type NodeConfig struct {
	Name    string   `json:"name" yaml:"name" validate:"required,max=128"`
	Initial bool     `json:"initial,omitempty" yaml:"initial,omitempty"`
	Inputs  []string `json:"inputs,omitempty" yaml:"inputs,omitempty" validate:"dive,required"`
	Outputs []string `json:"outputs,omitempty" yaml:"outputs,omitempty" validate:"dive,required"`
}

// Validate validates the entire circuit configuration:
// - Struct constraints (ID, names, mode)
// - Unique node names
// - All inputs/outputs reference declared nodes
func (c *CircuitConfig) Validate() error {
	if err := validate.Struct(c); err != nil {
		return formatValidationError(err)
	}

	declared := make(map[string]bool, len(c.Nodes))
	for _, n := range c.Nodes {
		if declared[n.Name] {
			return fmt.Errorf("duplicate node %q", n.Name)
		}
		declared[n.Name] = true
	}

	for _, n := range c.Nodes {
		for _, in := range n.Inputs {
			if !declared[in] {
				return fmt.Errorf("node %q: unknown input %q", n.Name, in)
			}
		}
		for _, out := range n.Outputs {
			if !declared[out] {
				return fmt.Errorf("node %q: unknown output %q", n.Name, out)
			}
		}
	}
	return nil
}

// FindNode returns the declaration for name.
func (c *CircuitConfig) FindNode(name string) (*NodeConfig, error) {
	for i := range c.Nodes {
		if c.Nodes[i].Name == name {
			return &c.Nodes[i], nil
		}
	}
	return nil, fmt.Errorf("node %q not found", name)
}

// formatValidationError flattens validator errors into one readable error.
func formatValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s: failed %q", fe.Namespace(), fe.Tag()))
	}
	return fmt.Errorf("invalid circuit: %s", strings.Join(msgs, "; "))
}
