// SPDX-License-Identifier: MIT

package workload

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Plan is a benchmark plan as read from YAML:
//
//	seed: 42
//	workers: 4
//	workloads:
//	  - name: random-100k
//	    kind: random
//	    size: 100000
//	    repeat: 5
//	    ops: [sort, heapsort, search]
type Plan struct {
	Seed      int64      `yaml:"seed"`
	Workers   int        `yaml:"workers"`
	Workloads []Workload `yaml:"workloads"`
}

// Workload is one input shape timed under a list of operations.
type Workload struct {
	Name   string `yaml:"name"`
	Kind   Kind   `yaml:"kind"`
	Size   int    `yaml:"size"`
	Repeat int    `yaml:"repeat"`
	Ops    []Op   `yaml:"ops"`
}

// LoadPlan reads and parses the plan at path.
func LoadPlan(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "while reading plan %s", path)
	}
	p, err := ParsePlan(data)
	if err != nil {
		return nil, errors.Wrapf(err, "plan %s", path)
	}
	return p, nil
}

// ParsePlan decodes a YAML plan, fills defaults and validates it.
// Unknown fields are rejected.
func ParsePlan(data []byte) (*Plan, error) {
	var p Plan
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil && err != io.EOF {
		return nil, errors.Wrap(err, "while decoding plan")
	}
	p.applyDefaults()
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

func (p *Plan) applyDefaults() {
	for i := range p.Workloads {
		w := &p.Workloads[i]
		if w.Repeat == 0 {
			w.Repeat = 1
		}
		if len(w.Ops) == 0 {
			w.Ops = []Op{OpSort}
		}
		if w.Name == "" {
			w.Name = fmt.Sprintf("%s-%d", w.Kind, w.Size)
		}
	}
}

// Validate checks the plan for structural errors.
func (p *Plan) Validate() error {
	if len(p.Workloads) == 0 {
		return ErrEmptyPlan
	}
	if p.Workers < 0 {
		return errors.Wrapf(ErrInvalidSize, "workers %d", p.Workers)
	}
	for i, w := range p.Workloads {
		if _, err := ParseKind(string(w.Kind)); err != nil {
			return errors.Wrapf(err, "workload %d (%s)", i, w.Name)
		}
		if w.Size < 0 {
			return errors.Wrapf(ErrInvalidSize, "workload %d (%s): size %d", i, w.Name, w.Size)
		}
		if w.Repeat < 1 {
			return errors.Wrapf(ErrInvalidSize, "workload %d (%s): repeat %d", i, w.Name, w.Repeat)
		}
		for _, op := range w.Ops {
			if _, err := ParseOp(string(op)); err != nil {
				return errors.Wrapf(err, "workload %d (%s)", i, w.Name)
			}
		}
	}
	return nil
}
