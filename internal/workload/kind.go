// SPDX-License-Identifier: MIT

// Package workload describes benchmark inputs for seqbench: the shape of
// the generated data (Kind), the operations to time (Op) and YAML plans that
// combine them.
package workload

import (
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

var (
	// ErrUnknownKind is returned for an unrecognised workload kind.
	ErrUnknownKind = errors.New("workload: unknown kind")

	// ErrUnknownOp is returned for an unrecognised operation name.
	ErrUnknownOp = errors.New("workload: unknown op")

	// ErrInvalidSize is returned for negative sizes or repeat counts.
	ErrInvalidSize = errors.New("workload: invalid size")

	// ErrEmptyPlan is returned when a plan has no workloads.
	ErrEmptyPlan = errors.New("workload: plan has no workloads")
)

// Kind names an input distribution.
type Kind string

const (
	Random    Kind = "random"
	Shuffled  Kind = "shuffled"
	Sorted    Kind = "sorted"
	Reversed  Kind = "reversed"
	OrganPipe Kind = "organ-pipe"
	FewUnique Kind = "few-unique"
	Sawtooth  Kind = "sawtooth"
	AllEqual  Kind = "all-equal"
)

// Kinds lists every supported Kind in a stable order.
var Kinds = []Kind{Random, Shuffled, Sorted, Reversed, OrganPipe, FewUnique, Sawtooth, AllEqual}

// ParseKind maps a case-insensitive name onto a Kind.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Kinds {
		if k == known {
			return k, nil
		}
	}
	return "", errors.Wrapf(ErrUnknownKind, "%q", s)
}

// UnmarshalYAML validates the kind while decoding a plan.
func (k *Kind) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseKind(s)
	if err != nil {
		return errors.Wrapf(err, "line %d", value.Line)
	}
	*k = parsed
	return nil
}

// Op names an operation the runner times.
type Op string

const (
	// OpSort runs introsort on the input.
	OpSort Op = "sort"
	// OpHeapSort runs heap.Make followed by heap.Sort.
	OpHeapSort Op = "heapsort"
	// OpSearch sorts once, then times an EqualRange probe per element.
	OpSearch Op = "search"
	// OpMinMax times a single MinMaxElement scan.
	OpMinMax Op = "minmax"
	// OpQueue pushes every element into a heap.Queue and drains it.
	OpQueue Op = "queue"
)

// Ops lists every supported Op in a stable order.
var Ops = []Op{OpSort, OpHeapSort, OpSearch, OpMinMax, OpQueue}

// ParseOp maps a case-insensitive name onto an Op.
func ParseOp(s string) (Op, error) {
	op := Op(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Ops {
		if op == known {
			return op, nil
		}
	}
	return "", errors.Wrapf(ErrUnknownOp, "%q", s)
}

// UnmarshalYAML validates the op while decoding a plan.
func (o *Op) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseOp(s)
	if err != nil {
		return errors.Wrapf(err, "line %d", value.Line)
	}
	*o = parsed
	return nil
}
