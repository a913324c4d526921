// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package workload generates deterministic streams of bimap operations.
//
// The same Config always yields the same stream. Left keys are ints in
// [0, KeySpace), right keys are drawn from a pool of KeySpace strings,
// either random UUIDs or zero padded decimals. The bounded key spaces
// make duplicate inserts and rebinding of default keys frequent.
package workload

import (
	"errors"
	"fmt"
	"iter"
	"math/rand/v2"

	"github.com/google/uuid"
)

// ErrInvalid is returned by [New] for an unusable Config.
var ErrInvalid = errors.New("workload: invalid config")

// Right key kinds.
const (
	RightUUID = "uuid"
	RightInt  = "int"
)

// Kind is the kind of an operation.
type Kind uint8

const (
	Insert Kind = iota
	EraseLeft
	EraseRight
	FindLeft
	FindRight
	OrDefaultLeft
	OrDefaultRight
	Clone
)

var kindNames = [...]string{
	Insert:         "insert",
	EraseLeft:      "erase_left",
	EraseRight:     "erase_right",
	FindLeft:       "find_left",
	FindRight:      "find_right",
	OrDefaultLeft:  "or_default_left",
	OrDefaultRight: "or_default_right",
	Clone:          "clone",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// Kinds returns all operation kinds.
func Kinds() []Kind {
	return []Kind{Insert, EraseLeft, EraseRight, FindLeft, FindRight, OrDefaultLeft, OrDefaultRight, Clone}
}

// Op is a single operation, unused keys are zero.
type Op struct {
	Kind  Kind
	Left  int
	Right string
}

// Mix holds the relative weights of the operation groups. Erase, find and
// or-default operations are split evenly between the left and right side.
type Mix struct {
	Insert    int
	Erase     int
	Find      int
	OrDefault int
	Clone     int
}

func (m Mix) total() int {
	return m.Insert + m.Erase + m.Find + m.OrDefault + m.Clone
}

// Config parameterizes a Generator.
type Config struct {
	Seed      uint64
	KeySpace  int
	RightKeys string
	Mix       Mix
}

// Validate reports an error wrapping [ErrInvalid] for an unusable Config.
func (c Config) Validate() error {
	switch {
	case c.KeySpace <= 0:
		return fmt.Errorf("%w: key space %d", ErrInvalid, c.KeySpace)
	case c.RightKeys != RightUUID && c.RightKeys != RightInt:
		return fmt.Errorf("%w: right keys %q", ErrInvalid, c.RightKeys)
	case min(c.Mix.Insert, c.Mix.Erase, c.Mix.Find, c.Mix.OrDefault, c.Mix.Clone) < 0:
		return fmt.Errorf("%w: negative weight in mix %+v", ErrInvalid, c.Mix)
	case c.Mix.total() == 0:
		return fmt.Errorf("%w: empty mix", ErrInvalid)
	}
	return nil
}

// Generator produces operations, it is not safe for concurrent use.
type Generator struct {
	cfg   Config
	prng  *rand.Rand
	right []string
}

// New returns a Generator for cfg.
func New(cfg Config) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	g := &Generator{
		cfg:   cfg,
		prng:  rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15)),
		right: make([]string, cfg.KeySpace),
	}

	if cfg.RightKeys == RightInt {
		for i := range g.right {
			g.right[i] = fmt.Sprintf("%08d", i)
		}
		return g, nil
	}

	var seed [32]byte
	for i := range 8 {
		seed[i] = byte(cfg.Seed >> (8 * i))
	}
	src := rand.NewChaCha8(seed)

	for i := range g.right {
		id, err := uuid.NewRandomFromReader(src)
		if err != nil {
			return nil, fmt.Errorf("workload: right key %d: %w", i, err)
		}
		g.right[i] = id.String()
	}

	return g, nil
}

// Left returns a random left key.
func (g *Generator) Left() int {
	return g.prng.IntN(g.cfg.KeySpace)
}

// Right returns a random right key from the pool.
func (g *Generator) Right() string {
	return g.right[g.prng.IntN(len(g.right))]
}

// Next returns the next operation.
func (g *Generator) Next() Op {
	mix := g.cfg.Mix
	n := g.prng.IntN(mix.total())

	// the coin decides the side of split groups
	left := g.prng.IntN(2) == 0

	switch {
	case n < mix.Insert:
		return Op{Kind: Insert, Left: g.Left(), Right: g.Right()}

	case n < mix.Insert+mix.Erase:
		if left {
			return Op{Kind: EraseLeft, Left: g.Left()}
		}
		return Op{Kind: EraseRight, Right: g.Right()}

	case n < mix.Insert+mix.Erase+mix.Find:
		if left {
			return Op{Kind: FindLeft, Left: g.Left()}
		}
		return Op{Kind: FindRight, Right: g.Right()}

	case n < mix.Insert+mix.Erase+mix.Find+mix.OrDefault:
		if left {
			return Op{Kind: OrDefaultLeft, Left: g.Left()}
		}
		return Op{Kind: OrDefaultRight, Right: g.Right()}

	default:
		return Op{Kind: Clone}
	}
}

// Ops returns an iterator over the next n operations.
func (g *Generator) Ops(n int) iter.Seq[Op] {
	return func(yield func(Op) bool) {
		for range n {
			if !yield(g.Next()) {
				return
			}
		}
	}
}
