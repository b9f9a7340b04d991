package btree

import "fmt"

const (
	// DefaultDegree is the minimum degree used when Config.Degree is left 0.
	DefaultDegree = 3
	// MinDegree is the smallest minimum degree for which splitting a node
	// yields two non-empty halves.
	MinDegree = 2
)

// Config configures a B-tree.
type Config struct {
	// Degree is the minimum degree t. Non-root nodes hold between t-1 and
	// 2t-1 keys. Zero selects DefaultDegree.
	Degree int
	// Paranoid makes the tree verify all structural invariants after each
	// mutation and panic on the first violation. Intended for tests.
	Paranoid bool
}

func (cfg Config) normalized() Config {
	if cfg.Degree == 0 {
		cfg.Degree = DefaultDegree
	}
	return cfg
}

func (cfg Config) validate() error {
	cfg = cfg.normalized()
	if cfg.Degree < MinDegree {
		return fmt.Errorf("%w: degree must be >= %d, is %d", ErrInvalidConfig, MinDegree, cfg.Degree)
	}
	return nil
}

func (cfg Config) maxKeys() int {
	return 2*cfg.Degree - 1
}

func (cfg Config) minKeys() int {
	return cfg.Degree - 1
}
