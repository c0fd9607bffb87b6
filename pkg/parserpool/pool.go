// Package parserpool provides a pool of gnparser instances for
// concurrent scientific-name parsing. The occurrence scraper uses it to
// derive canonical taxon names from verbatim associatedTaxa strings so
// keyword search matches canonical spellings as well as the raw values.
// This is a pure package - parsing is computation, not I/O.
package parserpool

import (
	"runtime"

	"github.com/gnames/gnparser"
)

// Pool provides a fixed-size pool of gnparser instances.
type Pool interface {
	// Canonical returns the simple canonical form of a scientific name,
	// or an empty string when the name cannot be parsed. Safe for
	// concurrent use.
	Canonical(nameString string) string

	// Close shuts down the parser pool and releases resources.
	// After calling Close, the pool should not be used.
	Close()
}

type pool struct {
	ch       chan gnparser.GNparser
	poolSize int
}

// NewPool creates a parser pool with the given number of workers.
// If jobsNum is 0, it defaults to runtime.NumCPU().
func NewPool(jobsNum int) Pool {
	poolSize := jobsNum
	if poolSize == 0 {
		poolSize = runtime.NumCPU()
	}

	cfg := gnparser.NewConfig()
	ch := gnparser.NewPool(cfg, poolSize)

	return &pool{ch: ch, poolSize: poolSize}
}

func (p *pool) Canonical(nameString string) string {
	if nameString == "" {
		return ""
	}

	// Get a parser from the pool (blocks if all parsers are busy).
	parser := <-p.ch
	res := parser.ParseName(nameString)
	p.ch <- parser

	if !res.Parsed || res.Canonical == nil {
		return ""
	}
	return res.Canonical.Simple
}

func (p *pool) Close() {
	if p.ch != nil {
		close(p.ch)
		for range p.ch {
		}
	}
}
