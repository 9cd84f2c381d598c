package file

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/preston-bernstein/nha-sim-service/internal/domain/league"
	"github.com/preston-bernstein/nha-sim-service/internal/providers"
)

const providerName = "file"

// Provider reads a league definition from a YAML file:
//
//	east: [New England Captains, ...]
//	west: [San Francisco Money, ...]
//	tiers:
//	  A: [New York Skies, ...]
//
// When tiers is omitted the default NHA tier table applies.
type Provider struct {
	path     string
	readFile func(string) ([]byte, error)
}

// New creates a provider for the YAML file at path.
func New(path string) *Provider {
	return &Provider{path: path, readFile: os.ReadFile}
}

// FetchLeague reads and decodes the file on every call.
func (p *Provider) FetchLeague(ctx context.Context) (league.League, error) {
	if err := ctx.Err(); err != nil {
		return league.League{}, err
	}
	data, err := p.readFile(p.path)
	if err != nil {
		return league.League{}, &providers.LoadError{Provider: providerName, Source: p.path, Err: err}
	}
	l, err := Decode(bytes.NewReader(data))
	if err != nil {
		return league.League{}, &providers.LoadError{Provider: providerName, Source: p.path, Err: err}
	}
	return l, nil
}

// Decode parses a YAML league definition. Unknown fields are rejected.
func Decode(r io.Reader) (league.League, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var l league.League
	if err := dec.Decode(&l); err != nil {
		if err == io.EOF {
			return league.League{}, fmt.Errorf("%w: empty league file", league.ErrInvalidLeague)
		}
		return league.League{}, fmt.Errorf("decode league: %w", err)
	}
	return l, nil
}

// Encode writes l as YAML.
func Encode(w io.Writer, l league.League) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(l); err != nil {
		return fmt.Errorf("encode league: %w", err)
	}
	return enc.Close()
}
