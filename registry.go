package mbase

import (
	"fmt"
	"strings"
)

// Registry is an immutable catalog of codec instances. Build one with
// NewRegistry; after construction it is read-only and safe for
// unsynchronized concurrent reads.
type Registry struct {
	codecs []Codec
	byName map[string]int // canonical names and aliases -> codec index
	byCode map[rune]string
}

// NewRegistry builds a registry from a fixed list of codecs, validating in
// order: unique names, unique aliases disjoint from names, unique multibase
// codes. Violations are programming errors in the catalog, not user input,
// so they panic rather than returning an error; the registration test in
// the codecs package catches them before any release.
func NewRegistry(codecs ...Codec) *Registry {
	r := &Registry{
		codecs: codecs,
		byName: make(map[string]int, len(codecs)*2),
		byCode: make(map[rune]string, len(codecs)),
	}

	for i, c := range codecs {
		name := c.Meta().Name
		if name == "" {
			panic(fmt.Sprintf("mbase: codec at index %d has empty name", i))
		}
		if prev, ok := r.byName[name]; ok {
			panic(fmt.Sprintf("mbase: duplicate codec name %q (indexes %d and %d)", name, prev, i))
		}
		r.byName[name] = i
	}

	// Aliases are registered verbatim: the catalog distinguishes spellings
	// like "hex" and "HEX". Get tries the verbatim key first so each
	// spelling resolves to its own codec.
	for i, c := range codecs {
		for _, alias := range c.Meta().Aliases {
			if prev, ok := r.byName[alias]; ok {
				panic(fmt.Sprintf("mbase: alias %q of %q collides with %q",
					alias, c.Meta().Name, r.codecs[prev].Meta().Name))
			}
			r.byName[alias] = i
		}
	}

	for _, c := range codecs {
		meta := c.Meta()
		if meta.MultibaseCode == 0 {
			continue
		}
		if prev, ok := r.byCode[meta.MultibaseCode]; ok {
			panic(fmt.Sprintf("mbase: duplicate multibase code %q for codecs %q and %q",
				meta.MultibaseCode, prev, meta.Name))
		}
		r.byCode[meta.MultibaseCode] = meta.Name
	}

	return r
}

// Get resolves a codec by canonical name or alias, case-insensitively.
// Returns *CodecNotFoundError on miss.
func (r *Registry) Get(nameOrAlias string) (Codec, error) {
	// Verbatim first: case-distinguished aliases like "HEX" and "B32" must
	// resolve to their own codec, not to the lowercase sibling.
	if i, ok := r.byName[nameOrAlias]; ok {
		return r.codecs[i], nil
	}
	if i, ok := r.byName[strings.ToLower(nameOrAlias)]; ok {
		return r.codecs[i], nil
	}
	return nil, &CodecNotFoundError{Name: nameOrAlias}
}

// List returns every codec's Meta in declaration order. Declaration order
// is the tie-break order used by detection ranking.
func (r *Registry) List() []Meta {
	out := make([]Meta, len(r.codecs))
	for i, c := range r.codecs {
		out[i] = c.Meta()
	}
	return out
}

// Codecs returns the codec instances in declaration order. The returned
// slice is a copy; the instances themselves are shared and stateless.
func (r *Registry) Codecs() []Codec {
	out := make([]Codec, len(r.codecs))
	copy(out, r.codecs)
	return out
}

// MultibaseMap returns multibase code -> canonical codec name.
func (r *Registry) MultibaseMap() map[rune]string {
	out := make(map[rune]string, len(r.byCode))
	for k, v := range r.byCode {
		out[k] = v
	}
	return out
}

// Len reports the number of registered codecs.
func (r *Registry) Len() int { return len(r.codecs) }
