/*
 * Graph datastore engine
 *
 * Copyright 2026 Graph Datastore Authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

/*
Package graphdb contains the identifier and value model shared by every
other package in this module.

Identifiers

An Identifier is a short, validated textual name used for vertex types, edge
types and property names (see Identifier). Values are opaque JSON data
attached to vertices and edges under a property name (see Value).

The rest of the engine is laid out in sibling packages:

  - graphdb/data holds the graph entities (Vertex, EdgeKey, Edge, properties).
  - graphdb/query holds the query algebra (VertexQuery, EdgeQuery).
  - graphdb/store holds the datastore contract every backend implements.
  - graphdb/memstore is the in-memory reference backend.
*/
package graphdb

import (
	"fmt"
	"strings"

	"github.com/krotik/graphdb/graphutil"
)

/*
MaxIdentifierLength is the maximum number of bytes an Identifier may occupy.
*/
const MaxIdentifierLength = 255

/*
Identifier is a short textual name used for vertex types, edge types and
property names. Identifiers compare by exact byte equality.
*/
type Identifier struct {
	s string
}

/*
NewIdentifier validates s and returns an Identifier, or ErrInvalidIdentifier
if s is empty, too long, or contains characters outside the restricted
charset (letters, digits, '-', '_', ':').
*/
func NewIdentifier(s string) (Identifier, error) {
	if err := validateIdentifier(s); err != nil {
		return Identifier{}, err
	}

	return Identifier{s: s}, nil
}

/*
MustIdentifier is like NewIdentifier but panics on an invalid identifier. It
is meant for constants and tests where the value is known to be valid.
*/
func MustIdentifier(s string) Identifier {
	id, err := NewIdentifier(s)
	if err != nil {
		panic(err)
	}

	return id
}

func validateIdentifier(s string) error {
	if s == "" {
		return graphutil.New(graphutil.ErrInvalidIdentifier, "identifier must not be empty")
	}

	if len(s) > MaxIdentifierLength {
		return graphutil.New(graphutil.ErrInvalidIdentifier,
			fmt.Sprintf("identifier exceeds %d bytes", MaxIdentifierLength))
	}

	for _, r := range s {
		isLetter := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
		isDigit := r >= '0' && r <= '9'
		isPunct := r == '-' || r == '_' || r == ':'

		if !isLetter && !isDigit && !isPunct {
			return graphutil.New(graphutil.ErrInvalidIdentifier,
				fmt.Sprintf("disallowed character %q in identifier %q", r, s))
		}
	}

	return nil
}

/*
String returns the underlying identifier text.
*/
func (id Identifier) String() string {
	return id.s
}

/*
IsZero reports whether id is the zero value (never produced by
NewIdentifier).
*/
func (id Identifier) IsZero() bool {
	return id.s == ""
}

/*
Equal reports byte-exact equality between two identifiers.
*/
func (id Identifier) Equal(other Identifier) bool {
	return id.s == other.s
}

/*
ParseIdentifierList is a convenience for splitting a comma-separated list of
identifiers, validating each one.
*/
func ParseIdentifierList(s string) ([]Identifier, error) {
	var out []Identifier

	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		id, err := NewIdentifier(part)
		if err != nil {
			return nil, err
		}

		out = append(out, id)
	}

	return out, nil
}
