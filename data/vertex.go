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
Package data contains the graph entities: Vertex, EdgeKey, Edge and the
property records attached to them. These are plain immutable value types;
the invariants tying them together are enforced by the datastore contract
in package store, not here.
*/
package data

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/krotik/graphdb"
)

/*
Vertex is a typed node in the graph, identified globally by Id.
*/
type Vertex struct {
	Id uuid.UUID
	T  graphdb.Identifier
}

/*
NewVertex builds a Vertex with an explicit id. To have the backend generate
a v1 id instead, use the datastore's CreateVertexFromType.
*/
func NewVertex(id uuid.UUID, t graphdb.Identifier) Vertex {
	return Vertex{Id: id, T: t}
}

/*
String renders the vertex as "<id>:<type>" for logs and test failures.
*/
func (v Vertex) String() string {
	return fmt.Sprintf("%s:%s", v.Id, v.T)
}
