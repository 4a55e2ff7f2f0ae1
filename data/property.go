/*
 * Graph datastore engine
 *
 * Copyright 2026 Graph Datastore Authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package data

import (
	"github.com/google/uuid"
	"github.com/krotik/graphdb"
)

/*
VertexProperty is a single named value attached to a vertex. At most one
VertexProperty exists per (Id, Name); writing overwrites.
*/
type VertexProperty struct {
	Id    uuid.UUID
	Name  graphdb.Identifier
	Value graphdb.Value
}

/*
EdgeProperty is a single named value attached to an edge. At most one
EdgeProperty exists per (Key, Name); writing overwrites.
*/
type EdgeProperty struct {
	Key   EdgeKey
	Name  graphdb.Identifier
	Value graphdb.Value
}

/*
VertexProperties bundles a vertex with the full set of properties currently
attached to it; used by the bulk get_all_vertex_properties operation.
*/
type VertexProperties struct {
	Vertex     Vertex
	Properties map[string]graphdb.Value
}

/*
EdgeProperties bundles an edge with the full set of properties currently
attached to it; used by the bulk get_all_edge_properties operation.
*/
type EdgeProperties struct {
	Edge       Edge
	Properties map[string]graphdb.Value
}
