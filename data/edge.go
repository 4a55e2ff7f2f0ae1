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
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/krotik/graphdb"
)

/*
EdgeKey is the identity of an edge: at most one edge exists per
(Outbound, T, Inbound). The graph is directed - a key with Outbound and
Inbound swapped names a different edge.
*/
type EdgeKey struct {
	Outbound uuid.UUID
	T        graphdb.Identifier
	Inbound  uuid.UUID
}

/*
NewEdgeKey builds an EdgeKey from its three identity components.
*/
func NewEdgeKey(outbound uuid.UUID, t graphdb.Identifier, inbound uuid.UUID) EdgeKey {
	return EdgeKey{Outbound: outbound, T: t, Inbound: inbound}
}

/*
String renders the key as "<outbound>-<type>-><inbound>".
*/
func (k EdgeKey) String() string {
	return fmt.Sprintf("%s-%s->%s", k.Outbound, k.T, k.Inbound)
}

/*
Less orders two keys in (Outbound, T, Inbound) order, which is the order
Range edge queries return results in.
*/
func (k EdgeKey) Less(other EdgeKey) bool {
	if c := compareUUID(k.Outbound, other.Outbound); c != 0 {
		return c < 0
	}
	if k.T.String() != other.T.String() {
		return k.T.String() < other.T.String()
	}
	return compareUUID(k.Inbound, other.Inbound) < 0
}

func compareUUID(a, b uuid.UUID) int {
	for i := range a {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

/*
Edge is a directed, typed connection between two vertices, carrying the
wall-clock time at which it was (re-)created.
*/
type Edge struct {
	Key       EdgeKey
	CreatedAt time.Time
}

/*
NewEdge builds an Edge with an explicit creation time. Backends refresh
CreatedAt to time.Now().UTC() on every create_edge call.
*/
func NewEdge(key EdgeKey, createdAt time.Time) Edge {
	return Edge{Key: key, CreatedAt: createdAt.UTC()}
}
