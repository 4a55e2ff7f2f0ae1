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
Package memstore is the in-memory reference backend for the datastore
contract defined in package store: a single process-local graph guarded by
one read-write lock, with the secondary property indexes kept inside the
same critical section as the data they describe.
*/
package memstore

import (
	"sync"

	"github.com/google/uuid"
)

/*
idGenerator produces RFC 4122 v1 Uuids. uuid.NewUUID seeds the node id from
the process's MAC address (or a random fallback) once per process and keeps
a monotonically increasing clock sequence, giving a stable node id across
the process lifetime and ids that are monotone within it. A mutex
serializes generation so CreateVertexFromType calls from concurrent
goroutines never race on the underlying clock sequence counter.
*/
type idGenerator struct {
	mu sync.Mutex
}

func (g *idGenerator) next() (uuid.UUID, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	return uuid.NewUUID()
}
