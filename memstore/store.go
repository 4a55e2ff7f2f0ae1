/*
 * Graph datastore engine
 *
 * Copyright 2026 Graph Datastore Authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package memstore

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/krotik/graphdb"
	"github.com/krotik/graphdb/data"
	"github.com/krotik/graphdb/graphutil"
	"github.com/krotik/graphdb/query"
	"github.com/krotik/graphdb/store"
)

/*
Store is the in-memory reference backend. A single sync.RWMutex guards the
whole graph: reads take the read lock, writes (including their index
maintenance) take the write lock for their entire duration, so no goroutine
ever observes a graph whose data and indexes disagree, and a cancelled write
leaves no torn state because it never yields while holding the lock.
*/
type Store struct {
	mu  sync.RWMutex
	e   *engine
	ids idGenerator
}

/*
New creates an empty in-memory datastore.
*/
func New() *Store {
	return &Store{e: newEngine()}
}

var _ store.Datastore = (*Store)(nil)

func checkCtx(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}

/*
Sync is a no-op: the in-memory backend has no durable tier to flush.
*/
func (s *Store) Sync(ctx context.Context) error {
	return checkCtx(ctx)
}

/*
Transaction snapshots the current graph into a private copy that the
returned handle mutates in isolation. Nothing is visible to s until the
handle's Commit succeeds.
*/
func (s *Store) Transaction(ctx context.Context) (store.Transaction, error) {
	if err := checkCtx(ctx); err != nil {
		return nil, err
	}

	s.mu.RLock()
	snapshot := s.e.clone()
	s.mu.RUnlock()

	return &txn{Store: &Store{e: snapshot}, parent: s}, nil
}

func (s *Store) CreateVertex(ctx context.Context, v data.Vertex) (bool, error) {
	if err := checkCtx(ctx); err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.e.createVertex(v), nil
}

func (s *Store) CreateVertexFromType(ctx context.Context, t graphdb.Identifier) (uuid.UUID, error) {
	if err := checkCtx(ctx); err != nil {
		return uuid.UUID{}, err
	}

	id, err := s.ids.next()
	if err != nil {
		return uuid.UUID{}, graphutil.New(graphutil.ErrBackend, err.Error())
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.e.createVertex(data.NewVertex(id, t)) {
		return uuid.UUID{}, graphutil.New(graphutil.ErrUuidTaken, id.String())
	}

	return id, nil
}

func (s *Store) GetVertices(ctx context.Context, q query.VertexQuery) ([]data.Vertex, error) {
	if err := checkCtx(ctx); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.e.evalVertexQuery(q)
}

func (s *Store) DeleteVertices(ctx context.Context, q query.VertexQuery) error {
	if err := checkCtx(ctx); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	vertices, err := s.e.evalVertexQuery(q)
	if err != nil {
		return err
	}

	for _, v := range vertices {
		s.e.deleteVertex(v.Id)
	}

	return nil
}

func (s *Store) GetVertexCount(ctx context.Context) (uint64, error) {
	if err := checkCtx(ctx); err != nil {
		return 0, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.e.vertexCount(), nil
}

func (s *Store) CreateEdge(ctx context.Context, key data.EdgeKey) (bool, error) {
	if err := checkCtx(ctx); err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.e.createEdge(key, time.Now().UTC()), nil
}

func (s *Store) GetEdges(ctx context.Context, q query.EdgeQuery) ([]data.Edge, error) {
	if err := checkCtx(ctx); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.e.evalEdgeQuery(q)
}

func (s *Store) DeleteEdges(ctx context.Context, q query.EdgeQuery) error {
	if err := checkCtx(ctx); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	edges, err := s.e.evalEdgeQuery(q)
	if err != nil {
		return err
	}

	for _, ed := range edges {
		s.e.deleteEdge(ed.Key)
	}

	return nil
}

func (s *Store) GetEdgeCount(ctx context.Context, id uuid.UUID, edgeType *graphdb.Identifier, dir query.Direction) (uint64, error) {
	if err := checkCtx(ctx); err != nil {
		return 0, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.e.edgeCount(id, edgeType, dir), nil
}

func (s *Store) GetVertexProperties(ctx context.Context, q query.VertexQuery, name graphdb.Identifier) ([]data.VertexProperty, error) {
	if err := checkCtx(ctx); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	vertices, err := s.e.evalVertexQuery(q)
	if err != nil {
		return nil, err
	}

	out := make([]data.VertexProperty, 0, len(vertices))
	for _, v := range vertices {
		if val, ok := s.e.vertexProperty(v.Id, name); ok {
			out = append(out, data.VertexProperty{Id: v.Id, Name: name, Value: val})
		}
	}

	return out, nil
}

func (s *Store) GetAllVertexProperties(ctx context.Context, q query.VertexQuery) ([]data.VertexProperties, error) {
	if err := checkCtx(ctx); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	vertices, err := s.e.evalVertexQuery(q)
	if err != nil {
		return nil, err
	}

	out := make([]data.VertexProperties, 0, len(vertices))
	for _, v := range vertices {
		out = append(out, data.VertexProperties{Vertex: v, Properties: cloneValueMap(s.e.vertexProps[v.Id])})
	}

	return out, nil
}

func (s *Store) SetVertexProperties(ctx context.Context, q query.VertexQuery, name graphdb.Identifier, value graphdb.Value) error {
	if err := checkCtx(ctx); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	vertices, err := s.e.evalVertexQuery(q)
	if err != nil {
		return err
	}

	for _, v := range vertices {
		s.e.setVertexProperty(v.Id, name, value)
	}

	return nil
}

func (s *Store) DeleteVertexProperties(ctx context.Context, q query.VertexQuery, name graphdb.Identifier) error {
	if err := checkCtx(ctx); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	vertices, err := s.e.evalVertexQuery(q)
	if err != nil {
		return err
	}

	for _, v := range vertices {
		s.e.deleteVertexProperty(v.Id, name)
	}

	return nil
}

func (s *Store) GetEdgeProperties(ctx context.Context, q query.EdgeQuery, name graphdb.Identifier) ([]data.EdgeProperty, error) {
	if err := checkCtx(ctx); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	edges, err := s.e.evalEdgeQuery(q)
	if err != nil {
		return nil, err
	}

	out := make([]data.EdgeProperty, 0, len(edges))
	for _, ed := range edges {
		if val, ok := s.e.edgeProperty(ed.Key, name); ok {
			out = append(out, data.EdgeProperty{Key: ed.Key, Name: name, Value: val})
		}
	}

	return out, nil
}

func (s *Store) GetAllEdgeProperties(ctx context.Context, q query.EdgeQuery) ([]data.EdgeProperties, error) {
	if err := checkCtx(ctx); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	edges, err := s.e.evalEdgeQuery(q)
	if err != nil {
		return nil, err
	}

	out := make([]data.EdgeProperties, 0, len(edges))
	for _, ed := range edges {
		out = append(out, data.EdgeProperties{Edge: ed, Properties: cloneValueMap(s.e.edgeProps[ed.Key])})
	}

	return out, nil
}

func (s *Store) SetEdgeProperties(ctx context.Context, q query.EdgeQuery, name graphdb.Identifier, value graphdb.Value) error {
	if err := checkCtx(ctx); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	edges, err := s.e.evalEdgeQuery(q)
	if err != nil {
		return err
	}

	for _, ed := range edges {
		s.e.setEdgeProperty(ed.Key, name, value)
	}

	return nil
}

func (s *Store) DeleteEdgeProperties(ctx context.Context, q query.EdgeQuery, name graphdb.Identifier) error {
	if err := checkCtx(ctx); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	edges, err := s.e.evalEdgeQuery(q)
	if err != nil {
		return err
	}

	for _, ed := range edges {
		s.e.deleteEdgeProperty(ed.Key, name)
	}

	return nil
}

func (s *Store) BulkInsert(ctx context.Context, items []store.BulkInsertItem) error {
	if err := checkCtx(ctx); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return applyBulkInsert(s.e, items)
}

/*
applyBulkInsert runs items through the single-item path in order: the
externally observable end state must be exactly the one a caller would reach
by issuing the corresponding sequence of single-item calls. Shared between
Store and txn so a rolling bulk insert behaves identically whether or not it
is wrapped in a transaction.
*/
func applyBulkInsert(e *engine, items []store.BulkInsertItem) error {
	now := time.Now().UTC()

	for _, item := range items {
		switch it := item.(type) {
		case store.VertexItem:
			e.createVertex(it.Vertex)
		case store.EdgeItem:
			e.createEdge(it.Key, now)
		case store.VertexPropertyItem:
			// SetVertexProperties evaluates its query first and no-ops on a
			// missing owner; mirror that here instead of creating an orphan
			// property for a vertex that was never inserted.
			if e.hasVertex(it.Id) {
				e.setVertexProperty(it.Id, it.Name, it.Value)
			}
		case store.EdgePropertyItem:
			if e.hasEdge(it.Key) {
				e.setEdgeProperty(it.Key, it.Name, it.Value)
			}
		default:
			return graphutil.New(graphutil.ErrBackend, "unknown bulk insert item type")
		}
	}

	return nil
}

func (s *Store) IndexProperty(ctx context.Context, target store.IndexTarget, name graphdb.Identifier) error {
	if err := checkCtx(ctx); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if target == store.VertexIndex {
		s.e.ensureVertexIndex(name)
	} else {
		s.e.ensureEdgeIndex(name)
	}

	return nil
}
