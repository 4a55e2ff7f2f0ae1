/*
 * Graph datastore engine
 *
 * Copyright 2026 Graph Datastore Authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package graphdb

import (
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
	"strconv"
)

/*
Value is a JSON value attached to a vertex or edge property. The dynamic
type is always one of nil, bool, json.Number, string, []Value or
map[string]Value; NewValue normalizes arbitrary Go data into this shape so
that Equal is well defined across values built by different callers.
*/
type Value struct {
	v interface{}
}

/*
Null is the JSON null value.
*/
var Null = Value{v: nil}

/*
NewValue normalizes an arbitrary Go value (as produced by encoding/json
Unmarshal into interface{}, or hand-built from bool/string/number/slice/map)
into a Value. It returns an error if v contains a type with no JSON
representation.
*/
func NewValue(v interface{}) (Value, error) {
	norm, err := normalize(v)
	if err != nil {
		return Value{}, err
	}

	return Value{v: norm}, nil
}

/*
MustValue is like NewValue but panics on error.
*/
func MustValue(v interface{}) Value {
	val, err := NewValue(v)
	if err != nil {
		panic(err)
	}

	return val
}

func normalize(v interface{}) (interface{}, error) {
	switch t := v.(type) {
	case nil:
		return nil, nil
	case bool:
		return t, nil
	case string:
		return t, nil
	case json.Number:
		return t, nil
	case int:
		return json.Number(fmt.Sprintf("%d", t)), nil
	case int64:
		return json.Number(fmt.Sprintf("%d", t)), nil
	case float64:
		return json.Number(strconvFloat(t)), nil
	case []interface{}:
		out := make([]Value, len(t))
		for i, e := range t {
			nv, err := normalize(e)
			if err != nil {
				return nil, err
			}
			out[i] = Value{v: nv}
		}
		return sliceOfValue(out), nil
	case []Value:
		return t, nil
	case map[string]interface{}:
		out := make(map[string]Value, len(t))
		for k, e := range t {
			nv, err := normalize(e)
			if err != nil {
				return nil, err
			}
			out[k] = Value{v: nv}
		}
		return out, nil
	case map[string]Value:
		return t, nil
	default:
		return nil, fmt.Errorf("graphdb: value of type %T has no JSON representation", v)
	}
}

// sliceOfValue exists only to give the []Value conversion a named call site
// that is easy to grep for when normalize grows more array handling.
func sliceOfValue(v []Value) []Value { return v }

func strconvFloat(f float64) string {
	b, _ := json.Marshal(f)
	return string(b)
}

/*
Raw returns the normalized Go representation backing this value.
*/
func (v Value) Raw() interface{} {
	return v.v
}

/*
IsNull reports whether v is the JSON null value.
*/
func (v Value) IsNull() bool {
	return v.v == nil
}

/*
Equal reports structural equality. Numbers compare by their JSON numeric
representation; there is no coercion across types (a string "1" never
equals the number 1).
*/
func (v Value) Equal(other Value) bool {
	return valueEqual(v.v, other.v)
}

func valueEqual(a, b interface{}) bool {
	switch av := a.(type) {
	case nil:
		return b == nil
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case json.Number:
		bv, ok := b.(json.Number)
		if !ok {
			return false
		}
		return numberEqual(av, bv)
	case []Value:
		bv, ok := b.([]Value)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !valueEqual(av[i].v, bv[i].v) {
				return false
			}
		}
		return true
	case map[string]Value:
		bv, ok := b.(map[string]Value)
		if !ok || len(av) != len(bv) {
			return false
		}
		for k, e := range av {
			be, ok := bv[k]
			if !ok || !valueEqual(e.v, be.v) {
				return false
			}
		}
		return true
	default:
		return reflect.DeepEqual(a, b)
	}
}

func numberEqual(a, b json.Number) bool {
	if a == b {
		return true
	}

	af, aerr := a.Float64()
	bf, berr := b.Float64()

	return aerr == nil && berr == nil && af == bf
}

/*
IndexKey returns a string key suitable for bucketing values that must compare
equal under Equal, e.g. by a secondary index. Numbers are canonicalized
through their float64 form so that two numbers Equal treats as the same
value (such as json.Number("30") and json.Number("3e1")) always land in the
same bucket, even though their literal String() forms differ.
*/
func (v Value) IndexKey() string {
	if n, ok := v.v.(json.Number); ok {
		if f, err := n.Float64(); err == nil {
			return strconv.FormatFloat(f, 'g', -1, 64)
		}
	}
	return v.String()
}

/*
String returns a JSON-like rendering of v, suitable for debugging and log
lines; it is not guaranteed to round-trip key order for objects.
*/
func (v Value) String() string {
	b, err := json.Marshal(renderable(v.v))
	if err != nil {
		return fmt.Sprintf("%v", v.v)
	}
	return string(b)
}

func renderable(v interface{}) interface{} {
	switch t := v.(type) {
	case []Value:
		out := make([]interface{}, len(t))
		for i, e := range t {
			out[i] = renderable(e.v)
		}
		return out
	case map[string]Value:
		out := make(map[string]interface{}, len(t))
		for k, e := range t {
			out[k] = renderable(e.v)
		}
		return out
	default:
		return t
	}
}

/*
SortValues returns a copy of vs sorted by their String() rendering. It exists
so tests can compare value sets without depending on map iteration order.
*/
func SortValues(vs []Value) []Value {
	out := make([]Value, len(vs))
	copy(out, vs)
	sort.Slice(out, func(i, j int) bool { return out[i].String() < out[j].String() })
	return out
}
