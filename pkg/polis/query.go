package polis

import (
	"net/url"
	"slices"
	"strings"
)

// Query is a set of query parameters that remembers the order in which keys
// were first added. The zero value and a nil *Query are both empty queries.
type Query struct {
	keys   []string
	values map[string][]string
}

// NewQuery creates an empty query.
func NewQuery() *Query {
	return &Query{values: make(map[string][]string)}
}

// QueryFromValues converts url.Values. Keys are ordered alphabetically since
// url.Values carries no order of its own.
func QueryFromValues(values url.Values) *Query {
	query := NewQuery()

	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}

	slices.Sort(keys)

	for _, key := range keys {
		query.Add(key, values[key]...)
	}

	return query
}

// Add appends values to key. A new key is placed after existing keys.
func (q *Query) Add(key string, values ...string) *Query {
	if q.values == nil {
		q.values = make(map[string][]string)
	}

	if _, ok := q.values[key]; !ok {
		q.keys = append(q.keys, key)
	}

	q.values[key] = append(q.values[key], values...)

	return q
}

// Set replaces the values of key, keeping its original position.
func (q *Query) Set(key string, values ...string) *Query {
	if q.values == nil {
		q.values = make(map[string][]string)
	}

	if _, ok := q.values[key]; !ok {
		q.keys = append(q.keys, key)
	}

	q.values[key] = slices.Clone(values)

	return q
}

// Del removes key.
func (q *Query) Del(key string) *Query {
	if q == nil {
		return q
	}

	if _, ok := q.values[key]; !ok {
		return q
	}

	delete(q.values, key)
	q.keys = slices.DeleteFunc(q.keys, func(k string) bool { return k == key })

	return q
}

// Get returns the first value of key.
func (q *Query) Get(key string) string {
	if q == nil {
		return ""
	}

	if values := q.values[key]; len(values) > 0 {
		return values[0]
	}

	return ""
}

// Values returns a copy of all values of key.
func (q *Query) Values(key string) []string {
	if q == nil {
		return nil
	}

	return slices.Clone(q.values[key])
}

// Keys returns the keys in insertion order.
func (q *Query) Keys() []string {
	if q == nil {
		return nil
	}

	return slices.Clone(q.keys)
}

// Len returns the number of keys.
func (q *Query) Len() int {
	if q == nil {
		return 0
	}

	return len(q.keys)
}

// Encode renders the query in key insertion order, escaping keys and values.
// A key with several values is repeated; a key with no values renders as
// "key=".
func (q *Query) Encode() string {
	if q.Len() == 0 {
		return ""
	}

	var builder strings.Builder

	for _, key := range q.keys {
		escapedKey := url.QueryEscape(key)

		values := q.values[key]
		if len(values) == 0 {
			values = []string{""}
		}

		for _, value := range values {
			if builder.Len() > 0 {
				builder.WriteByte('&')
			}

			builder.WriteString(escapedKey)
			builder.WriteByte('=')
			builder.WriteString(url.QueryEscape(value))
		}
	}

	return builder.String()
}

// Clone returns a deep copy of q.
func (q *Query) Clone() *Query {
	clone := NewQuery()

	for _, key := range q.Keys() {
		clone.Add(key, q.values[key]...)
	}

	return clone
}
