package polis_test

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/foundriesio/polis-client/pkg/polis"
)

func TestQuery_Order(t *testing.T) {
	t.Parallel()

	query := polis.NewQuery().
		Add("page", "2").
		Add("limit", "10").
		Add("sort", "name").
		Add("page", "3")

	assert.Equal(t, []string{"page", "limit", "sort"}, query.Keys())
	assert.Equal(t, "page=2&page=3&limit=10&sort=name", query.Encode())
	assert.Equal(t, "2", query.Get("page"))
	assert.Equal(t, []string{"2", "3"}, query.Values("page"))
	assert.Equal(t, 3, query.Len())
}

func TestQuery_SetAndDel(t *testing.T) {
	t.Parallel()

	query := polis.NewQuery().Add("a", "1").Add("b", "2").Add("c", "3")

	query.Set("a", "9")
	assert.Equal(t, "a=9&b=2&c=3", query.Encode())

	query.Del("b")
	assert.Equal(t, "a=9&c=3", query.Encode())

	query.Set("d")
	assert.Equal(t, "a=9&c=3&d=", query.Encode())

	query.Del("missing")
	assert.Equal(t, []string{"a", "c", "d"}, query.Keys())
}

func TestQuery_ZeroAndNil(t *testing.T) {
	t.Parallel()

	var nilQuery *polis.Query

	assert.Empty(t, nilQuery.Encode())
	assert.Zero(t, nilQuery.Len())
	assert.Empty(t, nilQuery.Get("a"))
	assert.Nil(t, nilQuery.Keys())
	assert.Nil(t, nilQuery.Del("a"))
	assert.Equal(t, 0, nilQuery.Clone().Len())

	var zero polis.Query

	zero.Add("x", "1")
	assert.Equal(t, "x=1", zero.Encode())
}

func TestQuery_Escaping(t *testing.T) {
	t.Parallel()

	query := polis.NewQuery().Add("e mail", "a+b@example.com").Add("q", "x y&z=1")

	assert.Equal(t, "e+mail=a%2Bb%40example.com&q=x+y%26z%3D1", query.Encode())

	parsed, err := url.ParseQuery(query.Encode())
	assert.NoError(t, err)
	assert.Equal(t, "a+b@example.com", parsed.Get("e mail"))
	assert.Equal(t, "x y&z=1", parsed.Get("q"))
}

func TestQuery_Clone(t *testing.T) {
	t.Parallel()

	original := polis.NewQuery().Add("a", "1")
	clone := original.Clone()

	clone.Add("a", "2").Add("b", "3")

	assert.Equal(t, "a=1", original.Encode())
	assert.Equal(t, "a=1&a=2&b=3", clone.Encode())
}

func TestQueryFromValues(t *testing.T) {
	t.Parallel()

	query := polis.QueryFromValues(url.Values{
		"limit": {"10"},
		"after": {"x"},
		"id":    {"b", "a"},
	})

	assert.Equal(t, "after=x&id=b&id=a&limit=10", query.Encode())
}
