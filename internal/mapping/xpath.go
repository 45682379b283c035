package mapping

import (
	"fmt"
	"strings"
)

// XPath addresses a value inside a record's document node: one or more
// object keys separated by "/", relative to the node, with no leading
// slash. Paths are fixed at definition time, so a malformed path is a
// programming error, not a runtime one.
type XPath struct {
	path string
}

// NewXPath wraps a path literal such as "name" or
// "ingredients/fermentable_additions".
func NewXPath(path string) XPath {
	if path == "" || strings.HasPrefix(path, "/") || strings.HasSuffix(path, "/") {
		panic(fmt.Sprintf("mapping: malformed xpath %q", path))
	}
	return XPath{path: path}
}

func (x XPath) String() string {
	return x.path
}

// Pointer returns the JSON Pointer form of the path, for error messages
// and for callers that resolve pointers natively.
func (x XPath) Pointer() string {
	return "/" + x.path
}

// IsTrivial reports whether the path is a single key.
func (x XPath) IsTrivial() bool {
	return !strings.Contains(x.path, "/")
}

// Key returns the path as a single object key. Calling it on a
// multi-segment path is a programming error.
func (x XPath) Key() string {
	if !x.IsTrivial() {
		panic(fmt.Sprintf("mapping: xpath %q is not a single key", x.path))
	}
	return x.path
}

// Elements returns the ordered path segments.
func (x XPath) Elements() []string {
	return strings.Split(x.path, "/")
}

// LookupIn resolves the path inside node. ok is false when any segment is
// absent or a non-final segment is not an object.
func (x XPath) LookupIn(node map[string]any) (any, bool) {
	if x.IsTrivial() {
		v, ok := node[x.path]
		return v, ok
	}
	elements := x.Elements()
	current := node
	for _, key := range elements[:len(elements)-1] {
		next, ok := current[key].(map[string]any)
		if !ok {
			return nil, false
		}
		current = next
	}
	v, ok := current[elements[len(elements)-1]]
	return v, ok
}

// SetIn writes value at the path inside node, creating intermediate
// objects on demand and replacing whatever was already there.
func (x XPath) SetIn(node map[string]any, value any) {
	if x.IsTrivial() {
		node[x.Key()] = value
		return
	}
	elements := x.Elements()
	current := node
	for _, key := range elements[:len(elements)-1] {
		next, ok := current[key].(map[string]any)
		if !ok {
			next = map[string]any{}
			current[key] = next
		}
		current = next
	}
	current[elements[len(elements)-1]] = value
}
