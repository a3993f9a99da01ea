package yfin

import (
	"fmt"

	"github.com/PaesslerAG/jsonpath"
)

// jsonNumber extracts a single float at a jsonpath from a decoded JSON
// document.
func jsonNumber(jobj any, path string) (float64, error) {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return 0, fmt.Errorf("error parsing %q: %w", path, err)
	}
	// because jsonpath is never clear about wheter it returns a list of 1 answer, or a single answer:
	// by this call I keep the first one if any
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	val, ok := jval.(float64)
	if !ok {
		return 0, fmt.Errorf("value at %q is %T, not a number", path, jval)
	}
	return val, nil
}
