package dbg

import (
	"fmt"
	"reflect"
	"strings"

	petname "github.com/dustinkirkland/golang-petname"
)

// Leases a random readable name to any pointer on demand. Mesh objects are
// identified by pointer, and raw addresses are hopeless to tell apart in a
// dump, so the first request memoizes a pet name instead. The memo is never
// released, which is fine for debugging and nothing else.

var memo map[interface{}]string

func init() {
	memo = make(map[interface{}]string)
	// Names are handed out in demand order, so keep them nondeterministic as
	// a reminder that the same name doesn't refer to the same thing between
	// runs.
	petname.NonDeterministicMode()
}

func Name(obj interface{}) string {
	if reflect.ValueOf(obj).IsNil() {
		return "Ø"
	}

	if r, ok := memo[obj]; ok {
		return r
	}
	r := fmt.Sprintf("%s%s", strings.Title(petname.Adjective()), strings.Title(petname.Name()))
	memo[obj] = r
	return r
}
