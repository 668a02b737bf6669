// File: internal/core/typekey.go
// Author: momentics <momentics@gmail.com>
//
// Go generics instantiate one typedPool[T, A] type per distinct (T, A)
// pair at compile time, but there is no language facility for a package
// to keep one package-level variable per instantiation the way a C++
// template can carry a static member. typeKeyFor builds a runtime string
// identifying the pair instead, used to look the shared pool up in the
// sharded registry.

package core

import "reflect"

// typeKeyFor returns a string uniquely identifying the (T, A) pair for
// the lifetime of the process. The key is rebuilt with reflect.TypeOf on
// every call; nothing is cached.
func typeKeyFor[T any, A any]() string {
	var t T
	var a A
	tt := reflect.TypeOf(&t).Elem()
	at := reflect.TypeOf(&a).Elem()
	return tt.PkgPath() + "." + tt.String() + "/" + at.PkgPath() + "." + at.String()
}
