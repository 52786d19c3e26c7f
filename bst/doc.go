/*
Package bst implements an ordered binary search tree.

The tree is deliberately not balanced. Its height is whatever the insertion order
produces; inserting an already sorted sequence degenerates the tree to a chain.
Values are unique: inserting a value which compares equal to a value already in the
tree is rejected.

    tree := bst.New[int]()
    tree.Insert(5)
    tree.Insert(3)
    for v := range tree.All() {
        fmt.Println(v) // 3, 5
    }

Trees are not safe for concurrent use.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package bst

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'linked.bst'.
func tracer() tracing.Trace {
	return tracing.Select("linked.bst")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("bst: "+msg, msgargs...)
		panic(msg)
	}
}
