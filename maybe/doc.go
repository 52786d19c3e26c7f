/*
Package maybe implements an optional value: either Just a value of type T, or Nothing.

Containers use it for results which may legitimately be absent, e.g. polling an empty
queue. Clients may either ask for the value directly

    if v, ok := q.Poll().Get(); ok { … }

or match on both cases in a switch:

    var v int
    switch m := q.Poll().Match(); m {
    case m.Just(&v):
        fmt.Printf("got %d\n", v)
    case m.Nothing():
        fmt.Println("queue is drained")
    }

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package maybe
