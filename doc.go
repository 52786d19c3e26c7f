/*
Package linked is a small collection of generic, in-memory linked data structures.

Sub-packages implement the containers:

   bst      an ordered (unbalanced) binary search tree
   list     a positional list on top of a singly linked chain
   queue    a FIFO queue with head and tail links
   stack    a LIFO stack with a head link

All of them are single-threaded. None of the containers synchronizes access, so
clients sharing an instance between goroutines have to guard it themselves.
Package linked itself only declares the interfaces the containers implement.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package linked
