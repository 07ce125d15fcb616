// Package timeline implements the incremental list synchronizer shared by
// every feed of the client.
//
// A [List] holds an ordered, duplicate-free sequence of items identified by
// a string id. It is populated page by page through an injected fetch
// function, fully replaced on [List.Refresh], extended on [List.LoadMore] and
// patched in place by [List.Prepend], [List.Update] and [List.Remove]. An
// optional [LiveSource] pushes new items to the head of the list.
//
// All methods are safe for concurrent use. Fetches run without holding the
// list lock; every fetch carries a generation token and results from an
// older generation are dropped, so a refresh always wins over a load-more
// that started before it.
package timeline
