// Package cli implements the interactive storefront client: a small REPL
// for browsing the catalog, searching, managing the cart, selling and
// deleting listings, and logging in and out.
//
// The REPL is the single owner of the cart and session; the catalog view is
// refreshed by a background watcher and read under a mutex.
package cli
