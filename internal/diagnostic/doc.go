// Package diagnostic collects positioned errors, warnings and notes found
// while checking slot documents, so that one pass can report every problem
// instead of stopping at the first.
package diagnostic
