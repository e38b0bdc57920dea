// Package keypath follows dotted keypaths through a document.
//
// A keypath is a dot separated list of segments. A segment is either a
// mapping key made of A-Za-z0-9_- or an index of the form [n]:
//
//	servers.[2].tls.cert
//
// Follow walks the document one segment at a time and returns the value it
// reached together with the actual path it took. With approximate matching
// enabled, a key that does not exist is replaced by
//
//   - the lexicographically smallest key it is a prefix of, or failing that
//   - the most similar key by Levenshtein similarity above a cutoff
//
// and the replacement is recorded in the actual path, which is how callers
// learn about corrections.
//
// Failures are *Error values whose Kind is one of the resolution sentinels
// of the errors package. TryFollow never returns an error; it folds failures
// into a Result.
package keypath
