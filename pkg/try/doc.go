// Package try contains Try[T], the result of an operation that either
// produced a value (Success) or failed with a cause (Failure), together
// with combinators that compose fallible steps without manual branching.
//
// Highlights:
// - Of/Catch/From: capture an operation's error or panic into a Try
// - Get/GetUnchecked/GetOrElse*: extract the value
// - OnSuccess/OnFailure: side effects, panics escape
// - Filter/Map/FlatMap: transform successful values
// - Recover/RecoverWith: turn a Failure back into an outcome
// - Fold/Sequence/SequenceAll/Traverse: reduce and collect
//
// Map, FlatMap, Recover and RecoverWith run their callbacks behind the same
// capture boundary as Of: an error or panic becomes a Failure instead of
// escaping. Extraction and hooks are where a caller leaves the chain.
//
// A Try holds no mutable state and may be shared between goroutines.
package try
