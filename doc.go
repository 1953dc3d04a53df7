/*
Package flu provides a chainable, lazily evaluated pipeline over iter.Seq,
with selection, transformation, grouping and join operators, terminated by
a reducing operation.

This package is built around Pipes. A Pipe[T] wraps a sequence of values of
type T. Building a pipeline does no work: values are only produced when a
terminal operation (Collect, Count, Sum, First, Fold, ...) runs, or when the
Pipe is iterated through Values or Pull. Each value is pulled through the
whole chain on demand, so pipelines work on infinite sources as long as
something downstream stops early (Take, TakeWhile, First, Any, All).

Operators that keep the element type are methods and chain directly.
Operators that change the element type, or need comparable or ordered
values, are package-level functions taking the Pipe as first argument:

	lines := source.Stdin()

	failures := lines.
		Filter(func(l string) bool { return strings.Contains(l, "ERROR") }).
		Skip(1)

	byService := flu.GroupBy(failures, func(l string) string {
		return strings.Fields(l)[0]
	})

	for g := range byService.Values() {
		fmt.Println(g.Key, len(g.Items))
	}

A Pipe is single-use. Every operator consumes the Pipe it is called on and
returns a new one; calling a second operator on the same Pipe panics with
ErrConsumed.

Most operators are streaming and hold at most one value at a time.
The exceptions hold state for the lifetime of the iteration:

  - Unique and UniqueBy remember every distinct key seen.
  - Chunk and Window buffer up to n values.
  - GroupBy reads the entire input before producing its first group.
  - InnerJoin and LeftJoin read the entire right-hand sequence into a hash
    table on the first pull; the left-hand side stays lazy.

Invalid sizes passed to Chunk or Window panic at call time with
ErrInvalidSize. Empty inputs are not errors: operations without a natural
result on empty input (First, Last, Min, Max, Reduce) return an empty
optional.Value.

No operator runs work in parallel. Pull, Zip, Window and the joins use
iter.Pull, which runs the upstream as a runtime coroutine: control passes
between it and the consumer on every pull, so the two never execute at the
same time. A Pipe must not be iterated from several goroutines at once.
*/
package flu
