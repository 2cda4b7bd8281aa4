package parser

// Pair holds the values of a two-parser sequence.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Triple holds the values of a three-parser sequence.
type Triple[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

// Quad holds the values of a four-parser sequence.
type Quad[A, B, C, D any] struct {
	First  A
	Second B
	Third  C
	Fourth D
}

// Sequence runs each parser in order on the progressively shrinking input and
// collects their values. It fails with the first failure; no partial values
// are returned.
func Sequence[T any](ps ...Parser[T]) Parser[[]T] {
	return New(func(input string) Result[[]T] {
		values := make([]T, 0, len(ps))
		rest := input
		for _, p := range ps {
			r := p.Run(rest)
			if !r.OK() {
				return propagate[T, []T](r)
			}
			values = append(values, r.value)
			rest = r.remaining
		}
		return Success(values, rest)
	})
}

// Seq2 runs pa then pb.
func Seq2[A, B any](pa Parser[A], pb Parser[B]) Parser[Pair[A, B]] {
	return New(func(input string) Result[Pair[A, B]] {
		ra := pa.Run(input)
		if !ra.OK() {
			return propagate[A, Pair[A, B]](ra)
		}
		rb := pb.Run(ra.remaining)
		if !rb.OK() {
			return propagate[B, Pair[A, B]](rb)
		}
		return Success(Pair[A, B]{First: ra.value, Second: rb.value}, rb.remaining)
	})
}

// Seq3 runs pa, pb then pc.
func Seq3[A, B, C any](pa Parser[A], pb Parser[B], pc Parser[C]) Parser[Triple[A, B, C]] {
	return Map(Seq2(Seq2(pa, pb), pc), func(v Pair[Pair[A, B], C]) Triple[A, B, C] {
		return Triple[A, B, C]{First: v.First.First, Second: v.First.Second, Third: v.Second}
	})
}

// Seq4 runs pa, pb, pc then pd.
func Seq4[A, B, C, D any](pa Parser[A], pb Parser[B], pc Parser[C], pd Parser[D]) Parser[Quad[A, B, C, D]] {
	return Map(Seq2(Seq3(pa, pb, pc), pd), func(v Pair[Triple[A, B, C], D]) Quad[A, B, C, D] {
		return Quad[A, B, C, D]{First: v.First.First, Second: v.First.Second, Third: v.First.Third, Fourth: v.Second}
	})
}

// Left runs p then q and keeps the value of p.
func Left[A, B any](p Parser[A], q Parser[B]) Parser[A] {
	return Map(Seq2(p, q), func(v Pair[A, B]) A { return v.First })
}

// Right runs p then q and keeps the value of q.
func Right[A, B any](p Parser[A], q Parser[B]) Parser[B] {
	return Map(Seq2(p, q), func(v Pair[A, B]) B { return v.Second })
}
