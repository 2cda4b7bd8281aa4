package parser

import "strings"

// Lift1 promotes a unary function to a combinator.
func Lift1[A, R any](f func(A) R) func(Parser[A]) Parser[R] {
	return func(pa Parser[A]) Parser[R] {
		return Map(pa, f)
	}
}

// Lift2 promotes a binary function to a combinator: Lift2(f)(pa, pb) behaves
// like Seq2(pa, pb) followed by f applied to the two values.
func Lift2[A, B, R any](f func(A, B) R) func(Parser[A], Parser[B]) Parser[R] {
	return func(pa Parser[A], pb Parser[B]) Parser[R] {
		return Map(Seq2(pa, pb), func(v Pair[A, B]) R {
			return f(v.First, v.Second)
		})
	}
}

// Lift3 promotes a ternary function to a combinator.
func Lift3[A, B, C, R any](f func(A, B, C) R) func(Parser[A], Parser[B], Parser[C]) Parser[R] {
	return func(pa Parser[A], pb Parser[B], pc Parser[C]) Parser[R] {
		return Map(Seq3(pa, pb, pc), func(v Triple[A, B, C]) R {
			return f(v.First, v.Second, v.Third)
		})
	}
}

// Lift4 promotes a four-argument function to a combinator.
func Lift4[A, B, C, D, R any](f func(A, B, C, D) R) func(Parser[A], Parser[B], Parser[C], Parser[D]) Parser[R] {
	return func(pa Parser[A], pb Parser[B], pc Parser[C], pd Parser[D]) Parser[R] {
		return Map(Seq4(pa, pb, pc, pd), func(v Quad[A, B, C, D]) R {
			return f(v.First, v.Second, v.Third, v.Fourth)
		})
	}
}

// LiftN promotes a variadic function to a combinator over any number of
// parsers of the same type.
func LiftN[T, R any](f func(...T) R) func(...Parser[T]) Parser[R] {
	return func(ps ...Parser[T]) Parser[R] {
		return Map(Sequence(ps...), func(values []T) R {
			return f(values...)
		})
	}
}

// Define1 declares a parser in terms of the value parsed by pa, in the style
// of a decorator:
//
//	length := parser.Define1[int](parser.Tag("foo"))(func(s string) int {
//	    return len(s)
//	})
func Define1[R, A any](pa Parser[A]) func(func(A) R) Parser[R] {
	return func(f func(A) R) Parser[R] {
		return Lift1(f)(pa)
	}
}

// Define2 declares a parser in terms of the values parsed by pa and pb.
func Define2[R, A, B any](pa Parser[A], pb Parser[B]) func(func(A, B) R) Parser[R] {
	return func(f func(A, B) R) Parser[R] {
		return Lift2(f)(pa, pb)
	}
}

// Define3 declares a parser in terms of the values parsed by pa, pb and pc.
func Define3[R, A, B, C any](pa Parser[A], pb Parser[B], pc Parser[C]) func(func(A, B, C) R) Parser[R] {
	return func(f func(A, B, C) R) Parser[R] {
		return Lift3(f)(pa, pb, pc)
	}
}

// Define4 declares a parser in terms of the values parsed by four parsers.
func Define4[R, A, B, C, D any](pa Parser[A], pb Parser[B], pc Parser[C], pd Parser[D]) func(func(A, B, C, D) R) Parser[R] {
	return func(f func(A, B, C, D) R) Parser[R] {
		return Lift4(f)(pa, pb, pc, pd)
	}
}

// Concat runs the parsers in sequence and joins their values.
func Concat(ps ...Parser[string]) Parser[string] {
	return LiftN(func(ss ...string) string {
		return strings.Join(ss, "")
	})(ps...)
}

// AsString joins the characters collected by p into a single string.
func AsString(p Parser[[]string]) Parser[string] {
	return Map(p, func(cs []string) string {
		return strings.Join(cs, "")
	})
}
