package memostore

// Key tuples hold ordered copies of the memoized arguments of a call. A
// function with a single memoized parameter uses that parameter's type
// directly; one with none uses struct{}.

// Key2 is an ordered pair of memoized arguments.
type Key2[A, B comparable] struct {
	A A
	B B
}

// Key3 is an ordered triple of memoized arguments.
type Key3[A, B, C comparable] struct {
	A A
	B B
	C C
}

// Key4 is an ordered quadruple of memoized arguments.
type Key4[A, B, C, D comparable] struct {
	A A
	B B
	C C
	D D
}

// Key5 is an ordered quintuple of memoized arguments.
type Key5[A, B, C, D, E comparable] struct {
	A A
	B B
	C C
	D D
	E E
}

// Key6 is an ordered sextuple of memoized arguments.
type Key6[A, B, C, D, E, F comparable] struct {
	A A
	B B
	C C
	D D
	E E
	F F
}
