package framelog

// Tuple1 .. Tuple6 are ready-made rows with fields of explicit types.
// Recorder[Tuple2[int, string]] only accepts rows with an int and
// a string column, checked at compile time.

type Tuple1[A any] struct {
	V0 A
}

func (t Tuple1[A]) Fields() []any {
	return []any{t.V0}
}

func Tup1[A any](a A) Tuple1[A] {
	return Tuple1[A]{a}
}

type Tuple2[A, B any] struct {
	V0 A
	V1 B
}

func (t Tuple2[A, B]) Fields() []any {
	return []any{t.V0, t.V1}
}

func Tup2[A, B any](a A, b B) Tuple2[A, B] {
	return Tuple2[A, B]{a, b}
}

type Tuple3[A, B, C any] struct {
	V0 A
	V1 B
	V2 C
}

func (t Tuple3[A, B, C]) Fields() []any {
	return []any{t.V0, t.V1, t.V2}
}

func Tup3[A, B, C any](a A, b B, c C) Tuple3[A, B, C] {
	return Tuple3[A, B, C]{a, b, c}
}

type Tuple4[A, B, C, D any] struct {
	V0 A
	V1 B
	V2 C
	V3 D
}

func (t Tuple4[A, B, C, D]) Fields() []any {
	return []any{t.V0, t.V1, t.V2, t.V3}
}

func Tup4[A, B, C, D any](a A, b B, c C, d D) Tuple4[A, B, C, D] {
	return Tuple4[A, B, C, D]{a, b, c, d}
}

type Tuple5[A, B, C, D, E any] struct {
	V0 A
	V1 B
	V2 C
	V3 D
	V4 E
}

func (t Tuple5[A, B, C, D, E]) Fields() []any {
	return []any{t.V0, t.V1, t.V2, t.V3, t.V4}
}

func Tup5[A, B, C, D, E any](a A, b B, c C, d D, e E) Tuple5[A, B, C, D, E] {
	return Tuple5[A, B, C, D, E]{a, b, c, d, e}
}

type Tuple6[A, B, C, D, E, F any] struct {
	V0 A
	V1 B
	V2 C
	V3 D
	V4 E
	V5 F
}

func (t Tuple6[A, B, C, D, E, F]) Fields() []any {
	return []any{t.V0, t.V1, t.V2, t.V3, t.V4, t.V5}
}

func Tup6[A, B, C, D, E, F any](a A, b B, c C, d D, e E, f F) Tuple6[A, B, C, D, E, F] {
	return Tuple6[A, B, C, D, E, F]{a, b, c, d, e, f}
}
