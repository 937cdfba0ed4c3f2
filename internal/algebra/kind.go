package algebra

// Kind is runtime information about an element type.
type Kind int

// Element kinds known to the kernels. User-defined types report KindOther.
const (
	KindOther Kind = iota
	KindReal
	KindReal32
	KindComplex
	KindRational
	KindBool
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindReal:
		return "real"
	case KindReal32:
		return "real32"
	case KindComplex:
		return "complex"
	case KindRational:
		return "rational"
	case KindBool:
		return "bool"
	default:
		return "other"
	}
}

// IEEE reports whether values of this kind follow IEEE-754 semantics, in which
// case division by zero yields ±Inf or NaN in the dense kernels instead of failing.
func (k Kind) IEEE() bool {
	return k == KindReal || k == KindReal32 || k == KindComplex
}

// Primitive reports whether the kind is backed by a machine number and takes
// the native fast path in the element-wise kernels.
func (k Kind) Primitive() bool {
	return k.IEEE()
}

// KindOf infers the Kind of a generic type T.
func KindOf[T any]() Kind {
	var dummy T
	switch any(dummy).(type) {
	case Real:
		return KindReal
	case Real32:
		return KindReal32
	case Complex:
		return KindComplex
	case Rational:
		return KindRational
	case Bool:
		return KindBool
	default:
		return KindOther
	}
}
