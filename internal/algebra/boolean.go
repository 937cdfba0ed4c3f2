package algebra

// Bool is the boolean semiring: Add is logical OR, Mul is logical AND.
// Matrix products over Bool compute reachability.
type Bool bool

func (a Bool) Add(b Bool) Bool { return a || b }
func (a Bool) Mul(b Bool) Bool { return a && b }
func (Bool) Zero() Bool        { return false }
func (Bool) One() Bool         { return true }
func (a Bool) IsZero() bool    { return !bool(a) }
func (a Bool) IsOne() bool     { return bool(a) }
