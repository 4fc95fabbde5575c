// SPDX-License-Identifier: MIT

package mapping

import (
	"code.hybscloud.com/kont"

	"github.com/katalvlaran/mes/sigma"
	"github.com/katalvlaran/mes/space"
)

// Func is a measurable function with domain subsets SD and codomain subsets SC.
type Func[SD, SC any] interface {
	// Preimage returns the domain subset mapped into s.
	Preimage(s SC) SD
}

// FuncOf adapts an ordinary preimage function to Func.
type FuncOf[SD, SC any] func(s SC) SD

// Preimage implements Func.
func (f FuncOf[SD, SC]) Preimage(s SC) SD { return f(s) }

// Identity is the identity function on a space with subsets S.
type Identity[S any] struct{}

// Preimage implements Func.
func (Identity[S]) Preimage(s S) S { return s }

// Composite is g ∘ f for f: A → B and g: B → C.
type Composite[SA, SB, SC any] struct {
	f Func[SA, SB]
	g Func[SB, SC]
}

// Compose returns g ∘ f. Note the argument order: the function applied last
// comes first, as in the mathematical notation.
func Compose[SA, SB, SC any](g Func[SB, SC], f Func[SA, SB]) Composite[SA, SB, SC] {
	return Composite[SA, SB, SC]{f: f, g: g}
}

// Preimage implements Func: g's preimage first, then f's.
func (c Composite[SA, SB, SC]) Preimage(s SC) SA {
	return c.f.Preimage(c.g.Preimage(s))
}

// Const maps every point of its domain to Value.
type Const[X, SD, SC any] struct {
	Domain   sigma.Algebra[SD]
	Codomain space.Space[X, SC]
	Value    X
}

// Preimage implements Func: the whole domain if s contains Value, else nothing.
func (c Const[X, SD, SC]) Preimage(s SC) SD {
	if c.Codomain.Contains(s, c.Value) {
		return c.Domain.Full()
	}

	return c.Domain.Empty()
}

// Pullback returns f's preimage of s.
func Pullback[SD, SC any](f Func[SD, SC], s SC) SD {
	return f.Preimage(s)
}

// PreimageK is the continuation form of f.Preimage(s).
func PreimageK[SD, SC, T any](f Func[SD, SC], s SC) kont.Cont[T, SD] {
	return kont.Suspend(func(k func(SD) T) T {
		return k(f.Preimage(s))
	})
}

// WithPreimage passes f's preimage of s to k and returns k's result.
func WithPreimage[SD, SC, T any](f Func[SD, SC], s SC, k func(SD) T) T {
	return kont.RunWith(PreimageK[SD, SC, T](f, s), kont.Once(k).Resume)
}

// ComposedK chains preimages back to front in continuation form: g's
// preimage of s is handed to f, and f's result to the final continuation.
func ComposedK[SA, SB, SC, T any](g Func[SB, SC], f Func[SA, SB], s SC) kont.Cont[T, SA] {
	return kont.Bind(PreimageK[SB, SC, T](g, s), func(mid SB) kont.Cont[T, SA] {
		return PreimageK[SA, SB, T](f, mid)
	})
}
