// SPDX-License-Identifier: MIT

package si

import (
	"fmt"

	"github.com/katalvlaran/lvunits/dimension"
	"github.com/katalvlaran/lvunits/unit"
)

// builder chains catalog derivations and keeps the first error. Once err is
// set every step returns nil and build reports err.
type builder[N any] struct {
	sys *System[N]
	err error
}

func (b *builder[N]) keep(u *unit.Unit[N], err error) *unit.Unit[N] {
	if err != nil {
		b.err = err
		return nil
	}

	return u
}

func (b *builder[N]) ok(us ...*unit.Unit[N]) bool {
	if b.err != nil {
		return false
	}
	for _, u := range us {
		if u == nil {
			return false
		}
	}

	return true
}

func (b *builder[N]) native(v float64) (N, bool) {
	n, err := b.sys.factory.Arithmetic().FromNative(v)
	if err != nil {
		b.err = fmt.Errorf("%v: %w", v, err)
		return n, false
	}

	return n, true
}

func (b *builder[N]) base(symbol string, dim dimension.Vector) *unit.Unit[N] {
	if b.err != nil {
		return nil
	}

	return b.keep(b.sys.factory.MakeUnit(symbol, dim))
}

// named renames u and registers it.
func (b *builder[N]) named(symbol string, u *unit.Unit[N]) *unit.Unit[N] {
	if !b.ok(u) {
		return nil
	}
	u = u.WithSymbol(symbol)
	if err := b.sys.Register(u); err != nil {
		b.err = err
		return nil
	}

	return u
}

func (b *builder[N]) times(u *unit.Unit[N], k float64) *unit.Unit[N] {
	if !b.ok(u) {
		return nil
	}
	n, ok := b.native(k)
	if !ok {
		return nil
	}

	return b.keep(u.TimesScalar(n))
}

func (b *builder[N]) per(u *unit.Unit[N], k float64) *unit.Unit[N] {
	if !b.ok(u) {
		return nil
	}
	n, ok := b.native(k)
	if !ok {
		return nil
	}

	return b.keep(u.PerScalar(n))
}

func (b *builder[N]) offset(u *unit.Unit[N], delta float64) *unit.Unit[N] {
	if !b.ok(u) {
		return nil
	}
	n, ok := b.native(delta)
	if !ok {
		return nil
	}

	return u.WithOffset(n)
}

func (b *builder[N]) prefixed(u *unit.Unit[N], p unit.Prefix) *unit.Unit[N] {
	if !b.ok(u) {
		return nil
	}

	return b.keep(u.WithSiPrefix(p))
}

func (b *builder[N]) product(u, v *unit.Unit[N]) *unit.Unit[N] {
	if !b.ok(u, v) {
		return nil
	}

	return b.keep(u.Times(v))
}

func (b *builder[N]) over(u, v *unit.Unit[N]) *unit.Unit[N] {
	if !b.ok(u, v) {
		return nil
	}

	return b.keep(u.Per(v))
}

func (b *builder[N]) squared(u *unit.Unit[N]) *unit.Unit[N] {
	if !b.ok(u) {
		return nil
	}

	return b.keep(u.Squared())
}

func (b *builder[N]) cubed(u *unit.Unit[N]) *unit.Unit[N] {
	if !b.ok(u) {
		return nil
	}

	return b.keep(u.Cubed())
}

func (b *builder[N]) reciprocal(u *unit.Unit[N]) *unit.Unit[N] {
	if !b.ok(u) {
		return nil
	}

	return b.keep(u.Reciprocal())
}
