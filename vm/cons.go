// This file is part of majestic - https://github.com/Minerva-System/majestic-refactored
//
// Copyright 2016 Denis Bernard <db047h@gmail.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package vm

// MakeCons allocates a fresh, uninitialised cons cell.
func (v *VM) MakeCons() (TypedPointer, error) {
	idx, err := v.conses.alloc(v.log)
	if err != nil {
		return undef, err
	}
	return TypedPointer{Tag: Cons, Index: idx}, nil
}

// Cons allocates a cons cell with car and cdr already set.
func (v *VM) Cons(car, cdr TypedPointer) (TypedPointer, error) {
	p, err := v.MakeCons()
	if err != nil {
		return undef, err
	}
	cell, _ := v.conses.get(p.Index)
	cell.car, cell.cdr = car, cdr
	return p, nil
}

func (v *VM) isConsLike(p TypedPointer) bool {
	return p.Tag == Cons || p.Tag == Function || p.Tag == Literal
}

// Car returns the car of p. p must be Cons, Function, or Literal (the
// latter two alias the cons pool under a different tag).
func (v *VM) Car(p TypedPointer) (TypedPointer, error) {
	if !v.isConsLike(p) {
		return undef, newErrf(ErrInternal, "attempted to get CAR of non-cons: %s", p.Tag)
	}
	c, err := v.conses.get(p.Index)
	if err != nil {
		return undef, err
	}
	return c.car, nil
}

// Cdr returns the cdr of p. p must be Cons, Function, or Literal.
func (v *VM) Cdr(p TypedPointer) (TypedPointer, error) {
	if !v.isConsLike(p) {
		return undef, newErrf(ErrInternal, "attempted to get CDR of non-cons: %s", p.Tag)
	}
	c, err := v.conses.get(p.Index)
	if err != nil {
		return undef, err
	}
	return c.cdr, nil
}

// SetCar sets the car of p.
func (v *VM) SetCar(p, val TypedPointer) error {
	if !v.isConsLike(p) {
		return newErrf(ErrInternal, "attempted to set CAR of non-cons: %s", p.Tag)
	}
	c, err := v.conses.get(p.Index)
	if err != nil {
		return err
	}
	c.car = val
	return nil
}

// SetCdr sets the cdr of p.
func (v *VM) SetCdr(p, val TypedPointer) error {
	if !v.isConsLike(p) {
		return newErrf(ErrInternal, "attempted to set CDR of non-cons: %s", p.Tag)
	}
	c, err := v.conses.get(p.Index)
	if err != nil {
		return err
	}
	c.cdr = val
	return nil
}

// Cadr returns Car(Cdr(p)).
func (v *VM) Cadr(p TypedPointer) (TypedPointer, error) {
	d, err := v.Cdr(p)
	if err != nil {
		return undef, err
	}
	return v.Car(d)
}

// Caddr returns Car(Cdr(Cdr(p))).
func (v *VM) Caddr(p TypedPointer) (TypedPointer, error) {
	d, err := v.Cdr(p)
	if err != nil {
		return undef, err
	}
	return v.Cadr(d)
}

// Reinterpret returns a copy of p with its tag changed, aliasing the
// same pool index. Used to turn a freshly built cons chain into a
// Function pointer without copying the underlying cells.
func Reinterpret(p TypedPointer, tag Tag) TypedPointer {
	return TypedPointer{Tag: tag, Index: p.Index}
}
