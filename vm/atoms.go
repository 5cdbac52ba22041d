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

// MakeAtom interns name, returning the existing pointer if name was
// already allocated.
func (v *VM) MakeAtom(name string) (TypedPointer, error) {
	return v.atoms.alloc(v.log, name)
}

// AtomName returns the name of the atom p refers to.
func (v *VM) AtomName(p TypedPointer) (string, error) {
	if p.Tag != Atom {
		return "", newErrf(ErrInternal, "AtomName: not an atom: %s", p.Tag)
	}
	ent, err := v.atoms.get(p.Index)
	if err != nil {
		return "", err
	}
	return ent.name, nil
}

// AssignValue sets atom's globally assigned value. If the atom's
// current value is a Number and val is also a Number, the existing
// number slot is overwritten in place, preserving the atom's numeric
// pointer identity. If the current value is a Number and val is not,
// the number slot is returned to the free list.
func (v *VM) AssignValue(atomPtr, val TypedPointer) error {
	if atomPtr.Tag != Atom {
		return newErrf(ErrInternal, "AssignValue: not an atom: %s", atomPtr.Tag)
	}
	ent, err := v.atoms.get(atomPtr.Index)
	if err != nil {
		return err
	}
	cur := ent.value
	if cur.Tag == Number && val.Tag == Number {
		nv, err := v.numbers.get(val.Index)
		if err != nil {
			return err
		}
		v.numbers.set(cur.Index, *nv)
		return nil
	}
	if cur.Tag == Number && val.Tag != Number {
		v.numbers.free(cur.Index)
	}
	ent.value = val
	return nil
}

// LookupAtomValue returns atom's globally assigned value.
func (v *VM) LookupAtomValue(atomPtr TypedPointer) (TypedPointer, error) {
	if atomPtr.Tag != Atom {
		return undef, newErrf(ErrInternal, "LookupAtomValue: not an atom: %s", atomPtr.Tag)
	}
	ent, err := v.atoms.get(atomPtr.Index)
	if err != nil {
		return undef, err
	}
	return ent.value, nil
}

// MakeNumber allocates a number cell holding val.
func (v *VM) MakeNumber(val NumberValue) (TypedPointer, error) {
	return v.numbers.alloc(v.log, val)
}

// NumberOf returns the numeric value stored at p.
func (v *VM) NumberOf(p TypedPointer) (NumberValue, error) {
	if p.Tag != Number {
		return NumberValue{}, newErrf(ErrInternal, "NumberOf: not a number: %s", p.Tag)
	}
	nv, err := v.numbers.get(p.Index)
	if err != nil {
		return NumberValue{}, err
	}
	return *nv, nil
}
