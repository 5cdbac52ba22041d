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

// MakeEnvironment allocates a new binding frame chained to parent.
// parent must be Environment or the VM's nil pointer.
func (v *VM) MakeEnvironment(parent TypedPointer) (TypedPointer, error) {
	if parent.Tag != Environment && parent != v.Nil() {
		return undef, newErrf(ErrInternal, "MakeEnvironment: bad parent tag %s", parent.Tag)
	}
	return v.envs.alloc(v.log, parent)
}

func (v *VM) envBind(envPtr, atomPtr, val TypedPointer) error {
	if envPtr.Tag != Environment {
		return newErrf(ErrInternal, "EnvBind: not an environment: %s", envPtr.Tag)
	}
	e, err := v.envs.get(envPtr.Index)
	if err != nil {
		return err
	}
	if _, exists := e.bindings[atomPtr]; !exists && len(e.bindings) >= v.envs.maxBindings {
		return newErrf(ErrEnvironmentTableAllocation, "environment %d: binding capacity exceeded", envPtr.Index)
	}
	e.bindings[atomPtr] = val
	return nil
}

// EnvBind inserts or updates atomPtr's binding in envPtr's frame.
func (v *VM) EnvBind(envPtr, atomPtr, val TypedPointer) error {
	return v.envBind(envPtr, atomPtr, val)
}

// EnvLookup returns the value bound to atomPtr in envPtr only (not its
// ancestors), and false if there is no such binding.
func (v *VM) EnvLookup(envPtr, atomPtr TypedPointer) (TypedPointer, bool, error) {
	if envPtr.Tag != Environment {
		return undef, false, newErrf(ErrInternal, "EnvLookup: not an environment: %s", envPtr.Tag)
	}
	e, err := v.envs.get(envPtr.Index)
	if err != nil {
		return undef, false, err
	}
	val, ok := e.bindings[atomPtr]
	return val, ok, nil
}

// EnvParent returns envPtr's parent pointer.
func (v *VM) EnvParent(envPtr TypedPointer) (TypedPointer, error) {
	if envPtr.Tag != Environment {
		return undef, newErrf(ErrInternal, "EnvParent: not an environment: %s", envPtr.Tag)
	}
	e, err := v.envs.get(envPtr.Index)
	if err != nil {
		return undef, err
	}
	return e.parent, nil
}

// Lookup walks the environment chain from env upward, returning the
// first binding found. If no environment in the chain binds atomPtr,
// it falls back to the atom's global value.
func (v *VM) Lookup(env, atomPtr TypedPointer) (TypedPointer, error) {
	cur := env
	for cur.Tag == Environment {
		if val, ok, err := v.EnvLookup(cur, atomPtr); err != nil {
			return undef, err
		} else if ok {
			return val, nil
		}
		parent, err := v.EnvParent(cur)
		if err != nil {
			return undef, err
		}
		cur = parent
	}
	return v.LookupAtomValue(atomPtr)
}
