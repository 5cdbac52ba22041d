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

// state names the current transition of the dispatch loop. Unlike the
// cont register (which carries only the five BuiltInLiteral markers
// that survive on the explicit stack across nested evaluations), state
// is purely a host-local program counter for the switch below.
type state int

const (
	stateEvalDispatch state = iota
	stateSetq
	stateEvalAssign
	stateQuote
	stateFn
	stateDo
	stateApplication
	stateEvalArgsCont
	stateArgLoop
	stateAccumulateArg
	stateAccumulateLastArg
	stateApplyDispatch
	stateGotoContinuation
)

func (s state) String() string {
	switch s {
	case stateEvalDispatch:
		return "eval-dispatch"
	case stateSetq:
		return "setq"
	case stateEvalAssign:
		return "eval-assign"
	case stateQuote:
		return "quote"
	case stateFn:
		return "fn"
	case stateDo:
		return "do"
	case stateApplication:
		return "application"
	case stateEvalArgsCont:
		return "eval-args-cont"
	case stateArgLoop:
		return "arg-loop"
	case stateAccumulateArg:
		return "accumulate-arg"
	case stateAccumulateLastArg:
		return "accumulate-last-arg"
	case stateApplyDispatch:
		return "apply-dispatch"
	case stateGotoContinuation:
		return "goto-continuation"
	default:
		return "state(?)"
	}
}

func litMarker(idx int) TypedPointer { return TypedPointer{Tag: BuiltInLiteral, Index: idx} }

// Evaluate is the public entry point: it evaluates exp in the root
// environment E0 and returns the resulting pointer. The evaluation
// stack's top is snapshotted on entry and restored if evaluation fails,
// so a failed evaluation never leaks orphan frames into the next call.
func (v *VM) Evaluate(exp TypedPointer) (TypedPointer, error) {
	top := v.stack.top
	val, err := v.run(exp, v.e0)
	if err != nil {
		v.stack.top = top
	}
	return val, err
}

// run evaluates exp in env using a fresh register frame, restoring the
// caller's registers before returning. It is the recursive primitive
// used by Evaluate, the eval builtin, and do-sequencing.
func (v *VM) run(exp, env TypedPointer) (TypedPointer, error) {
	saved := v.reg
	v.reg = registers{exp: exp, env: env, cont: litMarker(litDone), val: undef}
	val, err := v.dispatchLoop()
	v.reg = saved
	return val, err
}

func (v *VM) dispatchLoop() (TypedPointer, error) {
	st := stateEvalDispatch
	for {
		v.log.Debug("transition", "state", st)
		switch st {
		case stateEvalDispatch:
			next, err := v.evalDispatch()
			if err != nil {
				return undef, err
			}
			st = next

		case stateSetq:
			if err := v.stack.push(v.reg.cont); err != nil {
				return undef, err
			}
			target, err := v.Cadr(v.reg.exp)
			if err != nil {
				return undef, err
			}
			if err := v.stack.push(target); err != nil {
				return undef, err
			}
			value, err := v.Caddr(v.reg.exp)
			if err != nil {
				return undef, err
			}
			v.reg.exp = value
			v.reg.cont = litMarker(litEvalAssign)
			st = stateEvalDispatch

		case stateEvalAssign:
			v.reg.exp = v.reg.val
			target, err := v.stack.pop()
			if err != nil {
				return undef, err
			}
			v.reg.val = target
			if err := v.AssignValue(v.reg.val, v.reg.exp); err != nil {
				return undef, err
			}
			v.reg.val = v.reg.exp
			cont, err := v.stack.pop()
			if err != nil {
				return undef, err
			}
			v.reg.cont = cont
			st = stateGotoContinuation

		case stateQuote:
			val, err := v.Cadr(v.reg.exp)
			if err != nil {
				return undef, err
			}
			v.reg.val = val
			st = stateGotoContinuation

		case stateFn:
			if err := v.stack.push(v.reg.unev); err != nil {
				return undef, err
			}
			cons1, err := v.Cons(v.reg.env, v.Nil())
			if err != nil {
				return undef, err
			}
			v.reg.val = cons1
			tail, err := v.Cdr(v.reg.exp)
			if err != nil {
				return undef, err
			}
			v.reg.unev = tail
			cons2, err := v.Cons(v.reg.unev, v.reg.val)
			if err != nil {
				return undef, err
			}
			v.reg.val = Reinterpret(cons2, Function)
			unev, err := v.stack.pop()
			if err != nil {
				return undef, err
			}
			v.reg.unev = unev
			st = stateGotoContinuation

		case stateDo:
			val, err := v.evalDo(v.reg.exp, v.reg.env)
			if err != nil {
				return undef, err
			}
			if val.done {
				v.reg.val = val.result
				st = stateGotoContinuation
			} else {
				v.reg.exp = val.tailExp
				st = stateEvalDispatch
			}

		case stateApplication:
			args, err := v.Cdr(v.reg.exp)
			if err != nil {
				return undef, err
			}
			v.reg.unev = args
			op, err := v.Car(v.reg.exp)
			if err != nil {
				return undef, err
			}
			v.reg.exp = op
			if err := v.stack.push(v.reg.cont); err != nil {
				return undef, err
			}
			if err := v.stack.push(v.reg.env); err != nil {
				return undef, err
			}
			if err := v.stack.push(v.reg.unev); err != nil {
				return undef, err
			}
			v.reg.cont = litMarker(litEvalArgs)
			st = stateEvalDispatch

		case stateEvalArgsCont:
			unev, err := v.stack.pop()
			if err != nil {
				return undef, err
			}
			v.reg.unev = unev
			env, err := v.stack.pop()
			if err != nil {
				return undef, err
			}
			v.reg.env = env
			v.reg.fun = v.reg.val
			if err := v.stack.push(v.reg.fun); err != nil {
				return undef, err
			}
			v.reg.argl = v.Nil()
			st = stateArgLoop

		case stateArgLoop:
			if err := v.stack.push(v.reg.argl); err != nil {
				return undef, err
			}
			if v.reg.unev == v.Nil() {
				argl, err := v.stack.pop()
				if err != nil {
					return undef, err
				}
				v.reg.argl = argl
				fun, err := v.stack.pop()
				if err != nil {
					return undef, err
				}
				v.reg.fun = fun
				st = stateApplyDispatch
				continue
			}
			head, err := v.Car(v.reg.unev)
			if err != nil {
				return undef, err
			}
			v.reg.exp = head
			rest, err := v.Cdr(v.reg.unev)
			if err != nil {
				return undef, err
			}
			if rest == v.Nil() {
				v.reg.cont = litMarker(litAccumulateLastArg)
				st = stateEvalDispatch
			} else {
				if err := v.stack.push(v.reg.env); err != nil {
					return undef, err
				}
				if err := v.stack.push(v.reg.unev); err != nil {
					return undef, err
				}
				v.reg.cont = litMarker(litAccumulateArg)
				st = stateEvalDispatch
			}

		case stateAccumulateArg:
			unev, err := v.stack.pop()
			if err != nil {
				return undef, err
			}
			v.reg.unev = unev
			env, err := v.stack.pop()
			if err != nil {
				return undef, err
			}
			v.reg.env = env
			argl, err := v.stack.pop()
			if err != nil {
				return undef, err
			}
			newArgl, err := v.Cons(v.reg.val, argl)
			if err != nil {
				return undef, err
			}
			v.reg.argl = newArgl
			rest, err := v.Cdr(v.reg.unev)
			if err != nil {
				return undef, err
			}
			v.reg.unev = rest
			st = stateArgLoop

		case stateAccumulateLastArg:
			argl, err := v.stack.pop()
			if err != nil {
				return undef, err
			}
			newArgl, err := v.Cons(v.reg.val, argl)
			if err != nil {
				return undef, err
			}
			v.reg.argl = newArgl
			fun, err := v.stack.pop()
			if err != nil {
				return undef, err
			}
			v.reg.fun = fun
			st = stateApplyDispatch

		case stateApplyDispatch:
			next, err := v.applyDispatch()
			if err != nil {
				return undef, err
			}
			st = next

		case stateGotoContinuation:
			switch v.reg.cont.Index {
			case litDone:
				return v.reg.val, nil
			case litEvalArgs:
				st = stateEvalArgsCont
			case litAccumulateArg:
				st = stateAccumulateArg
			case litAccumulateLastArg:
				st = stateAccumulateLastArg
			case litEvalAssign:
				st = stateEvalAssign
			default:
				return undef, newErrf(ErrInternal, "unknown continuation marker %d", v.reg.cont.Index)
			}

		default:
			return undef, newErrf(ErrInternal, "unreachable dispatch state %d", st)
		}
	}
}

func (v *VM) evalDispatch() (state, error) {
	exp := v.reg.exp
	switch exp.Tag {
	case Number, Literal:
		v.reg.val = exp
		return stateGotoContinuation, nil
	case Atom:
		val, err := v.Lookup(v.reg.env, exp)
		if err != nil {
			return 0, err
		}
		v.reg.val = val
		return stateGotoContinuation, nil
	case Cons:
		car, err := v.Car(exp)
		if err != nil {
			return 0, err
		}
		switch car {
		case v.names["setq"]:
			return stateSetq, nil
		case v.names["quote"]:
			return stateQuote, nil
		case v.names["fn"]:
			return stateFn, nil
		case v.names["do"]:
			return stateDo, nil
		default:
			return stateApplication, nil
		}
	default:
		return 0, newErrf(ErrInternal, "expression error")
	}
}

// doResult reports either a final value (done) or a tail expression to
// re-dispatch on (preserving register-machine tail behavior for the
// last form of a do body).
type doResult struct {
	done    bool
	result  TypedPointer
	tailExp TypedPointer
}

// evalDo implements (do e1 e2 ... en): each ei but the last is
// evaluated via a nested recursive run (its value discarded); the
// last form is returned as a tail expression for the caller to
// re-dispatch on directly, in reg.env, so the final step of a do
// body costs no extra stack depth.
func (v *VM) evalDo(exp, env TypedPointer) (doResult, error) {
	body, err := v.Cdr(exp)
	if err != nil {
		return doResult{}, err
	}
	if body == v.Nil() {
		return doResult{done: true, result: v.Nil()}, nil
	}
	for {
		head, err := v.Car(body)
		if err != nil {
			return doResult{}, err
		}
		rest, err := v.Cdr(body)
		if err != nil {
			return doResult{}, err
		}
		if rest == v.Nil() {
			return doResult{done: false, tailExp: head}, nil
		}
		if _, err := v.run(head, env); err != nil {
			return doResult{}, err
		}
		body = rest
	}
}

func (v *VM) applyDispatch() (state, error) {
	switch v.reg.fun.Tag {
	case BuiltInFunction:
		args, err := v.materialize(v.reg.argl)
		if err != nil {
			return 0, err
		}
		result, err := v.applyPrimitive(v.reg.fun, args)
		if err != nil {
			return 0, err
		}
		v.reg.val = result
		cont, err := v.stack.pop()
		if err != nil {
			return 0, err
		}
		v.reg.cont = cont
		return stateGotoContinuation, nil

	case Function:
		lambdaAndBody, err := v.Car(v.reg.fun)
		if err != nil {
			return 0, err
		}
		envCell, err := v.Cdr(v.reg.fun)
		if err != nil {
			return 0, err
		}
		fnEnv, err := v.Car(envCell)
		if err != nil {
			return 0, err
		}
		lambdaList, err := v.Car(lambdaAndBody)
		if err != nil {
			return 0, err
		}
		body, err := v.Cdr(lambdaAndBody)
		if err != nil {
			return 0, err
		}
		newEnv, err := v.bindParameters(lambdaList, v.reg.argl, fnEnv)
		if err != nil {
			return 0, err
		}
		doExp, err := v.Cons(v.names["do"], body)
		if err != nil {
			return 0, err
		}
		v.reg.exp = doExp
		v.reg.env = newEnv
		cont, err := v.stack.pop()
		if err != nil {
			return 0, err
		}
		v.reg.cont = cont
		return stateEvalDispatch, nil

	default:
		return 0, newErrf(ErrInternal, "unknown function type: %s", v.reg.fun.Tag)
	}
}

// materialize walks a cons chain (or the nil pointer) into a slice,
// preserving the chain's own ordering. For argl this yields the
// argument buffer in reverse source order, per invariant 6.
func (v *VM) materialize(chain TypedPointer) ([]TypedPointer, error) {
	var out []TypedPointer
	cur := chain
	for cur != v.Nil() {
		car, err := v.Car(cur)
		if err != nil {
			return nil, err
		}
		out = append(out, car)
		cur, err = v.Cdr(cur)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

// bindParameters pairs lambdaList's parameters with argl's evaluated
// arguments. Both are materialized by walking in the order already
// imposed by the algorithm above (argl is a cons chain in reverse
// source order; the lambda list is walked source-order but collected
// by prepending, which reverses it the same way), so positional
// pairing by index recovers the correct parameter/argument
// correspondence without any explicit reversal step.
func (v *VM) bindParameters(lambdaList, argl, parentEnv TypedPointer) (TypedPointer, error) {
	argVals, err := v.materialize(argl)
	if err != nil {
		return undef, err
	}
	var params []TypedPointer
	cur := lambdaList
	for cur != v.Nil() {
		p, err := v.Car(cur)
		if err != nil {
			return undef, err
		}
		params = append([]TypedPointer{p}, params...)
		cur, err = v.Cdr(cur)
		if err != nil {
			return undef, err
		}
	}
	if len(params) != len(argVals) {
		return undef, newErrf(ErrArity, "<lambda>")
	}
	newEnv, err := v.MakeEnvironment(parentEnv)
	if err != nil {
		return undef, err
	}
	for i := range params {
		if err := v.envBind(newEnv, params[i], argVals[i]); err != nil {
			return undef, err
		}
	}
	return newEnv, nil
}
