package script

import (
	"strconv"
	"strings"

	"github.com/gostonefire/adt/bloom"
	"github.com/gostonefire/adt/dictionary"
	"github.com/gostonefire/adt/dynarray"
	"github.com/gostonefire/adt/hashtable"
	"github.com/gostonefire/adt/queue"
	"github.com/gostonefire/adt/stack"
	"github.com/gostonefire/adt/status"
	"github.com/pkg/errors"
)

// Operation outcomes are read back through the status accessors of the containers, the errors returned by the
// operations themselves carry the same information and are dropped.

var okStatus = status.Of(nil)

// stackOp - push, pop, peek, clear, size
func stackOp(s *stack.BoundedStack[string], op string, args []string) (value string, st status.Status, err error) {
	switch op {
	case "push":
		if err = wantArgs(op, args, 1); err == nil {
			_ = s.Push(args[0])
			st = s.PushStatus()
		}
	case "pop":
		if err = wantArgs(op, args, 0); err == nil {
			value, _ = s.Pop()
			st = s.PopStatus()
		}
	case "peek":
		if err = wantArgs(op, args, 0); err == nil {
			value, _ = s.Peek()
			st = s.PeekStatus()
		}
	case "clear":
		if err = wantArgs(op, args, 0); err == nil {
			s.Clear()
			st = okStatus
		}
	case "size":
		if err = wantArgs(op, args, 0); err == nil {
			value, st = strconv.Itoa(s.Size()), okStatus
		}
	default:
		err = unknownOp(KindStack, op)
	}

	return
}

// arrayOp - append, insert, remove, get, put, count
func arrayOp(a *dynarray.DynArray[string], op string, args []string) (value string, st status.Status, err error) {
	var index int

	switch op {
	case "append":
		if err = wantArgs(op, args, 1); err == nil {
			a.Append(args[0])
			st = a.AppendStatus()
		}
	case "insert":
		if index, err = indexArg(op, args, 2, 1); err == nil {
			_ = a.Insert(args[0], index)
			st = a.InsertStatus()
		}
	case "remove":
		if index, err = indexArg(op, args, 1, 0); err == nil {
			value, _ = a.RemoveAt(index)
			st = a.RemoveStatus()
		}
	case "get":
		if index, err = indexArg(op, args, 1, 0); err == nil {
			value, _ = a.Get(index)
			st = a.GetStatus()
		}
	case "put":
		if index, err = indexArg(op, args, 2, 1); err == nil {
			_ = a.Put(args[0], index)
			st = a.PutStatus()
		}
	case "count":
		if err = wantArgs(op, args, 0); err == nil {
			value, st = strconv.Itoa(a.Count()), okStatus
		}
	default:
		err = unknownOp(KindArray, op)
	}

	return
}

// queueOp - addtail, removefront, getfront, size, clear
func queueOp(q queue.ParentQueue[string], kind, op string, args []string) (value string, st status.Status, err error) {
	switch op {
	case "addtail":
		if err = wantArgs(op, args, 1); err == nil {
			q.AddTail(args[0])
			st = okStatus
		}
	case "removefront":
		if err = wantArgs(op, args, 0); err == nil {
			value, _ = q.RemoveFront()
			st = q.RemoveFrontStatus()
		}
	case "getfront":
		if err = wantArgs(op, args, 0); err == nil {
			value, _ = q.GetFront()
			st = q.GetFrontStatus()
		}
	case "size":
		if err = wantArgs(op, args, 0); err == nil {
			value, st = strconv.Itoa(q.Size()), okStatus
		}
	case "clear":
		if err = wantArgs(op, args, 0); err == nil {
			q.Clear()
			st = okStatus
		}
	default:
		err = unknownOp(kind, op)
	}

	return
}

// dequeOp - the queue ops plus addfront, removetail, gettail
func dequeOp(d *queue.Deque[string], op string, args []string) (value string, st status.Status, err error) {
	switch op {
	case "addfront":
		if err = wantArgs(op, args, 1); err == nil {
			d.AddFront(args[0])
			st = okStatus
		}
	case "removetail":
		if err = wantArgs(op, args, 0); err == nil {
			value, _ = d.RemoveTail()
			st = d.RemoveTailStatus()
		}
	case "gettail":
		if err = wantArgs(op, args, 0); err == nil {
			value, _ = d.GetTail()
			st = d.GetTailStatus()
		}
	default:
		value, st, err = queueOp(d, KindDeque, op, args)
	}

	return
}

// tableOp - put, remove, contains, clear, count
func tableOp(t hashtable.Table[string], kind, op string, args []string) (value string, st status.Status, err error) {
	switch op {
	case "put":
		if err = wantArgs(op, args, 1); err == nil {
			_ = t.Put(args[0])
			st = t.PutStatus()
		}
	case "remove":
		if err = wantArgs(op, args, 1); err == nil {
			_ = t.Remove(args[0])
			st = t.RemoveStatus()
		}
	case "contains":
		if err = wantArgs(op, args, 1); err == nil {
			value, st = strconv.FormatBool(t.Contains(args[0])), okStatus
		}
	case "clear":
		if err = wantArgs(op, args, 0); err == nil {
			t.Clear()
			st = okStatus
		}
	case "count":
		if err = wantArgs(op, args, 0); err == nil {
			value, st = strconv.Itoa(t.Count()), okStatus
		}
	default:
		err = unknownOp(kind, op)
	}

	return
}

// powerSetOp - the hashtable ops plus union, intersection, difference, issubset, equals, values
func (R *Runner) powerSetOp(p *hashtable.PowerSet[string], op string, s Step) (value string, st status.Status, err error) {
	var other, derived *hashtable.PowerSet[string]

	switch op {
	case "union", "intersection", "difference":
		if s.Into == "" {
			err = errors.Errorf("op %s needs a container name to store the result into", op)
			return
		}
		if other, err = R.otherSet(op, s.Args); err != nil {
			return
		}

		switch op {
		case "union":
			derived, err = p.Union(other)
		case "intersection":
			derived, err = p.Intersection(other)
		default:
			derived, err = p.Difference(other)
		}
		if err != nil {
			return
		}

		if _, taken := R.containers[s.Into]; taken {
			err = errors.Errorf("duplicate container name %q", s.Into)
			return
		}

		R.containers[s.Into] = derived
		value, st = members(derived), okStatus
	case "issubset":
		if other, err = R.otherSet(op, s.Args); err == nil {
			value, st = strconv.FormatBool(p.IsSubset(other)), okStatus
		}
	case "equals":
		if other, err = R.otherSet(op, s.Args); err == nil {
			value, st = strconv.FormatBool(p.Equals(other)), okStatus
		}
	case "values":
		if err = wantArgs(op, s.Args, 0); err == nil {
			value, st = members(p), okStatus
		}
	default:
		value, st, err = tableOp(p, KindPowerSet, op, s.Args)
	}

	return
}

// dictionaryOp - put, remove, get, iskey, clear, count
func dictionaryOp(d *dictionary.Dictionary[string, string], op string, args []string) (value string, st status.Status, err error) {
	switch op {
	case "put":
		if err = wantArgs(op, args, 2); err == nil {
			_ = d.Put(args[0], args[1])
			st = d.PutStatus()
		}
	case "remove":
		if err = wantArgs(op, args, 1); err == nil {
			_ = d.Remove(args[0])
			st = d.RemoveStatus()
		}
	case "get":
		if err = wantArgs(op, args, 1); err == nil {
			value, _ = d.Get(args[0])
			st = d.GetStatus()
		}
	case "iskey":
		if err = wantArgs(op, args, 1); err == nil {
			value, st = strconv.FormatBool(d.IsKey(args[0])), okStatus
		}
	case "clear":
		if err = wantArgs(op, args, 0); err == nil {
			d.Clear()
			st = okStatus
		}
	case "count":
		if err = wantArgs(op, args, 0); err == nil {
			value, st = strconv.Itoa(d.Count()), okStatus
		}
	default:
		err = unknownOp(KindDictionary, op)
	}

	return
}

// bloomOp - add, isvalue, clear
func bloomOp(f *bloom.Filter, op string, args []string) (value string, st status.Status, err error) {
	switch op {
	case "add":
		if err = wantArgs(op, args, 1); err == nil {
			f.Add(args[0])
			st = okStatus
		}
	case "isvalue":
		if err = wantArgs(op, args, 1); err == nil {
			value, st = strconv.FormatBool(f.IsValue(args[0])), okStatus
		}
	case "clear":
		if err = wantArgs(op, args, 0); err == nil {
			f.Clear()
			st = okStatus
		}
	default:
		err = unknownOp(KindBloom, op)
	}

	return
}

// otherSet - Returns the set named by the single argument of a set algebra op
func (R *Runner) otherSet(op string, args []string) (other *hashtable.PowerSet[string], err error) {
	if err = wantArgs(op, args, 1); err != nil {
		return
	}

	other, isSet := R.containers[args[0]].(*hashtable.PowerSet[string])
	if !isSet {
		err = errors.Errorf("op %s needs a powerset, %q is not one", op, args[0])
	}

	return
}

// members - Returns the members of p joined by commas
func members(p *hashtable.PowerSet[string]) string {
	return strings.Join(p.Values(), ",")
}

// wantArgs - Returns an error unless args holds exactly n arguments
func wantArgs(op string, args []string, n int) error {
	if len(args) != n {
		return errors.Errorf("op %s takes %d argument(s), got %d", op, n, len(args))
	}
	return nil
}

// indexArg - Checks that args holds n arguments and returns the one at position i parsed as an index
func indexArg(op string, args []string, n, i int) (index int, err error) {
	if err = wantArgs(op, args, n); err != nil {
		return
	}

	index, err = strconv.Atoi(args[i])
	if err != nil {
		err = errors.Wrapf(err, "op %s index", op)
	}

	return
}

// unknownOp - Returns the error for an op the kind does not support
func unknownOp(kind, op string) error {
	return errors.Errorf("unknown op %q for %s", op, kind)
}
