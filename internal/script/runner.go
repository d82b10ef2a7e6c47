package script

import (
	"fmt"
	"strings"

	"github.com/gostonefire/adt/bloom"
	"github.com/gostonefire/adt/dictionary"
	"github.com/gostonefire/adt/dynarray"
	"github.com/gostonefire/adt/hashfunc"
	"github.com/gostonefire/adt/hashtable"
	"github.com/gostonefire/adt/queue"
	"github.com/gostonefire/adt/stack"
	"github.com/gostonefire/adt/status"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Result - Outcome of one step
//   - Step is the zero based position of the step in the script
//   - Status is the status the container recorded for the operation, queries without a status report status.Ok
//   - Value is the returned element, count or boolean, empty for commands
type Result struct {
	Step   int
	Target string
	Op     string
	Status status.Status
	Value  string
}

// String - Returns a one line description of the result
func (R Result) String() string {
	s := fmt.Sprintf("step %d: %s %s -> %s", R.Step, R.Target, R.Op, R.Status)
	if R.Value != "" {
		s += fmt.Sprintf(" [%s]", R.Value)
	}
	return s
}

// Runner - Runs scripts
type Runner struct {
	logger     *zap.Logger
	containers map[string]any
}

// NewRunner - Returns a new Runner logging to logger, a nil logger disables logging
func NewRunner(logger *zap.Logger) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Runner{logger: logger}
}

// Run - Creates the containers of script and executes its steps in order. A failing container operation is not an
// error, it is reported through Result.Status. An unknown container, kind or op, or malformed arguments, abort the
// run and the results of the steps executed so far are returned along with the error.
func (R *Runner) Run(script Script) (results []Result, err error) {
	R.containers = make(map[string]any, len(script.Containers))

	R.logger.Info("running script",
		zap.Int("containers", len(script.Containers)),
		zap.Int("steps", len(script.Steps)))

	for _, c := range script.Containers {
		if err = R.create(c); err != nil {
			err = errors.Wrapf(err, "container %q", c.Name)
			return
		}
	}

	results = make([]Result, 0, len(script.Steps))
	for i, step := range script.Steps {
		var result Result
		result, err = R.step(i, step)
		if err != nil {
			err = errors.Wrapf(err, "step %d", i)
			return
		}

		R.logger.Debug("step",
			zap.Int("step", i),
			zap.String("container", step.Target),
			zap.String("op", result.Op),
			zap.Stringer("status", result.Status),
			zap.String("value", result.Value))

		results = append(results, result)
	}

	return
}

// create - Creates a container and registers it under its name
func (R *Runner) create(c Container) (err error) {
	if c.Name == "" {
		return errors.New("container without name")
	}
	if _, ok := R.containers[c.Name]; ok {
		return errors.Errorf("duplicate container name %q", c.Name)
	}

	var container any
	switch strings.ToLower(c.Kind) {
	case KindStack:
		if c.Capacity == 0 {
			container = stack.NewDefault[string]()
		} else {
			container, err = stack.New[string](c.Capacity)
		}
	case KindArray:
		container = dynarray.New[string]()
	case KindQueue:
		container = queue.New[string]()
	case KindDeque:
		container = queue.NewDeque[string]()
	case KindHashTable:
		container, err = hashtable.New[string](c.Capacity, hashfunc.String())
	case KindPowerSet:
		container, err = hashtable.NewPowerSet[string](c.Capacity, hashfunc.String())
	case KindDictionary:
		container, err = dictionary.New[string, string](c.Capacity, hashfunc.String())
	case KindBloom:
		container, err = bloom.New(c.Capacity)
	default:
		err = errors.Errorf("unknown kind %q", c.Kind)
	}
	if err != nil {
		return
	}

	R.containers[c.Name] = container
	R.logger.Debug("container created",
		zap.String("container", c.Name),
		zap.String("kind", c.Kind),
		zap.Int("capacity", c.Capacity))

	return
}

// step - Executes one step
func (R *Runner) step(i int, s Step) (result Result, err error) {
	container, ok := R.containers[s.Target]
	if !ok {
		err = errors.Errorf("unknown container %q", s.Target)
		return
	}

	op := strings.ToLower(s.Op)
	result = Result{Step: i, Target: s.Target, Op: op}

	switch c := container.(type) {
	case *stack.BoundedStack[string]:
		result.Value, result.Status, err = stackOp(c, op, s.Args)
	case *dynarray.DynArray[string]:
		result.Value, result.Status, err = arrayOp(c, op, s.Args)
	case *queue.Deque[string]:
		result.Value, result.Status, err = dequeOp(c, op, s.Args)
	case *queue.Queue[string]:
		result.Value, result.Status, err = queueOp(c, KindQueue, op, s.Args)
	case *hashtable.PowerSet[string]:
		result.Value, result.Status, err = R.powerSetOp(c, op, s)
	case *hashtable.HashTable[string]:
		result.Value, result.Status, err = tableOp(c, KindHashTable, op, s.Args)
	case *dictionary.Dictionary[string, string]:
		result.Value, result.Status, err = dictionaryOp(c, op, s.Args)
	case *bloom.Filter:
		result.Value, result.Status, err = bloomOp(c, op, s.Args)
	default:
		err = errors.Errorf("container %q has unsupported type %T", s.Target, container)
	}

	return
}
