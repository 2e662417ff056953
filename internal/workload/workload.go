// Package workload drives a Deque through repeatable operation mixes and
// reports what it observed: throughput, growth, copy-on-write copies and a
// checksum of the values that went through it.
package workload

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/lucasgdosr/deque/v2"
	"github.com/sirupsen/logrus"
)

// Name identifies a workload.
type Name string

const (
	FIFO   Name = "fifo"
	LIFO   Name = "lifo"
	Middle Name = "middle"
	Window Name = "window"
	COW    Name = "cow"
)

// Descriptions lists every workload with a one line summary, in the order
// they run when all of them are requested.
var Descriptions = []struct {
	Name        Name
	Description string
}{
	{FIFO, "push back, pop front over a pre-filled queue"},
	{LIFO, "push back, pop back over a pre-filled stack"},
	{Middle, "insert and remove at random positions"},
	{Window, "sliding window trimmed with RemoveFirstN"},
	{COW, "clone a shared deque and mutate the clone"},
}

// Names returns the name of every workload.
func Names() []Name {
	names := make([]Name, len(Descriptions))
	for i, d := range Descriptions {
		names[i] = d.Name
	}
	return names
}

// checkEvery is how many operations run between context checks.
const checkEvery = 1024

// ErrCorrupted is returned when a workload observes a Deque holding
// something other than what was put in it.
var ErrCorrupted = errors.New("deque contents diverged")

// Config describes one workload run.
type Config struct {
	Workload Name
	// Ops is the number of operations to perform.
	Ops int
	// Size is the number of elements the deque holds at steady state.
	Size int
	// Clones is the number of clones kept alive at once by the cow workload.
	Clones int
	Seed   uint64
}

// Validate checks the config before running it.
func (c Config) Validate() error {
	known := false
	for _, n := range Names() {
		known = known || n == c.Workload
	}
	switch {
	case !known:
		return errors.Newf("unknown workload %q", c.Workload)
	case c.Ops < 0:
		return errors.Newf("ops must not be negative: %d", c.Ops)
	case c.Size < 1:
		return errors.Newf("size must be positive: %d", c.Size)
	case c.Clones < 1:
		return errors.Newf("clones must be positive: %d", c.Clones)
	}
	return nil
}

// Result is what a run observed.
type Result struct {
	Workload Name
	Ops      int
	Elapsed  time.Duration
	Len      int
	Cap      int
	// Grows counts the reallocations caused by the workload's insertions.
	Grows int
	// Copies counts the mutations that hit a shared buffer.
	Copies int
	// Checksum adds up the values removed or written by the workload and
	// the values left in the deque at the end.
	Checksum int64
}

// OpsPerSecond returns the throughput of the run.
func (r Result) OpsPerSecond() float64 {
	if r.Elapsed <= 0 {
		return 0
	}
	return float64(r.Ops) / r.Elapsed.Seconds()
}

type runner struct {
	cfg Config
	rng *rand.Rand
	log logrus.FieldLogger
	d   *deque.Deque[int64]
	res Result
}

// Run executes the workload described by cfg. It stops early, returning the
// partial result and the context's error, when ctx is done.
func Run(ctx context.Context, cfg Config, log logrus.FieldLogger) (Result, error) {
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}
	r := &runner{
		cfg: cfg,
		rng: rand.New(rand.NewPCG(cfg.Seed, 0)),
		log: log.WithField("workload", cfg.Workload),
		res: Result{Workload: cfg.Workload},
	}
	d, err := deque.MakeDequeWithCapacity[int64](cfg.Size)
	if err != nil {
		return Result{}, err
	}
	r.d = d
	for i := range cfg.Size {
		r.d.PushBack(int64(i))
	}

	r.log.WithFields(logrus.Fields{"ops": cfg.Ops, "size": cfg.Size}).Debug("starting workload")
	step := r.stepFunc()
	start := time.Now()
	for r.res.Ops < cfg.Ops {
		if r.res.Ops%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				r.finish(start)
				return r.res, errors.Wrapf(err, "workload %s interrupted after %d ops", cfg.Workload, r.res.Ops)
			}
		}
		if err := step(int64(r.res.Ops)); err != nil {
			r.finish(start)
			return r.res, errors.Wrapf(err, "workload %s at op %d", cfg.Workload, r.res.Ops)
		}
		r.res.Ops++
	}
	r.finish(start)
	r.log.WithFields(logrus.Fields{
		"elapsed": r.res.Elapsed,
		"grows":   r.res.Grows,
		"copies":  r.res.Copies,
	}).Info("workload done")
	return r.res, nil
}

func (r *runner) finish(start time.Time) {
	r.res.Elapsed = time.Since(start)
	r.res.Len = r.d.Len()
	r.res.Cap = r.d.Cap()
	r.res.Checksum += Sum(r.d)
}

// mutate runs f against d, recording whether it copied or grew the buffer.
func (r *runner) mutate(d *deque.Deque[int64], f func()) {
	shared, before := !d.IsUnique(), d.Cap()
	f()
	if shared {
		r.res.Copies++
	}
	if after := d.Cap(); after > before {
		r.res.Grows++
		r.log.WithFields(logrus.Fields{"from": before, "to": after}).Debug("buffer grew")
	}
}

func (r *runner) stepFunc() func(op int64) error {
	switch r.cfg.Workload {
	case FIFO:
		return r.fifo
	case LIFO:
		return r.lifo
	case Middle:
		return r.middle
	case Window:
		return r.window
	default:
		return r.cow()
	}
}

func (r *runner) fifo(op int64) error {
	var v int64
	r.mutate(r.d, func() {
		r.d.PushBack(op)
		v = r.d.RemoveFirst()
	})
	r.res.Checksum += v
	return nil
}

func (r *runner) lifo(op int64) error {
	var v int64
	r.mutate(r.d, func() {
		r.d.PushBack(op)
		v, _ = r.d.PopBack()
	})
	if v != op {
		return errors.Wrapf(ErrCorrupted, "popped %d after pushing %d", v, op)
	}
	r.res.Checksum += v
	return nil
}

func (r *runner) middle(op int64) error {
	n := r.d.Len()
	if n == 0 || r.rng.IntN(2) == 0 {
		i := r.rng.IntN(n + 1)
		r.mutate(r.d, func() { r.d.Insert(i, op) })
		if got := r.d.At(i); got != op {
			return errors.Wrapf(ErrCorrupted, "inserted %d at %d, read back %d", op, i, got)
		}
		return nil
	}
	i := r.rng.IntN(n)
	r.mutate(r.d, func() { r.res.Checksum += r.d.Remove(i) })
	return nil
}

func (r *runner) window(op int64) error {
	burst := 1 + r.rng.IntN(16)
	r.mutate(r.d, func() {
		for j := range burst {
			r.d.PushBack(op*16 + int64(j))
		}
		if excess := r.d.Len() - r.cfg.Size; excess > 0 {
			r.d.RemoveFirstN(excess)
		}
	})
	back, _ := r.d.Back()
	if want := op*16 + int64(burst-1); back != want {
		return errors.Wrapf(ErrCorrupted, "window ends at %d, want %d", back, want)
	}
	r.res.Checksum += back
	return nil
}

// cow keeps a ring of clones of the base deque. Each op mutates a fresh
// clone and checks the base did not see the write.
func (r *runner) cow() func(op int64) error {
	base := r.d
	clones := make([]*deque.Deque[int64], r.cfg.Clones)
	return func(op int64) error {
		slot := int(op) % len(clones)
		c := base.Clone()
		clones[slot] = c

		i := r.rng.IntN(c.Len())
		before := base.At(i)
		r.mutate(c, func() { c.Set(i, -op-1) })
		if got := base.At(i); got != before {
			return errors.Wrapf(ErrCorrupted, "clone write leaked into base at %d: %d", i, got)
		}
		r.res.Checksum += c.At(i)
		return nil
	}
}

// Sum adds up the values of d.
func Sum(d *deque.Deque[int64]) int64 {
	return deque.Reduce(d, int64(0), func(acc, v int64) int64 { return acc + v })
}
