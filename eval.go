package arith

// Evaluator evaluates expressions with a fixed set of options. Each call
// to Eval uses its own cursor, so an Evaluator is safe to use concurrently.
type Evaluator struct {
	cfg config
}

// New creates an Evaluator. The given options are applied in order.
func New(opts ...Option) *Evaluator {
	return &Evaluator{cfg: configure(opts)}
}

// Eval evaluates an expression. If the input is not a valid expression, the
// error implements InputError.
func (ev *Evaluator) Eval(src string) (float64, error) {
	e := evaluation{
		cur: newCursor(src, ev.cfg.ws),
		cfg: ev.cfg,
	}
	return e.run()
}

// Result is the outcome of evaluating one expression in a batch.
type Result struct {
	// Src is the expression text.
	Src string
	// Value is the result. It is zero if Err is not nil.
	Value float64
	// Err is the error from evaluating Src, if any.
	Err error
}

// EvalAll evaluates each expression independently. An error in one
// expression does not stop evaluation of the rest.
func (ev *Evaluator) EvalAll(srcs []string) []Result {
	r := make([]Result, len(srcs))
	e := evaluation{
		cur: newCursor("", ev.cfg.ws),
		cfg: ev.cfg,
	}
	for i, src := range srcs {
		e.cur.reset(src)
		e.depth = 0
		v, err := e.run()
		r[i] = Result{Src: src, Value: v, Err: err}
	}
	return r
}

// Eval is a shortcut to evaluate an expression with the given options.
func Eval(src string, opts ...Option) (float64, error) {
	return New(opts...).Eval(src)
}
