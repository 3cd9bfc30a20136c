package arith

// Option is an option for evaluating expressions.
type Option interface {
	evalOption(config) config
}

type (
	spaceopt    struct{}
	trailingopt struct{}
	depthopt    int
)

// config holds the settings for evaluation. It is also an Option.
type config struct {
	// ws indicates that whitespace between tokens is ignored.
	ws bool
	// trailing indicates that input following a complete expression is
	// ignored rather than rejected.
	trailing bool
	// depth is the maximum nesting depth of parentheses, or 0 for no limit.
	depth int
	// preset indicates that the config was created by Preset.
	preset bool
}

// SkipSpace tells the evaluator to ignore whitespace before each token.
// Whitespace within a number ends the number, so "1 2" is not 12; with the
// default of rejecting trailing input, it is an error.
func SkipSpace() Option {
	return spaceopt{}
}

func (spaceopt) evalOption(c config) config {
	c.ws = true
	return c
}

// AllowTrailing tells the evaluator to stop at the end of the first complete
// expression and ignore anything after it. E.g., "2+3)" evaluates to 5.
func AllowTrailing() Option {
	return trailingopt{}
}

func (trailingopt) evalOption(c config) config {
	c.trailing = true
	return c
}

// MaxDepth limits how deeply parentheses may nest. A limit of zero or less
// removes the limit, which is the default.
//
// Each open parenthesis recurses, and an unlimited depth lets input such as
// millions of nested parentheses exhaust the goroutine stack, which is a
// fatal error rather than a recoverable panic. Set a limit when evaluating
// untrusted input.
func MaxDepth(n int) Option {
	if n < 0 {
		n = 0
	}
	return depthopt(n)
}

func (o depthopt) evalOption(c config) config {
	c.depth = int(o)
	return c
}

// Preset combines options into one that applies them all at once. A preset
// panics when it is applied after any option that changes the defaults, but
// it is safe to apply other options after a preset.
func Preset(opts ...Option) Option {
	var c config
	for _, opt := range opts {
		c = opt.evalOption(c)
	}
	c.preset = true
	return &c
}

func (o *config) evalOption(c config) config {
	if c.ws || c.trailing || c.depth != 0 || c.preset {
		panic("arith: preset applied to non-default config")
	}
	return *o
}

func configure(opts []Option) config {
	var c config
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		c = opt.evalOption(c)
	}
	return c
}
