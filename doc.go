// Package arith implements a one-pass calculator for sums and products of
// non-negative decimal numbers.
//
// The grammar is small:
//
//	Expression = Term { '+' Term }
//	Term       = Factor { '*' Factor }
//	Factor     = '(' Expression ')' | Number
//	Number     = digit { digit } [ '.' digit { digit } ]
//
// so "2+3*4" is 14 and "(2+3)*4" is 20. Expressions are evaluated while they
// are read; no syntax tree is built. Literals may also start or end with the
// decimal point, as in ".5" or "5.", and literals too large for a float64
// evaluate to +Inf. By default the input may contain only
// digits, '.', '+', '*', '(', and ')', and the whole input must be a single
// expression. SkipSpace and AllowTrailing relax those rules.
//
// Every error caused by bad input implements InputError, which reports the
// zero-based byte offset at which the problem was found.
package arith
