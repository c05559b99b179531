package grammar

import "github.com/ghettovoice/abnf"

func char(c byte) abnf.Operator { return abnf.Literal(string(c), []byte{c}) }

var (
	digit  = abnf.Range("DIGIT", []byte("0"), []byte("9"))
	alpha  = abnf.Alt("ALPHA", abnf.Range("%x41-5A", []byte("A"), []byte("Z")), abnf.Range("%x61-7A", []byte("a"), []byte("z")))
	hexdig = abnf.Alt("HEXDIG", digit, abnf.Range("%x41-46", []byte("A"), []byte("F")), abnf.Range("%x61-66", []byte("a"), []byte("f")))

	unreserved = abnf.Alt("unreserved", alpha, digit, char('-'), char('.'), char('_'), char('~'))
	subDelims  = abnf.Alt(
		"sub-delims",
		char('!'), char('$'), char('&'), char('\''), char('('), char(')'),
		char('*'), char('+'), char(','), char(';'), char('='),
	)
)

var ipvFuture = abnf.Concat(
	"IPvFuture",
	abnf.Literal("v", []byte("v")),
	abnf.Repeat1Inf("1*HEXDIG", hexdig),
	char('.'),
	abnf.Repeat1Inf("1*( unreserved / sub-delims / \":\" )", abnf.AltFirst("ipvfuture-char", unreserved, subDelims, char(':'))),
)
