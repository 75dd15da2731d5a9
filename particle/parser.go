// SPDX-License-Identifier: MIT
// Package: particula/particle
//
// parser.go — raw identifier text → Identity tokens.
//
// Accepted forms (after trimming surrounding space):
//
//	special particles  "e-", "electron", "positron", "mu+", "nu_tau", "p-", "n"
//	bare proton        "p", "p+", "proton"        (→ nuclide "H-1 1+")
//	elements           "Fe", "iron", "IRON"       (symbols case-sensitive, names not)
//	isotopes           "Fe-56", "iron-56", "D", "T", "deuterium", "tritium"
//	ions               "Fe-56 17+", "Fe-56 +17", "He-4++", "H-1+", "alpha", "deuteron"
//
// Charge notation: a space-separated token "N+", "+N", "N-", "-N" or a run of
// identical signs; without a space only a trailing run of identical signs.
//
// Reconciliation of explicit arguments against the identifier:
//
//	explicit charge  | implied charge | result
//	-----------------+----------------+-------------------------------------
//	given            | none           | charge := explicit
//	given            | equal          | charge kept, WarnRedundantCharge
//	given            | different      | ErrInvalidParticle
//	(same table for the mass number with WarnRedundantMassNumber)
//
// Special particles (other than the bare proton) take neither argument: any
// explicit charge or mass number is ErrInvalidParticle. A resulting charge
// below -3 is accepted with WarnUnusualCharge.

package particle

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/particula/refdata"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Kind tags the closed set of particle shapes.
type Kind uint8

const (
	// KindSpecial is a subatomic particle addressed by symbol (e-, n, nu_e, ...).
	KindSpecial Kind = iota + 1

	// KindElement is an element with no mass number and no nonzero charge.
	KindElement

	// KindIsotope is an element with a mass number and no nonzero charge.
	KindIsotope

	// KindIon is an element or isotope with a nonzero integer charge.
	KindIon
)

func (k Kind) String() string {
	switch k {
	case KindSpecial:
		return "special"
	case KindElement:
		return "element"
	case KindIsotope:
		return "isotope"
	case KindIon:
		return "ion"
	default:
		return "unknown"
	}
}

// Identity is the parser output: structured tokens not yet validated
// against the isotope table.
type Identity struct {
	Kind Kind

	// Symbol is the special-particle symbol or the element symbol.
	Symbol string

	AtomicNumber refdata.Optional[int]
	MassNumber   refdata.Optional[int]
	Charge       refdata.Optional[int]

	// Input is the raw text, kept for diagnostics only.
	Input string
}

// shorthand is a nuclide alias with its implied tokens.
type shorthand struct {
	symbol     string
	massNumber int
	charge     refdata.Optional[int]
}

// Case-sensitive nuclide symbols.
var nuclideSymbols = map[string]shorthand{
	"D": {symbol: "H", massNumber: 2},
	"T": {symbol: "H", massNumber: 3},
}

// Case-insensitive nuclide names, keyed by folded form.
var nuclideNames = map[string]shorthand{
	"deuterium": {symbol: "H", massNumber: 2},
	"tritium":   {symbol: "H", massNumber: 3},
	"deuteron":  {symbol: "H", massNumber: 2, charge: refdata.Some(1)},
	"triton":    {symbol: "H", massNumber: 3, charge: refdata.Some(1)},
	"alpha":     {symbol: "He", massNumber: 4, charge: refdata.Some(2)},
}

func lookupShorthand(base string) (shorthand, bool) {
	if s, ok := nuclideSymbols[base]; ok {
		return s, true
	}
	s, ok := nuclideNames[cases.Fold().String(base)]

	return s, ok
}

// parse turns raw text plus explicit arguments into an Identity.
func parse(input string, c *config) (Identity, []Warning, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return Identity{}, nil, fail(ErrInvalidParticle, "empty identifier")
	}

	if rec, ok := c.store.SpecialParticleByAlias(s); ok {
		if rec.Nuclide != "" {
			return parseNuclide(rec.Nuclide, input, c)
		}
		if c.hasCharge || c.hasMassNumber {
			return Identity{}, nil, failHint(ErrInvalidParticle,
				"special particles carry an intrinsic charge and no mass number",
				"%q is a special particle; explicit charge or mass number is not allowed", input)
		}

		return Identity{Kind: KindSpecial, Symbol: rec.Symbol, Input: input}, nil, nil
	}

	return parseNuclide(s, input, c)
}

// parseNuclide handles element, isotope and ion notation in s.
func parseNuclide(s, input string, c *config) (Identity, []Warning, error) {
	base, charge, err := splitCharge(s)
	if err != nil {
		return Identity{}, nil, err
	}

	var (
		symbol     string
		massNumber refdata.Optional[int]
	)
	if sh, ok := lookupShorthand(base); ok {
		symbol, massNumber = sh.symbol, refdata.Some(sh.massNumber)
		if implied, ok := sh.charge.Get(); ok {
			if q, given := charge.Get(); given && q != implied {
				return Identity{}, nil, fail(ErrInvalidParticle,
					"%q: charge %d contradicts the implied charge %d", input, q, implied)
			}
			charge = sh.charge
		}
	} else {
		symbol, massNumber, err = parseElementNotation(base, c.store)
		if err != nil {
			return Identity{}, nil, err
		}
	}

	el, ok := c.store.ElementBySymbol(symbol)
	if !ok {
		return Identity{}, nil, fail(ErrInvalidParticle, "%q: unknown element %q", input, symbol)
	}

	var ws []Warning
	if c.hasCharge {
		if q, implied := charge.Get(); implied {
			if q != c.charge {
				return Identity{}, nil, fail(ErrInvalidParticle,
					"%q: explicit charge %d contradicts the implied charge %d", input, c.charge, q)
			}
			ws = append(ws, Warning{
				Code:    WarnRedundantCharge,
				Input:   input,
				Message: "explicit charge " + strconv.Itoa(c.charge) + " is already implied by " + strconv.Quote(input),
			})
		}
		charge = refdata.Some(c.charge)
	}
	if c.hasMassNumber {
		if a, implied := massNumber.Get(); implied {
			if a != c.massNumber {
				return Identity{}, nil, fail(ErrInvalidParticle,
					"%q: explicit mass number %d contradicts the implied mass number %d", input, c.massNumber, a)
			}
			ws = append(ws, Warning{
				Code:    WarnRedundantMassNumber,
				Input:   input,
				Message: "explicit mass number " + strconv.Itoa(c.massNumber) + " is already implied by " + strconv.Quote(input),
			})
		}
		massNumber = refdata.Some(c.massNumber)
	}
	if q, ok := charge.Get(); ok && q < unusualChargeBelow {
		ws = append(ws, Warning{
			Code:    WarnUnusualCharge,
			Input:   input,
			Message: "charge " + strconv.Itoa(q) + " is unusually negative for " + symbol,
		})
	}

	id := Identity{
		Kind:         nuclideKind(massNumber, charge),
		Symbol:       el.Symbol,
		AtomicNumber: refdata.Some(el.AtomicNumber),
		MassNumber:   massNumber,
		Charge:       charge,
		Input:        input,
	}

	return id, ws, nil
}

func nuclideKind(massNumber, charge refdata.Optional[int]) Kind {
	if q, ok := charge.Get(); ok && q != 0 {
		return KindIon
	}
	if massNumber.Valid() {
		return KindIsotope
	}

	return KindElement
}

// parseElementNotation resolves "Sym", "Name", "Sym-A" or "Name-A" into an
// element symbol and optional mass number.
func parseElementNotation(base string, store refdata.Store) (string, refdata.Optional[int], error) {
	name, massNumber := base, refdata.None[int]()
	if i := strings.LastIndexByte(base, '-'); i > 0 {
		digits := base[i+1:]
		if !isDigits(digits) {
			return "", massNumber, fail(ErrInvalidParticle, "%q: mass number %q is not a positive integer", base, digits)
		}
		a, err := strconv.Atoi(digits)
		if err != nil {
			return "", massNumber, fail(ErrInvalidParticle, "%q: mass number %q", base, digits)
		}
		name, massNumber = base[:i], refdata.Some(a)
	}

	if el, ok := store.ElementBySymbol(name); ok {
		return el.Symbol, massNumber, nil
	}
	if el, ok := store.ElementByName(name); ok {
		return el.Symbol, massNumber, nil
	}
	if el, ok := store.ElementBySymbol(cases.Title(language.Und).String(name)); ok {
		return "", massNumber, failHint(ErrInvalidParticle,
			"element symbols are case-sensitive; did you mean "+strconv.Quote(el.Symbol)+"?",
			"%q is not a known particle, element or isotope", base)
	}

	return "", massNumber, fail(ErrInvalidParticle, "%q is not a known particle, element or isotope", base)
}

// splitCharge separates trailing charge notation from the nuclide base.
func splitCharge(s string) (string, refdata.Optional[int], error) {
	if strings.ContainsAny(s, " \t") {
		fields := strings.Fields(s)
		if len(fields) != 2 {
			return "", refdata.None[int](), fail(ErrInvalidParticle, "%q: expected \"<nuclide> <charge>\"", s)
		}
		q, err := parseChargeToken(fields[1])
		if err != nil {
			return "", refdata.None[int](), fail(ErrInvalidParticle, "%q: %v", s, err)
		}

		return fields[0], refdata.Some(q), nil
	}

	j := len(s)
	for j > 0 && isSign(s[j-1]) {
		j--
	}
	if j == len(s) {
		return s, refdata.None[int](), nil
	}
	if j == 0 {
		return "", refdata.None[int](), fail(ErrInvalidParticle, "%q: charge without a nuclide", s)
	}
	q, err := signRun(s[j:])
	if err != nil {
		return "", refdata.None[int](), fail(ErrInvalidParticle, "%q: %v", s, err)
	}

	return s[:j], refdata.Some(q), nil
}

// parseChargeToken accepts "N+", "+N", "N-", "-N" or a run of identical signs.
func parseChargeToken(tok string) (int, error) {
	if tok == "" {
		return 0, errInvalidCharge(tok)
	}
	if isSign(tok[0]) && isSign(tok[len(tok)-1]) {
		return signRun(tok)
	}

	var sign byte
	var digits string
	switch {
	case isSign(tok[len(tok)-1]):
		sign, digits = tok[len(tok)-1], tok[:len(tok)-1]
	case isSign(tok[0]):
		sign, digits = tok[0], tok[1:]
	default:
		return 0, errInvalidCharge(tok)
	}
	if !isDigits(digits) {
		return 0, errInvalidCharge(tok)
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0, errInvalidCharge(tok)
	}
	if sign == '-' {
		n = -n
	}

	return n, nil
}

// signRun converts "+++" to 3 and "--" to -2; mixed runs are rejected.
func signRun(run string) (int, error) {
	for i := 1; i < len(run); i++ {
		if run[i] != run[0] {
			return 0, errInvalidCharge(run)
		}
	}
	for i := 0; i < len(run); i++ {
		if !isSign(run[i]) {
			return 0, errInvalidCharge(run)
		}
	}
	if run[0] == '-' {
		return -len(run), nil
	}

	return len(run), nil
}

type chargeNotationError string

func (e chargeNotationError) Error() string {
	return "invalid charge notation " + strconv.Quote(string(e))
}

func errInvalidCharge(tok string) error { return chargeNotationError(tok) }

func isSign(b byte) bool { return b == '+' || b == '-' }

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}

	return true
}
