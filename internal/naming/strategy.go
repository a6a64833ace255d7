package naming

import (
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
)

// memoSize bounds the per-strategy conversion cache. Identifier sets are
// small in practice; the bound only guards against adversarial inputs.
const memoSize = 1024

// Strategy converts a declared identifier into a wire name.
type Strategy struct {
	name  string
	apply func(string) string
	memo  *lru.Cache[string, string]
}

// Name returns the strategy's registered name.
func (s *Strategy) Name() string { return s.name }

// Apply converts an identifier to its wire name.
func (s *Strategy) Apply(ident string) string {
	if s.memo != nil {
		if v, ok := s.memo.Get(ident); ok {
			return v
		}
	}

	v := s.apply(ident)

	if s.memo != nil {
		s.memo.Add(ident, v)
	}

	return v
}

func newStrategy(name string, apply func(string) string) *Strategy {
	cache, err := lru.New[string, string](memoSize)
	if err != nil {
		cache = nil
	}

	return &Strategy{name: name, apply: apply, memo: cache}
}

var (
	// Identity keeps the declared identifier as-is.
	Identity = newStrategy("identity", func(s string) string { return s })

	// SnakeCase converts "homeAddress" to "home_address".
	SnakeCase = newStrategy("snake_case", func(s string) string {
		return strings.Join(Tokenize(s), "_")
	})

	// KebabCase converts "homeAddress" to "home-address".
	KebabCase = newStrategy("kebab_case", func(s string) string {
		return strings.Join(Tokenize(s), "-")
	})

	// CamelCase converts "home_address" to "homeAddress".
	CamelCase = newStrategy("camel_case", toCamel)
)

var strategies = map[string]*Strategy{
	Identity.name:  Identity,
	SnakeCase.name: SnakeCase,
	KebabCase.name: KebabCase,
	CamelCase.name: CamelCase,
}

// ByName looks up a strategy by its registered name.
func ByName(name string) (*Strategy, bool) {
	s, ok := strategies[name]
	return s, ok
}

func toCamel(s string) string {
	tokens := Tokenize(s)
	if len(tokens) == 0 {
		return ""
	}

	var b strings.Builder

	b.WriteString(tokens[0])

	for _, t := range tokens[1:] {
		b.WriteString(strings.ToUpper(t[:1]))
		b.WriteString(t[1:])
	}

	return b.String()
}
