package currency

var (
	defaultGrammar = MustCompile()

	// grammars serves IsCurrency calls with options
	grammars = NewCache(64)
)

// IsCurrency reports whether s is a currency amount under opts applied on top
// of DefaultOptions. Contradictory options make every value invalid; use
// Compile to see why.
func IsCurrency(s string, opts ...Option) bool {
	if len(opts) == 0 {
		return defaultGrammar.Match(s)
	}

	g, err := grammars.Compile(opts...)
	if err != nil {
		return false
	}
	return g.Match(s)
}
