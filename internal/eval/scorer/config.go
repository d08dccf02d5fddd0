package scorer

const (
	// DefaultFieldWeight and DefaultLineItemWeight blend header-field and
	// line-item scores into the overall document score. Header fields are
	// fewer but higher-confidence; line items are numerous and noisier.
	DefaultFieldWeight    = 0.6
	DefaultLineItemWeight = 0.4

	// DefaultMatchThreshold is the fuzzy-ratio floor for line-item name
	// matching. A candidate pair must score strictly above it.
	DefaultMatchThreshold = 70
)

type Config struct {
	FieldWeight    float64
	LineItemWeight float64
	MatchThreshold int
}

func DefaultConfig() Config {
	return Config{
		FieldWeight:    DefaultFieldWeight,
		LineItemWeight: DefaultLineItemWeight,
		MatchThreshold: DefaultMatchThreshold,
	}
}
