package vocabulary

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
)

// Config is the on-disk vocabulary document. Missing fields fall back to the
// defaults below; unrecognized fields are ignored so older binaries keep
// working against newer documents.
type Config struct {
	SpacingScale       []int    `json:"spacingScale"`
	TypographySizes    []int    `json:"typographySizes"`
	MaxFontSize        int      `json:"maxFontSize"`
	FontWeights        []int    `json:"fontWeights"`
	SemanticColorNames []string `json:"semanticColorNames"`
	ComponentHeights   []int    `json:"componentHeights"`
}

// ConfigError wraps all validation failures found in a vocabulary document.
// The engine refuses to scan against a partially valid vocabulary.
type ConfigError struct {
	Err error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid vocabulary: %v", e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// Default vocabulary values, used when the corresponding Config field is
// absent. The spacing grid divisors are fixed: a value off the curated scale
// is still acceptable when divisible by 4 or 8.
var (
	defaultSpacingScale    = []int{0, 4, 8, 12, 16, 20, 24, 28, 32, 40, 48, 56, 64, 80, 96, 112, 128}
	defaultTypographySizes = []int{12, 14, 16, 18, 20, 24, 32, 40, 48}
	defaultFontWeights     = []int{400, 500, 600, 700}
	defaultComponentSizes  = []int{32, 40, 48, 56}
	defaultMaxFontSize     = 48

	spacingDivisors = []int{4, 8}
)

// defaultColorNames is the semantic role vocabulary: role names plus their
// -foreground variants where the role has one.
var defaultColorNames = []string{
	"background", "foreground",
	"primary", "primary-foreground",
	"secondary", "secondary-foreground",
	"accent", "accent-foreground",
	"muted", "muted-foreground",
	"destructive", "destructive-foreground",
	"card", "card-foreground",
	"popover", "popover-foreground",
	"border", "input", "ring",
}

// Default returns the built-in vocabulary.
func Default() *Vocabulary {
	v, err := New(Config{})
	if err != nil {
		// The built-in defaults are validated by tests; reaching this means
		// the defaults themselves are broken.
		panic(err)
	}
	return v
}

// New builds and validates a Vocabulary from a config document. Empty slices
// and a zero MaxFontSize take the defaults; any malformed value fails with a
// ConfigError rather than silently defaulting.
func New(cfg Config) (*Vocabulary, error) {
	applyDefaults(&cfg)

	if errs := validate(cfg); len(errs) > 0 {
		return nil, &ConfigError{Err: errors.Join(errs...)}
	}

	return &Vocabulary{
		spacing:          toSet(cfg.SpacingScale),
		spacingDivisors:  spacingDivisors,
		fontSizes:        toSet(cfg.TypographySizes),
		maxFontSize:      cfg.MaxFontSize,
		fontWeights:      toSet(cfg.FontWeights),
		colorTokens:      toStringSet(cfg.SemanticColorNames),
		componentHeights: toSet(cfg.ComponentHeights),
	}, nil
}

// LoadFromFile reads a JSON vocabulary document, applies defaults, validates,
// and builds the Vocabulary.
func LoadFromFile(path string) (*Vocabulary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read vocabulary file: %w", err)
	}
	return LoadFromBytes(data)
}

// LoadFromBytes parses a vocabulary document from raw JSON bytes.
func LoadFromBytes(data []byte) (*Vocabulary, error) {
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, &ConfigError{Err: fmt.Errorf("failed to parse vocabulary JSON: %w", err)}
	}
	return New(cfg)
}

// applyDefaults fills in absent fields. A field that is present but empty is
// left alone so validate can reject it: an explicitly empty set is a
// self-contradictory specification, not a request for the default.
func applyDefaults(cfg *Config) {
	if cfg.SpacingScale == nil {
		cfg.SpacingScale = defaultSpacingScale
	}
	if cfg.TypographySizes == nil {
		cfg.TypographySizes = defaultTypographySizes
	}
	if cfg.MaxFontSize == 0 {
		cfg.MaxFontSize = defaultMaxFontSize
	}
	if cfg.FontWeights == nil {
		cfg.FontWeights = defaultFontWeights
	}
	if cfg.SemanticColorNames == nil {
		cfg.SemanticColorNames = defaultColorNames
	}
	if cfg.ComponentHeights == nil {
		cfg.ComponentHeights = defaultComponentSizes
	}
}

// validate collects every problem in the document so the caller sees the full
// picture in one pass.
func validate(cfg Config) []error {
	var errs []error

	if len(cfg.SpacingScale) == 0 {
		errs = append(errs, fmt.Errorf("spacingScale: empty set"))
	}
	if len(cfg.TypographySizes) == 0 {
		errs = append(errs, fmt.Errorf("typographySizes: empty set"))
	}
	if len(cfg.FontWeights) == 0 {
		errs = append(errs, fmt.Errorf("fontWeights: empty set"))
	}
	if len(cfg.SemanticColorNames) == 0 {
		errs = append(errs, fmt.Errorf("semanticColorNames: empty set"))
	}
	if len(cfg.ComponentHeights) == 0 {
		errs = append(errs, fmt.Errorf("componentHeights: empty set"))
	}

	for i, px := range cfg.SpacingScale {
		if px < 0 {
			errs = append(errs, fmt.Errorf("spacingScale[%d]: negative value %d", i, px))
		}
	}
	for i, px := range cfg.TypographySizes {
		if px <= 0 {
			errs = append(errs, fmt.Errorf("typographySizes[%d]: non-positive value %d", i, px))
		}
	}
	if cfg.MaxFontSize <= 0 {
		errs = append(errs, fmt.Errorf("maxFontSize: non-positive value %d", cfg.MaxFontSize))
	}
	for i, w := range cfg.FontWeights {
		if w < 100 || w > 900 {
			errs = append(errs, fmt.Errorf("fontWeights[%d]: value %d outside 100..900", i, w))
		}
	}
	for i, px := range cfg.ComponentHeights {
		if px <= 0 {
			errs = append(errs, fmt.Errorf("componentHeights[%d]: non-positive value %d", i, px))
		}
	}
	for i, name := range cfg.SemanticColorNames {
		if name == "" {
			errs = append(errs, fmt.Errorf("semanticColorNames[%d]: empty name", i))
		}
	}

	return errs
}

func toSet(values []int) map[int]bool {
	set := make(map[int]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}

func toStringSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}

func sortedKeys(set map[int]bool) []int {
	out := make([]int, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Ints(out)
	return out
}

func sortedStringKeys(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
