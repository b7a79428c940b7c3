package scoring

// Thresholds are the tunable trigger levels of the ladder and the override rules
type Thresholds struct {
	PhishingPattern           float64 `mapstructure:"phishing_pattern" validate:"gt=0"`
	PhishingHeuristic         float64 `mapstructure:"phishing_heuristic" validate:"gt=0"`
	Resume                    float64 `mapstructure:"resume" validate:"gt=0"`
	ResumeOverride            float64 `mapstructure:"resume_override" validate:"gt=0"`
	ResumeOverrideWithClosing float64 `mapstructure:"resume_override_with_closing" validate:"gt=0"`
	Education                 float64 `mapstructure:"education" validate:"gt=0"`
	Finance                   float64 `mapstructure:"finance" validate:"gt=0"`
	Spam                      float64 `mapstructure:"spam" validate:"gt=0"`
	Urgent                    float64 `mapstructure:"urgent" validate:"gt=0"`
	Professional              float64 `mapstructure:"professional" validate:"gt=0"`
}

// DefaultThresholds returns the conservative trigger levels
func DefaultThresholds() Thresholds {
	return Thresholds{
		PhishingPattern:           80,
		PhishingHeuristic:         3,
		Resume:                    3,
		ResumeOverride:            5,
		ResumeOverrideWithClosing: 3,
		Education:                 3,
		Finance:                   3,
		Spam:                      3,
		Urgent:                    2,
		Professional:              2,
	}
}
