package model

// Bot strategy constants
const (
	BotStrategyMinimax = "minimax"
	BotStrategyRandom  = "random"
)

// BotStrategyDisplayName returns a human-readable label for a strategy
func BotStrategyDisplayName(strategy string) string {
	switch strategy {
	case BotStrategyMinimax:
		return "Minimax"
	case BotStrategyRandom:
		return "Random"
	default:
		return strategy
	}
}

// ValidBotStrategies returns all valid bot strategy names
func ValidBotStrategies() []string {
	return []string{BotStrategyMinimax, BotStrategyRandom}
}
