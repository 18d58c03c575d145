package config

const (
	envBadgePath = "BADGE_CACHE_PATH"
	envBadgeSize = "BADGE_SIZE"

	defaultBadgePath = "data/badges.json"
	// Upstream serves downscaled badge variants when the URL carries a
	// size suffix; the modal-sized image is enough for consumers.
	defaultBadgeSize = "small"
)

// BadgeConfig controls the durable badge cache document and which image
// variant gets cached.
type BadgeConfig struct {
	Path string
	Size string // "", "small", "medium"; empty keeps the original URL
}

func loadBadge() BadgeConfig {
	return BadgeConfig{
		Path: envOrDefault(envBadgePath, defaultBadgePath),
		Size: envOrDefault(envBadgeSize, defaultBadgeSize),
	}
}
