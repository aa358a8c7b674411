package usecase

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stylefit/backend/internal/domain"
)

// seasonPalettes holds the six signature colors of each season
var seasonPalettes = map[domain.Season][]string{
	domain.SeasonSpring: {"#FF6B6B", "#4ECDC4", "#FFE66D", "#FF8E53", "#95E1D3", "#F38BA8"},
	domain.SeasonSummer: {"#A8DADC", "#457B9D", "#1D3557", "#F1FAEE", "#E63946", "#2A9D8F"},
	domain.SeasonAutumn: {"#D2691E", "#8B4513", "#CD853F", "#DEB887", "#B22222", "#228B22"},
	domain.SeasonWinter: {"#000000", "#FFFFFF", "#8B0000", "#000080", "#800080", "#008B8B"},
}

var seasonTips = map[domain.Season][]string{
	domain.SeasonSpring: {
		"Wear warm, clear colors that echo nature's renewal",
		"Coral, peach, and warm pinks are your best friends",
		"Avoid heavy, dark colors that can overwhelm you",
	},
	domain.SeasonSummer: {
		"Cool, soft colors complement your gentle coloring",
		"Pastels and muted tones enhance your natural beauty",
		"Avoid warm, intense colors that can clash",
	},
	domain.SeasonAutumn: {
		"Rich, warm earth tones are your signature",
		"Deep oranges, warm browns, and golden hues suit you",
		"Avoid cool, icy colors that can make you look washed out",
	},
	domain.SeasonWinter: {
		"Bold, dramatic colors match your striking features",
		"True colors like pure white and black are perfect",
		"Avoid muted, warm colors that can dull your impact",
	},
}

// ColorAnalyzer classifies visual features into a color season
type ColorAnalyzer struct{}

// NewColorAnalyzer creates a new color analyzer
func NewColorAnalyzer() *ColorAnalyzer {
	return &ColorAnalyzer{}
}

// Analyze determines the season and returns its palette and style tips.
// Skin tone, eye color and hair color are required; undertone is ignored.
func (a *ColorAnalyzer) Analyze(features *domain.ColorFeatures) (*domain.ColorAnalysis, error) {
	if features == nil {
		return nil, domain.ErrInvalidRequest
	}
	if features.SkinTone == "" || features.EyeColor == "" || features.HairColor == "" {
		return nil, fmt.Errorf("%w: skin tone, eye color and hair color are required", domain.ErrInvalidRequest)
	}

	season := DetermineSeason(features)
	palette, err := PaletteFor(season)
	if err != nil {
		return nil, err
	}

	tips := make([]string, len(seasonTips[season]))
	copy(tips, seasonTips[season])

	return &domain.ColorAnalysis{
		Season:  season,
		Title:   SeasonTitle(season),
		Palette: palette,
		Tips:    tips,
	}, nil
}

// DetermineSeason applies the season rules in order; the first match wins
func DetermineSeason(features *domain.ColorFeatures) domain.Season {
	skin := normalizeFeature(features.SkinTone)
	eye := normalizeFeature(features.EyeColor)
	hair := normalizeFeature(features.HairColor)

	switch {
	case skin == "fair" && hair == "blonde":
		return domain.SeasonSpring
	case skin == "medium" && (hair == "brown" || hair == "auburn"):
		return domain.SeasonAutumn
	case skin == "deep" || eye == "dark-brown":
		return domain.SeasonWinter
	default:
		return domain.SeasonSummer
	}
}

// PaletteHex returns the raw hex colors of a season
func PaletteHex(season domain.Season) ([]string, error) {
	hexes, ok := seasonPalettes[season]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownSeason, season)
	}
	out := make([]string, len(hexes))
	copy(out, hexes)
	return out, nil
}

// PaletteFor returns a season's palette with RGB and HSL breakdowns
func PaletteFor(season domain.Season) ([]domain.Swatch, error) {
	hexes, err := PaletteHex(season)
	if err != nil {
		return nil, err
	}

	swatches := make([]domain.Swatch, 0, len(hexes))
	for _, hex := range hexes {
		c, err := colorful.Hex(hex)
		if err != nil {
			return nil, fmt.Errorf("palette %s: %w", season, err)
		}
		r, g, b := c.RGB255()
		h, s, l := c.Hsl()
		swatches = append(swatches, domain.Swatch{
			Hex:        hex,
			RGB:        [3]uint8{r, g, b},
			Hue:        h,
			Saturation: s,
			Lightness:  l,
		})
	}

	return swatches, nil
}

// ParseSeason converts user input such as "Autumn" into a known season
func ParseSeason(s string) (domain.Season, error) {
	season := domain.Season(normalizeFeature(s))
	if _, ok := seasonPalettes[season]; !ok {
		return "", fmt.Errorf("%w: %q", domain.ErrUnknownSeason, s)
	}
	return season, nil
}

// SeasonTitle returns the capitalized display name, e.g. "Winter"
func SeasonTitle(season domain.Season) string {
	s := string(season)
	if s == "" {
		return ""
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func normalizeFeature(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
