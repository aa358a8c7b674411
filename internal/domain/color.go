package domain

// Season is a personal color classification
type Season string

// Seasons in display order
const (
	SeasonSpring Season = "spring"
	SeasonSummer Season = "summer"
	SeasonAutumn Season = "autumn"
	SeasonWinter Season = "winter"
)

// ColorFeatures are the visual attributes selected by the user
type ColorFeatures struct {
	SkinTone  string `json:"skinTone" binding:"required"`
	EyeColor  string `json:"eyeColor" binding:"required"`
	HairColor string `json:"hairColor" binding:"required"`
	Undertone string `json:"undertone,omitempty"` // optional
}

// Swatch is one palette color in several representations
type Swatch struct {
	Hex        string   `json:"hex"`
	RGB        [3]uint8 `json:"rgb"`
	Hue        float64  `json:"hue"`        // 0-360 degrees
	Saturation float64  `json:"saturation"` // 0-1
	Lightness  float64  `json:"lightness"`  // 0-1
}

// ColorAnalysis is the result of a color season analysis
type ColorAnalysis struct {
	Season  Season   `json:"season"`
	Title   string   `json:"title"`
	Palette []Swatch `json:"palette"`
	Tips    []string `json:"tips"`
}
