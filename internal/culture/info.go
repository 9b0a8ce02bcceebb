package culture

// Info is the static presentation record for a culture.
type Info struct {
	ID               ID     `json:"id" yaml:"id"`
	Name             string `json:"name" yaml:"name"`
	Description      string `json:"description" yaml:"description"`
	Accent           string `json:"accent" yaml:"accent"`
	Genre            string `json:"genre" yaml:"genre"`
	SampleAudio      string `json:"sampleAudio,omitempty" yaml:"sample_audio,omitempty"`
	Pattern          string `json:"pattern" yaml:"pattern"`
	ThemeDescription string `json:"themeDescription,omitempty" yaml:"theme_description,omitempty"`
}

var infos = map[ID]Info{
	Default: {
		ID:          Default,
		Name:        "Classic",
		Description: "The neutral storefront look",
		Accent:      "#6b7280",
		Genre:       "Lo-fi",
		Pattern:     "none",
	},
	Tokyo: {
		ID:               Tokyo,
		Name:             "Tokyo",
		Description:      "Neon streets and late-night arcades",
		Accent:           "#ff2e88",
		Genre:            "City Pop",
		SampleAudio:      "/audio/tokyo.mp3",
		Pattern:          "neon-grid",
		ThemeDescription: "Magenta signage, glowing LED panels and low cars gliding through a rain-slick grid.",
	},
	NewYork: {
		ID:               NewYork,
		Name:             "New York",
		Description:      "Skyline nights and block-party records",
		Accent:           "#f5b700",
		Genre:            "Hip-Hop",
		SampleAudio:      "/audio/newyork.mp3",
		Pattern:          "skyline",
		ThemeDescription: "A landmark tower over a flickering skyline, with vinyl spinning above the streets.",
	},
	Lagos: {
		ID:               Lagos,
		Name:             "Lagos",
		Description:      "Sunset beaches and Afrobeats",
		Accent:           "#ff7a00",
		Genre:            "Afrobeats",
		SampleAudio:      "/audio/lagos.mp3",
		Pattern:          "ankara",
		ThemeDescription: "Palm fronds over a warm shoreline, patterned pineapples and bright confetti.",
	},
	Seoul: {
		ID:               Seoul,
		Name:             "Seoul",
		Description:      "Pastel streets and idol pop",
		Accent:           "#ff8fc7",
		Genre:            "K-Pop",
		SampleAudio:      "/audio/seoul.mp3",
		Pattern:          "hearts",
		ThemeDescription: "Floating hearts, sleepy cats and twinkling stars under a pastel sky.",
	},
	London: {
		ID:               London,
		Name:             "London",
		Description:      "Night buses and underground beats",
		Accent:           "#3b82f6",
		Genre:            "UK Drill",
		SampleAudio:      "/audio/london.mp3",
		Pattern:          "grid",
		ThemeDescription: "A beat-driven skyline with the clock tower, the Shard and the Eye turning slowly.",
	},
	Berlin: {
		ID:          Berlin,
		Name:        "Berlin",
		Description: "Warehouse raves and concrete",
		Accent:      "#a3a3a3",
		Genre:       "Techno",
		SampleAudio: "/audio/berlin.mp3",
		Pattern:     "industrial",
	},
}

// Lookup returns the info record for id. Unknown identifiers yield the default
// record and false.
func Lookup(id ID) (Info, bool) {
	if id == "" {
		id = Default
	}
	info, ok := infos[id]
	if !ok {
		return infos[Default], false
	}
	return info, true
}
