package catalog

// Entry is a single priced item in the static catalog. ID is the stable
// key used by the customizer; Name is the label shown to customers and
// stored on submitted orders.
type Entry struct {
	ID          string
	Name        string
	Description string
	Price       int64
}

const (
	DefaultVideoType   = "Commercial"
	DefaultVideoLength = "1-3 minutes"
)

var VideoTypes = []Entry{
	{ID: "youtube", Name: "YouTube Video", Description: "Engaging content for your channel"},
	{ID: "commercial", Name: "Commercial", Description: "Professional advertising content"},
	{ID: "event", Name: "Event Video", Description: "Wedding, corporate, or special occasion"},
	{ID: "shortfilm", Name: "Short Film", Description: "Narrative storytelling"},
}

var VideoLengths = []Entry{
	{ID: "30", Name: "Up to 30 seconds", Price: 250},
	{ID: "60", Name: "30-60 seconds", Price: 450},
	{ID: "180", Name: "1-3 minutes", Price: 850},
	{ID: "300", Name: "3-5 minutes", Price: 1250},
	{ID: "600", Name: "5-10 minutes", Price: 1950},
	{ID: "custom", Name: "Custom length", Description: "Request quote", Price: 0},
}

var Features = []Entry{
	{ID: "color-grading", Name: "Color Grading", Description: "Professional color correction and cinematic look", Price: 150},
	{ID: "transitions", Name: "Custom Transitions", Description: "Smooth, professional scene transitions", Price: 100},
	{ID: "subtitles", Name: "Professional Subtitles", Description: "Styled, timed subtitles for accessibility", Price: 125},
	{ID: "sfx", Name: "Sound Effects", Description: "Professional SFX design and mixing", Price: 175},
	{ID: "vfx", Name: "Visual Effects", Description: "Custom VFX elements and enhancements", Price: 300},
	{ID: "voiceover", Name: "Voice-over", Description: "Professional narration recording", Price: 250},
}

func byID(entries []Entry, id string) (Entry, bool) {
	for _, e := range entries {
		if e.ID == id {
			return e, true
		}
	}
	return Entry{}, false
}

func VideoTypeByID(id string) (Entry, bool) { return byID(VideoTypes, id) }
func LengthByID(id string) (Entry, bool)    { return byID(VideoLengths, id) }
func FeatureByID(id string) (Entry, bool)   { return byID(Features, id) }

// LengthPrice returns the price of the length tier with the given display
// name, or 0 when no tier matches.
func LengthPrice(name string) int64 {
	for _, e := range VideoLengths {
		if e.Name == name {
			return e.Price
		}
	}
	return 0
}

// FeaturePrice returns the price of the feature with the given display
// name, or 0 when no feature matches.
func FeaturePrice(name string) int64 {
	for _, e := range Features {
		if e.Name == name {
			return e.Price
		}
	}
	return 0
}
