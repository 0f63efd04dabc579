package model

// ClueType categorizes what a clue reveals
type ClueType string

const (
	ClueTypeCategory ClueType = "category"
	ClueTypeBrand    ClueType = "brand"
	ClueTypePrice    ClueType = "price"
	ClueTypeFeature  ClueType = "feature"
	ClueTypeRating   ClueType = "rating"
	ClueTypeLocation ClueType = "location"
	ClueTypeStyle    ClueType = "style"
)

// ClueDifficulty is a display-only tag; it does not affect scoring
type ClueDifficulty string

const (
	DifficultyEasy   ClueDifficulty = "easy"
	DifficultyMedium ClueDifficulty = "medium"
	DifficultyHard   ClueDifficulty = "hard"
)

// Clue is one hint about the day's product
type Clue struct {
	ID         int            `json:"id"` // unique within a session only
	Text       string         `json:"text"`
	Type       ClueType       `json:"type"`
	Difficulty ClueDifficulty `json:"difficulty"`
}
