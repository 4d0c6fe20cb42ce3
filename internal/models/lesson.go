package models

type Option struct {
	ID      string `json:"id" validate:"required"`
	Text    string `json:"text" validate:"required"`
	Correct bool   `json:"correct"`
}

type Question struct {
	ID          string   `json:"id" validate:"required"`
	Text        string   `json:"text" validate:"required"`
	Code        string   `json:"code,omitempty"`
	Explanation string   `json:"explanation,omitempty"`
	Options     []Option `json:"options" validate:"min=2,dive"`
}

// Option returns the option with the given id.
func (q Question) Option(id string) (Option, bool) {
	for _, o := range q.Options {
		if o.ID == id {
			return o, true
		}
	}
	return Option{}, false
}

// CorrectOption returns the first option marked as correct.
func (q Question) CorrectOption() (Option, bool) {
	for _, o := range q.Options {
		if o.Correct {
			return o, true
		}
	}
	return Option{}, false
}

type Lesson struct {
	ID          int        `json:"id" validate:"min=1"`
	Title       string     `json:"title" validate:"required"`
	Description string     `json:"description"`
	Questions   []Question `json:"questions" validate:"min=1,dive"`
}

type Language struct {
	ID          string   `json:"id" validate:"required"`
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description"`
	Icon        string   `json:"icon"`
	Difficulty  string   `json:"difficulty"`
	Order       int      `json:"order"`
	Lessons     []Lesson `json:"lessons" validate:"min=1,dive"`
}
