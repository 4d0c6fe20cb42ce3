package lessons

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"sort"

	"github.com/DanRulev/codehero.git/internal/models"
	"github.com/DanRulev/codehero.git/pkg/validator"
)

//go:embed data/*.json
var content embed.FS

var (
	ErrLanguageNotFound = errors.New("language not found")
	ErrLessonNotFound   = errors.New("lesson not found")
)

// Catalog is read-only after loading and safe for concurrent use.
type Catalog struct {
	languages []models.Language
	byID      map[string]int
}

// Load reads the lessons embedded into the binary.
func Load() (*Catalog, error) {
	return LoadFS(content)
}

// LoadFS reads every data/*.json file of fsys as one language track.
func LoadFS(fsys fs.FS) (*Catalog, error) {
	entries, err := fs.ReadDir(fsys, "data")
	if err != nil {
		return nil, fmt.Errorf("read lessons dir: %w", err)
	}

	c := &Catalog{byID: make(map[string]int)}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		data, err := fs.ReadFile(fsys, "data/"+entry.Name())
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", entry.Name(), err)
		}

		var lang models.Language
		if err := json.Unmarshal(data, &lang); err != nil {
			return nil, fmt.Errorf("parse %s: %w", entry.Name(), err)
		}

		if err := validateLanguage(lang); err != nil {
			return nil, fmt.Errorf("invalid %s: %w", entry.Name(), err)
		}

		if _, dup := c.byID[lang.ID]; dup {
			return nil, fmt.Errorf("duplicate language %q in %s", lang.ID, entry.Name())
		}
		c.byID[lang.ID] = -1
		c.languages = append(c.languages, lang)
	}

	if len(c.languages) == 0 {
		return nil, errors.New("no lessons found")
	}

	sort.SliceStable(c.languages, func(i, j int) bool {
		return c.languages[i].Order < c.languages[j].Order
	})
	for i, lang := range c.languages {
		c.byID[lang.ID] = i
	}

	return c, nil
}

func validateLanguage(lang models.Language) error {
	if err := validator.ValidateStruct(lang); err != nil {
		return err
	}

	sort.SliceStable(lang.Lessons, func(i, j int) bool {
		return lang.Lessons[i].ID < lang.Lessons[j].ID
	})

	for i, lesson := range lang.Lessons {
		if lesson.ID != i+1 {
			return fmt.Errorf("lesson ids must be 1..%d, got %d at position %d", len(lang.Lessons), lesson.ID, i+1)
		}

		questionIDs := make(map[string]bool, len(lesson.Questions))
		for _, q := range lesson.Questions {
			if questionIDs[q.ID] {
				return fmt.Errorf("lesson %d: duplicate question %q", lesson.ID, q.ID)
			}
			questionIDs[q.ID] = true

			if err := validateQuestion(q); err != nil {
				return fmt.Errorf("lesson %d: %w", lesson.ID, err)
			}
		}
	}

	return nil
}

func validateQuestion(q models.Question) error {
	optionIDs := make(map[string]bool, len(q.Options))
	correct := 0
	for _, o := range q.Options {
		if optionIDs[o.ID] {
			return fmt.Errorf("question %q: duplicate option %q", q.ID, o.ID)
		}
		optionIDs[o.ID] = true

		if o.Correct {
			correct++
		}
	}

	if correct != 1 {
		return fmt.Errorf("question %q: expected exactly one correct option, got %d", q.ID, correct)
	}

	return nil
}

// Languages returns the tracks in catalog order.
func (c *Catalog) Languages() []models.Language {
	out := make([]models.Language, len(c.languages))
	copy(out, c.languages)
	return out
}

func (c *Catalog) Language(id string) (models.Language, error) {
	i, ok := c.byID[id]
	if !ok {
		return models.Language{}, fmt.Errorf("%w: %s", ErrLanguageNotFound, id)
	}
	return c.languages[i], nil
}

func (c *Catalog) Lesson(language string, lessonID int) (models.Lesson, error) {
	lang, err := c.Language(language)
	if err != nil {
		return models.Lesson{}, err
	}

	if lessonID < 1 || lessonID > len(lang.Lessons) {
		return models.Lesson{}, fmt.Errorf("%w: %s/%d", ErrLessonNotFound, language, lessonID)
	}

	return lang.Lessons[lessonID-1], nil
}
