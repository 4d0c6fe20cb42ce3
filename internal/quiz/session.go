package quiz

import (
	"errors"
	"time"

	"github.com/DanRulev/codehero.git/internal/models"
	"github.com/google/uuid"
)

var (
	ErrInvalidAnswer    = errors.New("option does not belong to the current question")
	ErrAlreadyAnswered  = errors.New("current question is already answered")
	ErrNotAnswered      = errors.New("current question is not answered yet")
	ErrAlreadyCompleted = errors.New("quiz is already completed")
	ErrNoSubject        = errors.New("quiz requires an authenticated subject")
	ErrNoQuestions      = errors.New("quiz requires at least one question")
)

// State is either Answering or Completed.
type State interface {
	isState()
}

type Answering struct {
	Index int
}

type Completed struct {
	Score int
}

func (Answering) isState() {}
func (Completed) isState() {}

// Session plays one lesson. It is owned by a single caller and is not safe
// for concurrent use.
type Session struct {
	id          string
	subject     int64
	language    string
	lessonID    int
	lessonTitle string
	questions   []models.Question
	answers     []string
	state       State
	now         func() time.Time
}

func New(subject int64, language string, lesson models.Lesson) (*Session, error) {
	if subject == 0 {
		return nil, ErrNoSubject
	}
	if len(lesson.Questions) == 0 {
		return nil, ErrNoQuestions
	}

	questions := make([]models.Question, len(lesson.Questions))
	copy(questions, lesson.Questions)

	return &Session{
		id:          uuid.NewString(),
		subject:     subject,
		language:    language,
		lessonID:    lesson.ID,
		lessonTitle: lesson.Title,
		questions:   questions,
		answers:     make([]string, 0, len(questions)),
		state:       Answering{Index: 0},
		now:         time.Now,
	}, nil
}

func (s *Session) ID() string          { return s.id }
func (s *Session) Subject() int64      { return s.subject }
func (s *Session) Language() string    { return s.language }
func (s *Session) LessonID() int       { return s.lessonID }
func (s *Session) LessonTitle() string { return s.lessonTitle }
func (s *Session) Len() int            { return len(s.questions) }
func (s *Session) State() State        { return s.state }

// Current returns the question under the cursor and its index.
func (s *Session) Current() (models.Question, int, error) {
	st, ok := s.state.(Answering)
	if !ok {
		return models.Question{}, 0, ErrAlreadyCompleted
	}
	return s.questions[st.Index], st.Index, nil
}

// Answered reports whether the question under the cursor has an answer.
func (s *Session) Answered() bool {
	st, ok := s.state.(Answering)
	if !ok {
		return true
	}
	return len(s.answers) > st.Index
}

// Answers returns a copy of the recorded answer ids in question order.
func (s *Session) Answers() []string {
	out := make([]string, len(s.answers))
	copy(out, s.answers)
	return out
}

// SubmitAnswer records the answer for the current question and reports
// whether it is correct. A question accepts exactly one answer.
func (s *Session) SubmitAnswer(optionID string) (bool, error) {
	st, ok := s.state.(Answering)
	if !ok {
		return false, ErrAlreadyCompleted
	}
	if len(s.answers) > st.Index {
		return false, ErrAlreadyAnswered
	}

	option, found := s.questions[st.Index].Option(optionID)
	if !found {
		return false, ErrInvalidAnswer
	}

	s.answers = append(s.answers, optionID)

	return option.Correct, nil
}

// Advance moves to the next question. After the last question the session
// becomes Completed and the returned record is non-nil.
func (s *Session) Advance() (*models.ProgressRecord, error) {
	st, ok := s.state.(Answering)
	if !ok {
		return nil, ErrAlreadyCompleted
	}
	if len(s.answers) <= st.Index {
		return nil, ErrNotAnswered
	}

	if st.Index+1 < len(s.questions) {
		s.state = Answering{Index: st.Index + 1}
		return nil, nil
	}

	score := s.Score()
	s.state = Completed{Score: score}

	return &models.ProgressRecord{
		UserID:         s.subject,
		Language:       s.language,
		LessonID:       s.lessonID,
		Score:          score,
		TotalQuestions: len(s.questions),
		CompletedAt:    s.now().UTC(),
	}, nil
}

// Score counts recorded answers whose option is correct. Unknown ids count
// as incorrect.
func (s *Session) Score() int {
	score := 0
	for i, id := range s.answers {
		if i >= len(s.questions) {
			break
		}
		if option, ok := s.questions[i].Option(id); ok && option.Correct {
			score++
		}
	}
	return score
}
