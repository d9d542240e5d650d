package user

import (
	"strings"
	"time"
)

type User struct {
	ID           string    `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	Name         string    `json:"name" db:"name"`
	MotherTongue *string   `json:"motherTongue" db:"mother_tongue"`
	EnglishLevel *string   `json:"englishLevel" db:"english_level"`
	LearningGoal *string   `json:"learningGoal" db:"learning_goal"`
	Interests    *string   `json:"interests" db:"interests"`
	Focus        *string   `json:"focus" db:"focus"`
	Voice        *string   `json:"voice" db:"voice"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`
}

// Preferences are the onboarding answers. A nil field means "not supplied".
type Preferences struct {
	MotherTongue *string
	EnglishLevel *string
	LearningGoal *string
	Interests    *string
	Focus        *string
	Voice        *string
}

// clone returns a copy that shares no preference storage with u.
func (u User) clone() User {
	u.MotherTongue = cloneString(u.MotherTongue)
	u.EnglishLevel = cloneString(u.EnglishLevel)
	u.LearningGoal = cloneString(u.LearningGoal)
	u.Interests = cloneString(u.Interests)
	u.Focus = cloneString(u.Focus)
	u.Voice = cloneString(u.Voice)
	return u
}

// apply copies the supplied (non-nil) preference values onto the user.
func (u *User) apply(p Preferences) {
	if p.MotherTongue != nil {
		u.MotherTongue = cloneString(p.MotherTongue)
	}
	if p.EnglishLevel != nil {
		u.EnglishLevel = cloneString(p.EnglishLevel)
	}
	if p.LearningGoal != nil {
		u.LearningGoal = cloneString(p.LearningGoal)
	}
	if p.Interests != nil {
		u.Interests = cloneString(p.Interests)
	}
	if p.Focus != nil {
		u.Focus = cloneString(p.Focus)
	}
	if p.Voice != nil {
		u.Voice = cloneString(p.Voice)
	}
}

// NameFromEmail returns the local part of an email address, or the whole
// value when it has no '@'.
func NameFromEmail(email string) string {
	name, _, _ := strings.Cut(email, "@")
	return name
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
