package telegram

import (
	"fmt"
	"strings"

	"github.com/aliskhannn/art-quiz-bot/internal/domain/entities"
)

var optionIcons = map[entities.OptionState]string{
	entities.OptionNeutral: "⚪️",
	entities.OptionChosen:  "🔵",
	entities.OptionCorrect: "✅",
	entities.OptionWrong:   "❌",
}

func optionIcon(state entities.OptionState) string {
	return optionIcons[state]
}

// renderCaption renders the caption of the artwork photo.
func renderCaption(quiz *entities.Quiz) string {
	return "🖼 " + bold(quiz.Title)
}

// renderQuestion renders the current question of a session.
func renderQuestion(s entities.Session) string {
	q := s.Question()

	var sb strings.Builder
	sb.WriteString(bold(fmt.Sprintf("%d/%d", s.Index()+1, s.Total())))
	if q.Difficulty != "" {
		sb.WriteString(" ")
		sb.WriteString(italic("· " + q.Difficulty))
	}
	sb.WriteString("\n\n")
	sb.WriteString(bold(q.Text))
	sb.WriteString("\n\n")

	for _, key := range q.Keys() {
		line := fmt.Sprintf("%s %s. %s", optionIcon(s.OptionState(key)), key, q.Options[key])
		sb.WriteString(md(line))
		sb.WriteString("\n")
	}

	if s.Revealed() {
		sb.WriteString("\n")
		selected, _ := s.Selected()
		if q.IsCorrect(selected) {
			sb.WriteString(md("Correct!"))
		} else {
			sb.WriteString(md(fmt.Sprintf("Not quite. The answer is %s.", q.CorrectAnswer)))
		}
	}

	return strings.TrimRight(sb.String(), "\n")
}

// renderResults renders the results screen of a finished session.
func renderResults(s entities.Session, rec entities.StreakRecord) string {
	var sb strings.Builder

	sb.WriteString(md("🎉 "))
	sb.WriteString(bold(s.Quiz().Title))
	sb.WriteString("\n\n")

	sb.WriteString(bold(fmt.Sprintf("%d/%d", s.Correct(), s.Total())))
	sb.WriteString("\n")
	sb.WriteString(md("Correct Answers"))
	sb.WriteString("\n\n")

	sb.WriteString(md("🔥 "))
	sb.WriteString(bold(fmt.Sprintf("%d", rec.Current())))
	sb.WriteString("\n")
	sb.WriteString(md(fmt.Sprintf("Day Streak (best %d)", rec.BestOrCurrent())))
	sb.WriteString("\n\n")

	sb.WriteString(md("Next Quiz Tomorrow"))

	if provenance := s.Quiz().Provenance; len(provenance) > 0 {
		sb.WriteString("\n\n")
		sb.WriteString(bold("Artwork Provenance"))
		for i, line := range provenance {
			sb.WriteString("\n")
			if i == len(provenance)-1 {
				sb.WriteString(md("• "))
				sb.WriteString(bold(line))
				continue
			}
			sb.WriteString(md("• " + line))
		}
	}

	return sb.String()
}

// renderStreak renders the /streak reply.
func renderStreak(rec entities.StreakRecord, today entities.Day) string {
	var sb strings.Builder
	sb.WriteString(md("🔥 "))
	sb.WriteString(bold(fmt.Sprintf("%d", rec.Current())))
	sb.WriteString(md(" Day Streak"))
	sb.WriteString("\n")
	sb.WriteString(md(fmt.Sprintf("🏆 Best: %d", rec.BestOrCurrent())))
	sb.WriteString("\n")

	if rec.Date == today {
		sb.WriteString(md("✅ Today's quiz is done. Next Quiz Tomorrow."))
	} else {
		sb.WriteString(md("🎨 Today's quiz is waiting for you: /quiz"))
	}
	return sb.String()
}

// renderAnnouncement renders the daily "quiz is ready" message.
func renderAnnouncement(quiz *entities.Quiz, day entities.Day) string {
	return md("🎨 Today's quiz is ready!") + "\n\n" +
		bold(quiz.Title) + "\n" +
		italic(day.String())
}
