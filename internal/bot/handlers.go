package bot

import (
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/JoaquinCortezHub/dr-mike-gym-tracker-bot/internal/models"
	"github.com/JoaquinCortezHub/dr-mike-gym-tracker-bot/internal/shorthand"
)

const (
	commandStart    = "start"
	commandHelp     = "help"
	commandSetDay   = "setday"
	commandSetWeek  = "setweek"
	commandStatus   = "status"
	commandToday    = "today"
	commandWeek     = "week"
	commandSchedule = "schedule"
	commandNextWeek = "nextweek"
	commandOverload = "overload"
	commandHistory  = "history"
	commandReset    = "reset"
)

func (b *Bot) handleCommand(message *tgbotapi.Message) {
	switch message.Command() {
	case commandStart:
		b.handleStart(message)
	case commandHelp:
		b.handleHelp(message)
	case commandSetDay:
		b.handleSetDay(message)
	case commandSetWeek:
		b.handleSetWeek(message)
	case commandStatus:
		b.handleStatus(message)
	case commandToday:
		b.handleToday(message)
	case commandWeek:
		b.handleWeek(message)
	case commandSchedule:
		b.handleSchedule(message)
	case commandNextWeek:
		b.handleNextWeek(message)
	case commandOverload:
		b.handleOverload(message)
	case commandHistory:
		b.handleHistory(message)
	case commandReset:
		b.handleReset(message)
	default:
		b.sendMessage(message.Chat.ID, "Unknown command. Try /help.")
	}
}

func (b *Bot) handleStart(message *tgbotapi.Message) {
	b.store.GetOrCreate(message.From.ID)

	welcome := `🏋️ Welcome to Dr. Mike's Gym Tracker! 💪

I'm your workout tracking assistant. I'll help you log your exercises, track progress, and follow your progressive overload plan.

Getting started:
1. Set your current week: /setweek
2. Set your workout day: /setday
3. Start logging exercises by telling me what you did!

Available commands:
/help - Show all commands
/status - See your current week and day
/today - Today's workout schedule
/week - This week's progress
/schedule - View workout schedule for any day
/overload - Adjust your weekly sets per muscle
/nextweek - Move to next week

Ready to crush some sets? Let's go! 🔥`
	b.sendMessage(message.Chat.ID, welcome)
}

func (b *Bot) handleHelp(message *tgbotapi.Message) {
	help := `Gym Tracker commands:

📅 Setup:
/setweek - Set your current week (1-6)
/setday - Set your workout day (1-4)
/status - View your current week and day
/reset - Start over with a fresh record

📝 Logging:
Just message me what you did! Examples:
- "3 sets of 10 reps bench press at 60kg"
- "BP 3x10 @ 60kg"
- "Just finished 3 sets of pull-ups"

📊 Progress:
/today - See today's workout schedule
/week - View this week's progress
/schedule <day> - View schedule for any day
/history <exercise> - One exercise across all weeks
/nextweek - Move to the next week

💪 Overload:
/overload - Browse muscles and adjust weekly sets

💡 Tips:
- I understand natural language!
- I know Spanish and English exercise names
- Tell me sets, reps, and weight, and I'll log it`
	b.sendMessage(message.Chat.ID, help)
}

func (b *Bot) handleSetDay(message *tgbotapi.Message) {
	chatID := message.Chat.ID

	args := strings.TrimSpace(message.CommandArguments())
	if args == "" {
		keyboard := tgbotapi.NewOneTimeReplyKeyboard(
			tgbotapi.NewKeyboardButtonRow(
				tgbotapi.NewKeyboardButton("1"),
				tgbotapi.NewKeyboardButton("2"),
				tgbotapi.NewKeyboardButton("3"),
				tgbotapi.NewKeyboardButton("4"),
			),
		)
		keyboard.ResizeKeyboard = true
		b.sendMessageWithKeyboard(chatID, "Which day are you training? (1-4)", keyboard)
		return
	}

	day, err := parseDayArg(args)
	if err != nil {
		b.sendMessage(chatID, err.Error())
		return
	}
	b.applyDaySelection(chatID, message.From.ID, day)
}

// applyDaySelection stores the day and answers with that day's schedule.
func (b *Bot) applyDaySelection(chatID, userID int64, day int) {
	if err := b.store.SetCurrentDay(userID, day); err != nil {
		b.sendError(chatID, "Saved for this session, but persisting your day failed.", err)
	}
	b.sendMessage(chatID, fmt.Sprintf("✅ Set to Day %d\n\n%s", day, b.catalog.DaySummary(day)))
}

func (b *Bot) handleSetWeek(message *tgbotapi.Message) {
	chatID := message.Chat.ID

	args := strings.TrimSpace(message.CommandArguments())
	if args == "" {
		keyboard := tgbotapi.NewOneTimeReplyKeyboard(
			tgbotapi.NewKeyboardButtonRow(
				tgbotapi.NewKeyboardButton("1"),
				tgbotapi.NewKeyboardButton("2"),
				tgbotapi.NewKeyboardButton("3"),
			),
			tgbotapi.NewKeyboardButtonRow(
				tgbotapi.NewKeyboardButton("4"),
				tgbotapi.NewKeyboardButton("5"),
				tgbotapi.NewKeyboardButton("6"),
			),
		)
		keyboard.ResizeKeyboard = true
		b.sendMessageWithKeyboard(chatID, "Which week are you in? (1-6)", keyboard)
		return
	}

	week, err := parseWeekArg(args)
	if err != nil {
		b.sendMessage(chatID, err.Error())
		return
	}

	if err := b.store.SetCurrentWeek(message.From.ID, week); err != nil {
		b.sendError(chatID, "Saved for this session, but persisting your week failed.", err)
	}
	b.sendMessage(chatID, fmt.Sprintf("✅ Set to Week %d", week))
}

func (b *Bot) handleStatus(message *tgbotapi.Message) {
	p := b.store.GetOrCreate(message.From.ID)

	day := "Not set"
	if p.CurrentDay != nil {
		day = strconv.Itoa(*p.CurrentDay)
	}
	b.sendMessage(message.Chat.ID, fmt.Sprintf(
		"Your current status:\n\n📅 Week: %d/6\n🏋️ Day: %s",
		p.CurrentWeek, day,
	))
}

func (b *Bot) handleToday(message *tgbotapi.Message) {
	p := b.store.GetOrCreate(message.From.ID)
	if p.CurrentDay == nil {
		b.sendMessage(message.Chat.ID, "Please set your workout day first with /setday")
		return
	}
	b.sendMessage(message.Chat.ID, b.catalog.DaySummary(*p.CurrentDay))
}

func (b *Bot) handleWeek(message *tgbotapi.Message) {
	chatID := message.Chat.ID
	if b.sink == nil {
		b.sendMessage(chatID, "Google Sheets is not connected, so there is no logged progress to show.")
		return
	}

	p := b.store.GetOrCreate(message.From.ID)

	var sb strings.Builder
	fmt.Fprintf(&sb, "Week %d summary:\n", p.CurrentWeek)
	for day := 1; day <= 4; day++ {
		progress, err := b.sink.DayProgress(day, p.CurrentWeek)
		if err != nil {
			fmt.Fprintf(&sb, "\nDay %d: error loading progress\n", day)
			continue
		}
		sb.WriteString("\n")
		sb.WriteString(progress)
	}
	b.sendMessage(chatID, sb.String())
}

func (b *Bot) handleSchedule(message *tgbotapi.Message) {
	chatID := message.Chat.ID

	args := strings.TrimSpace(message.CommandArguments())
	if args == "" {
		b.sendMessage(chatID, "Usage: /schedule <day_number>\nExample: /schedule 1")
		return
	}

	day, err := parseDayArg(args)
	if err != nil {
		b.sendMessage(chatID, err.Error())
		return
	}
	b.sendMessage(chatID, b.catalog.DaySummary(day))
}

func (b *Bot) handleNextWeek(message *tgbotapi.Message) {
	chatID := message.Chat.ID

	week, err := b.store.IncrementWeek(message.From.ID)
	if err != nil {
		b.sendError(chatID, "Moved for this session, but persisting your week failed.", err)
	}
	b.sendMessage(chatID, fmt.Sprintf("🎉 Moved to Week %d!\n\nKeep crushing it! 💪", week))
}

func (b *Bot) handleOverload(message *tgbotapi.Message) {
	b.stepOverload(message.Chat.ID, 0, message.From.ID, overloadMenuAction())
}

func (b *Bot) handleHistory(message *tgbotapi.Message) {
	chatID := message.Chat.ID
	if b.sink == nil {
		b.sendMessage(chatID, "Google Sheets is not connected, so there is no history to show.")
		return
	}

	query := strings.TrimSpace(message.CommandArguments())
	if query == "" {
		b.sendMessage(chatID, "Usage: /history <exercise>\nExample: /history press banca")
		return
	}

	ex, ok := b.catalog.FindExercise(query)
	if !ok {
		b.sendMessage(chatID, fmt.Sprintf("❌ I don't know %q. Try /schedule to see exercise names.", query))
		return
	}

	history, err := b.sink.ExerciseHistory(ex.Name, ex.Day)
	if err != nil {
		b.sendError(chatID, "Could not read the sheet. Try again later.", err)
		return
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "📈 %s (Day %d):\n\n", ex.Name, ex.Day)
	for _, rec := range history {
		series := rec.Series
		if series == "" {
			series = "Not logged"
		}
		weightStr := ""
		if rec.Weight != "" {
			weightStr = fmt.Sprintf(" @ %skg", rec.Weight)
		}
		fmt.Fprintf(&sb, "Week %d: %s%s\n", rec.Week, series, weightStr)
		if rec.Notes != "" {
			fmt.Fprintf(&sb, "  📝 %s\n", rec.Notes)
		}
	}
	b.sendMessage(chatID, sb.String())
}

func (b *Bot) handleReset(message *tgbotapi.Message) {
	chatID := message.Chat.ID

	if err := b.store.Reset(message.From.ID); err != nil {
		b.sendError(chatID, "Reset for this session, but persisting it failed.", err)
	}
	b.sendMessage(chatID, "🔄 Your record was reset: week 1, no day, no custom sets.")
}

// handleMessage handles freeform text: bare digits select a day (the reply
// keyboards from /setday send those), everything else is a workout to log.
func (b *Bot) handleMessage(message *tgbotapi.Message) {
	chatID := message.Chat.ID
	userID := message.From.ID
	text := strings.TrimSpace(message.Text)

	if day, err := strconv.Atoi(text); err == nil && day >= 1 && day <= 6 {
		if day <= 4 {
			b.applyDaySelection(chatID, userID, day)
		} else {
			b.sendMessage(chatID, "Please choose a day between 1 and 4, or /setweek for weeks.")
		}
		return
	}

	p := b.store.GetOrCreate(userID)
	if p.CurrentDay == nil {
		b.sendMessage(chatID, "⚠️ Please set your workout day first with /setday")
		return
	}

	b.logFreeTextWorkout(chatID, userID, text, p.CurrentWeek, *p.CurrentDay)
}

func (b *Bot) logFreeTextWorkout(chatID, userID int64, text string, week, day int) {
	if b.sink == nil {
		b.sendMessage(chatID, "Google Sheets is not connected, so I can't log workouts right now.")
		return
	}

	// Shorthand lines like "Press banca 3x10x60" are logged straight away;
	// everything else goes through the language model.
	if quick, ok := shorthand.Parse(text); ok {
		if ex, found := b.catalog.FindExercise(quick.Name); found {
			b.logEntry(chatID, models.WorkoutEntry{
				ExerciseName: ex.Name,
				Week:         week,
				Day:          ex.Day,
				Sets:         quick.Sets,
				Reps:         quick.Reps,
				Weight:       quick.Weight,
			})
			return
		}
	}

	if b.interpreter == nil {
		b.sendMessage(chatID, "I couldn't match that to an exercise. Try shorthand like 'Press banca 3x10x60', "+
			"or set GROQ_API_KEY to enable natural-language logging.")
		return
	}

	b.sendMessage(chatID, "🤔 Processing your workout...")

	known := make([]string, 0)
	for _, ex := range b.catalog.ExercisesForDay(day) {
		known = append(known, ex.Name)
	}

	parsed, err := b.interpreter.ParseWorkout(text, day, known)
	if err != nil {
		b.sendError(chatID, "❌ The workout parser is unavailable right now. Try again in a minute.", err)
		return
	}

	var ex *models.Exercise
	if parsed.Found {
		ex, _ = b.catalog.FindExercise(parsed.ExerciseName)
	}
	if ex == nil {
		b.sendMessage(chatID, "❌ I couldn't understand that exercise. Try being more specific!\n\n"+
			"Examples:\n- '3 sets of 10 reps bench press'\n- 'Bench press 3x10 @ 60kg'")
		return
	}

	b.logEntry(chatID, models.WorkoutEntry{
		ExerciseName: ex.Name,
		Week:         week,
		Day:          ex.Day,
		Sets:         parsed.Sets,
		Reps:         parsed.Reps,
		Weight:       parsed.Weight,
	})
}

func (b *Bot) logEntry(chatID int64, entry models.WorkoutEntry) {
	if err := b.sink.LogWorkout(entry); err != nil {
		b.sendError(chatID, fmt.Sprintf("❌ Failed to log workout: %v", err), err)
		return
	}

	confirmation := fmt.Sprintf("✅ Logged: %s", entry)
	if b.interpreter != nil {
		confirmation += "\n\n" + b.interpreter.Encourage(entry)
	}
	b.sendMessage(chatID, confirmation)
}
