package bot

import (
	"fmt"
	"log"

	"github.com/robfig/cron"
)

// startWeekReminder schedules a recurring nudge to every known user asking
// them to confirm or advance their week. The schedule comes from config;
// an empty schedule disables reminders.
func (b *Bot) startWeekReminder() {
	if b.config.WeekReminderCron == "" {
		return
	}

	c := cron.New()
	err := c.AddFunc(b.config.WeekReminderCron, func() {
		b.broadcastWeekReminder()
	})
	if err != nil {
		log.Printf("Failed to schedule week reminder %q: %v", b.config.WeekReminderCron, err)
		return
	}
	c.Start()
	log.Printf("Week reminder scheduled: %s", b.config.WeekReminderCron)
}

func (b *Bot) broadcastWeekReminder() {
	for _, userID := range b.store.AllUserIDs() {
		p := b.store.GetOrCreate(userID)
		text := fmt.Sprintf("🗓 New training week?\n\nYou're on Week %d. If you finished it, run /nextweek to move on.", p.CurrentWeek)
		// Chat IDs equal user IDs for private chats, which is the only
		// place this bot collects users from.
		b.sendMessage(userID, text)
	}
}
