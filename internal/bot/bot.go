package bot

import (
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/JoaquinCortezHub/dr-mike-gym-tracker-bot/clients/ai"
	"github.com/JoaquinCortezHub/dr-mike-gym-tracker-bot/internal/catalog"
	"github.com/JoaquinCortezHub/dr-mike-gym-tracker-bot/internal/config"
	"github.com/JoaquinCortezHub/dr-mike-gym-tracker-bot/internal/gsheets"
	"github.com/JoaquinCortezHub/dr-mike-gym-tracker-bot/internal/overload"
	"github.com/JoaquinCortezHub/dr-mike-gym-tracker-bot/internal/progress"
	"github.com/JoaquinCortezHub/dr-mike-gym-tracker-bot/internal/volume"
)

// Bot wires the Telegram transport to the tracker's services. The sink and
// interpreter may be nil: the bot then degrades to schedule browsing and
// overload adjustments without sheet logging or NLU parsing.
type Bot struct {
	api         *tgbotapi.BotAPI
	config      *config.Config
	catalog     *catalog.Catalog
	store       *progress.Store
	volumes     *volume.Calculator
	flow        *overload.Flow
	sink        *gsheets.Sink
	interpreter *ai.Interpreter
}

// New creates a bot over the given services.
func New(
	api *tgbotapi.BotAPI,
	cfg *config.Config,
	cat *catalog.Catalog,
	store *progress.Store,
	sink *gsheets.Sink,
	interpreter *ai.Interpreter,
) *Bot {
	volumes := volume.NewCalculator(cat, store)
	return &Bot{
		api:         api,
		config:      cfg,
		catalog:     cat,
		store:       store,
		volumes:     volumes,
		flow:        overload.NewFlow(cat, store, volumes),
		sink:        sink,
		interpreter: interpreter,
	}
}

// Start runs the update loop until the updates channel closes.
func (b *Bot) Start() error {
	b.startWeekReminder()

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30
	updates := b.api.GetUpdatesChan(u)

	log.Printf("Bot started as @%s", b.api.Self.UserName)
	b.handleUpdates(updates)
	return nil
}

func (b *Bot) handleUpdates(updates tgbotapi.UpdatesChannel) {
	for update := range updates {
		if update.CallbackQuery != nil {
			b.handleCallback(update.CallbackQuery)
			continue
		}
		if update.Message == nil {
			continue
		}

		if update.Message.IsCommand() {
			b.handleCommand(update.Message)
			continue
		}
		b.handleMessage(update.Message)
	}
}
