package main

import (
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/JoaquinCortezHub/dr-mike-gym-tracker-bot/clients/ai"
	"github.com/JoaquinCortezHub/dr-mike-gym-tracker-bot/internal/bot"
	"github.com/JoaquinCortezHub/dr-mike-gym-tracker-bot/internal/catalog"
	"github.com/JoaquinCortezHub/dr-mike-gym-tracker-bot/internal/config"
	"github.com/JoaquinCortezHub/dr-mike-gym-tracker-bot/internal/gsheets"
	"github.com/JoaquinCortezHub/dr-mike-gym-tracker-bot/internal/progress"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	cat, err := catalog.Load(cfg.ExercisesCSVPath)
	if err != nil {
		log.Fatalf("Failed to load exercise catalog from %s: %v", cfg.ExercisesCSVPath, err)
	}
	log.Printf("Loaded %d exercises from %s", cat.Len(), cfg.ExercisesCSVPath)

	store := progress.NewStore(cfg.UserStatePath)

	// Sheets and Groq are optional: without them the bot still serves
	// schedules and overload adjustments.
	var sink *gsheets.Sink
	if cfg.SheetsConfigured() {
		client, err := gsheets.NewClient(cfg.GoogleCredentialsPath, cfg.SpreadsheetID, cfg.SheetName)
		if err != nil {
			log.Printf("Google Sheets unavailable, logging disabled: %v", err)
		} else {
			sink = gsheets.NewSink(client)
		}
	} else {
		log.Println("SPREADSHEET_ID not set, workout logging disabled")
	}

	var interpreter *ai.Interpreter
	if cfg.GroqAPIKey != "" {
		client := ai.NewClient(cfg.GroqAPIKey)
		if cfg.GroqModel != "" {
			client.SetModel(cfg.GroqModel)
		}
		interpreter = ai.NewInterpreter(client)
	} else {
		log.Println("GROQ_API_KEY not set, natural-language parsing disabled")
	}

	api, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		log.Fatalf("Failed to connect to Telegram: %v", err)
	}

	b := bot.New(api, cfg, cat, store, sink, interpreter)
	if err := b.Start(); err != nil {
		log.Fatal(err)
	}
}
