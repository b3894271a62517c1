// cmd/lyra/main.go
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sqweek/dialog"

	"lyra/pkg/actions"
	"lyra/pkg/assistant"
	"lyra/pkg/config"
	"lyra/pkg/database"
	"lyra/pkg/history"
	"lyra/pkg/llm"
	"lyra/pkg/logging"
	"lyra/pkg/models"
	"lyra/pkg/notifications"
	"lyra/pkg/sentiment"
	"lyra/pkg/server"
	"lyra/pkg/speech"
	"lyra/pkg/voice"
)

func main() {
	debugFlag := flag.Bool("debug", false, "Set to true to enable debug mode")
	profileFlag := flag.String("profile", "", "Profile name to load")
	audioFlag := flag.String("audio", "", "Answer a single WAV file and exit")
	pickFlag := flag.Bool("pick", false, "Pick a WAV file with a dialog, answer it and exit")
	flag.Parse()

	if err := godotenv.Load(); err == nil {
		log.Println("CONFIG: loaded .env")
	}

	appConfig := config.Init(*profileFlag, *debugFlag)
	logging.SetupLogger(&appConfig)

	log.Println("--- Starting Lyra ---")
	log.Printf("PROFILE: %s (user %s)", appConfig.ProfileName, appConfig.Username)
	if appConfig.DEBUG {
		log.Println("!!!!!!!!!! RUNNING IN DEBUG MODE !!!!!!!!!!")
	}

	db, err := database.Open(appConfig.DatabaseFile)
	if err != nil {
		log.Fatalf("Failed to open turn database: %v", err)
	}
	defer db.Close()

	tempAudioDir := config.TempAudioPath()
	notifier := notifications.NewDesktopNotifier()
	actionAdapter := actions.NewAdapter(notifier, config.GetUserConfigPath())

	var classifier sentiment.Classifier = sentiment.NewLexiconClassifier()
	if appConfig.SentimentEngine == "ollama" {
		adapter, err := llm.NewAdapter(appConfig.LLMModel)
		if err != nil {
			log.Printf("SENTIMENT: %v, falling back to lexicon", err)
		} else {
			classifier = sentiment.NewLLMClassifier(adapter)
		}
	}

	var speaker speech.Synthesizer
	if appConfig.TTSEnabled {
		speaker, err = speech.NewSynthesizer(&appConfig, tempAudioDir)
		if err != nil {
			log.Printf("TTS: %v, speech output disabled", err)
		}
	}

	var stt assistant.SpeechToText
	transcriber, err := voice.NewTranscriber(appConfig.WhisperModelPath)
	if err != nil {
		log.Printf("STT: whisper unavailable (%v), audio input disabled", err)
		transcriber = nil
	} else {
		defer transcriber.Close()
		stt = transcriber
	}

	engine := assistant.New(assistant.Dependencies{
		Config:      &appConfig,
		Transcriber: stt,
		Sentiment:   classifier,
		Speaker:     speaker,
		Actions:     actionAdapter,
		History:     history.New(history.DefaultLimit),
		Store:       db,
	})

	audioPath := *audioFlag
	if *pickFlag {
		audioPath, err = dialog.File().Filter("WAV audio", "wav").Title("Choose a recording").Load()
		if err != nil {
			log.Fatalf("No file chosen: %v", err)
		}
	}
	if audioPath != "" {
		turn := engine.RespondToAudio(audioPath, appConfig.Language)
		fmt.Printf("[%s/%s] %s\n", turn.Intent, turn.Sentiment, turn.Reply)
		return
	}

	go server.StartServer(engine, &appConfig)

	if appConfig.ListenerEnabled {
		if transcriber == nil {
			log.Println("LISTENER: disabled, no speech-to-text available")
		} else {
			listener, err := voice.NewListener(&appConfig, transcriber, tempAudioDir)
			if err != nil {
				log.Printf("LISTENER: failed to start: %v", err)
			} else {
				defer listener.Close()
				go listener.ListenContinuously(func(wavPath string) {
					turn := engine.RespondToAudio(wavPath, appConfig.Language)
					if turn.Intent != models.IntentSilence {
						fmt.Printf("\nlyra> %s\nyou> ", turn.Reply)
					}
					os.Remove(wavPath)
				})
			}
		}
	}

	greeting := assistant.StartupGreeting(startupLanguage(appConfig.Language))
	fmt.Println("lyra> " + greeting)
	if speaker != nil {
		if err := speaker.Speak(greeting, startupLanguage(appConfig.Language)); err != nil {
			log.Printf("TTS: startup greeting failed: %v", err)
		}
	}

	scanner := bufio.NewScanner(os.Stdin)
	fmt.Print("you> ")
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "exit" || line == "quit" {
			break
		}
		turn := engine.RespondToText(line, appConfig.Language)
		if turn.Intent == models.IntentSilence {
			fmt.Println("lyra> (didn't catch that)")
		} else {
			fmt.Println("lyra> " + turn.Reply)
		}
		fmt.Print("you> ")
	}
	log.Println("--- Lyra stopped ---")
}

func startupLanguage(configured string) string {
	if configured == "" || configured == "auto" {
		return "en"
	}
	return configured
}
