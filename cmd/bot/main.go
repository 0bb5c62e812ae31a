package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"

	"github.com/arcadebot/arcadebot/internal/common/clock"
	"github.com/arcadebot/arcadebot/internal/common/uuid"
	"github.com/arcadebot/arcadebot/internal/games"
	"github.com/arcadebot/arcadebot/internal/handlers/discord"
	"github.com/arcadebot/arcadebot/internal/metrics"
	"github.com/arcadebot/arcadebot/internal/random"
	leaderboardRepo "github.com/arcadebot/arcadebot/internal/repositories/leaderboard"
	memoryRepo "github.com/arcadebot/arcadebot/internal/repositories/memory"
	messagesRepo "github.com/arcadebot/arcadebot/internal/repositories/messages"
	pointsRepo "github.com/arcadebot/arcadebot/internal/repositories/points"
	"github.com/arcadebot/arcadebot/internal/services/ai"
	"github.com/arcadebot/arcadebot/internal/services/escalation"
	"github.com/arcadebot/arcadebot/internal/services/leaderboard"
	"github.com/arcadebot/arcadebot/internal/services/messaging"
	"github.com/arcadebot/arcadebot/internal/services/session"
)

func main() {
	// .env is optional, real deployments set the environment directly
	_ = godotenv.Load()

	setupLogging()

	token := os.Getenv("DISCORD_TOKEN")
	if token == "" {
		log.Fatal("DISCORD_TOKEN is required")
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.WithError(err).Fatal("failed to connect to Redis")
	}

	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	lbRepo, err := leaderboardRepo.NewRedis(&leaderboardRepo.Config{RedisClient: redisClient})
	if err != nil {
		log.WithError(err).Fatal("failed to create leaderboard repository")
	}

	ptsRepo, err := pointsRepo.NewRedis(&pointsRepo.Config{RedisClient: redisClient})
	if err != nil {
		log.WithError(err).Fatal("failed to create points repository")
	}

	msgRepo, err := messagesRepo.NewRedis(&messagesRepo.Config{RedisClient: redisClient})
	if err != nil {
		log.WithError(err).Fatal("failed to create messages repository")
	}

	memRepo, err := memoryRepo.NewRedis(&memoryRepo.Config{RedisClient: redisClient})
	if err != nil {
		log.WithError(err).Fatal("failed to create memory repository")
	}

	aiService, err := ai.New(&ai.Config{
		APIKey:         os.Getenv("OPENAI_API_KEY"),
		BaseURL:        os.Getenv("OPENAI_BASE_URL"),
		Model:          getEnv("OPENAI_MODEL", "gpt-4o-mini"),
		EmbeddingModel: getEnv("OPENAI_EMBEDDING_MODEL", "text-embedding-3-small"),
		Metrics:        m,
	})
	if err != nil {
		log.WithError(err).Fatal("failed to create AI service")
	}

	leaderboardService, err := leaderboard.New(&leaderboard.Config{
		LeaderboardRepo: lbRepo,
		PointsRepo:      ptsRepo,
		Clock:           clock.New(),
	})
	if err != nil {
		log.WithError(err).Fatal("failed to create leaderboard service")
	}

	rnd := random.New(&random.Config{})

	factory, err := games.NewFactory(&games.FactoryConfig{
		Random:    rnd,
		AIService: aiService,
	})
	if err != nil {
		log.WithError(err).Fatal("failed to create game factory")
	}

	messagingService, err := messaging.New(&messaging.Config{Random: rnd})
	if err != nil {
		log.WithError(err).Fatal("failed to create messaging service")
	}

	dg, err := discordgo.New("Bot " + token)
	if err != nil {
		log.WithError(err).Fatal("failed to create Discord session")
	}
	dg.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsGuildMessageReactions |
		discordgo.IntentMessageContent

	staffRoles := splitList(os.Getenv("STAFF_ROLES"))

	notifier, err := discord.NewNotifier(&discord.NotifierConfig{
		Session:    dg,
		Messaging:  messagingService,
		StaffRoles: staffRoles,
	})
	if err != nil {
		log.WithError(err).Fatal("failed to create notifier")
	}

	escalationService, err := escalation.New(&escalation.Config{
		LeaderboardChannelID: os.Getenv("LEADERBOARD_CHANNEL_ID"),
		StaffChannelID:       os.Getenv("STAFF_CHANNEL_ID"),
		LeaderboardService:   leaderboardService,
		Notifier:             notifier,
	})
	if err != nil {
		log.WithError(err).Fatal("failed to create escalation service")
	}

	sessionService, err := session.New(&session.Config{
		Factory:            factory,
		LeaderboardService: leaderboardService,
		EscalationService:  escalationService,
		Notifier:           notifier,
		Clock:              clock.New(),
		UUID:               uuid.New(),
		Metrics:            m,
	})
	if err != nil {
		log.WithError(err).Fatal("failed to create session service")
	}

	bot, err := discord.New(&discord.Config{
		ApplicationID:      os.Getenv("DISCORD_APPLICATION_ID"),
		GuildID:            os.Getenv("DISCORD_GUILD_ID"),
		StaffRoles:         staffRoles,
		Session:            dg,
		Notifier:           notifier,
		SessionService:     sessionService,
		LeaderboardService: leaderboardService,
		AIService:          aiService,
		MessagingService:   messagingService,
		MemoryRepo:         memRepo,
		MessagesRepo:       msgRepo,
		Metrics:            m,
	})
	if err != nil {
		log.WithError(err).Fatal("failed to create bot")
	}

	if addr := os.Getenv("METRICS_ADDR"); addr != "" {
		go serveMetrics(addr, reg)
	}

	if err := bot.Start(); err != nil {
		log.WithError(err).Fatal("failed to start bot")
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	log.Info("shutting down")
	if err := bot.Stop(); err != nil {
		log.WithError(err).Error("error during shutdown")
	}
}

func setupLogging() {
	log.SetFormatter(&prefixed.TextFormatter{
		FullTimestamp: true,
	})

	level, err := log.ParseLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)
}

func serveMetrics(addr string, reg *prometheus.Registry) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	log.WithField("addr", addr).Info("serving metrics")
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.WithError(err).Error("metrics server stopped")
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}

	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
