package bootstrap

import (
	"log"

	"text-annotation-be/internal/config"
	"text-annotation-be/internal/constant"
	"text-annotation-be/internal/entity"
	"text-annotation-be/internal/pkg/logger"
	"text-annotation-be/internal/repository/memory"
	"text-annotation-be/internal/repository/unitofwork"
	"text-annotation-be/internal/service"
	"text-annotation-be/internal/service/strategy"
	pktNats "text-annotation-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

type Container struct {
	// Core services
	ActiveLearningService service.IActiveLearningService
	LearningRecordService service.ILearningRecordService
	SchemaService         service.ISchemaService

	// Prediction ingress: recommenders push batches here.
	PredictionStore *memory.PredictionStore

	// Background services (exposed for main.go to run)
	EventBridgeService service.IEventBridgeService
	EventLogService    *service.EventLogService

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// NATS
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}
	natsSub, err := pktNats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Subscriber: %v", err)
	}

	// 3. In-memory state
	sessionRepo := memory.NewALSessionRepository(cfg.ActiveLearning.SessionTTL)
	predictionStore := memory.NewPredictionStore(entity.Preferences{
		ScoreThreshold: cfg.ActiveLearning.ScoreThreshold,
		MaxSuggestions: cfg.ActiveLearning.MaxSuggestions,
	})

	// 4. Services
	strategies := strategy.NewRegistry(cfg.ActiveLearning.DefaultStrategy)

	schemaService := service.NewSchemaService(uowFactory, service.DefaultAdapters())
	learningRecordService := service.NewLearningRecordService(uowFactory, sysLogger)
	eventPublisher := service.NewDecisionEventPublisher(pubSub)

	activeLearningService := service.NewActiveLearningService(
		uowFactory,
		predictionStore,
		learningRecordService,
		schemaService,
		service.NewInMemoryAnnotationStorage(),
		service.NewPrimitiveFeatureSupport(),
		eventPublisher,
		strategies,
		sessionRepo,
		sysLogger,
	)

	eventBridgeService := service.NewEventBridgeService(pubSub, constant.DecisionEventsTopic, natsPub, sysLogger)
	eventLogService := service.NewEventLogService(uowFactory, natsSub, sysLogger)

	return &Container{
		ActiveLearningService: activeLearningService,
		LearningRecordService: learningRecordService,
		SchemaService:         schemaService,
		PredictionStore:       predictionStore,
		EventBridgeService:    eventBridgeService,
		EventLogService:       eventLogService,
		Logger:                sysLogger,
	}
}
