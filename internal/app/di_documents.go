package app

import (
	"fmt"

	"github.com/gin-gonic/gin"

	detectionService "github.com/PrakritiSharma17/pii-guardian-pro-67/internal/detection/service"
	documentsHTTP "github.com/PrakritiSharma17/pii-guardian-pro-67/internal/documents/http"
	documentsUseCase "github.com/PrakritiSharma17/pii-guardian-pro-67/internal/documents/usecase"
	"github.com/PrakritiSharma17/pii-guardian-pro-67/internal/http"
	keysHTTP "github.com/PrakritiSharma17/pii-guardian-pro-67/internal/keys/http"
	keysUseCase "github.com/PrakritiSharma17/pii-guardian-pro-67/internal/keys/usecase"
	"github.com/PrakritiSharma17/pii-guardian-pro-67/internal/metrics"
	pipelineUseCase "github.com/PrakritiSharma17/pii-guardian-pro-67/internal/pipeline/usecase"
)

// Pipeline returns the document processing pipeline.
func (c *Container) Pipeline() *pipelineUseCase.PipelineUsecase {
	c.pipelineInit.Do(func() {
		registry := detectionService.NewRegistry()
		c.pipeline = pipelineUseCase.NewPipelineUsecase(
			detectionService.NewDetector(registry),
			detectionService.NewRiskScorer(),
			c.KeyManager(),
			c.TokenCipher(),
		)
	})
	return c.pipeline
}

// initDocumentUseCase creates the document use case with all its dependencies.
func (c *Container) initDocumentUseCase() (documentsUseCase.DocumentUseCase, error) {
	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for document use case: %w", err)
	}

	documentRepo, err := c.DocumentRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get document repository for document use case: %w", err)
	}

	keyRepo, err := c.KeyRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get key repository for document use case: %w", err)
	}

	auditRepo, err := c.AuditRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get audit repository for document use case: %w", err)
	}

	keyWrapper, err := c.KeyWrapper()
	if err != nil {
		return nil, fmt.Errorf("failed to get key wrapper for document use case: %w", err)
	}

	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for document use case: %w", err)
	}

	useCase := documentsUseCase.NewDocumentUseCase(
		txManager,
		documentRepo,
		keyRepo,
		auditRepo,
		c.Pipeline(),
		c.KeyManager(),
		keyWrapper,
	)

	return documentsUseCase.NewDocumentUseCaseWithMetrics(useCase, businessMetrics), nil
}

// initKeyUseCase creates the key use case with all its dependencies.
func (c *Container) initKeyUseCase() (keysUseCase.KeyUseCase, error) {
	keyRepo, err := c.KeyRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get key repository for key use case: %w", err)
	}

	auditRepo, err := c.AuditRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get audit repository for key use case: %w", err)
	}

	keyWrapper, err := c.KeyWrapper()
	if err != nil {
		return nil, fmt.Errorf("failed to get key wrapper for key use case: %w", err)
	}

	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for key use case: %w", err)
	}

	useCase := keysUseCase.NewKeyUseCase(keyRepo, auditRepo, c.KeyManager(), keyWrapper)

	return keysUseCase.NewKeyUseCaseWithMetrics(useCase, businessMetrics), nil
}

// initRouter builds the API router with handlers and middleware.
func (c *Container) initRouter() (*gin.Engine, error) {
	logger := c.Logger()

	documentUseCase, err := c.DocumentUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get document use case for router: %w", err)
	}

	keyUseCase, err := c.KeyUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get key use case for router: %w", err)
	}

	var metricsMiddleware gin.HandlerFunc
	provider, err := c.MetricsProvider()
	if err != nil {
		return nil, fmt.Errorf("failed to get metrics provider for router: %w", err)
	}
	if provider != nil {
		metricsMiddleware = metrics.HTTPMetricsMiddleware(
			provider.MeterProvider(), c.config.MetricsNamespace,
		)
	}

	return http.NewRouter(
		documentsHTTP.NewDocumentHandler(documentUseCase, logger),
		keysHTTP.NewKeyHandler(keyUseCase, logger),
		http.RouterConfig{
			Logger:            logger,
			RateLimitEnabled:  c.config.RateLimitEnabled,
			RateLimitRPS:      c.config.RateLimitRequestsPerSec,
			RateLimitBurst:    c.config.RateLimitBurst,
			CORSEnabled:       c.config.CORSEnabled,
			CORSAllowOrigins:  c.config.CORSAllowOrigins,
			MetricsMiddleware: metricsMiddleware,
		},
	), nil
}
