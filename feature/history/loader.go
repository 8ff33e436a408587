package history

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	repo    *Repository
	handler *Handler
	logger  *zap.Logger
}

// NewFeature creates the history feature. A nil db disables it.
func NewFeature(db *gorm.DB, logger *zap.Logger) *Feature {
	if logger == nil {
		logger = zap.NewNop()
	}
	f := &Feature{logger: logger}
	if db != nil {
		f.repo = NewRepository(db)
		f.handler = NewHandler(f.repo, logger)
	}
	return f
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "history"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return f.repo != nil
}

// Load migrates the table and registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	if err := f.repo.Migrate(); err != nil {
		return err
	}
	f.handler.RegisterRoutes(app)
	return nil
}

// Recorder returns a search recorder, or nil when the feature is disabled.
func (f *Feature) Recorder() *Recorder {
	if f.repo == nil {
		return nil
	}
	return NewRecorder(f.repo, f.logger)
}
