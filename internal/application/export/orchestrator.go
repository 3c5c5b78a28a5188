package export

import (
	"context"
	"errors"
	"fmt"

	"github.com/erp/connector/internal/domain/sync"
	"go.uber.org/zap"
)

// ErrNoExporter indicates no exporter is registered for an entity kind.
var ErrNoExporter = errors.New("export: no exporter registered for entity kind")

// Orchestrator sequences export adapters: one entity per call, errors
// interpreted into "retry later" vs "needs intervention". It holds no
// retry loop itself; hosts decide when to call again.
type Orchestrator struct {
	exporters map[sync.EntityKind]EntityExporter
	logger    *zap.Logger
}

// NewOrchestrator creates an empty Orchestrator.
func NewOrchestrator(logger *zap.Logger) *Orchestrator {
	return &Orchestrator{
		exporters: make(map[sync.EntityKind]EntityExporter),
		logger:    logger,
	}
}

// Register binds an exporter to an entity kind.
func (o *Orchestrator) Register(kind sync.EntityKind, exporter EntityExporter) {
	o.exporters[kind] = exporter
}

// Kinds returns the entity kinds with a registered exporter.
func (o *Orchestrator) Kinds() []sync.EntityKind {
	kinds := make([]sync.EntityKind, 0, len(o.exporters))
	for kind := range o.exporters {
		kinds = append(kinds, kind)
	}
	return kinds
}

// Export runs a single export attempt for one entity and logs the outcome.
// The returned error is the adapter's typed failure, untouched, so callers
// can inspect it with sync.KindOf and sync.IsRetryable.
func (o *Orchestrator) Export(ctx context.Context, kind sync.EntityKind, id int64) error {
	exporter, ok := o.exporters[kind]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNoExporter, kind)
	}

	err := exporter.Export(ctx, id)
	if err == nil {
		o.logger.Info("export succeeded",
			zap.String("kind", kind.String()),
			zap.Int64("local_id", id))
		return nil
	}

	if sync.IsRetryable(err) {
		o.logger.Warn("export failed, retryable",
			zap.String("kind", kind.String()),
			zap.Int64("local_id", id),
			zap.Error(err))
	} else {
		o.logger.Error("export failed",
			zap.String("kind", kind.String()),
			zap.Int64("local_id", id),
			zap.String("error_kind", sync.KindOf(err).String()),
			zap.Error(err))
	}
	return err
}
