package storage

import (
	"context"

	"alkhair/internal/metrics"
	"alkhair/pkg/types"

	"github.com/sirupsen/logrus"
)

// Mirror saves to a primary backend and copies every save to secondary
// backends. Only the primary is read, and only its errors are returned; a
// failed copy is logged and counted.
type Mirror struct {
	primary Backend
	mirrors map[string]Backend
	order   []string
	logger  logrus.FieldLogger
}

func NewMirror(primary Backend, logger logrus.FieldLogger) *Mirror {
	return &Mirror{
		primary: primary,
		mirrors: make(map[string]Backend),
		logger:  logger,
	}
}

// Add registers a named copy. Names label the failure metric.
func (m *Mirror) Add(name string, backend Backend) *Mirror {
	if _, ok := m.mirrors[name]; !ok {
		m.order = append(m.order, name)
	}
	m.mirrors[name] = backend
	return m
}

func (m *Mirror) Load(ctx context.Context) (*types.AppData, error) {
	return m.primary.Load(ctx)
}

// Save writes the copies even when the primary fails.
func (m *Mirror) Save(ctx context.Context, data *types.AppData) error {
	err := m.primary.Save(ctx, data)

	for _, name := range m.order {
		if mErr := m.mirrors[name].Save(ctx, data); mErr != nil {
			metrics.MirrorFailures.WithLabelValues(name).Inc()
			m.logger.WithError(mErr).WithField("mirror", name).Warn("failed to copy office data")
		}
	}

	return err
}
