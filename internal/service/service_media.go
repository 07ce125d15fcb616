package service

import (
	"context"
	"fmt"

	"github.com/sourcegraph/conc/pool"

	"github.com/MKhiriev/tootline/internal/adapter"
	"github.com/MKhiriev/tootline/internal/logger"
	"github.com/MKhiriev/tootline/internal/validators"
	"github.com/MKhiriev/tootline/models"
)

type mediaService struct {
	adapter adapter.InstanceAdapter
	logger  *logger.Logger
}

func NewMediaService(instance adapter.InstanceAdapter, log *logger.Logger) MediaService {
	if log == nil {
		log = logger.Nop()
	}
	return &mediaService{adapter: instance, logger: log.WithComponent("media")}
}

func (m *mediaService) Upload(ctx context.Context, files ...models.MediaUpload) ([]models.MediaAttachment, error) {
	if len(files) == 0 {
		return nil, ErrNoMediaProvided
	}
	if len(files) > validators.MaxMedia {
		return nil, fmt.Errorf("%w: %d files", validators.ErrTooManyMedia, len(files))
	}

	attachments := make([]models.MediaAttachment, len(files))
	p := pool.New().WithContext(ctx).WithCancelOnError().WithFirstError()
	for i, file := range files {
		p.Go(func(ctx context.Context) error {
			attachment, err := m.adapter.UploadMedia(ctx, file.FileName, file.Reader, file.Description)
			if err != nil {
				return fmt.Errorf("%w: %s: %w", ErrUploadFailed, file.FileName, err)
			}
			attachments[i] = attachment
			return nil
		})
	}
	if err := p.Wait(); err != nil {
		return nil, err
	}

	m.logger.Debug().Int("files", len(files)).Msg("media uploaded")
	return attachments, nil
}
