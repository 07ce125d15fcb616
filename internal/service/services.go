package service

import (
	"github.com/MKhiriev/tootline/internal/adapter"
	"github.com/MKhiriev/tootline/internal/logger"
	"github.com/MKhiriev/tootline/internal/store"
	"github.com/MKhiriev/tootline/internal/utils"
	"github.com/MKhiriev/tootline/internal/validators"
)

type Services struct {
	TimelineService   TimelineService
	StatusService     StatusService
	MediaService      MediaService
	SuggestionService SuggestionService
	AccountService    AccountService
	SnapshotJob       SnapshotJob
}

// NewServices wires the client services. snapshots and live may be nil.
func NewServices(
	instance adapter.InstanceAdapter,
	snapshots store.SnapshotRepository,
	live LiveChannelFactory,
	pageSize int,
	log *logger.Logger,
) *Services {
	var job SnapshotJob
	if snapshots != nil {
		job = NewSnapshotJob(snapshots, log)
	}

	return &Services{
		TimelineService:   NewTimelineService(instance, snapshots, live, job, pageSize, log),
		StatusService:     NewStatusService(instance, validators.NewStatusRequestValidator(), utils.NewIdempotencyKeys(), log),
		MediaService:      NewMediaService(instance, log),
		SuggestionService: NewSuggestionService(DefaultSuggestionProviders(instance), log),
		AccountService:    NewAccountService(instance),
		SnapshotJob:       job,
	}
}
