package activity

import (
	"log/slog"
	"time"

	activityDatamodel "github.com/frahmantamala/employee-management/internal/core/datamodel/activity"
)

type Service struct {
	repo   RepositoryAPI
	logger *slog.Logger
}

func NewService(repo RepositoryAPI, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// Record appends an audit entry. The description must already be a
// self-contained snapshot (employee names spelled out, not referenced), so
// the trail stays readable after the employee is deleted.
func (s *Service) Record(actionType, description string) error {
	entry := &activityDatamodel.Entry{
		ActionType:  actionType,
		Description: description,
		Timestamp:   time.Now().Truncate(time.Second),
	}

	if err := s.repo.Create(entry); err != nil {
		s.logger.Error("failed to record activity", "action_type", actionType, "error", err)
		return err
	}

	return nil
}

// RecentActivity returns the newest entries first. A non-positive limit
// falls back to the default feed size.
func (s *Service) RecentActivity(limit int) ([]*Entry, error) {
	if limit <= 0 {
		limit = DefaultFeedLimit
	}

	dataEntries, err := s.repo.GetRecent(limit)
	if err != nil {
		s.logger.Error("failed to get recent activity", "error", err)
		return nil, err
	}

	entries := make([]*Entry, 0, len(dataEntries))
	for _, e := range dataEntries {
		entries = append(entries, FromDataModel(e))
	}

	return entries, nil
}
