package email

import (
	"context"
	"fmt"

	"github.com/barbershop/backend/internal/application/adapter"
	"github.com/barbershop/backend/internal/domain/entity"
	domainerror "github.com/barbershop/backend/internal/domain/error"
)

// Service handles email queueing operations.
type Service struct {
	queue adapter.EmailQueueRepository
}

// NewService creates a new email service.
func NewService(queue adapter.EmailQueueRepository) *Service {
	return &Service{
		queue: queue,
	}
}

// QueueReportDigestEmail queues a report digest email and returns the job ID.
func (s *Service) QueueReportDigestEmail(ctx context.Context, input adapter.QueueReportDigestInput) (string, error) {
	subject := fmt.Sprintf("%s report: %s", input.BusinessName, input.PeriodLabel)

	templateData := make(map[string]interface{}, len(input.Data)+3)
	for k, v := range input.Data {
		templateData[k] = v
	}
	templateData["BusinessName"] = input.BusinessName
	templateData["PeriodLabel"] = input.PeriodLabel
	templateData["RecipientName"] = input.RecipientName

	job := entity.NewEmailJob(
		entity.TemplateReportDigest,
		input.RecipientEmail,
		input.RecipientName,
		subject,
		templateData,
	)

	if err := s.queue.Create(ctx, job); err != nil {
		return "", domainerror.NewEmailError(
			domainerror.ErrCodeEmailQueueFailed,
			"failed to queue report digest email",
			err,
		)
	}

	return job.ID.String(), nil
}

// Ensure Service implements adapter.EmailService.
var _ adapter.EmailService = (*Service)(nil)
