package entity

import (
	"errors"
	"testing"
	"time"
)

func TestEmailJob_MarkFailed(t *testing.T) {
	t.Run("temporary failure reschedules", func(t *testing.T) {
		job := NewEmailJob(TemplateReportDigest, "owner@example.com", "Owner", "Report", nil)

		job.MarkFailed(errors.New("timeout"), false)

		if job.Status != EmailStatusPending {
			t.Errorf("expected status pending, got %s", job.Status)
		}
		if job.Attempts != 1 {
			t.Errorf("expected 1 attempt, got %d", job.Attempts)
		}
		if job.ScheduledAt.Before(time.Now().UTC().Add(50 * time.Second)) {
			t.Errorf("expected retry about a minute out, got %s", job.ScheduledAt)
		}
		if job.LastError != "timeout" {
			t.Errorf("expected last error to be recorded, got %q", job.LastError)
		}
	})

	t.Run("permanent failure stops", func(t *testing.T) {
		job := NewEmailJob(TemplateReportDigest, "owner@example.com", "Owner", "Report", nil)

		job.MarkFailed(errors.New("invalid recipient"), true)

		if job.Status != EmailStatusFailed {
			t.Errorf("expected status failed, got %s", job.Status)
		}
		if job.ProcessedAt == nil {
			t.Error("expected processed time to be set")
		}
	})

	t.Run("exhausted attempts stop", func(t *testing.T) {
		job := NewEmailJob(TemplateReportDigest, "owner@example.com", "Owner", "Report", nil)

		for i := 0; i < DefaultEmailMaxAttempts; i++ {
			job.MarkFailed(errors.New("timeout"), false)
		}

		if job.Status != EmailStatusFailed {
			t.Errorf("expected status failed, got %s", job.Status)
		}
		if job.CanRetry() {
			t.Error("expected no retries left")
		}
	})
}

func TestEmailJob_IsReadyToProcess(t *testing.T) {
	job := NewEmailJob(TemplateReportDigest, "owner@example.com", "Owner", "Report", nil)
	if !job.IsReadyToProcess() {
		t.Error("expected new job to be ready")
	}

	job.ScheduledAt = time.Now().UTC().Add(time.Hour)
	if job.IsReadyToProcess() {
		t.Error("expected future job not to be ready")
	}

	job.ScheduledAt = time.Now().UTC()
	job.MarkSent("re_123")
	if job.IsReadyToProcess() {
		t.Error("expected sent job not to be ready")
	}
}
