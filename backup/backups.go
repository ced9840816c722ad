package backup

import (
	"bytes"
	"changeflow/bizerror"
	"changeflow/client/s3"
	"changeflow/projectfile"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

var (
	CreateBackupFunc = CreateBackup

	// UploadLimiter bounds snapshot uploads to a small burst per instance.
	UploadLimiter = rate.NewLimiter(rate.Every(30*time.Second), 2)

	nowFunc = time.Now
)

type BackupRecord struct {
	Key       string    `json:"key"`
	CreatedAt time.Time `json:"createdAt"`
}

// CreateBackup snapshots the current project document and uploads it to the
// configured bucket. The core hands over a fully-formed document; the upload
// outcome never mutates core state.
func CreateBackup(ctx context.Context) (*BackupRecord, error) {
	if !UploadLimiter.Allow() {
		return nil, bizerror.ErrBackupThrottled
	}

	document := projectfile.ExportProjectFileFunc()
	content, err := json.Marshal(document)
	if err != nil {
		return nil, err
	}

	now := nowFunc().UTC()
	key := fmt.Sprintf("backups/%s-%s.json", keySlug(document.Settings.ProjectName), now.Format("20060102T150405Z"))
	if err := s3.PutObjectFunc(ctx, key, bytes.NewReader(content)); err != nil {
		return nil, &bizerror.ErrExternalIO{Op: "upload backup", Cause: err}
	}
	return &BackupRecord{Key: key, CreatedAt: now}, nil
}

func keySlug(projectName string) string {
	slug := strings.ToLower(strings.TrimSpace(projectName))
	slug = strings.ReplaceAll(slug, " ", "-")
	if slug == "" {
		return "project"
	}
	return slug
}
