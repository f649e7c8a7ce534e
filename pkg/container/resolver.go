package container

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"io"
	"strings"

	"github.com/docker/docker/api/types"
	"github.com/docker/docker/api/types/filters"
	"github.com/sirupsen/logrus"
)

// pullEvent is one JSON line of the daemon's pull progress stream.
type pullEvent struct {
	Status         string `json:"status"`
	ID             string `json:"id"`
	Progress       string `json:"progress"`
	ProgressDetail struct {
		Current int64 `json:"current"`
		Total   int64 `json:"total"`
	} `json:"progressDetail"`
	Error string `json:"error"`
}

// normalizeImageRef appends the latest tag to bare references. References
// that already carry a colon pass through unchanged.
func normalizeImageRef(ref string) string {
	if strings.Contains(ref, ":") {
		return ref
	}
	return ref + ":latest"
}

// ensureImage makes the normalized reference available locally, pulling it
// from the registry when missing, and returns the resolved reference.
func (m *Manager) ensureImage(ctx context.Context, ref string) (string, error) {
	resolved := normalizeImageRef(ref)

	filter := filters.NewArgs(filters.Arg("reference", resolved))
	images, err := m.runtime.ImageList(ctx, types.ImageListOptions{Filters: filter})
	if err != nil {
		return "", &Error{Kind: KindRuntimeUnavailable, Op: "image list", Target: resolved, Err: err}
	}

	if len(images) > 0 {
		m.logger.WithField("image", resolved).Debug("Image lokalde mevcut, pull atlanıyor")
		return resolved, nil
	}

	m.logger.WithField("image", resolved).Info("Image lokalde yok, pull başlatılıyor")

	reader, err := m.runtime.ImagePull(ctx, resolved, types.ImagePullOptions{})
	if err != nil {
		return "", &Error{Kind: KindResolutionFailed, Op: "image pull", Target: resolved, Err: err}
	}
	defer reader.Close()

	// The daemon pulls while the stream is consumed; it must be drained
	// to completion before the image is usable.
	if err := m.drainPullProgress(resolved, reader); err != nil {
		return "", &Error{Kind: KindResolutionFailed, Op: "image pull", Target: resolved, Err: err}
	}

	m.logger.WithField("image", resolved).Info("Image pull tamamlandı")
	return resolved, nil
}

// drainPullProgress consumes the pull progress stream, logging layer
// updates and surfacing any in-stream daemon error.
func (m *Manager) drainPullProgress(ref string, reader io.Reader) error {
	scanner := bufio.NewScanner(reader)
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)

	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}

		var event pullEvent
		if err := json.Unmarshal([]byte(line), &event); err != nil {
			continue
		}

		if event.Error != "" {
			return errors.New(event.Error)
		}

		m.logger.WithFields(logrus.Fields{
			"image":  ref,
			"layer":  event.ID,
			"status": event.Status,
		}).Debug("Pull ilerlemesi")
	}

	return scanner.Err()
}
