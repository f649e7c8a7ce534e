package container

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/docker/docker/api/types"
	"github.com/docker/docker/api/types/container"
	"github.com/sirupsen/logrus"
)

// Find returns the runtime entry whose id or name matches nameOrID. Both
// running and stopped containers are considered. The runtime prefixes
// names with a slash; callers pass the bare name.
func (m *Manager) Find(ctx context.Context, nameOrID string) (*types.Container, error) {
	containers, err := m.runtime.ContainerList(ctx, types.ContainerListOptions{All: true})
	if err != nil {
		return nil, &Error{Kind: KindRuntimeUnavailable, Op: "container list", Err: err}
	}

	for i, c := range containers {
		if c.ID == nameOrID {
			return &containers[i], nil
		}
		for _, name := range c.Names {
			if name == "/"+nameOrID {
				return &containers[i], nil
			}
		}
	}

	return nil, &Error{Kind: KindNotFound, Op: "find", Target: nameOrID}
}

// Status reports the current state of a container by name or id.
func (m *Manager) Status(ctx context.Context, nameOrID string) (*StatusResponse, error) {
	c, err := m.Find(ctx, nameOrID)
	if err != nil {
		return nil, err
	}

	return &StatusResponse{
		ContainerName: c.Names,
		ContainerID:   c.ID,
		State:         c.State,
		Status:        c.Status,
		Image:         c.Image,
	}, nil
}

// List returns every container this service manages, running or stopped.
// Managed containers are recognized by the name prefix.
func (m *Manager) List(ctx context.Context) ([]ManagedContainer, error) {
	containers, err := m.runtime.ContainerList(ctx, types.ContainerListOptions{All: true})
	if err != nil {
		return nil, &Error{Kind: KindRuntimeUnavailable, Op: "container list", Err: err}
	}

	result := make([]ManagedContainer, 0, len(containers))
	for _, c := range containers {
		if !hasManagedName(c.Names) {
			continue
		}
		result = append(result, ManagedContainer{
			ID:     c.ID,
			Image:  c.Image,
			Names:  c.Names,
			State:  c.State,
			Status: c.Status,
		})
	}

	return result, nil
}

func hasManagedName(names []string) bool {
	for _, name := range names {
		if strings.HasPrefix(name, "/"+NamePrefix) {
			return true
		}
	}
	return false
}

// Remove force-deletes a container by name or id. A miss returns a
// not-found error without issuing a removal to the runtime.
func (m *Manager) Remove(ctx context.Context, nameOrID string) error {
	c, err := m.Find(ctx, nameOrID)
	if err != nil {
		return err
	}

	if err := m.runtime.ContainerRemove(ctx, c.ID, types.ContainerRemoveOptions{Force: true}); err != nil {
		return &Error{Kind: KindOperationFailed, Op: "remove", Target: nameOrID, Err: err}
	}

	m.logger.WithFields(logrus.Fields{
		"container_id": c.ID,
		"target":       nameOrID,
	}).Info("Konteyner silindi")

	return nil
}

// Stop gracefully stops a container by name or id.
func (m *Manager) Stop(ctx context.Context, nameOrID string) error {
	c, err := m.Find(ctx, nameOrID)
	if err != nil {
		return err
	}

	timeout := 30
	if err := m.runtime.ContainerStop(ctx, c.ID, container.StopOptions{Timeout: &timeout}); err != nil {
		return &Error{Kind: KindOperationFailed, Op: "stop", Target: nameOrID, Err: err}
	}

	m.logger.WithField("container_id", c.ID).Info("Konteyner durduruldu")
	return nil
}

// Logs returns up to tail lines of a container's stdout and stderr. Tail
// defaults to 100 lines and is capped to keep memory bounded.
func (m *Manager) Logs(ctx context.Context, nameOrID string, tail int) (string, error) {
	const maxTail = 10000
	if tail <= 0 {
		tail = 100
	}
	if tail > maxTail {
		tail = maxTail
	}

	c, err := m.Find(ctx, nameOrID)
	if err != nil {
		return "", err
	}

	options := types.ContainerLogsOptions{
		ShowStdout: true,
		ShowStderr: true,
		Tail:       fmt.Sprintf("%d", tail),
	}

	reader, err := m.runtime.ContainerLogs(ctx, c.ID, options)
	if err != nil {
		return "", &Error{Kind: KindOperationFailed, Op: "logs", Target: nameOrID, Err: err}
	}
	defer reader.Close()

	const maxBufferSize = 10 * 1024 * 1024 // 10MB
	logs, err := io.ReadAll(io.LimitReader(reader, maxBufferSize))
	if err != nil {
		return "", &Error{Kind: KindOperationFailed, Op: "logs", Target: nameOrID, Err: err}
	}

	return string(logs), nil
}

// Stats summarizes the managed container population.
func (m *Manager) Stats(ctx context.Context) (*StatsResponse, error) {
	managed, err := m.List(ctx)
	if err != nil {
		return nil, err
	}

	running := 0
	for _, c := range managed {
		if c.State == "running" {
			running++
		}
	}

	return &StatsResponse{
		TotalContainers:   len(managed),
		RunningContainers: running,
	}, nil
}
