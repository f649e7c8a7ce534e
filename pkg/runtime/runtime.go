// Package runtime abstracts the Docker Engine API behind a small client
// interface so the container lifecycle logic can be tested without a daemon.
package runtime

import (
	"context"
	"io"

	"github.com/docker/docker/api/types"
	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/network"
	v1 "github.com/opencontainers/image-spec/specs-go/v1"
)

// Client is the set of daemon operations iskele depends on.
// Production code uses DockerClient; tests use Mock.
type Client interface {
	// Ping checks whether the daemon is reachable and responsive.
	Ping(ctx context.Context) (types.Ping, error)

	// ImageList returns locally present images matching the given options.
	ImageList(ctx context.Context, options types.ImageListOptions) ([]types.ImageSummary, error)

	// ImagePull asks the daemon to pull an image from its registry and
	// returns the progress stream. The stream must be read to completion.
	ImagePull(ctx context.Context, ref string, options types.ImagePullOptions) (io.ReadCloser, error)

	// ContainerCreate creates a new container with the given configuration and name.
	ContainerCreate(ctx context.Context, config *container.Config, hostConfig *container.HostConfig, networkingConfig *network.NetworkingConfig, platform *v1.Platform, name string) (container.CreateResponse, error)

	// ContainerStart starts a created container.
	ContainerStart(ctx context.Context, containerID string, options types.ContainerStartOptions) error

	// ContainerStop stops a running container.
	ContainerStop(ctx context.Context, containerID string, options container.StopOptions) error

	// ContainerList returns containers known to the daemon.
	ContainerList(ctx context.Context, options types.ContainerListOptions) ([]types.Container, error)

	// ContainerRemove removes a container from the daemon.
	ContainerRemove(ctx context.Context, containerID string, options types.ContainerRemoveOptions) error

	// ContainerLogs returns the log stream of a container.
	ContainerLogs(ctx context.Context, containerID string, options types.ContainerLogsOptions) (io.ReadCloser, error)
}
