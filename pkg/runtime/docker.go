package runtime

import (
	"context"
	"fmt"
	"io"

	"github.com/docker/docker/api/types"
	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/network"
	"github.com/docker/docker/client"
	v1 "github.com/opencontainers/image-spec/specs-go/v1"
)

// DockerClient implements Client using the Docker SDK.
type DockerClient struct {
	cli client.APIClient
}

// NewDockerClientFrom wraps an existing API client.
func NewDockerClientFrom(cli client.APIClient) *DockerClient {
	return &DockerClient{cli: cli}
}

// NewDockerClient creates a DockerClient from configuration. An empty host
// falls back to the environment (DOCKER_HOST), an empty version enables API
// version negotiation with the daemon.
func NewDockerClient(host, version string) (*DockerClient, error) {
	opts := []client.Opt{client.FromEnv}
	if host != "" {
		opts = append(opts, client.WithHost(host))
	}
	if version != "" {
		opts = append(opts, client.WithVersion(version))
	} else {
		opts = append(opts, client.WithAPIVersionNegotiation())
	}

	cli, err := client.NewClientWithOpts(opts...)
	if err != nil {
		return nil, fmt.Errorf("docker client oluşturulamadı: %w", err)
	}

	return NewDockerClientFrom(cli), nil
}

// Ping checks whether the daemon is reachable and responsive.
func (d *DockerClient) Ping(ctx context.Context) (types.Ping, error) {
	return d.cli.Ping(ctx)
}

// ImageList returns locally present images matching the given options.
func (d *DockerClient) ImageList(ctx context.Context, options types.ImageListOptions) ([]types.ImageSummary, error) {
	return d.cli.ImageList(ctx, options)
}

// ImagePull asks the daemon to pull an image and returns the progress stream.
func (d *DockerClient) ImagePull(ctx context.Context, ref string, options types.ImagePullOptions) (io.ReadCloser, error) {
	return d.cli.ImagePull(ctx, ref, options)
}

// ContainerCreate creates a new container with the given configuration and name.
func (d *DockerClient) ContainerCreate(ctx context.Context, config *container.Config, hostConfig *container.HostConfig, networkingConfig *network.NetworkingConfig, platform *v1.Platform, name string) (container.CreateResponse, error) {
	return d.cli.ContainerCreate(ctx, config, hostConfig, networkingConfig, platform, name)
}

// ContainerStart starts a created container.
func (d *DockerClient) ContainerStart(ctx context.Context, containerID string, options types.ContainerStartOptions) error {
	return d.cli.ContainerStart(ctx, containerID, options)
}

// ContainerStop stops a running container.
func (d *DockerClient) ContainerStop(ctx context.Context, containerID string, options container.StopOptions) error {
	return d.cli.ContainerStop(ctx, containerID, options)
}

// ContainerList returns containers known to the daemon.
func (d *DockerClient) ContainerList(ctx context.Context, options types.ContainerListOptions) ([]types.Container, error) {
	return d.cli.ContainerList(ctx, options)
}

// ContainerRemove removes a container from the daemon.
func (d *DockerClient) ContainerRemove(ctx context.Context, containerID string, options types.ContainerRemoveOptions) error {
	return d.cli.ContainerRemove(ctx, containerID, options)
}

// ContainerLogs returns the log stream of a container.
func (d *DockerClient) ContainerLogs(ctx context.Context, containerID string, options types.ContainerLogsOptions) (io.ReadCloser, error) {
	return d.cli.ContainerLogs(ctx, containerID, options)
}
