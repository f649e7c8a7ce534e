package runtime

import (
	"context"
	"io"

	"github.com/docker/docker/api/types"
	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/network"
	v1 "github.com/opencontainers/image-spec/specs-go/v1"
)

// Mock is a test double for Client. Responses are canned per field and
// every call is recorded so tests can assert on counts and arguments.
type Mock struct {
	PingResp types.Ping
	PingErr  error

	ImageListResp []types.ImageSummary
	ImageListErr  error
	ImageListOpts []types.ImageListOptions

	ImagePullReader io.ReadCloser
	ImagePullErr    error
	PullCalls       int
	PullRefs        []string

	CreateResp        container.CreateResponse
	CreateErr         error
	CreateCalls       int
	CreateNames       []string
	CreateConfigs     []*container.Config
	CreateHostConfigs []*container.HostConfig

	StartErr   error
	StartCalls int
	StartIDs   []string

	StopErr   error
	StopCalls int
	StopIDs   []string
	StopOpts  []container.StopOptions

	ListResp  []types.Container
	ListErr   error
	ListCalls int

	RemoveErr   error
	RemoveCalls int
	RemovedIDs  []string
	RemoveOpts  []types.ContainerRemoveOptions

	LogsReader io.ReadCloser
	LogsErr    error
	LogsIDs    []string
	LogsOpts   []types.ContainerLogsOptions
}

func (m *Mock) Ping(_ context.Context) (types.Ping, error) {
	return m.PingResp, m.PingErr
}

func (m *Mock) ImageList(_ context.Context, options types.ImageListOptions) ([]types.ImageSummary, error) {
	m.ImageListOpts = append(m.ImageListOpts, options)
	return m.ImageListResp, m.ImageListErr
}

func (m *Mock) ImagePull(_ context.Context, ref string, _ types.ImagePullOptions) (io.ReadCloser, error) {
	m.PullCalls++
	m.PullRefs = append(m.PullRefs, ref)
	return m.ImagePullReader, m.ImagePullErr
}

func (m *Mock) ContainerCreate(_ context.Context, config *container.Config, hostConfig *container.HostConfig, _ *network.NetworkingConfig, _ *v1.Platform, name string) (container.CreateResponse, error) {
	m.CreateCalls++
	m.CreateNames = append(m.CreateNames, name)
	m.CreateConfigs = append(m.CreateConfigs, config)
	m.CreateHostConfigs = append(m.CreateHostConfigs, hostConfig)
	return m.CreateResp, m.CreateErr
}

func (m *Mock) ContainerStart(_ context.Context, containerID string, _ types.ContainerStartOptions) error {
	m.StartCalls++
	m.StartIDs = append(m.StartIDs, containerID)
	return m.StartErr
}

func (m *Mock) ContainerStop(_ context.Context, containerID string, options container.StopOptions) error {
	m.StopCalls++
	m.StopIDs = append(m.StopIDs, containerID)
	m.StopOpts = append(m.StopOpts, options)
	return m.StopErr
}

func (m *Mock) ContainerList(_ context.Context, _ types.ContainerListOptions) ([]types.Container, error) {
	m.ListCalls++
	return m.ListResp, m.ListErr
}

func (m *Mock) ContainerRemove(_ context.Context, containerID string, options types.ContainerRemoveOptions) error {
	m.RemoveCalls++
	m.RemovedIDs = append(m.RemovedIDs, containerID)
	m.RemoveOpts = append(m.RemoveOpts, options)
	return m.RemoveErr
}

func (m *Mock) ContainerLogs(_ context.Context, containerID string, options types.ContainerLogsOptions) (io.ReadCloser, error) {
	m.LogsIDs = append(m.LogsIDs, containerID)
	m.LogsOpts = append(m.LogsOpts, options)
	return m.LogsReader, m.LogsErr
}
