package container

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/docker/docker/api/types"
	"github.com/docker/docker/api/types/container"
	"github.com/docker/go-connections/nat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"iskele/pkg/runtime"
)

func readyMock() *runtime.Mock {
	return &runtime.Mock{
		ImageListResp: []types.ImageSummary{{ID: "sha256:abc"}},
		CreateResp:    container.CreateResponse{ID: "cid-1"},
	}
}

func TestCreateAndStart(t *testing.T) {
	t.Run("env variables are flattened", func(t *testing.T) {
		mock := readyMock()
		m := newTestManager(mock)

		resp, err := m.CreateAndStart(context.Background(), CreateRequest{
			ImageName:    "alpine",
			EnvVariables: map[string]string{"APP_MODE": "dev", "DEBUG": "1"},
		})
		require.NoError(t, err)

		require.Len(t, mock.CreateConfigs, 1)
		assert.ElementsMatch(t, []string{"APP_MODE=dev", "DEBUG=1"}, mock.CreateConfigs[0].Env)
		assert.Equal(t, "alpine:latest", mock.CreateConfigs[0].Image)
		assert.Equal(t, "cid-1", resp.ContainerID)
	})

	t.Run("generated name reaches the runtime", func(t *testing.T) {
		mock := readyMock()
		m := newTestManager(mock)

		resp, err := m.CreateAndStart(context.Background(), CreateRequest{ImageName: "alpine"})
		require.NoError(t, err)

		require.Len(t, mock.CreateNames, 1)
		assert.Equal(t, resp.ContainerName, mock.CreateNames[0])
		assert.True(t, strings.HasPrefix(mock.CreateNames[0], "container-alpine-latest-"))
	})

	t.Run("names are unique per request", func(t *testing.T) {
		mock := readyMock()
		m := newTestManager(mock)

		_, err := m.CreateAndStart(context.Background(), CreateRequest{ImageName: "alpine"})
		require.NoError(t, err)
		_, err = m.CreateAndStart(context.Background(), CreateRequest{ImageName: "alpine"})
		require.NoError(t, err)

		require.Len(t, mock.CreateNames, 2)
		assert.NotEqual(t, mock.CreateNames[0], mock.CreateNames[1])
	})

	t.Run("auto remove stays disabled", func(t *testing.T) {
		mock := readyMock()
		m := newTestManager(mock)

		_, err := m.CreateAndStart(context.Background(), CreateRequest{ImageName: "alpine"})
		require.NoError(t, err)

		require.Len(t, mock.CreateHostConfigs, 1)
		assert.False(t, mock.CreateHostConfigs[0].AutoRemove)
	})

	t.Run("started with the created id", func(t *testing.T) {
		mock := readyMock()
		m := newTestManager(mock)

		_, err := m.CreateAndStart(context.Background(), CreateRequest{ImageName: "alpine"})
		require.NoError(t, err)

		assert.Equal(t, []string{"cid-1"}, mock.StartIDs)
	})

	t.Run("missing image is pulled before create", func(t *testing.T) {
		mock := &runtime.Mock{
			ImagePullReader: pullStream(`{"status":"Status: Downloaded newer image for alpine:latest"}`),
			CreateResp:      container.CreateResponse{ID: "cid-2"},
		}
		m := newTestManager(mock)

		resp, err := m.CreateAndStart(context.Background(), CreateRequest{ImageName: "alpine"})
		require.NoError(t, err)

		assert.Equal(t, 1, mock.PullCalls)
		assert.Equal(t, 1, mock.CreateCalls)
		assert.Equal(t, "cid-2", resp.ContainerID)
	})

	t.Run("create failure is an operation failure", func(t *testing.T) {
		mock := readyMock()
		mock.CreateErr = errors.New("name already in use")
		m := newTestManager(mock)

		_, err := m.CreateAndStart(context.Background(), CreateRequest{ImageName: "alpine"})
		require.Error(t, err)

		assert.True(t, IsOperationFailed(err))
		assert.Equal(t, 0, mock.StartCalls)
	})

	t.Run("start failure leaves the container in place", func(t *testing.T) {
		mock := readyMock()
		mock.StartErr = errors.New("oci runtime error")
		m := newTestManager(mock)

		_, err := m.CreateAndStart(context.Background(), CreateRequest{ImageName: "alpine"})
		require.Error(t, err)

		assert.True(t, IsOperationFailed(err))
		assert.Equal(t, 1, mock.CreateCalls)
		assert.Equal(t, 0, mock.RemoveCalls)
	})

	t.Run("port bindings are built from the request", func(t *testing.T) {
		mock := readyMock()
		m := newTestManager(mock)

		_, err := m.CreateAndStart(context.Background(), CreateRequest{
			ImageName: "nginx",
			Ports:     map[string]string{"80": "8081"},
		})
		require.NoError(t, err)

		require.Len(t, mock.CreateHostConfigs, 1)
		bindings := mock.CreateHostConfigs[0].PortBindings[nat.Port("80/tcp")]
		require.Len(t, bindings, 1)
		assert.Equal(t, "0.0.0.0", bindings[0].HostIP)
		assert.Equal(t, "8081", bindings[0].HostPort)
		assert.Contains(t, mock.CreateConfigs[0].ExposedPorts, nat.Port("80/tcp"))
	})

	t.Run("invalid port aborts before create", func(t *testing.T) {
		mock := readyMock()
		m := newTestManager(mock)

		_, err := m.CreateAndStart(context.Background(), CreateRequest{
			ImageName: "nginx",
			Ports:     map[string]string{"seksen": "8081"},
		})
		require.Error(t, err)

		assert.Equal(t, 0, mock.CreateCalls)
	})
}
