package container

import (
	"context"
	"fmt"
	"strings"

	"github.com/docker/docker/api/types"
	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/network"
	"github.com/docker/go-connections/nat"
	"github.com/sirupsen/logrus"

	"iskele/pkg/runtime"
)

// Manager drives the container lifecycle against an injected runtime client.
// It holds no state of its own; every operation works directly off the
// runtime's view.
type Manager struct {
	runtime runtime.Client
	logger  *logrus.Logger
}

// NewManager creates a container manager backed by the given runtime client.
func NewManager(rt runtime.Client, logger *logrus.Logger) *Manager {
	return &Manager{
		runtime: rt,
		logger:  logger,
	}
}

// CreateAndStart provisions a container for the requested image and starts
// it. The image is pulled when missing and the name is generated fresh for
// every request. A container whose start fails is left in place for the
// caller to inspect or delete.
func (m *Manager) CreateAndStart(ctx context.Context, req CreateRequest) (*CreateResponse, error) {
	resolved, err := m.ensureImage(ctx, req.ImageName)
	if err != nil {
		return nil, err
	}

	name := generateName(resolved)

	env := make([]string, 0, len(req.EnvVariables))
	for key, value := range req.EnvVariables {
		env = append(env, fmt.Sprintf("%s=%s", key, value))
	}

	exposedPorts, portBindings, err := buildPortBindings(req.Ports)
	if err != nil {
		return nil, err
	}

	config := &container.Config{
		Image:        resolved,
		Env:          env,
		ExposedPorts: exposedPorts,
	}

	// AutoRemove stays off; exited containers must remain visible to
	// status and delete.
	hostConfig := &container.HostConfig{
		PortBindings: portBindings,
	}

	networkConfig := &network.NetworkingConfig{}

	resp, err := m.runtime.ContainerCreate(ctx, config, hostConfig, networkConfig, nil, name)
	if err != nil {
		return nil, &Error{Kind: KindOperationFailed, Op: "create", Target: name, Err: err}
	}

	m.logger.WithFields(logrus.Fields{
		"container_id": resp.ID,
		"name":         name,
		"image":        resolved,
	}).Info("Konteyner oluşturuldu")

	if err := m.runtime.ContainerStart(ctx, resp.ID, types.ContainerStartOptions{}); err != nil {
		return nil, &Error{Kind: KindOperationFailed, Op: "start", Target: name, Err: err}
	}

	m.logger.WithField("container_id", resp.ID).Info("Konteyner başlatıldı")

	return &CreateResponse{
		Message:       "Konteyner başarıyla oluşturuldu ve başlatıldı",
		ContainerName: name,
		ContainerID:   resp.ID,
	}, nil
}

// buildPortBindings maps container ports to host ports. Keys may carry a
// protocol suffix ("8080/udp"); tcp is assumed otherwise.
func buildPortBindings(ports map[string]string) (nat.PortSet, nat.PortMap, error) {
	portBindings := nat.PortMap{}
	exposedPorts := nat.PortSet{}

	for containerPort, hostPort := range ports {
		portStr := containerPort
		protocol := "tcp"
		if strings.Contains(containerPort, "/") {
			parts := strings.Split(containerPort, "/")
			if len(parts) == 2 {
				portStr = parts[0]
				protocol = parts[1]
			}
		}

		port, err := nat.NewPort(protocol, portStr)
		if err != nil {
			return nil, nil, fmt.Errorf("geçersiz port: %s", containerPort)
		}

		exposedPorts[port] = struct{}{}
		portBindings[port] = []nat.PortBinding{
			{
				HostIP:   "0.0.0.0",
				HostPort: hostPort,
			},
		}
	}

	return exposedPorts, portBindings, nil
}
