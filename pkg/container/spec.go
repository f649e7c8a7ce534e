package container

// CreateRequest is the payload for provisioning a new container.
type CreateRequest struct {
	ImageName    string            `json:"imageName"`
	EnvVariables map[string]string `json:"envVariables,omitempty"`
	Ports        map[string]string `json:"ports,omitempty"`
}

// CreateResponse reports a successfully provisioned container.
type CreateResponse struct {
	Message       string `json:"message"`
	ContainerName string `json:"containerName"`
	ContainerID   string `json:"containerId"`
}

// StatusResponse describes a single container looked up by name or id.
// ContainerName carries the names exactly as the runtime reports them,
// leading slash included.
type StatusResponse struct {
	ContainerName []string `json:"containerName"`
	ContainerID   string   `json:"containerId"`
	State         string   `json:"state"`
	Status        string   `json:"status"`
	Image         string   `json:"image"`
}

// ManagedContainer is one entry of the managed container listing.
type ManagedContainer struct {
	ID     string   `json:"id"`
	Image  string   `json:"image"`
	Names  []string `json:"names"`
	State  string   `json:"state"`
	Status string   `json:"status"`
}

// MessageResponse carries a plain confirmation message.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the failure payload of the HTTP API. Details holds the
// underlying error text and is omitted for plain misses.
type ErrorResponse struct {
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// StatsResponse summarizes the managed container population.
type StatsResponse struct {
	TotalContainers   int `json:"totalContainers"`
	RunningContainers int `json:"runningContainers"`
}
