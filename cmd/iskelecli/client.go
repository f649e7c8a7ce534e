package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/ioutil"
	"net/http"

	"iskele/pkg/container"
)

// HTTP client functions

// apiError turns a failure response into an error, preferring the server's
// structured message over the raw body.
func apiError(resp *http.Response) error {
	body, _ := ioutil.ReadAll(resp.Body)

	var failure container.ErrorResponse
	if err := json.Unmarshal(body, &failure); err == nil && failure.Message != "" {
		if failure.Details != "" {
			return fmt.Errorf("%s (%s)", failure.Message, failure.Details)
		}
		return errors.New(failure.Message)
	}

	return fmt.Errorf("HTTP %d: %s", resp.StatusCode, string(body))
}

func createContainer(req container.CreateRequest) (*container.CreateResponse, error) {
	data, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	resp, err := http.Post(serverURL+"/containers", "application/json", bytes.NewBuffer(data))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		return nil, apiError(resp)
	}

	var created container.CreateResponse
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return nil, err
	}

	return &created, nil
}

func listContainers() ([]container.ManagedContainer, error) {
	resp, err := http.Get(serverURL + "/containers")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apiError(resp)
	}

	var containers []container.ManagedContainer
	if err := json.NewDecoder(resp.Body).Decode(&containers); err != nil {
		return nil, err
	}

	return containers, nil
}

func getStatus(nameOrID string) (*container.StatusResponse, error) {
	resp, err := http.Get(serverURL + "/containers/" + nameOrID)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apiError(resp)
	}

	var status container.StatusResponse
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		return nil, err
	}

	return &status, nil
}

func stopContainer(nameOrID string) error {
	resp, err := http.Post(serverURL+"/containers/"+nameOrID+"/stop", "application/json", nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return apiError(resp)
	}

	return nil
}

func removeContainer(nameOrID string) error {
	req, err := http.NewRequest("DELETE", serverURL+"/containers/"+nameOrID, nil)
	if err != nil {
		return err
	}

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return apiError(resp)
	}

	return nil
}

func getContainerLogs(nameOrID string, tail int) (string, error) {
	url := fmt.Sprintf("%s/containers/%s/logs?tail=%d", serverURL, nameOrID, tail)

	resp, err := http.Get(url)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", apiError(resp)
	}

	body, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	return string(body), nil
}

func getStats() (*container.StatsResponse, error) {
	resp, err := http.Get(serverURL + "/stats")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apiError(resp)
	}

	var stats container.StatsResponse
	if err := json.NewDecoder(resp.Body).Decode(&stats); err != nil {
		return nil, err
	}

	return &stats, nil
}

// Utility functions for formatting output

func truncateString(s string, length int) string {
	if len(s) <= length {
		return s
	}
	return s[:length]
}
