package main

import (
	"encoding/json"
	"net/http"
	"strconv"

	"iskele/pkg/container"

	"github.com/gorilla/mux"
)

// writeJSON renders a payload with the given status code.
func (s *IskeleServer) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

// respondError maps a lifecycle error to the HTTP failure payload. Lookup
// misses become 404 without details; everything else is a 500 carrying the
// underlying error text.
func (s *IskeleServer) respondError(w http.ResponseWriter, err error, message string) {
	if container.IsNotFound(err) {
		s.writeJSON(w, http.StatusNotFound, container.ErrorResponse{Message: "Konteyner bulunamadı"})
		return
	}

	s.writeJSON(w, http.StatusInternalServerError, container.ErrorResponse{
		Message: message,
		Details: err.Error(),
	})
}

// healthHandler handles health check requests
func (s *IskeleServer) healthHandler(w http.ResponseWriter, r *http.Request) {
	if _, err := s.runtime.Ping(r.Context()); err != nil {
		s.logger.WithError(err).Error("Docker daemon erişilemiyor")
		s.writeJSON(w, http.StatusServiceUnavailable, container.ErrorResponse{
			Message: "Docker daemon erişilemiyor",
			Details: err.Error(),
		})
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "iskele",
		"version": "1.0.0",
	})
}

// createContainerHandler provisions and starts a container for the
// requested image.
func (s *IskeleServer) createContainerHandler(w http.ResponseWriter, r *http.Request) {
	var req container.CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeJSON(w, http.StatusBadRequest, container.ErrorResponse{
			Message: "Geçersiz JSON formatı",
			Details: err.Error(),
		})
		return
	}

	// Input validation
	if req.ImageName == "" {
		s.writeJSON(w, http.StatusBadRequest, container.ErrorResponse{
			Message: "Image adı boş olamaz",
		})
		return
	}

	// Validate ports if specified
	for containerPortStr, hostPortStr := range req.Ports {
		containerPort, err := strconv.Atoi(containerPortStr)
		if err != nil {
			s.writeJSON(w, http.StatusBadRequest, container.ErrorResponse{
				Message: "Geçersiz container port formatı",
			})
			return
		}

		hostPort, err := strconv.Atoi(hostPortStr)
		if err != nil {
			s.writeJSON(w, http.StatusBadRequest, container.ErrorResponse{
				Message: "Geçersiz host port formatı",
			})
			return
		}

		if containerPort < 1 || containerPort > 65535 {
			s.writeJSON(w, http.StatusBadRequest, container.ErrorResponse{
				Message: "Container port numarası 1-65535 arasında olmalıdır",
			})
			return
		}
		if hostPort < 1 || hostPort > 65535 {
			s.writeJSON(w, http.StatusBadRequest, container.ErrorResponse{
				Message: "Host port numarası 1-65535 arasında olmalıdır",
			})
			return
		}
	}

	resp, err := s.manager.CreateAndStart(r.Context(), req)
	if err != nil {
		s.logger.WithError(err).Error("Konteyner oluşturulamadı")
		s.respondError(w, err, "Konteyner oluşturulamadı")
		return
	}

	s.writeJSON(w, http.StatusCreated, resp)
}

// listContainersHandler lists the containers this service manages.
func (s *IskeleServer) listContainersHandler(w http.ResponseWriter, r *http.Request) {
	containers, err := s.manager.List(r.Context())
	if err != nil {
		s.logger.WithError(err).Error("Konteyner listesi alınamadı")
		s.respondError(w, err, "Konteyner listesi alınamadı")
		return
	}

	s.writeJSON(w, http.StatusOK, containers)
}

// statusContainerHandler reports a single container by name or id.
func (s *IskeleServer) statusContainerHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	nameOrID := vars["nameOrId"]

	status, err := s.manager.Status(r.Context(), nameOrID)
	if err != nil {
		s.logger.WithError(err).Warn("Konteyner durumu alınamadı")
		s.respondError(w, err, "Konteyner durumu alınamadı")
		return
	}

	s.writeJSON(w, http.StatusOK, status)
}

// deleteContainerHandler force-removes a container by name or id.
func (s *IskeleServer) deleteContainerHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	nameOrID := vars["nameOrId"]

	if err := s.manager.Remove(r.Context(), nameOrID); err != nil {
		s.logger.WithError(err).Warn("Konteyner silinemedi")
		s.respondError(w, err, "Konteyner silinemedi")
		return
	}

	s.writeJSON(w, http.StatusOK, container.MessageResponse{Message: "Konteyner başarıyla silindi"})
}

// stopContainerHandler stops a container by name or id.
func (s *IskeleServer) stopContainerHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	nameOrID := vars["nameOrId"]

	if err := s.manager.Stop(r.Context(), nameOrID); err != nil {
		s.logger.WithError(err).Warn("Konteyner durdurulamadı")
		s.respondError(w, err, "Konteyner durdurulamadı")
		return
	}

	s.writeJSON(w, http.StatusOK, container.MessageResponse{Message: "Konteyner başarıyla durduruldu"})
}

// containerLogsHandler returns the tail of a container's logs as plain text.
func (s *IskeleServer) containerLogsHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	nameOrID := vars["nameOrId"]

	// Parse tail parameter from query string
	tail := 100
	if tailStr := r.URL.Query().Get("tail"); tailStr != "" {
		if parsedTail, err := strconv.Atoi(tailStr); err == nil && parsedTail > 0 {
			tail = parsedTail
		}
	}

	logs, err := s.manager.Logs(r.Context(), nameOrID, tail)
	if err != nil {
		s.logger.WithError(err).Warn("Konteyner logları alınamadı")
		s.respondError(w, err, "Konteyner logları alınamadı")
		return
	}

	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(logs))
}

// statsHandler summarizes the managed container population.
func (s *IskeleServer) statsHandler(w http.ResponseWriter, r *http.Request) {
	stats, err := s.manager.Stats(r.Context())
	if err != nil {
		s.logger.WithError(err).Error("İstatistikler alınamadı")
		s.respondError(w, err, "İstatistikler alınamadı")
		return
	}

	s.writeJSON(w, http.StatusOK, stats)
}
