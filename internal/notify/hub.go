// Package notify broadcasts report-submission notices to connected admin
// dashboards over WebSocket.
package notify

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/boe-dawah/boe-backend/internal/domain"
)

// SubmissionNotice is the message pushed to admin dashboards when a Dayee
// submits a daily report.
type SubmissionNotice struct {
	Type     string `json:"type"`
	Kind     string `json:"kind"`
	UserID   string `json:"userId"`
	UserName string `json:"userName"`
	Division string `json:"division"`
	District string `json:"district"`
	At       string `json:"at"`
}

type Hub struct {
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan []byte
	stop       chan struct{}
	done       chan struct{}
	stopped    bool
	mu         sync.Mutex
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan []byte, 64),
		stop:       make(chan struct{}),
		done:       make(chan struct{}),
	}
}

func (h *Hub) Run() {
	defer close(h.done)

	for {
		select {
		case <-h.stop:
			h.mu.Lock()
			h.stopped = true
			for client := range h.clients {
				close(client.send)
				delete(h.clients, client)
			}
			h.mu.Unlock()
			return

		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			h.mu.Unlock()

		case message := <-h.broadcast:
			h.mu.Lock()
			for client := range h.clients {
				select {
				case client.send <- message:
				default:
					// Slow consumer, drop it
					delete(h.clients, client)
					close(client.send)
				}
			}
			h.mu.Unlock()
		}
	}
}

// Stop shuts the hub down and waits for Run to exit.
func (h *Hub) Stop() {
	close(h.stop)
	<-h.done
}

// ReportSubmitted implements service.Notifier.
func (h *Hub) ReportSubmitted(kind domain.ReportKind, user *domain.User, at time.Time) {
	notice := SubmissionNotice{
		Type:     "report_submitted",
		Kind:     kind.String(),
		UserID:   user.ID.String(),
		UserName: user.Name,
		Division: user.Division,
		District: user.District,
		At:       at.UTC().Format(time.RFC3339),
	}

	data, err := json.Marshal(notice)
	if err != nil {
		log.Printf("failed to marshal submission notice: %v", err)
		return
	}

	h.mu.Lock()
	stopped := h.stopped
	h.mu.Unlock()
	if stopped {
		return
	}

	select {
	case h.broadcast <- data:
	default:
		log.Printf("notify: broadcast buffer full, dropping notice")
	}
}
