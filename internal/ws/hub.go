package ws

import (
	"log"
	"sync"
)

// Hub fans refresh events out to every subscribed browser session. A slow
// subscriber is dropped instead of stalling the rest; the client refetches
// on reconnect anyway.
type Hub struct {
	subscribers map[*Client]struct{}
	events      chan []byte
	register    chan *Client
	unregister  chan *Client
	mutex       sync.RWMutex
	logger      *log.Logger
}

func NewHub(logger *log.Logger) *Hub {
	return &Hub{
		subscribers: make(map[*Client]struct{}),
		events:      make(chan []byte, 1024),
		register:    make(chan *Client, 128),
		unregister:  make(chan *Client, 128),
		logger:      logger,
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			if client == nil {
				continue
			}
			h.mutex.Lock()
			h.subscribers[client] = struct{}{}
			total := len(h.subscribers)
			h.mutex.Unlock()
			if h.logger != nil {
				h.logger.Printf("[Events] subscriber connected total=%d", total)
			}

		case client := <-h.unregister:
			if client == nil {
				continue
			}
			h.mutex.Lock()
			if _, ok := h.subscribers[client]; ok {
				delete(h.subscribers, client)
				close(client.send)
			}
			total := len(h.subscribers)
			h.mutex.Unlock()
			if h.logger != nil {
				h.logger.Printf("[Events] subscriber disconnected total=%d", total)
			}

		case event := <-h.events:
			h.mutex.RLock()
			snapshot := make([]*Client, 0, len(h.subscribers))
			for c := range h.subscribers {
				snapshot = append(snapshot, c)
			}
			h.mutex.RUnlock()

			for _, client := range snapshot {
				select {
				case client.send <- event:
				default:
					h.unregister <- client
				}
			}
		}
	}
}

func (h *Hub) Register(client *Client) {
	if h == nil {
		return
	}
	h.register <- client
}

func (h *Hub) Unregister(client *Client) {
	if h == nil {
		return
	}
	h.unregister <- client
}

// Broadcast enqueues an event without blocking the caller. Usecases publish
// from request goroutines, so a full buffer drops the event and logs.
func (h *Hub) Broadcast(event []byte) {
	if h == nil {
		return
	}
	select {
	case h.events <- event:
	default:
		if h.logger != nil {
			h.logger.Printf("[Events] broadcast dropped reason=buffer_full")
		}
	}
}

func (h *Hub) SubscriberCount() int {
	if h == nil {
		return 0
	}
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return len(h.subscribers)
}
