package service

import (
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-pro-network/internal/catalog"
	"github.com/MKhiriev/go-pro-network/models"
)

const messageTimeLayout = "3:04 PM"

type clientCatalogService struct {
	catalog *catalog.Catalog

	// conversations gain messages at runtime
	mu            sync.RWMutex
	conversations []models.Conversation
}

// NewClientCatalogService serves c. Sent messages live only in memory.
func NewClientCatalogService(c *catalog.Catalog) ClientCatalogService {
	convs := make([]models.Conversation, len(c.Conversations))
	for i, conv := range c.Conversations {
		conv.Messages = append([]models.Message(nil), conv.Messages...)
		convs[i] = conv
	}
	return &clientCatalogService{catalog: c, conversations: convs}
}

func (s *clientCatalogService) Feed(categories []string) []models.Post {
	if len(categories) == 0 {
		return append([]models.Post(nil), s.catalog.Posts...)
	}

	posts := make([]models.Post, 0, len(s.catalog.Posts))
	for _, p := range s.catalog.Posts {
		if p.HasAnyTag(categories) {
			posts = append(posts, p)
		}
	}
	return posts
}

func (s *clientCatalogService) FeedCategories() []models.FeedCategory {
	return s.catalog.FeedCategories
}

func (s *clientCatalogService) Recommended() []models.Person {
	return s.catalog.Recommended
}

func (s *clientCatalogService) Communities() []models.Community {
	return s.catalog.Communities
}

func (s *clientCatalogService) Connections() []models.Person {
	return s.catalog.Connections
}

func (s *clientCatalogService) Jobs() []models.Job {
	return s.catalog.Jobs
}

func (s *clientCatalogService) Conversations() []models.Conversation {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Conversation, len(s.conversations))
	for i, conv := range s.conversations {
		conv.Messages = append([]models.Message(nil), conv.Messages...)
		out[i] = conv
	}
	return out
}

func (s *clientCatalogService) SendMessage(conversationID int, text string, at time.Time) (models.Message, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return models.Message{}, ErrEmptyMessage
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.conversations {
		conv := &s.conversations[i]
		if conv.ID != conversationID {
			continue
		}

		msg := models.Message{
			ID:     len(conv.Messages) + 1,
			Sender: "me",
			Text:   text,
			Time:   at.Format(messageTimeLayout),
			Mine:   true,
		}
		conv.Messages = append(conv.Messages, msg)
		conv.LastMessage = text
		conv.Time = "now"
		conv.Unread = 0
		return msg, nil
	}

	return models.Message{}, ErrConversationNotFound
}

func (s *clientCatalogService) Notifications() []models.Notification {
	return s.catalog.Notifications
}

func (s *clientCatalogService) Salaries() []models.SalaryInsight {
	return s.catalog.Salaries
}
