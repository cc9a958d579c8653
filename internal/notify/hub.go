package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"

	"github.com/go-redis/redis/v8"

	"github.com/justdogsza/dog-training-api/internal/models"
)

// Hub fans out newly created messages to subscribers. With redis configured
// it also publishes across instances; the in-process registry always
// delivers, so a redis outage degrades to local-only delivery instead of
// losing notifications. Subscribers that receive the same message twice
// (local copy plus redis echo) drop the duplicate by message id.
type Hub struct {
	rdb *redis.Client

	mu   sync.Mutex
	subs map[string][]chan models.Message
}

func NewHub(redisURL string) *Hub {
	h := &Hub{subs: make(map[string][]chan models.Message)}

	if redisURL == "" {
		return h
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Println("notify: invalid REDIS_URL, running in-process only:", err)
		return h
	}

	h.rdb = redis.NewClient(opt)
	return h
}

func userChannel(id uint) string {
	return fmt.Sprintf("messages:user:%d", id)
}

func roleChannel(r models.Role) string {
	return fmt.Sprintf("messages:role:%s", r)
}

// channelsFor lists the channels a message is delivered on: direct messages
// reach the recipient and the sender, announcements reach their target roles
// (all roles when untargeted) and the sender.
func channelsFor(m models.Message) []string {
	channels := []string{userChannel(m.SenderID)}

	if m.RecipientID != nil {
		channels = append(channels, userChannel(*m.RecipientID))
		return channels
	}

	if m.IsAnnouncement {
		roles := []models.Role(m.TargetRoles)
		if len(roles) == 0 {
			roles = []models.Role{models.RoleAdmin, models.RoleTrainer, models.RoleParent, models.RoleBehaviorist}
		}
		for _, r := range roles {
			channels = append(channels, roleChannel(r))
		}
	}

	return channels
}

func (h *Hub) Publish(ctx context.Context, m models.Message) {
	channels := channelsFor(m)

	h.mu.Lock()
	for _, name := range channels {
		for _, ch := range h.subs[name] {
			select {
			case ch <- m:
			default:
				// slow consumer, drop rather than stall the request
				log.Println("notify: subscriber buffer full, dropping message", m.ID)
			}
		}
	}
	h.mu.Unlock()

	if h.rdb == nil {
		return
	}

	payload, err := json.Marshal(m)
	if err != nil {
		log.Println("notify: marshal failed:", err)
		return
	}
	for _, name := range channels {
		if err := h.rdb.Publish(ctx, name, payload).Err(); err != nil {
			// local delivery already happened, cross-instance fan-out is lost
			log.Println("notify: redis publish failed:", err)
			return
		}
	}
}

// Subscription delivers the messages visible to one user. Close releases the
// underlying channels; C is closed afterwards.
type Subscription struct {
	C     <-chan models.Message
	close func()
}

func (s *Subscription) Close() {
	s.close()
}

func (h *Hub) Subscribe(ctx context.Context, userID uint, role models.Role) *Subscription {
	channels := []string{userChannel(userID), roleChannel(role)}

	local := make(chan models.Message, 16)
	h.addLocal(channels, local)

	var pubsub *redis.PubSub
	var redisCh <-chan *redis.Message
	if h.rdb != nil {
		pubsub = h.rdb.Subscribe(ctx, channels...)
		redisCh = pubsub.Channel()
	}

	out := make(chan models.Message, 16)
	done := make(chan struct{})

	go func() {
		defer close(out)

		seen := make(map[uint]struct{})
		forward := func(m models.Message) {
			if _, dup := seen[m.ID]; dup {
				return
			}
			seen[m.ID] = struct{}{}
			select {
			case out <- m:
			case <-done:
			}
		}

		for {
			select {
			case <-done:
				return
			case m := <-local:
				forward(m)
			case rm, ok := <-redisCh:
				if !ok {
					redisCh = nil
					continue
				}
				var m models.Message
				if err := json.Unmarshal([]byte(rm.Payload), &m); err != nil {
					log.Println("notify: bad payload:", err)
					continue
				}
				forward(m)
			}
		}
	}()

	var once sync.Once
	return &Subscription{
		C: out,
		close: func() {
			once.Do(func() {
				h.removeLocal(channels, local)
				if pubsub != nil {
					_ = pubsub.Close()
				}
				close(done)
			})
		},
	}
}

func (h *Hub) addLocal(channels []string, ch chan models.Message) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, name := range channels {
		h.subs[name] = append(h.subs[name], ch)
	}
}

func (h *Hub) removeLocal(channels []string, ch chan models.Message) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, name := range channels {
		list := h.subs[name]
		for i, c := range list {
			if c == ch {
				h.subs[name] = append(list[:i], list[i+1:]...)
				break
			}
		}
		if len(h.subs[name]) == 0 {
			delete(h.subs, name)
		}
	}
}
